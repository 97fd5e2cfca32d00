// internal/metrics/server.go
package metrics

import (
	"log"
	"net/http"
	_ "net/http/pprof"

	"github.com/prometheus/client_golang/prometheus"
)

// StartDebugServer поднимает pprof и /metrics на addr в отдельной горутине.
// Пустой адрес выключает сервер.
func StartDebugServer(addr string, g prometheus.Gatherer) {
	if addr == "" {
		return
	}
	http.Handle("/metrics", Handler(g))
	go func() {
		log.Printf("Debug server on http://%s (pprof, /metrics)", addr)
		log.Println(http.ListenAndServe(addr, nil))
	}()
}
