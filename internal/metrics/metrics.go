// internal/metrics/metrics.go
package metrics

import (
	"go-balloon-defense/internal/event"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "balloon_defense"

// Collector считает игровые события. Подписывается на диспетчер как обычный
// слушатель и ничего не знает о симуляции.
type Collector struct {
	events   *prometheus.CounterVec
	damage   prometheus.Counter
	balloons prometheus.Gauge
	towers   prometheus.Gauge
	path     prometheus.Gauge
}

// NewCollector creates the metrics and registers them with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Game events by type.",
		}, []string{"type"}),
		damage: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "damage_total",
			Help:      "Damage dealt to balloons by tower impacts.",
		}),
		balloons: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "balloons",
			Help:      "Balloons currently on the field.",
		}),
		towers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "towers",
			Help:      "Towers currently placed.",
		}),
		path: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "waypoints",
			Help:      "Waypoints in the current path.",
		}),
	}
	reg.MustRegister(c.events, c.damage, c.balloons, c.towers, c.path)
	return c
}

// Subscribe подписывает коллектор на все события диспетчера.
func (c *Collector) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(c, event.All...)
}

func (c *Collector) OnEvent(e event.Event) {
	c.events.WithLabelValues(string(e.Type)).Inc()

	switch e.Type {
	case event.BalloonSpawned:
		c.balloons.Inc()
	case event.BalloonPopped, event.BalloonEscaped:
		c.balloons.Dec()
	case event.TowerPlaced:
		c.towers.Inc()
	case event.TowerRemoved:
		c.towers.Dec()
	case event.BalloonHit:
		if hit, ok := e.Data.(event.HitData); ok {
			c.damage.Add(float64(hit.HealthBefore - hit.HealthAfter))
		}
	case event.MapGenerated:
		if n, ok := e.Data.(int); ok {
			c.path.Set(float64(n))
		}
	case event.PathCleared:
		c.path.Set(0)
	case event.WaypointAdded:
		c.path.Inc()
	}
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
