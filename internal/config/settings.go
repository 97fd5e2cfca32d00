// internal/config/settings.go
package config

import (
	"os"
	"strconv"
)

// Settings — параметры запуска, читаются из окружения.
type Settings struct {
	Seed      int64  // 0 — сид от текущего времени
	RulesPath string // пустой путь — правила по умолчанию
	DebugAddr string // адрес pprof и /metrics, пустой — сервер выключен
	StartMode string // "towers" или "paths"
}

func Load() Settings {
	return Settings{
		Seed:      getEnvInt64("TD_SEED", 0),
		RulesPath: os.Getenv("TD_RULES"),
		DebugAddr: getEnvDefault("TD_DEBUG_ADDR", "localhost:6060"),
		StartMode: getEnv("TD_START_MODE", "towers"),
	}
}

// Rules loads the rules file named by RulesPath, or returns the defaults.
func (s Settings) Rules() (*Rules, error) {
	if s.RulesPath == "" {
		return DefaultRules(), nil
	}
	return LoadRules(s.RulesPath)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getEnvDefault отличается от getEnv тем, что явно заданная пустая строка
// сохраняется (так отключается отладочный сервер).
func getEnvDefault(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return fallback
}
