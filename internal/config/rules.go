// internal/config/rules.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"os"
)

// Rules holds every tunable of the simulation. All durations are in frames at
// TicksPerSecond, except the spawn window which is in seconds.
type Rules struct {
	ScreenWidth    int `json:"screen_width"`
	ScreenHeight   int `json:"screen_height"`
	CellSize       int `json:"cell_size"`
	TicksPerSecond int `json:"ticks_per_second"`

	BalloonSpeed  float64 `json:"balloon_speed"`
	BalloonHealth int     `json:"balloon_health"`
	BalloonWidth  int     `json:"balloon_width"`
	BalloonHeight int     `json:"balloon_height"`
	BalloonSpawnX float64 `json:"balloon_spawn_x"`

	TowerSize     int     `json:"tower_size"`
	TowerRange    float64 `json:"tower_range"`
	TowerCooldown int     `json:"tower_cooldown"`
	TowerTravel   int     `json:"tower_travel"`
	TowerDamage   int     `json:"tower_damage"`

	WaypointSize int `json:"waypoint_size"`

	SpawnMinSeconds float64 `json:"spawn_min_seconds"`
	SpawnMaxSeconds float64 `json:"spawn_max_seconds"`
}

// DefaultRules возвращает правила, собранные из констант пакета.
func DefaultRules() *Rules {
	return &Rules{
		ScreenWidth:     ScreenWidth,
		ScreenHeight:    ScreenHeight,
		CellSize:        CellSize,
		TicksPerSecond:  TicksPerSecond,
		BalloonSpeed:    BalloonSpeed,
		BalloonHealth:   BalloonHealth,
		BalloonWidth:    BalloonWidth,
		BalloonHeight:   BalloonHeight,
		BalloonSpawnX:   BalloonSpawnX,
		TowerSize:       TowerSize,
		TowerRange:      TowerRange,
		TowerCooldown:   TowerCooldown,
		TowerTravel:     TowerTravel,
		TowerDamage:     TowerDamage,
		WaypointSize:    WaypointSize,
		SpawnMinSeconds: SpawnMinSeconds,
		SpawnMaxSeconds: SpawnMaxSeconds,
	}
}

// LoadRules reads a JSON rules file. Fields missing from the file keep their
// default values.
func LoadRules(path string) (*Rules, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	rules := DefaultRules()
	if err := json.Unmarshal(file, rules); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rules: %w", err)
	}
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules in %s: %w", path, err)
	}

	log.Printf("Loaded rules from %s", path)
	return rules, nil
}

// Validate проверяет согласованность правил.
func (r *Rules) Validate() error {
	switch {
	case r.CellSize <= 0:
		return errors.New("cell_size must be positive")
	case r.ScreenWidth < r.CellSize || r.ScreenHeight < r.CellSize:
		return errors.New("screen must fit at least one cell")
	case r.TicksPerSecond <= 0:
		return errors.New("ticks_per_second must be positive")
	case r.BalloonSpeed <= 0:
		return errors.New("balloon_speed must be positive")
	case r.BalloonHealth <= 0:
		return errors.New("balloon_health must be positive")
	case r.TowerRange <= 0:
		return errors.New("tower_range must be positive")
	case r.TowerTravel < 0:
		return errors.New("tower_travel must not be negative")
	// Захват новой цели до попадания перезаписал бы незавершённый выстрел.
	case r.TowerCooldown < r.TowerTravel:
		return fmt.Errorf("tower_cooldown (%d) must not be shorter than tower_travel (%d)", r.TowerCooldown, r.TowerTravel)
	case r.SpawnMinSeconds <= 0 || r.SpawnMaxSeconds < r.SpawnMinSeconds:
		return fmt.Errorf("spawn window [%g, %g] is empty or non-positive", r.SpawnMinSeconds, r.SpawnMaxSeconds)
	}
	return nil
}

// MapWidth — число колонок сетки.
func (r *Rules) MapWidth() int {
	return r.ScreenWidth / r.CellSize
}

// MapHeight — число строк сетки.
func (r *Rules) MapHeight() int {
	return r.ScreenHeight / r.CellSize
}

// SecondsToFrames converts seconds to whole frames, never less than one.
func (r *Rules) SecondsToFrames(seconds float64) int {
	frames := int(math.Round(seconds * float64(r.TicksPerSecond)))
	if frames < 1 {
		return 1
	}
	return frames
}
