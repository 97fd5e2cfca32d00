// internal/event/types.go
package event

import "go-balloon-defense/internal/types"

const (
	BalloonSpawned EventType = "BalloonSpawned"
	BalloonPopped  EventType = "BalloonPopped"  // здоровье упало до нуля
	BalloonEscaped EventType = "BalloonEscaped" // ушёл за правый край
	TowerPlaced    EventType = "TowerPlaced"
	TowerRemoved   EventType = "TowerRemoved"
	ShotFired      EventType = "ShotFired"    // Data: HitData с целью
	BalloonHit     EventType = "BalloonHit"   // Data: HitData
	MapGenerated   EventType = "MapGenerated" // Data: число точек пути
	PathCleared    EventType = "PathCleared"
	WaypointAdded  EventType = "WaypointAdded"
	ModeChanged    EventType = "ModeChanged"
)

// All lists every event type, in declaration order.
var All = []EventType{
	BalloonSpawned, BalloonPopped, BalloonEscaped,
	TowerPlaced, TowerRemoved,
	ShotFired, BalloonHit,
	MapGenerated, PathCleared, WaypointAdded, ModeChanged,
}

// HitData — полезная нагрузка ShotFired и BalloonHit.
type HitData struct {
	Target       types.EntityID
	Damage       int
	HealthBefore int
	HealthAfter  int
}
