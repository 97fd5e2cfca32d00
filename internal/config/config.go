// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth    = 1280
	ScreenHeight   = 720
	CellSize       = 64
	TicksPerSecond = 60

	WaypointSize = 8 // Размер маркера точки пути

	BalloonWidth  = 64
	BalloonHeight = 64
	BalloonSpeed  = 2.0 // пикселей за кадр
	BalloonHealth = 100
	BalloonSpawnX = -64

	TowerSize     = 64    // Хитбокс башни (квадрат)
	TowerRange    = 250.0 // Радиус обнаружения в пикселях
	TowerCooldown = 30    // Кадров между захватами цели
	TowerTravel   = 10    // Кадров полёта "снаряда" до попадания
	TowerDamage   = 10

	SpawnMinSeconds = 0.9
	SpawnMaxSeconds = 1.5

	BeamWidth        = 7.0
	PathLineWidth    = 2.0
	PreviewLineWidth = 2.0
	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0
)

var (
	BackgroundColor   = color.RGBA{0, 0, 0, 255}
	GrassColor        = color.RGBA{58, 110, 52, 255}
	PathColor         = color.RGBA{176, 140, 92, 255}
	PathEdgeColor     = color.RGBA{138, 104, 64, 255}
	WaypointColor     = color.RGBA{255, 255, 255, 255}
	PathLineColor     = color.RGBA{200, 200, 200, 255}
	BeamColor         = color.RGBA{255, 0, 0, 255}
	BalloonColor      = color.RGBA{220, 40, 40, 255}
	BalloonHurtColor  = color.RGBA{250, 160, 60, 255}
	TowerColor        = color.RGBA{90, 90, 110, 255}
	TowerStrokeColor  = color.RGBA{240, 240, 240, 255}
	RangeColor        = color.RGBA{0, 0, 255, 23}
	PreviewValidColor = color.RGBA{255, 255, 255, 255}
	PreviewBadColor   = color.RGBA{255, 0, 0, 255}
	TowerModeColor    = color.RGBA{70, 130, 180, 220}
	PathModeColor     = color.RGBA{220, 180, 60, 220}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
)
