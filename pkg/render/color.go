// pkg/render/color.go
package render

import (
	"go-balloon-defense/pkg/tilemap"
	"image/color"
)

// MapColors holds all the color definitions needed to render the static map background.
type MapColors struct {
	BackgroundColor color.RGBA
	GrassColor      color.RGBA
	PathColor       color.RGBA
	PathEdgeColor   color.RGBA
	WaypointColor   color.RGBA
	PathLineColor   color.RGBA
	TextLightColor  color.RGBA
	StrokeWidth     float32
}

// PreviewColors — цвета рамки под курсором.
type PreviewColors struct {
	ValidColor   color.Color
	InvalidColor color.Color
	StrokeWidth  float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// TileColor — заливка клетки. Клетки вне перечисления рисуются затемнённой травой.
func TileColor(t tilemap.Tile, colors *MapColors) color.RGBA {
	switch {
	case t.IsPath():
		return colors.PathColor
	case t == tilemap.TileGrass:
		return colors.GrassColor
	default:
		return DarkenColor(colors.GrassColor)
	}
}
