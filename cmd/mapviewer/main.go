// cmd/mapviewer/main.go
package main

import (
	"fmt"
	"go-balloon-defense/internal/config"
	"go-balloon-defense/internal/utils"
	"go-balloon-defense/pkg/render"
	"go-balloon-defense/pkg/tilemap"
	"image/color"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Helper to convert color.RGBA to rl.Color
func colorToRL(c color.Color) rl.Color {
	r, g, b, a := c.RGBA()
	return rl.NewColor(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
}

func drawLayout(layout tilemap.Layout, colors *render.MapColors, markerSize int) {
	grid := layout.Grid
	size := int32(grid.CellSize)
	grid.Each(func(row, col int, t tilemap.Tile) {
		x, y := int32(col)*size, int32(row)*size
		rl.DrawRectangle(x, y, size, size, colorToRL(render.TileColor(t, colors)))
		if t.IsPath() {
			rl.DrawRectangleLines(x, y, size, size, colorToRL(colors.PathEdgeColor))
		}
	})

	// Путь поверх карты
	for i := 1; i < len(layout.Waypoints); i++ {
		a, b := layout.Waypoints[i-1], layout.Waypoints[i]
		rl.DrawLineEx(rl.NewVector2(float32(a.X), float32(a.Y)), rl.NewVector2(float32(b.X), float32(b.Y)), colors.StrokeWidth, colorToRL(colors.PathLineColor))
	}
	for _, w := range layout.Waypoints {
		box := w.Bounds(markerSize)
		rl.DrawRectangle(int32(box.Min.X), int32(box.Min.Y), int32(box.Dx()), int32(box.Dy()), colorToRL(colors.WaypointColor))
	}
}

func main() {
	settings := config.Load()
	rules, err := settings.Rules()
	if err != nil {
		log.Fatal(err)
	}

	colors := &render.MapColors{
		BackgroundColor: config.BackgroundColor,
		GrassColor:      config.GrassColor,
		PathColor:       config.PathColor,
		PathEdgeColor:   config.PathEdgeColor,
		WaypointColor:   config.WaypointColor,
		PathLineColor:   config.PathLineColor,
		TextLightColor:  config.TextLightColor,
		StrokeWidth:     float32(config.PathLineWidth),
	}

	rng := utils.NewPRNGService(settings.Seed)
	generate := func() tilemap.Layout {
		layout := tilemap.Generate(rng, rules.MapHeight(), rules.MapWidth(), rules.CellSize)
		log.Printf("Map generated: %d waypoints, start row %d", len(layout.Waypoints), layout.StartRow)
		return layout
	}
	layout := generate()
	maps := 1

	rl.InitWindow(int32(rules.ScreenWidth), int32(rules.ScreenHeight), "Raylib Map Viewer | R - Regenerate")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(rules.TicksPerSecond))

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyR) {
			layout = generate()
			maps++
		}

		rl.BeginDrawing()
		rl.ClearBackground(colorToRL(colors.BackgroundColor))
		drawLayout(layout, colors, rules.WaypointSize)
		info := fmt.Sprintf("seed %d  map #%d  start y %d  waypoints %d", rng.Seed(), maps, layout.StartY, len(layout.Waypoints))
		rl.DrawText(info, 10, 10, 20, colorToRL(colors.TextLightColor))
		rl.EndDrawing()
	}
}
