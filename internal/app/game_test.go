package app

import (
	"image"
	"testing"

	"go-balloon-defense/internal/component"
	"go-balloon-defense/internal/config"
	"go-balloon-defense/internal/event"
	"go-balloon-defense/pkg/tilemap"
)

// straightRandom всегда выбирает прямой шаг и фиксированный интервал спавна.
type straightRandom struct {
	seconds float64
}

func (straightRandom) ChooseWeighted([]float64) int       { return 0 }
func (r straightRandom) Uniform(min, max float64) float64 { return r.seconds }

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) frames(t event.EventType) []int {
	var out []int
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e.Frame)
		}
	}
	return out
}

func newTestGame(seconds float64) (*Game, *recorder) {
	d := event.NewDispatcher()
	rec := &recorder{}
	d.SubscribeAll(rec, event.All...)
	return NewGame(config.DefaultRules(), straightRandom{seconds: seconds}, d, ModeTowers), rec
}

func ticks(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Tick(nil)
	}
}

func TestNewGame_GeneratesMap(t *testing.T) {
	g, rec := newTestGame(1)

	grid := g.Grid()
	if grid.Width != 20 || grid.Height != 11 {
		t.Fatalf("grid = %dx%d, want 20x11", grid.Width, grid.Height)
	}
	wps := g.Waypoints()
	if len(wps) != grid.Width {
		t.Fatalf("len(Waypoints()) = %d, want %d", len(wps), grid.Width)
	}
	if g.StartY() != 320 {
		t.Errorf("StartY() = %v, want 320", g.StartY())
	}
	for i, w := range wps {
		if w.Y != 352 || w.X != float64(32+64*i) {
			t.Errorf("waypoint %d = %+v, want (%d, 352)", i, w, 32+64*i)
		}
	}
	if len(rec.frames(event.MapGenerated)) != 1 {
		t.Errorf("MapGenerated dispatched %d times, want 1", len(rec.frames(event.MapGenerated)))
	}
}

func TestTick_FirstFrameSpawns(t *testing.T) {
	g, _ := newTestGame(1)

	g.Tick(nil)

	balloons := g.Balloons()
	if len(balloons) != 1 {
		t.Fatalf("len(Balloons()) = %d, want 1", len(balloons))
	}
	b := balloons[0]
	if b.Pos.X != -64 || b.Pos.Y != 320 || b.Health != 100 {
		t.Errorf("spawned balloon = %+v, want (-64, 320) with 100 health", b)
	}
	if g.Frame() != 1 {
		t.Errorf("Frame() = %d, want 1", g.Frame())
	}
	if g.NextSpawn() != 60 {
		t.Errorf("NextSpawn() = %d, want 60", g.NextSpawn())
	}
}

func TestTick_SingleTowerScenario(t *testing.T) {
	tests := []struct {
		name  string
		tower image.Point
	}{
		{"in range at spawn", image.Pt(100, 100)},
		{"enters range later", image.Pt(400, 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, rec := newTestGame(1000)
			g.Path.Replace([]tilemap.Waypoint{{X: 1400, Y: 100}})
			g.startY = 100
			if !g.PlaceTower(tt.tower) {
				t.Fatal("PlaceTower() = false")
			}
			towerPos := component.Position{X: float64(tt.tower.X), Y: float64(tt.tower.Y)}

			const frames = 200
			centers := make([]component.Position, frames)
			health := make([]int, frames)
			for f := 0; f < frames; f++ {
				g.Tick(nil)
				b := g.Balloons()[0]
				centers[f] = b.Center
				health[f] = b.Health
			}

			shots := rec.frames(event.ShotFired)
			if len(shots) == 0 {
				t.Fatal("tower never fired")
			}
			acquired := shots[0]
			if d := towerPos.DistanceTo(centers[acquired]); d >= 250 {
				t.Errorf("acquired at distance %v", d)
			}
			if acquired > 0 {
				if d := towerPos.DistanceTo(centers[acquired-1]); d < 250 {
					t.Errorf("balloon was in range (%v) a frame before acquisition", d)
				}
			}

			if health[acquired+9] != 100 {
				t.Errorf("health = %d one frame before impact, want 100", health[acquired+9])
			}
			if health[acquired+10] != 90 {
				t.Errorf("health = %d at acquisition+10, want 90", health[acquired+10])
			}
			hits := rec.frames(event.BalloonHit)
			if len(hits) == 0 || hits[0] != acquired+10 {
				t.Errorf("hit frames = %v, want first at %d", hits, acquired+10)
			}
		})
	}
}

func TestRegenerateMap_RebindsBalloonsInFlight(t *testing.T) {
	g, _ := newTestGame(1)
	ticks(g, 120)

	oldVersion := g.Path.Version()
	g.Execute(RegenerateMap{})
	if g.Path.Version() == oldVersion {
		t.Fatal("regeneration did not bump the path version")
	}

	g.Tick(nil)

	walking := 0
	for _, id := range g.ECS.BalloonIDs() {
		b := g.ECS.Balloons[id]
		if b.TargetIndex < 0 {
			continue
		}
		walking++
		if b.Target == nil {
			t.Errorf("balloon %d with index %d has no target after reattachment", id, b.TargetIndex)
			continue
		}
		if b.Target.Version != g.Path.Version() || b.Target.Index != b.TargetIndex {
			t.Errorf("balloon %d ref = %+v, want version %d index %d", id, *b.Target, g.Path.Version(), b.TargetIndex)
		}
	}
	if walking == 0 {
		t.Fatal("no balloons in flight")
	}
}

func TestClearPath_BalloonsDriftKeepingIndex(t *testing.T) {
	g, rec := newTestGame(1000)
	ticks(g, 100)
	b := g.ECS.Balloons[g.ECS.BalloonIDs()[0]]
	index := b.TargetIndex
	if index < 1 {
		t.Fatalf("TargetIndex = %d, want the balloon past its first waypoint", index)
	}
	x, y := b.Pos.X, b.Pos.Y

	g.Tick([]Command{ClearPath{}})

	if len(g.Waypoints()) != 0 {
		t.Fatalf("len(Waypoints()) = %d after ClearPath", len(g.Waypoints()))
	}
	if b.Target != nil || b.TargetIndex != index {
		t.Errorf("Target = %v, TargetIndex = %d; want nil and %d", b.Target, b.TargetIndex, index)
	}
	if b.Pos.X != x+2 || b.Pos.Y != y {
		t.Errorf("Pos = %+v, want drift to (%v, %v)", b.Pos, x+2, y)
	}
	if len(rec.frames(event.PathCleared)) != 1 {
		t.Error("PathCleared not dispatched")
	}
}

func TestEndOfPath_DriftsRight(t *testing.T) {
	g, _ := newTestGame(1000)
	g.Path.Replace([]tilemap.Waypoint{{X: 0, Y: 320}})
	ticks(g, 40)

	b := g.ECS.Balloons[g.ECS.BalloonIDs()[0]]
	if b.TargetIndex != -1 || b.Target != nil {
		t.Fatalf("TargetIndex = %d, Target = %v; want -1 and nil", b.TargetIndex, b.Target)
	}

	g.Tick([]Command{AppendWaypoint{Pos: image.Pt(500, 500)}})

	x := b.Pos.X
	g.Tick(nil)
	if b.Pos.X != x+2 || b.Pos.Y != 320 {
		t.Errorf("Pos = %+v, want (%v, 320)", b.Pos, x+2)
	}
	if b.TargetIndex != -1 || b.Target != nil {
		t.Errorf("finished balloon reattached: index %d, target %v", b.TargetIndex, b.Target)
	}
}

func TestBalloonEscapesRightEdge(t *testing.T) {
	g, rec := newTestGame(1000)
	g.Path.Clear()
	// шар дрейфует от x=-64, пока левая грань не уйдёт за 1280+64
	ticks(g, 725)

	if g.BalloonCount() != 0 {
		t.Errorf("BalloonCount() = %d, want 0", g.BalloonCount())
	}
	if len(rec.frames(event.BalloonEscaped)) != 1 {
		t.Errorf("BalloonEscaped = %v, want one", rec.frames(event.BalloonEscaped))
	}
}

func TestTowerKillsBalloon(t *testing.T) {
	g, rec := newTestGame(1000)
	g.Path.Replace([]tilemap.Waypoint{{X: 1400, Y: 320}})
	g.PlaceTower(image.Pt(300, 250))
	g.PlaceTower(image.Pt(700, 250))

	// десять попаданий по 10; попадания по лопнувшему шару не считаются
	ticks(g, 400)

	if g.BalloonCount() != 0 {
		t.Fatalf("BalloonCount() = %d, want 0", g.BalloonCount())
	}
	if len(rec.frames(event.BalloonPopped)) != 1 {
		t.Errorf("BalloonPopped = %v, want one", rec.frames(event.BalloonPopped))
	}
	if got := len(rec.frames(event.BalloonHit)); got != 10 {
		t.Errorf("BalloonHit count = %d, want 10", got)
	}
	if tv := g.Towers()[0]; tv.Target != 0 || tv.Beam {
		t.Errorf("tower still targets %d after the pop", tv.Target)
	}
}

func TestQuit_StopsStepping(t *testing.T) {
	g, _ := newTestGame(1)
	ticks(g, 3)

	g.Tick([]Command{Quit{}, PlaceTower{Pos: image.Pt(500, 500)}})
	g.Tick(nil)

	if !g.Quitting() {
		t.Error("Quitting() = false")
	}
	if g.Frame() != 3 {
		t.Errorf("Frame() = %d after Quit, want 3", g.Frame())
	}
	if len(g.Towers()) != 0 {
		t.Error("command after Quit was applied")
	}
}

func TestPlaceTower_RejectsOverlap(t *testing.T) {
	g, rec := newTestGame(1)

	steps := []struct {
		pos  image.Point
		want bool
	}{
		{image.Pt(200, 200), true},
		{image.Pt(200, 200), false},
		{image.Pt(230, 250), false},
		{image.Pt(264, 200), true}, // касание граней не считается пересечением
		{image.Pt(200, 264), true},
	}
	for _, s := range steps {
		if got := g.PlaceTower(s.pos); got != s.want {
			t.Errorf("PlaceTower(%v) = %v, want %v", s.pos, got, s.want)
		}
	}
	if len(g.Towers()) != 3 {
		t.Errorf("len(Towers()) = %d, want 3", len(g.Towers()))
	}
	if len(rec.frames(event.TowerPlaced)) != 3 {
		t.Errorf("TowerPlaced = %d, want 3", len(rec.frames(event.TowerPlaced)))
	}
}

func TestPlaceTower_ReadyImmediately(t *testing.T) {
	g, _ := newTestGame(1)
	ticks(g, 5)
	g.PlaceTower(image.Pt(600, 600))

	if left := g.Towers()[0].CooldownLeft; left != 0 {
		t.Errorf("CooldownLeft = %d for a new tower, want 0", left)
	}
}

func TestRemoveTower(t *testing.T) {
	g, rec := newTestGame(1)
	g.PlaceTower(image.Pt(200, 200))
	g.PlaceTower(image.Pt(400, 200))

	if g.RemoveTower(image.Pt(700, 700)) {
		t.Error("RemoveTower on empty ground = true")
	}
	if !g.RemoveTower(image.Pt(420, 230)) {
		t.Fatal("RemoveTower near second tower = false")
	}

	towers := g.Towers()
	if len(towers) != 1 || towers[0].Pos.X != 200 {
		t.Errorf("towers after removal = %+v, want only the one at x=200", towers)
	}
	if len(rec.frames(event.TowerRemoved)) != 1 {
		t.Error("TowerRemoved not dispatched")
	}
}

func TestAppendWaypoint_KeepsRefs(t *testing.T) {
	g, _ := newTestGame(1000)
	g.Tick(nil)
	b := g.ECS.Balloons[g.ECS.BalloonIDs()[0]]
	ref := *b.Target
	n := len(g.Waypoints())

	g.Execute(AppendWaypoint{Pos: image.Pt(1000, 100)})

	wps := g.Waypoints()
	if len(wps) != n+1 || wps[n] != (tilemap.Waypoint{X: 1000, Y: 100}) {
		t.Fatalf("last waypoint = %+v, want (1000, 100)", wps[len(wps)-1])
	}
	if _, ok := g.Path.Resolve(ref); !ok {
		t.Error("append invalidated an existing ref")
	}
}

func TestToggleEditMode(t *testing.T) {
	g, rec := newTestGame(1)
	g.Execute(ToggleEditMode{})
	if g.Mode() != ModePaths {
		t.Errorf("Mode() = %v, want paths", g.Mode())
	}
	g.Execute(ToggleEditMode{})
	if g.Mode() != ModeTowers {
		t.Errorf("Mode() = %v, want towers", g.Mode())
	}
	if len(rec.frames(event.ModeChanged)) != 2 {
		t.Errorf("ModeChanged = %d, want 2", len(rec.frames(event.ModeChanged)))
	}
}

func TestPreview(t *testing.T) {
	g, _ := newTestGame(1)
	g.PlaceTower(image.Pt(200, 200))

	p := g.Preview(image.Pt(230, 230))
	if p.Valid || p.Mode != ModeTowers || p.Rect.Dx() != 64 || p.Range != 250 {
		t.Errorf("overlapping tower preview = %+v", p)
	}
	if p := g.Preview(image.Pt(500, 500)); !p.Valid {
		t.Errorf("free tower preview = %+v, want valid", p)
	}

	g.ToggleEditMode()
	p = g.Preview(image.Pt(200, 200))
	if p.Valid || p.Rect.Dx() != 8 || p.Range != 0 {
		t.Errorf("waypoint preview over tower = %+v", p)
	}
	if p := g.Preview(image.Pt(300, 300)); !p.Valid {
		t.Errorf("waypoint preview on grass = %+v, want valid", p)
	}
}

func TestTowers_BeamFollowsTarget(t *testing.T) {
	g, _ := newTestGame(1000)
	g.Path.Replace([]tilemap.Waypoint{{X: 1400, Y: 320}})
	g.PlaceTower(image.Pt(100, 300))
	g.Tick(nil)

	tv := g.Towers()[0]
	if !tv.Beam {
		t.Fatal("no beam right after acquisition")
	}
	b := g.Balloons()[0]
	if tv.BeamTo != b.Center || tv.Target != b.ID {
		t.Errorf("beam to %+v target %d, want %+v target %d", tv.BeamTo, tv.Target, b.Center, b.ID)
	}
	if tv.CooldownLeft != 29 {
		t.Errorf("CooldownLeft = %d, want 29", tv.CooldownLeft)
	}
	if tv.Range != 250 {
		t.Errorf("Range = %v, want 250", tv.Range)
	}
}

func TestEntities_TowersThenBalloons(t *testing.T) {
	g, _ := newTestGame(1000)
	g.PlaceTower(image.Pt(600, 100))
	g.Tick(nil)

	entities := g.Entities()
	if len(entities) != 2 {
		t.Fatalf("len(Entities()) = %d, want 2", len(entities))
	}
	if entities[0].Sprite() != component.SpriteTower || entities[1].Sprite() != component.SpriteBalloon {
		t.Errorf("sprites = %v, %v", entities[0].Sprite(), entities[1].Sprite())
	}
	if loc := entities[0].Location(); loc != (component.Position{X: 600, Y: 100}) {
		t.Errorf("tower Location() = %+v, want (600, 100)", loc)
	}
	if loc := entities[1].Location(); loc != (component.Position{X: -64, Y: 320 - 32}) {
		t.Errorf("balloon Location() = %+v, want its sprite centre", loc)
	}
	for _, e := range entities {
		if !e.IsAlive() {
			t.Errorf("%v entity reports dead", e.Sprite())
		}
	}
}
