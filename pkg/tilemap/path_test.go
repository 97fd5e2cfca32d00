package tilemap

import "testing"

func TestPath_AppendKeepsRefs(t *testing.T) {
	p := NewPath([]Waypoint{{X: 32, Y: 32}})
	ref, ok := p.RefAt(0)
	if !ok {
		t.Fatal("RefAt(0) failed")
	}

	p.Append(Waypoint{X: 96, Y: 32})

	wp, ok := p.Resolve(ref)
	if !ok || wp.X != 32 {
		t.Errorf("Resolve after Append = %+v, %v; want first waypoint", wp, ok)
	}
	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2", p.Len())
	}
}

func TestPath_ReplaceInvalidatesRefs(t *testing.T) {
	p := NewPath([]Waypoint{{X: 32, Y: 32}, {X: 96, Y: 32}})
	ref, _ := p.RefAt(1)

	p.Replace([]Waypoint{{X: 10, Y: 10}, {X: 20, Y: 20}})

	if _, ok := p.Resolve(ref); ok {
		t.Error("stale ref resolved after Replace")
	}
	fresh, ok := p.RefAt(1)
	if !ok {
		t.Fatal("RefAt(1) failed after Replace")
	}
	if wp, _ := p.Resolve(fresh); wp.X != 20 {
		t.Errorf("fresh ref resolved to %+v, want X=20", wp)
	}
}

func TestPath_ClearInvalidatesRefs(t *testing.T) {
	p := NewPath([]Waypoint{{X: 32, Y: 32}})
	ref, _ := p.RefAt(0)
	v := p.Version()

	p.Clear()

	if p.Len() != 0 {
		t.Errorf("Len() = %d after Clear", p.Len())
	}
	if p.Version() == v {
		t.Error("Version did not change on Clear")
	}
	if _, ok := p.Resolve(ref); ok {
		t.Error("ref resolved after Clear")
	}
}

func TestPath_OutOfRange(t *testing.T) {
	p := NewPath(nil)
	if _, ok := p.At(0); ok {
		t.Error("At(0) on empty path returned ok")
	}
	if _, ok := p.RefAt(-1); ok {
		t.Error("RefAt(-1) returned ok")
	}
}

func TestPath_PointsIsACopy(t *testing.T) {
	p := NewPath([]Waypoint{{X: 1, Y: 1}})
	pts := p.Points()
	pts[0].X = 99
	if wp, _ := p.At(0); wp.X != 1 {
		t.Errorf("mutating Points() changed the path: %+v", wp)
	}
}

func TestWaypoint_Bounds(t *testing.T) {
	r := Waypoint{X: 100, Y: 50}.Bounds(8)
	if r.Min.X != 96 || r.Min.Y != 46 || r.Dx() != 8 || r.Dy() != 8 {
		t.Errorf("Bounds = %v, want 8x8 centred on (100,50)", r)
	}
}

func TestGrid_CellAt(t *testing.T) {
	g := NewGrid(11, 20, 64)
	row, col, ok := g.CellAt(130, 70)
	if !ok || row != 1 || col != 2 {
		t.Errorf("CellAt(130,70) = %d,%d,%v; want 1,2,true", row, col, ok)
	}
	if _, _, ok := g.CellAt(-1, 10); ok {
		t.Error("negative x reported inside grid")
	}
	if _, _, ok := g.CellAt(10, 720); ok {
		t.Error("y=720 reported inside an 11-row grid")
	}
}
