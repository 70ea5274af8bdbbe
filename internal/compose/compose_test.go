package compose

import (
	"math"
	"testing"

	"github.com/san-kum/artgen/internal/art"
	"github.com/san-kum/artgen/internal/module"
	"github.com/san-kum/artgen/internal/render"
)

func TestDriftSways(t *testing.T) {
	d := NewDrift(art.V(400, 300), 3, 20)
	d.Init()
	d.Update(1)
	want := math.Sin(0.3) * driftSway
	if math.Abs(d.Offset()-want) > 1e-9 {
		t.Errorf("offset = %v, want %v", d.Offset(), want)
	}

	rec := render.NewRecorder(400, 300)
	d.Draw(rec)
	disc := rec.Ops[1]
	if disc.Kind != render.OpCircle || disc.Points[0].X != 200+want || disc.Radius != 50 {
		t.Errorf("disc = %+v", disc)
	}
	if got := rec.Count(render.OpCircle); got != 21 {
		t.Errorf("circles = %d, want 21", got)
	}
}

func TestDriftPauseAndSpeed(t *testing.T) {
	d := NewDrift(art.V(100, 100), 1, 5)
	d.Init()

	var in module.KeyState
	in.Press(module.KeyP)
	in.Press(module.KeyUp)
	d.HandleInput(&in)
	d.Update(1)
	if d.Offset() != 0 {
		t.Errorf("paused drift moved to %v", d.Offset())
	}
	if got := d.Params()["speed"]; math.Abs(got-0.4) > 1e-9 {
		t.Errorf("speed = %v", got)
	}
}

func TestCombinedViews(t *testing.T) {
	c := NewCombined(art.V(120, 90), 4, 10)
	c.Init()
	c.Update(0.5)

	counts := map[View]int{}
	for range int(viewCount) {
		rec := render.NewRecorder(120, 90)
		c.Draw(rec)
		if rec.Ops[0].Kind != render.OpClear {
			t.Fatalf("%v: first op %s", c.View(), rec.Ops[0].Kind)
		}
		counts[c.View()] = rec.Count(render.OpTriangle)

		var in module.KeyState
		in.Press(module.KeySpace)
		c.HandleInput(&in)
	}
	if c.View() != ViewCombined {
		t.Errorf("space should cycle back to combined, got %v", c.View())
	}
	if counts[ViewFractal] != 0 || counts[ViewMandala] == 0 || counts[ViewCombined] != counts[ViewMandala] {
		t.Errorf("petal counts per view: %v", counts)
	}
}

func TestCombinedSpeedClamp(t *testing.T) {
	c := NewCombined(art.V(10, 10), 1, 0)
	c.Init()
	var in module.KeyState
	for range 40 {
		in.Press(module.KeyUp)
		c.HandleInput(&in)
	}
	if c.Params()["speed"] != maxSpeed {
		t.Errorf("speed = %v", c.Params()["speed"])
	}
}
