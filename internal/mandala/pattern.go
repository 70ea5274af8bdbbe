package mandala

import (
	"math"

	"github.com/san-kum/artgen/internal/art"
	"github.com/san-kum/artgen/internal/render"
)

// Element is one motif orbiting the centre.
type Element struct {
	Radius    float64
	Angle     float64 // radians
	Speed     float64 // radians per update
	Size      float64
	Color     art.Color
	Shape     Shape
	Phase     float64
	Amplitude float64
}

type Layer struct {
	Elements   []Element
	Rotation   float64
	Scale      float64
	PulsePhase float64
}

// Pattern is a layered mandala and its animation clocks.
type Pattern struct {
	Layers    []Layer
	Time      float64
	MorphTime float64
}

// Options bound the random generation. Zero values fall back to defaults.
type Options struct {
	MinLayers, MaxLayers     int
	MinElements, MaxElements int
	// MirrorChance and LinkChance are probabilities per element per frame.
	MirrorChance float64
	LinkChance   float64
}

func DefaultOptions() Options {
	return Options{
		MinLayers: 3, MaxLayers: 12,
		MinElements: 6, MaxElements: 24,
		MirrorChance: 0.3, LinkChance: 0.4,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.MinLayers <= 0 {
		o.MinLayers = d.MinLayers
	}
	if o.MaxLayers < o.MinLayers {
		o.MaxLayers = max(d.MaxLayers, o.MinLayers)
	}
	if o.MinElements <= 0 {
		o.MinElements = d.MinElements
	}
	if o.MaxElements < o.MinElements {
		o.MaxElements = max(d.MaxElements, o.MinElements)
	}
	return o
}

// Generate builds a random pattern. The same rng state yields the same pattern.
func Generate(rng art.Rand, opts Options) *Pattern {
	opts = opts.withDefaults()
	n := art.Between(rng, opts.MinLayers, opts.MaxLayers)
	p := &Pattern{Layers: make([]Layer, n)}

	for l := range p.Layers {
		count := art.Between(rng, opts.MinElements, opts.MaxElements)
		layer := Layer{
			Elements:   make([]Element, count),
			Rotation:   float64(art.Between(rng, 0, 360)) * art.Deg2Rad,
			Scale:      0.5 + float64(art.Between(rng, 0, 100))/100,
			PulsePhase: float64(art.Between(rng, 0, 360)) * art.Deg2Rad,
		}
		base := 50 + float64(l*40) + float64(art.Between(rng, -20, 20))
		step := 360 / float64(count)

		for e := range layer.Elements {
			layer.Elements[e] = Element{
				Radius:    base + float64(art.Between(rng, -30, 30)),
				Angle:     (step*float64(e) + float64(art.Between(rng, -10, 10))) * art.Deg2Rad,
				Speed:     float64(art.Between(rng, -100, 100)) / 100 * 0.02,
				Size:      10 + float64(art.Between(rng, 5, 30)),
				Color:     RandomColor(rng),
				Shape:     Shape(art.Between(rng, 0, int(ShapeCount)-1)),
				Phase:     float64(art.Between(rng, 0, 360)) * art.Deg2Rad,
				Amplitude: float64(art.Between(rng, 5, 20)),
			}
		}
		p.Layers[l] = layer
	}
	return p
}

// Update advances the clocks. Even layers turn clockwise, odd ones counter.
func (p *Pattern) Update(dt float64) {
	p.Time += dt
	p.MorphTime += dt * 0.5
	for l := range p.Layers {
		layer := &p.Layers[l]
		dir := 1.0
		if l%2 == 1 {
			dir = -1
		}
		layer.Rotation += dt * 0.1 * dir
		for e := range layer.Elements {
			el := &layer.Elements[e]
			el.Angle += el.Speed
			el.Phase += dt * 2
		}
	}
}

// ElementCount is the total number of elements across layers.
func (p *Pattern) ElementCount() int {
	n := 0
	for _, l := range p.Layers {
		n += len(l.Elements)
	}
	return n
}

// Position returns where element e of layer l sits relative to center.
func (p *Pattern) Position(center art.Vec2, l, e int) art.Vec2 {
	layer := &p.Layers[l]
	el := &layer.Elements[e]
	return center.Add(art.FastPolar(el.Angle+layer.Rotation, p.reach(layer, el)))
}

func (p *Pattern) pulse(layer *Layer) float64 {
	return 1 + 0.1*math.Sin(p.Time*2+layer.PulsePhase)
}

func (p *Pattern) reach(layer *Layer, el *Element) float64 {
	return (el.Radius + el.Amplitude*math.Sin(el.Phase)) * layer.Scale * p.pulse(layer)
}

// Draw renders every element around center. rng decides per frame which
// elements get a mirrored twin and which are linked to their predecessor.
func (p *Pattern) Draw(s render.Surface, center art.Vec2, rng art.Rand, opts Options) {
	for l := range p.Layers {
		layer := &p.Layers[l]
		pulse := p.pulse(layer)

		for e := range layer.Elements {
			el := &layer.Elements[e]
			angle := el.Angle + layer.Rotation
			reach := p.reach(layer, el)
			pos := center.Add(art.FastPolar(angle, reach))

			copies := 1
			if art.Chance(rng, opts.MirrorChance) {
				copies = 2
			}
			faded := art.Fade(el.Color, 0.7+0.3*math.Sin(el.Phase))
			for k := range copies {
				at := center.Add(art.FastPolar(angle+float64(k)*math.Pi, reach))
				DrawShape(s, at, el.Size*pulse, el.Shape, faded, angle, p.Time)
			}

			if e > 0 && art.Chance(rng, opts.LinkChance) {
				s.Line(pos, p.Position(center, l, e-1), 1, art.Fade(el.Color, 0.3))
			}
		}
	}
	p.drawFocus(s, center)
}

func (p *Pattern) drawFocus(s render.Surface, center art.Vec2) {
	size := 20 + 5*math.Sin(p.Time*2)
	s.Circle(center, size, art.Color{R: 255, G: 255, B: 255, A: 150})
	s.Circle(center, size*0.5, art.Color{R: 139, G: 69, B: 19, A: 200})
	s.CircleLines(center, size*1.2, art.Color{R: 139, G: 69, B: 19, A: 100})
}
