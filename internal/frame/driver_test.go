package frame_test

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/artgen/internal/art"
	"github.com/san-kum/artgen/internal/frame"
	"github.com/san-kum/artgen/internal/module"
	"github.com/san-kum/artgen/internal/render"
)

type probe struct {
	name    string
	journal *[]string
	speed   float64
	ticks   int
}

func (p *probe) Name() string { return p.name }
func (p *probe) Init() {
	p.speed = 1
	*p.journal = append(*p.journal, "init "+p.name)
}
func (p *probe) Cleanup() { *p.journal = append(*p.journal, "cleanup "+p.name) }
func (p *probe) Update(dt float64) {
	p.ticks++
	*p.journal = append(*p.journal, fmt.Sprintf("update %s", p.name))
}
func (p *probe) Draw(s render.Surface) {
	s.Clear(art.Black)
	*p.journal = append(*p.journal, "draw "+p.name)
}
func (p *probe) HandleInput(module.Input) { *p.journal = append(*p.journal, "input "+p.name) }

func (p *probe) params() module.Params {
	return module.Params{
		"speed": {Min: 0, Max: 5, Get: func() float64 { return p.speed }, Set: func(v float64) { p.speed = v }},
	}
}
func (p *probe) Params() map[string]float64 { return p.params().Values() }
func (p *probe) SetParam(name string, v float64) error {
	return p.params().Apply(p.name, name, v)
}

var _ = Describe("Driver", func() {
	var (
		journal []string
		a, b, c *probe
		d       *frame.Driver
		surf    *render.Recorder
		keys    *module.KeyState
	)

	BeforeEach(func() {
		journal = nil
		a = &probe{name: "A", journal: &journal}
		b = &probe{name: "B", journal: &journal}
		c = &probe{name: "C", journal: &journal}
		d = frame.NewDriver(module.NewRegistry(a, b, c), nil)
		surf = render.NewRecorder(800, 600)
		keys = &module.KeyState{}
	})

	It("initializes the first module before the first frame", func() {
		d.Frame(0.016, keys, surf)
		Expect(journal).To(Equal([]string{"init A", "input A", "update A", "draw A"}))
	})

	It("advances on tab and sequences cleanup before init", func() {
		d.Start()
		journal = nil
		keys.Press(module.KeyTab)
		d.Frame(0.016, keys, surf)
		Expect(journal).To(Equal([]string{"cleanup A", "init B", "input B", "update B", "draw B"}))
	})

	It("goes back on shift+tab, wrapping to the last module", func() {
		d.Start()
		keys.Hold(module.KeyShift)
		keys.Press(module.KeyTab)
		d.Frame(0.016, keys, surf)
		Expect(d.Registry.Index()).To(Equal(2))
	})

	It("applies configured params after every init", func() {
		d.Params = map[string]map[string]float64{"B": {"speed": 9}}
		d.Start()
		d.Switch(1)
		Expect(b.speed).To(Equal(5.0))
		d.Switch(1)
		d.Switch(1)
		d.Switch(1)
		Expect(b.speed).To(Equal(5.0))
		Expect(a.speed).To(Equal(1.0))
	})

	It("selects by index", func() {
		d.Start()
		Expect(d.Select(2)).To(BeTrue())
		Expect(d.Select(7)).To(BeFalse())
		Expect(d.Registry.Index()).To(Equal(2))
	})

	It("draws the overlay on text surfaces", func() {
		d.FPS = 60
		d.Frame(0.016, keys, surf)
		texts := surf.Texts()
		Expect(texts).To(ContainElement("Module: A"))
		Expect(texts).To(ContainElement("Available Modules:"))
		Expect(texts).To(ContainElements("1. A", "2. B", "3. C"))
		Expect(texts).To(ContainElement("FPS: 60"))
	})

	It("skips the overlay when disabled", func() {
		d.Overlay = false
		d.Frame(0.016, keys, surf)
		Expect(surf.Texts()).To(BeEmpty())
	})

	It("cleans up on stop exactly once", func() {
		d.Start()
		d.Stop()
		d.Stop()
		Expect(journal).To(Equal([]string{"init A", "cleanup A"}))
	})

	It("clears the surface when the registry is empty", func() {
		empty := frame.NewDriver(module.NewRegistry(), nil)
		empty.Frame(0.016, keys, surf)
		Expect(surf.Count(render.OpClear)).To(Equal(1))
		Expect(surf.Texts()).To(ContainElement("Module: None"))
	})
})
