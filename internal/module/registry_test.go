package module_test

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/artgen/internal/module"
	"github.com/san-kum/artgen/internal/render"
)

// named has no capabilities at all.
type named string

func (n named) Name() string { return string(n) }

// tracked logs every lifecycle call into a shared journal.
type tracked struct {
	name    string
	journal *[]string
}

func (t *tracked) Name() string { return t.name }
func (t *tracked) Init()        { *t.journal = append(*t.journal, "init "+t.name) }
func (t *tracked) Cleanup()     { *t.journal = append(*t.journal, "cleanup "+t.name) }
func (t *tracked) Update(dt float64) {
	*t.journal = append(*t.journal, fmt.Sprintf("update %s %.2f", t.name, dt))
}
func (t *tracked) Draw(render.Surface)         { *t.journal = append(*t.journal, "draw "+t.name) }
func (t *tracked) HandleInput(in module.Input) { *t.journal = append(*t.journal, "input "+t.name) }

var _ = Describe("Registry", func() {
	var r *module.Registry

	BeforeEach(func() {
		r = module.NewRegistry()
	})

	Context("when empty", func() {
		It("reports no current module", func() {
			m, ok := r.Current()
			Expect(ok).To(BeFalse())
			Expect(m).To(BeNil())
		})

		It("ignores advance", func() {
			r.Advance(1)
			r.Advance(-1)
			Expect(r.Index()).To(Equal(0))
			Expect(r.Count()).To(Equal(0))
		})

		It("returns Unknown for any index", func() {
			Expect(r.NameAt(0)).To(Equal(module.UnknownName))
		})
	})

	Context("with three modules", func() {
		BeforeEach(func() {
			for _, n := range []string{"a", "b", "c"} {
				Expect(r.Register(named(n))).To(BeTrue())
			}
		})

		It("keeps insertion order", func() {
			Expect(r.Names()).To(Equal([]string{"a", "b", "c"}))
			Expect(r.NameAt(2)).To(Equal("c"))
			Expect(r.NameAt(3)).To(Equal(module.UnknownName))
			Expect(r.NameAt(-1)).To(Equal(module.UnknownName))
		})

		It("returns to the start after count advances", func() {
			for range r.Count() {
				r.Advance(1)
			}
			Expect(r.Index()).To(Equal(0))
		})

		It("treats previous as the inverse of next", func() {
			for start := range r.Count() {
				r.Select(start)
				r.Advance(1)
				r.Advance(-1)
				Expect(r.Index()).To(Equal(start))
			}
		})

		It("wraps backwards from the first module", func() {
			r.Advance(-1)
			m, ok := r.Current()
			Expect(ok).To(BeTrue())
			Expect(m.Name()).To(Equal("c"))
		})

		It("normalises large steps to their sign", func() {
			r.Advance(5)
			Expect(r.Index()).To(Equal(1))
		})

		It("finds modules by name", func() {
			Expect(r.Find("b")).To(Equal(1))
			Expect(r.Find("zzz")).To(Equal(-1))
		})
	})

	It("silently ignores registrations past capacity", func() {
		for i := range module.Capacity + 5 {
			r.Register(named(fmt.Sprintf("m%d", i)))
		}
		Expect(r.Count()).To(Equal(module.Capacity))
		for i := range module.Capacity {
			Expect(r.NameAt(i)).To(Equal(fmt.Sprintf("m%d", i)))
		}
		Expect(r.Register(named("late"))).To(BeFalse())
	})

	It("rejects nil modules", func() {
		Expect(r.Register(nil)).To(BeFalse())
		Expect(r.Count()).To(Equal(0))
	})
})

var _ = Describe("Switch", func() {
	var (
		journal []string
		r       *module.Registry
	)

	BeforeEach(func() {
		journal = nil
		r = module.NewRegistry(
			&tracked{name: "a", journal: &journal},
			named("bare"),
			&tracked{name: "c", journal: &journal},
		)
	})

	It("sequences cleanup, advance and init", func() {
		module.Switch(r, -1)
		Expect(journal).To(Equal([]string{"cleanup a", "init c"}))
		Expect(r.Index()).To(Equal(2))
	})

	It("tolerates modules without capabilities", func() {
		module.Switch(r, 1)
		module.Switch(r, 1)
		Expect(journal).To(Equal([]string{"cleanup a", "init c"}))
	})

	It("does nothing on an empty registry", func() {
		module.Switch(module.NewRegistry(), 1)
		Expect(journal).To(BeEmpty())
	})

	It("activates by index", func() {
		Expect(module.Activate(r, 2)).To(BeTrue())
		Expect(module.Activate(r, 9)).To(BeFalse())
		Expect(journal).To(Equal([]string{"cleanup a", "init c"}))
	})
})

var _ = Describe("dispatch helpers", func() {
	It("are no-ops for bare modules", func() {
		m := named("bare")
		Expect(func() {
			module.Init(m)
			module.Update(m, 0.1)
			module.Draw(m, render.NewRecorder(1, 1))
			module.HandleInput(m, module.NoInput)
			module.Resize(m, 10, 10)
			module.Cleanup(m)
		}).NotTo(Panic())
	})

	It("forward to implemented capabilities", func() {
		var journal []string
		m := &tracked{name: "t", journal: &journal}
		module.Update(m, 0.5)
		module.Draw(m, render.NewRecorder(1, 1))
		module.HandleInput(m, module.NoInput)
		Expect(journal).To(Equal([]string{"update t 0.50", "draw t", "input t"}))
	})
})

var _ = Describe("KeyState", func() {
	It("tracks press edges separately from held keys", func() {
		var ks module.KeyState
		ks.Press(module.KeyTab)
		ks.Hold(module.KeyShift)
		Expect(ks.Pressed(module.KeyTab)).To(BeTrue())
		Expect(ks.Down(module.KeyShift)).To(BeTrue())
		Expect(ks.Pressed(module.KeyShift)).To(BeFalse())

		ks.EndFrame(false)
		Expect(ks.Pressed(module.KeyTab)).To(BeFalse())
		Expect(ks.Down(module.KeyTab)).To(BeTrue())

		ks.EndFrame(true)
		Expect(ks.Down(module.KeyTab)).To(BeFalse())
	})

	It("round-trips key names", func() {
		for _, k := range module.Keys() {
			got, ok := module.ParseKey(k.String())
			Expect(ok).To(BeTrue())
			Expect(got).To(Equal(k))
		}
		_, ok := module.ParseKey("nope")
		Expect(ok).To(BeFalse())
		Expect(module.Key(-3).String()).To(Equal("unknown"))
	})
})
