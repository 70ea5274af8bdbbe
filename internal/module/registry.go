package module

// Capacity is the maximum number of modules a Registry holds.
const Capacity = 10

// UnknownName is returned by NameAt for out-of-range indices.
const UnknownName = "Unknown"

// Registry is an ordered, bounded list of modules with a cyclic cursor.
// It never calls lifecycle methods; see Switch.
type Registry struct {
	modules []Module
	current int
}

func NewRegistry(mods ...Module) *Registry {
	r := &Registry{modules: make([]Module, 0, Capacity)}
	for _, m := range mods {
		r.Register(m)
	}
	return r
}

// Register appends m. It is a no-op returning false once the registry is full
// or when m is nil.
func (r *Registry) Register(m Module) bool {
	if m == nil || len(r.modules) >= Capacity {
		return false
	}
	r.modules = append(r.modules, m)
	return true
}

// Current returns the module under the cursor. ok is false when empty.
func (r *Registry) Current() (Module, bool) {
	if len(r.modules) == 0 {
		return nil, false
	}
	return r.modules[r.current], true
}

func (r *Registry) Index() int { return r.current }

// Advance moves the cursor by the sign of step, wrapping around.
func (r *Registry) Advance(step int) {
	n := len(r.modules)
	if n == 0 || step == 0 {
		return
	}
	if step > 0 {
		r.current = (r.current + 1) % n
	} else {
		r.current = (r.current - 1 + n) % n
	}
}

// Select moves the cursor to index i. Out-of-range indices are ignored.
func (r *Registry) Select(i int) bool {
	if i < 0 || i >= len(r.modules) {
		return false
	}
	r.current = i
	return true
}

func (r *Registry) Count() int { return len(r.modules) }

// At returns the module at index i without moving the cursor.
func (r *Registry) At(i int) (Module, bool) {
	if i < 0 || i >= len(r.modules) {
		return nil, false
	}
	return r.modules[i], true
}

func (r *Registry) NameAt(i int) string {
	if i < 0 || i >= len(r.modules) {
		return UnknownName
	}
	return r.modules[i].Name()
}

// Find returns the index of the first module named name, or -1.
func (r *Registry) Find(name string) int {
	for i, m := range r.modules {
		if m.Name() == name {
			return i
		}
	}
	return -1
}

// Names lists module names in display order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.modules))
	for i, m := range r.modules {
		out[i] = m.Name()
	}
	return out
}

// Switch cleans up the current module, advances the cursor by dir and
// initializes the new current module. Empty registries are left untouched.
func Switch(r *Registry, dir int) {
	old, ok := r.Current()
	if !ok || dir == 0 {
		return
	}
	Cleanup(old)
	r.Advance(dir)
	next, _ := r.Current()
	Init(next)
}

// Activate is Switch to an absolute index.
func Activate(r *Registry, i int) bool {
	old, ok := r.Current()
	if !ok || i < 0 || i >= r.Count() {
		return false
	}
	Cleanup(old)
	r.Select(i)
	next, _ := r.Current()
	Init(next)
	return true
}
