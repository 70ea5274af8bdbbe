package metrics

import (
	"time"

	"github.com/san-kum/artgen/internal/module"
)

// FrameTime reports the mean wall time between observed frames in
// milliseconds.
type FrameTime struct {
	name    string
	now     func() time.Time
	last    time.Time
	total   time.Duration
	samples int
}

func NewFrameTime() *FrameTime {
	return &FrameTime{name: "frame_ms", now: time.Now}
}

func (f *FrameTime) Name() string { return f.name }

func (f *FrameTime) Observe(m module.Module, frame int, t float64) {
	now := f.now()
	if !f.last.IsZero() {
		f.total += now.Sub(f.last)
		f.samples++
	}
	f.last = now
}

func (f *FrameTime) Value() float64 {
	if f.samples == 0 {
		return 0
	}
	return float64(f.total.Microseconds()) / float64(f.samples) / 1000
}

func (f *FrameTime) Reset() {
	f.last = time.Time{}
	f.total = 0
	f.samples = 0
}
