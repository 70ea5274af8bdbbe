package art

// AnimationSettings is the speed/time/pause state shared by a module's update step.
type AnimationSettings struct {
	Speed      float64
	Time       float64
	Paused     bool
	Smoothness float64
}

func NewAnimation(speed float64) AnimationSettings {
	return AnimationSettings{Speed: speed, Smoothness: 1}
}

// Advance moves Time forward by dt*Speed unless paused and returns the scaled step.
func (a *AnimationSettings) Advance(dt float64) float64 {
	if a.Paused {
		return 0
	}
	step := dt * a.Speed
	a.Time += step
	return step
}

func (a *AnimationSettings) TogglePause() { a.Paused = !a.Paused }

// AdjustSpeed adds delta to Speed and clamps the result to [lo, hi].
func (a *AnimationSettings) AdjustSpeed(delta, lo, hi float64) {
	a.Speed = Clamp(a.Speed+delta, lo, hi)
}
