package fractal

import (
	"math"

	"github.com/san-kum/artgen/internal/art"
)

type Status int

const (
	StatusUninitialized Status = iota
	StatusInitialized
	StatusRunning
	StatusPaused
)

func (s Status) String() string {
	switch s {
	case StatusInitialized:
		return "initialized"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	}
	return "uninitialized"
}

// Style selects how a State seeds and animates itself.
type Style int

const (
	// StyleAnimated breathes the zoom around a user zoom factor and rotates
	// a hue palette.
	StyleAnimated Style = iota
	// StyleGallery picks a random kind and color scheme and slowly zooms in.
	StyleGallery
)

const (
	MinSpeed = 0.05
	MaxSpeed = 1.0

	zoomBreath     = 0.3
	hueRate        = 20.0 // palette rotation in degrees per unit of animation time
	galleryZoom    = 1.5
	galleryZoomIn  = 0.05
	gallerySpan    = 4.0
	galleryMaxIter = 256
	carpetSize     = 243
)

// State is the animated fractal. It is driven through Init, Update,
// TogglePause, Reset and Close.
type State struct {
	Style      Style
	View       View
	MaxIter    int
	Anim       art.AnimationSettings
	ZoomFactor float64
	Hue        float64
	Palette    Palette
	Kind       Kind
	Scheme     Scheme
	CRe, CIm   float64
	Detail     int

	status Status
	rng    art.Rand
}

func NewState(style Style, w, h float64, rng art.Rand) *State {
	return &State{Style: style, View: NewView(w, h), rng: rng, Detail: 3}
}

func (s *State) Status() Status { return s.status }

// Init seeds random parameters and builds the palette.
func (s *State) Init() {
	w, h := s.View.Width, s.View.Height
	s.Anim = art.AnimationSettings{Smoothness: 1}
	s.ZoomFactor = 1

	switch s.Style {
	case StyleGallery:
		s.View = View{Width: w, Height: h, Zoom: galleryZoom, OffsetX: -0.5, Span: gallerySpan}
		s.MaxIter = galleryMaxIter
		s.Anim.Speed = 1
		s.Scheme = Scheme(s.rng.Intn(int(schemeCount)))
		s.Kind = GalleryKinds[s.rng.Intn(len(GalleryKinds))]
		s.CRe = -0.8 + float64(s.rng.Intn(100))*0.003
		s.CIm = 0.156 + float64(s.rng.Intn(100))*0.003
		s.Palette = SchemePalette(s.Scheme)
	default:
		s.View = NewView(w, h)
		s.MaxIter = art.Between(s.rng, 100, 255)
		s.Anim.Speed = 0.1 + float64(s.rng.Intn(30))*0.01
		s.Hue = float64(s.rng.Intn(360))
		s.Kind = KindMandelbrotFolded
		s.CRe, s.CIm = -0.7, 0.27
		s.Palette = HuePalette(s.Hue)
	}
	s.status = StatusInitialized
}

// Update advances animation time while running. The first update after Init
// starts the state running.
func (s *State) Update(dt float64) {
	switch s.status {
	case StatusInitialized:
		s.status = StatusRunning
	case StatusRunning:
	default:
		return
	}
	s.Anim.Advance(dt)
	t := s.Anim.Time

	if s.Style == StyleGallery {
		s.View.ZoomBy(1 + dt*galleryZoomIn)
		if s.Kind == KindJulia {
			s.CRe = -0.7 + math.Sin(t*0.1)*0.1
			s.CIm = 0.27015 + math.Cos(t*0.1)*0.1
		}
		return
	}

	s.View.Zoom = art.Clamp(s.ZoomFactor*(1+math.Sin(t)*zoomBreath*s.Anim.Smoothness), MinZoom, MaxZoom)
	s.CRe = -0.7 + math.Sin(t*0.5)*0.1
	s.CIm = 0.27 + math.Cos(t*0.3)*0.1
	s.Palette = HuePalette(s.Hue + t*hueRate)
}

// TogglePause flips between running and paused. It has no effect before Init.
func (s *State) TogglePause() {
	switch s.status {
	case StatusRunning, StatusInitialized:
		s.status = StatusPaused
		s.Anim.Paused = true
	case StatusPaused:
		s.status = StatusRunning
		s.Anim.Paused = false
	}
}

// Reset re-runs Init with fresh randomness from the same source.
func (s *State) Reset() { s.Init() }

func (s *State) Close() { s.status = StatusUninitialized }

func (s *State) AdjustSpeed(delta float64) {
	s.Anim.AdjustSpeed(delta, MinSpeed, MaxSpeed)
}

// SetScheme switches the gallery color scheme and rebuilds the palette.
func (s *State) SetScheme(sc Scheme) {
	s.Scheme = ((sc % schemeCount) + schemeCount) % schemeCount
	s.Palette = SchemePalette(s.Scheme)
}

// Params returns the engine parameters for the current frame. julia forces
// the Julia engine regardless of Kind.
func (s *State) Params(julia bool) Params {
	k := s.Kind
	if julia {
		k = KindJulia
	}
	return Params{Kind: k, MaxIter: s.MaxIter, CRe: s.CRe, CIm: s.CIm, CarpetSize: carpetSize}
}

// Resize keeps the view centred on the same complex point.
func (s *State) Resize(w, h float64) {
	s.View.Width, s.View.Height = w, h
}
