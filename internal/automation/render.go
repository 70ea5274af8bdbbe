package automation

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"

	"github.com/san-kum/artgen/internal/art"
	"github.com/san-kum/artgen/internal/catalog"
	"github.com/san-kum/artgen/internal/frame"
	"github.com/san-kum/artgen/internal/logging"
	"github.com/san-kum/artgen/internal/metrics"
	"github.com/san-kum/artgen/internal/module"
	"github.com/san-kum/artgen/internal/render/raster"
	"github.com/san-kum/artgen/internal/render/svg"
)

const (
	FormatPNG = "png"
	FormatSVG = "svg"

	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultFrames = 120
	DefaultDt     = 1.0 / 60
)

// Job describes one headless render: build, run for Frames steps, draw once.
type Job struct {
	Module    string
	Seed      int64
	Width     int
	Height    int
	Particles int
	Frames    int
	Dt        float64
	Params    map[string]float64
	Format    string
}

func (j *Job) defaults() {
	if j.Width == 0 {
		j.Width = DefaultWidth
	}
	if j.Height == 0 {
		j.Height = DefaultHeight
	}
	if j.Frames == 0 {
		j.Frames = DefaultFrames
	}
	if j.Dt == 0 {
		j.Dt = DefaultDt
	}
	if j.Format == "" {
		j.Format = FormatPNG
	}
}

// FormatFor picks the output format from a file extension, PNG by default.
func FormatFor(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return FormatSVG
	}
	return FormatPNG
}

// Rendered is the outcome of a Job. Exactly one of Image and SVG is set.
type Rendered struct {
	Module string
	Seed   int64
	Params map[string]float64
	Result *frame.Result
	Image  image.Image
	SVG    string
}

// Render runs job headless and draws the final frame.
func Render(ctx context.Context, cat *catalog.Catalog, job Job, log *slog.Logger) (*Rendered, error) {
	log = logging.OrNop(log)
	job.defaults()
	if job.Width <= 0 || job.Height <= 0 {
		return nil, fmt.Errorf("render %dx%d: %w", job.Width, job.Height, art.ErrInvalidSize)
	}
	if job.Format != FormatPNG && job.Format != FormatSVG {
		return nil, fmt.Errorf("unknown format %q", job.Format)
	}

	env := catalog.Env{
		Bounds:    art.V(float64(job.Width), float64(job.Height)),
		Seed:      job.Seed,
		Particles: job.Particles,
	}
	if env.Particles == 0 {
		env.Particles = catalog.DefaultEnv().Particles
	}
	m, err := cat.Build(job.Module, env)
	if err != nil {
		return nil, err
	}

	runner := frame.NewRunner(log)
	for _, mt := range metrics.Standard() {
		runner.AddMetric(mt)
	}
	res, err := runner.Run(ctx, m, frame.RunConfig{Dt: job.Dt, Frames: job.Frames, Params: job.Params})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", m.Name(), err)
	}

	out := &Rendered{Module: m.Name(), Result: res}
	if sd, ok := m.(module.Seeder); ok {
		out.Seed = sd.Seed()
	}
	if c, ok := m.(module.Configurable); ok {
		out.Params = c.Params()
	}

	switch job.Format {
	case FormatSVG:
		s := svg.New(float64(job.Width), float64(job.Height))
		module.Draw(m, s)
		out.SVG = s.String()
	default:
		s, err := raster.New(job.Width, job.Height)
		if err != nil {
			return nil, err
		}
		defer s.Close()
		module.Draw(m, s)
		if err := s.Err(); err != nil {
			return nil, fmt.Errorf("%s: draw: %w", m.Name(), err)
		}
		out.Image = copyImage(s.Image())
	}
	module.Cleanup(m)

	log.Info("rendered", "module", out.Module, "seed", out.Seed, "frames", res.Frames, "format", job.Format)
	return out, nil
}

// copyImage detaches the pixels from the drawing context before it closes.
func copyImage(src image.Image) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	draw.Copy(dst, dst.Bounds().Min, src, src.Bounds(), draw.Src, nil)
	return dst
}

// Write encodes the rendering as PNG or SVG.
func (r *Rendered) Write(w io.Writer) error {
	if r.Image == nil {
		_, err := io.WriteString(w, r.SVG)
		return err
	}
	return png.Encode(w, r.Image)
}

// WriteFile writes the rendering to path, creating parent directories.
func (r *Rendered) WriteFile(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := r.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
