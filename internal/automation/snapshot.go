package automation

import (
	"fmt"

	"github.com/san-kum/artgen/internal/module"
	"github.com/san-kum/artgen/internal/render/raster"
	"github.com/san-kum/artgen/internal/storage"
)

// Snapshot redraws m in its current state onto a w×h raster and stores it.
// m is neither updated nor reinitialized.
func Snapshot(m module.Module, w, h int, store *storage.Store) (string, error) {
	s, err := raster.New(w, h)
	if err != nil {
		return "", err
	}
	defer s.Close()

	module.Draw(m, s)
	if err := s.Err(); err != nil {
		return "", fmt.Errorf("%s: draw: %w", m.Name(), err)
	}

	meta := storage.Metadata{Module: m.Name()}
	if sd, ok := m.(module.Seeder); ok {
		meta.Seed = sd.Seed()
	}
	if c, ok := m.(module.Configurable); ok {
		meta.Params = c.Params()
	}
	return store.Save(meta, copyImage(s.Image()))
}
