package storage

import (
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"time"

	"golang.org/x/image/draw"
)

const (
	metadataFile = "metadata.json"
	imageFile    = "image.png"
	thumbFile    = "thumb.png"

	// ThumbWidth is the width of generated thumbnails; height keeps the
	// aspect ratio.
	ThumbWidth = 160
)

// Store keeps snapshots as one directory per snapshot under baseDir.
type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

func (s *Store) Dir() string { return s.baseDir }

type Metadata struct {
	ID        string             `json:"id"`
	Module    string             `json:"module"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Width     int                `json:"width"`
	Height    int                `json:"height"`
	Frames    int                `json:"frames"`
	Params    map[string]float64 `json:"params,omitempty"`
	Metrics   map[string]float64 `json:"metrics,omitempty"`
}

// Save writes img, its thumbnail and meta into a new snapshot directory and
// returns the snapshot id. ID, Timestamp and the size fields of meta are
// filled in here.
func (s *Store) Save(meta Metadata, img image.Image) (string, error) {
	if img == nil {
		return "", fmt.Errorf("storage: nil image")
	}
	if err := s.Init(); err != nil {
		return "", err
	}

	now := s.now()
	id, dir, err := s.reserve(meta.Module, now)
	if err != nil {
		return "", err
	}

	b := img.Bounds()
	meta.ID = id
	meta.Timestamp = now
	meta.Width, meta.Height = b.Dx(), b.Dy()

	if err := writePNG(filepath.Join(dir, imageFile), img); err != nil {
		return "", err
	}
	if err := writePNG(filepath.Join(dir, thumbFile), Thumbnail(img, ThumbWidth)); err != nil {
		return "", err
	}
	if err := writeJSON(filepath.Join(dir, metadataFile), meta); err != nil {
		return "", err
	}
	return id, nil
}

// reserve creates a fresh directory, suffixing the id on collisions.
func (s *Store) reserve(module string, now time.Time) (string, string, error) {
	if module == "" {
		module = "snapshot"
	}
	base := fmt.Sprintf("%s_%s", module, now.Format("20060102-150405"))
	for i := 0; ; i++ {
		id := base
		if i > 0 {
			id = fmt.Sprintf("%s_%d", base, i)
		}
		dir := filepath.Join(s.baseDir, id)
		err := os.Mkdir(dir, 0755)
		if err == nil {
			return id, dir, nil
		}
		if !os.IsExist(err) {
			return "", "", err
		}
	}
}

// Thumbnail scales img to width pixels wide.
func Thumbnail(img image.Image, width int) image.Image {
	b := img.Bounds()
	if b.Dx() <= width {
		width = b.Dx()
	}
	height := max(1, b.Dy()*width/max(1, b.Dx()))
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// List returns the metadata of every readable snapshot, newest first.
func (s *Store) List() ([]Metadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Metadata{}, nil
		}
		return nil, err
	}

	snaps := make([]Metadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		snaps = append(snaps, *meta)
	}

	sort.SliceStable(snaps, func(i, j int) bool {
		if snaps[i].Timestamp.Equal(snaps[j].Timestamp) {
			return snaps[i].ID > snaps[j].ID
		}
		return snaps[i].Timestamp.After(snaps[j].Timestamp)
	})
	return snaps, nil
}

func (s *Store) Load(id string) (*Metadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadImage decodes the full-size image of a snapshot.
func (s *Store) LoadImage(id string) (image.Image, error) {
	return readPNG(filepath.Join(s.baseDir, id, imageFile))
}

// LoadThumbnail decodes the thumbnail of a snapshot.
func (s *Store) LoadThumbnail(id string) (image.Image, error) {
	return readPNG(filepath.Join(s.baseDir, id, thumbFile))
}

func readPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return png.Decode(f)
}
