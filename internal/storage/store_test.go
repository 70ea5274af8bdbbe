package storage

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func testImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{uint8(x), uint8(y), 128, 255})
		}
	}
	return img
}

func fixedClock(st *Store, at time.Time) {
	st.now = func() time.Time { return at }
}

func TestStoreSaveLoad(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	meta := Metadata{
		Module:  "Mandala",
		Seed:    42,
		Frames:  60,
		Params:  map[string]float64{"speed": 0.5},
		Metrics: map[string]float64{"particle_life": 6.5},
	}
	id, err := st.Save(meta, testImage(320, 200))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if id == "" {
		t.Error("expected non-empty snapshot id")
	}

	got, err := st.Load(id)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.Module != "Mandala" || got.Seed != 42 {
		t.Errorf("unexpected metadata: %+v", got)
	}
	if got.Width != 320 || got.Height != 200 {
		t.Errorf("expected 320x200, got %dx%d", got.Width, got.Height)
	}
	if got.Params["speed"] != 0.5 || got.Metrics["particle_life"] != 6.5 {
		t.Errorf("params/metrics lost: %+v", got)
	}

	img, err := st.LoadImage(id)
	if err != nil {
		t.Fatalf("load image: %v", err)
	}
	if img.Bounds().Dx() != 320 {
		t.Errorf("image width = %d", img.Bounds().Dx())
	}

	thumb, err := st.LoadThumbnail(id)
	if err != nil {
		t.Fatalf("load thumb: %v", err)
	}
	if thumb.Bounds().Dx() != ThumbWidth || thumb.Bounds().Dy() != 100 {
		t.Errorf("thumb = %v, want %dx100", thumb.Bounds(), ThumbWidth)
	}
}

func TestStoreUniqueIDs(t *testing.T) {
	st := New(t.TempDir())
	fixedClock(st, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))

	a, err := st.Save(Metadata{Module: "Drift"}, testImage(10, 10))
	if err != nil {
		t.Fatal(err)
	}
	b, err := st.Save(Metadata{Module: "Drift"}, testImage(10, 10))
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Errorf("ids collide: %s", a)
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i, mod := range []string{"first", "second", "third"} {
		fixedClock(st, base.Add(time.Duration(i)*time.Minute))
		if _, err := st.Save(Metadata{Module: mod}, testImage(8, 8)); err != nil {
			t.Fatal(err)
		}
	}

	// stray entries are skipped
	os.MkdirAll(filepath.Join(st.Dir(), "junk"), 0755)
	os.WriteFile(filepath.Join(st.Dir(), "note.txt"), []byte("x"), 0644)

	snaps, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(snaps) != 3 {
		t.Fatalf("expected 3 snapshots, got %d", len(snaps))
	}
	if snaps[0].Module != "third" || snaps[2].Module != "first" {
		t.Errorf("expected newest first, got %s..%s", snaps[0].Module, snaps[2].Module)
	}
}

func TestStoreListMissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "nope"))
	snaps, err := st.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snaps) != 0 {
		t.Errorf("expected empty list, got %d", len(snaps))
	}
}

func TestStoreLoadMissing(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("missing"); err == nil {
		t.Error("expected error for missing snapshot")
	}
	if _, err := st.Save(Metadata{}, nil); err == nil {
		t.Error("expected error for nil image")
	}
}

func TestThumbnailSmallImage(t *testing.T) {
	th := Thumbnail(testImage(40, 20), ThumbWidth)
	if th.Bounds().Dx() != 40 || th.Bounds().Dy() != 20 {
		t.Errorf("small images keep their size, got %v", th.Bounds())
	}
}

func TestExportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snaps.json")
	snaps := []Metadata{{ID: "a", Module: "Fractal", Seed: 3}}
	if err := ExportJSON(path, snaps); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var back []Metadata
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if len(back) != 1 || back[0].Module != "Fractal" {
		t.Errorf("unexpected export: %s", data)
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "null\n" {
		t.Errorf("nil export = %q", buf.String())
	}
}
