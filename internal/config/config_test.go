package config

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/san-kum/artgen/internal/art"
	"github.com/san-kum/artgen/internal/catalog"
	"github.com/san-kum/artgen/internal/module"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Module != "mandala" {
		t.Errorf("expected module mandala, got %s", cfg.Module)
	}
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		t.Error("window size should be positive")
	}
	if cfg.Particles != DefaultParticles {
		t.Errorf("expected %d particles, got %d", DefaultParticles, cfg.Particles)
	}
	if cfg.Server.Addr == "" {
		t.Error("server addr should be set")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "artgen.yaml")

	cfg := DefaultConfig()
	cfg.Seed = 42
	cfg.Module = "gallery"
	cfg.Params = map[string]map[string]float64{"gallery": {"scheme": 3}}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Seed != 42 || got.Module != "gallery" {
		t.Errorf("round trip lost fields: %+v", got)
	}
	if got.Params["gallery"]["scheme"] != 3 {
		t.Errorf("params lost: %v", got.Params)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("seed: 7\nwindow:\n  width: 640\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window.Width != 640 || cfg.Window.Height != DefaultHeight {
		t.Errorf("window = %+v", cfg.Window)
	}
	if cfg.Seed != 7 || cfg.Module != "mandala" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil || cfg == nil {
		t.Fatalf("missing file should give defaults, got %v", err)
	}
	cfg, err = LoadOrDefault("")
	if err != nil || cfg.Module != "mandala" {
		t.Fatalf("empty path should give defaults, got %v", err)
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(bad, []byte("window: [1, 2"), 0644)
	if _, err := LoadOrDefault(bad); err == nil {
		t.Error("expected parse error")
	}
}

func TestGetPreset(t *testing.T) {
	p, err := GetPreset("gallery", "carpet")
	if err != nil {
		t.Fatalf("expected preset: %v", err)
	}
	if p.Params["kind"] != 3 {
		t.Errorf("expected kind 3, got %v", p.Params["kind"])
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if _, err := GetPreset("mandala", "nonexistent"); !errors.Is(err, art.ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
	if _, err := GetPreset("nonexistent", "calm"); !errors.Is(err, art.ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("mandala")
	if len(presets) == 0 {
		t.Fatal("expected presets for mandala")
	}
	if !sort.StringsAreSorted(presets) {
		t.Errorf("presets not sorted: %v", presets)
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent module")
	}
}

func TestPresetsApplyToModules(t *testing.T) {
	cat := catalog.New()
	env := catalog.DefaultEnv()
	env.Seed = 1
	env.Particles = 10
	for id, presets := range Presets {
		for name, p := range presets {
			m, err := cat.Build(id, env)
			if err != nil {
				t.Fatalf("%s: %v", id, err)
			}
			module.Init(m)
			if err := module.ApplyAll(m, p.Params); err != nil {
				t.Errorf("%s/%s: %v", id, name, err)
			}
		}
	}
}

func TestModuleParams(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params = map[string]map[string]float64{"mandala": {"speed": 0.7}}

	got, err := cfg.ModuleParams("mandala", "calm")
	if err != nil {
		t.Fatal(err)
	}
	if got["speed"] != 0.7 || got["segments"] != 12 {
		t.Errorf("merged params = %v", got)
	}

	if _, err := cfg.ModuleParams("mandala", "nope"); !errors.Is(err, art.ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
}
