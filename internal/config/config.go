package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth     = 1280
	DefaultHeight    = 720
	DefaultFPS       = 60
	DefaultParticles = 500
	DefaultTheme     = "default"
	DefaultAddr      = ":8080"
	DefaultRoot      = "web"
	DefaultLogLevel  = "info"
	DefaultDataDir   = ".artgen"
)

type Config struct {
	Window    WindowConfig                  `yaml:"window"`
	Seed      int64                         `yaml:"seed"`
	Module    string                        `yaml:"module"`
	Particles int                           `yaml:"particles"`
	Theme     string                        `yaml:"theme"`
	DataDir   string                        `yaml:"data_dir"`
	LogLevel  string                        `yaml:"log_level"`
	Server    ServerConfig                  `yaml:"server"`
	Params    map[string]map[string]float64 `yaml:"params,omitempty"`
}

type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
	Root string `yaml:"root"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			FPS:    DefaultFPS,
		},
		Module:    "mandala",
		Particles: DefaultParticles,
		Theme:     DefaultTheme,
		DataDir:   defaultDataDir(),
		LogLevel:  DefaultLogLevel,
		Server: ServerConfig{
			Addr: DefaultAddr,
			Root: DefaultRoot,
		},
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultDataDir
	}
	return filepath.Join(home, DefaultDataDir)
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault reads path when it exists and falls back to the defaults
// for an empty path or a missing file.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	cfg, err := Load(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ModuleParams returns the configured params for a module id merged over
// the named preset. An empty preset name means no preset.
func (c *Config) ModuleParams(module, preset string) (map[string]float64, error) {
	out := make(map[string]float64)
	if preset != "" {
		p, err := GetPreset(module, preset)
		if err != nil {
			return nil, err
		}
		for k, v := range p.Params {
			out[k] = v
		}
	}
	for k, v := range c.Params[module] {
		out[k] = v
	}
	return out, nil
}
