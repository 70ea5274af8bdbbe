// Package gui runs the module registry in a raylib window.
package gui

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/artgen/internal/art"
	"github.com/san-kum/artgen/internal/automation"
	"github.com/san-kum/artgen/internal/frame"
	"github.com/san-kum/artgen/internal/logging"
	"github.com/san-kum/artgen/internal/module"
	"github.com/san-kum/artgen/internal/storage"
)

const DefaultTitle = "Art Generator"

type Options struct {
	Width, Height int
	FPS           int
	Title         string
}

type App struct {
	Driver *frame.Driver
	Store  *storage.Store
	opts   Options
	log    *slog.Logger

	flash      string
	flashUntil float64
}

func NewApp(d *frame.Driver, store *storage.Store, opts Options, log *slog.Logger) *App {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	return &App{Driver: d, Store: store, opts: opts, log: logging.OrNop(log)}
}

func (a *App) initWindow() {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(a.opts.Width), int32(a.opts.Height), a.opts.Title)
	rl.SetTargetFPS(int32(a.opts.FPS))
}

// Run opens the window and blocks until it is closed.
func (a *App) Run() {
	a.initWindow()
	defer rl.CloseWindow()

	a.Driver.Resize(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
	a.Driver.Start()
	defer a.Driver.Stop()

	a.log.Info("window open", "modules", a.Driver.Registry.Names())
	a.RunLoop()
}

func (a *App) RunLoop() {
	surf := Surface{}
	in := Input{}
	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			a.Driver.Resize(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
		}
		if in.Pressed(module.KeyF12) {
			a.snapshot()
		}

		a.Driver.FPS = int(rl.GetFPS())

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		a.Driver.Frame(float64(rl.GetFrameTime()), in, surf)
		a.drawFlash(surf)
		rl.EndDrawing()
	}
}

func (a *App) snapshot() {
	m, ok := a.Driver.Registry.Current()
	if !ok || a.Store == nil {
		return
	}
	id, err := automation.Snapshot(m, rl.GetScreenWidth(), rl.GetScreenHeight(), a.Store)
	if err != nil {
		a.log.Error("snapshot failed", "module", m.Name(), "err", err)
		a.setFlash("Snapshot failed")
		return
	}
	a.log.Info("snapshot saved", "id", id, "dir", a.Store.Dir())
	a.setFlash(fmt.Sprintf("Saved %s", id))
}

func (a *App) setFlash(msg string) {
	a.flash = msg
	a.flashUntil = rl.GetTime() + 2
}

func (a *App) drawFlash(s Surface) {
	if a.flash == "" || rl.GetTime() > a.flashUntil {
		return
	}
	sz := s.Size()
	s.Text(a.flash, 10, sz.Y-30, 20, art.Gold)
}
