package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/artgen/internal/analysis"
	"github.com/san-kum/artgen/internal/art"
	"github.com/san-kum/artgen/internal/automation"
	"github.com/san-kum/artgen/internal/catalog"
	"github.com/san-kum/artgen/internal/config"
	"github.com/san-kum/artgen/internal/fractal"
	"github.com/san-kum/artgen/internal/frame"
	"github.com/san-kum/artgen/internal/gui"
	"github.com/san-kum/artgen/internal/logging"
	"github.com/san-kum/artgen/internal/module"
	"github.com/san-kum/artgen/internal/server"
	"github.com/san-kum/artgen/internal/storage"
	"github.com/san-kum/artgen/internal/viz"
)

var (
	configFile string
	logLevel   string
	dataDir    string

	seed      int64
	width     int
	height    int
	particles int
	fps       int
	preset    string
	params    []string
	theme     string

	outFile string
	frames  int
	save    bool

	addr string
	root string

	kind    string
	maxIter int
	zoom    float64
	step    int
	bins    int
	trace   int

	outDir    string
	sweepMin  float64
	sweepMax  float64
	numSteps  int
	seedCount int
)

// app is what every command needs after config and flags are merged.
type app struct {
	cfg *config.Config
	cat *catalog.Catalog
	log *slog.Logger
}

func main() {
	rootCmd := &cobra.Command{
		Use:           "artgen",
		Short:         "generative art: mandalas, fractals and particles",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(cmd, nil)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "snapshot directory")
	addViewFlags(rootCmd)

	runCmd := &cobra.Command{
		Use:   "run [module...]",
		Short: "open the window with the given modules",
		RunE:  runWindow,
	}
	addViewFlags(runCmd)

	tuiCmd := &cobra.Command{
		Use:   "tui [module...]",
		Short: "run modules in the terminal",
		RunE:  runTUI,
	}
	addViewFlags(tuiCmd)
	tuiCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "terminal theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	renderCmd := &cobra.Command{
		Use:   "render [module]",
		Short: "render a module headless to png or svg",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}
	renderCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (.png or .svg)")
	renderCmd.Flags().IntVar(&frames, "frames", automation.DefaultFrames, "frames to advance before drawing")
	renderCmd.Flags().BoolVar(&save, "save", false, "store the render as a snapshot")
	addSizeFlags(renderCmd)
	addModuleFlags(renderCmd)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the web build",
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&addr, "addr", config.DefaultAddr, "listen address")
	serveCmd.Flags().StringVar(&root, "root", config.DefaultRoot, "directory to serve")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list modules",
		RunE:  listModules,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [module]",
		Short: "list presets for a module",
		Args:  cobra.ExactArgs(1),
		RunE:  listPresets,
	}

	snapshotsCmd := &cobra.Command{
		Use:   "snapshots",
		Short: "list stored snapshots",
		RunE:  listSnapshots,
	}
	exportCmd := &cobra.Command{
		Use:   "export [file]",
		Short: "export snapshot metadata as json",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportSnapshots,
	}
	snapshotsCmd.AddCommand(exportCmd)

	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "escape-time statistics and zoom period of a fractal",
		RunE:  runInspect,
	}
	inspectCmd.Flags().StringVar(&kind, "kind", "mandelbrot", "fractal kind")
	inspectCmd.Flags().IntVar(&maxIter, "iter", 128, "maximum iterations")
	inspectCmd.Flags().Float64Var(&zoom, "zoom", 1, "zoom")
	inspectCmd.Flags().IntVar(&step, "step", 4, "pixel step")
	inspectCmd.Flags().IntVar(&bins, "bins", 32, "histogram bins")
	inspectCmd.Flags().IntVar(&trace, "frames", 1200, "frames of zoom trace")
	addSizeFlags(inspectCmd)

	batchCmd := &cobra.Command{
		Use:   "batch [scenario.yaml]",
		Short: "run a scenario file",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}
	batchCmd.Flags().StringVar(&outDir, "out-dir", "renders", "output directory")

	sweepCmd := &cobra.Command{
		Use:   "sweep [module] [param]",
		Short: "render a module across a parameter range",
		Args:  cobra.ExactArgs(2),
		RunE:  runSweep,
	}
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 0, "first value")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 1, "last value")
	sweepCmd.Flags().IntVar(&numSteps, "steps", 5, "number of renders")
	sweepCmd.Flags().IntVar(&frames, "frames", automation.DefaultFrames, "frames per render")
	sweepCmd.Flags().StringVar(&outDir, "out-dir", "renders", "output directory")
	sweepCmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	addSizeFlags(sweepCmd)

	seedsCmd := &cobra.Command{
		Use:   "seeds [module]",
		Short: "render a module under consecutive seeds",
		Args:  cobra.ExactArgs(1),
		RunE:  runSeeds,
	}
	seedsCmd.Flags().Int64Var(&seed, "seed", 1, "first seed")
	seedsCmd.Flags().IntVar(&seedCount, "count", 4, "number of seeds")
	seedsCmd.Flags().IntVar(&frames, "frames", automation.DefaultFrames, "frames per render")
	seedsCmd.Flags().StringVar(&outDir, "out-dir", "renders", "output directory")
	addSizeFlags(seedsCmd)

	rootCmd.AddCommand(runCmd, tuiCmd, renderCmd, serveCmd, listCmd, presetsCmd, snapshotsCmd,
		inspectCmd, batchCmd, sweepCmd, seedsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addSizeFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&width, "width", automation.DefaultWidth, "width in pixels")
	cmd.Flags().IntVar(&height, "height", automation.DefaultHeight, "height in pixels")
}

func addModuleFlags(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	cmd.Flags().IntVar(&particles, "particles", config.DefaultParticles, "particle count")
	cmd.Flags().StringVar(&preset, "preset", "", "module preset")
	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "module parameter name=value (repeatable)")
}

func addViewFlags(cmd *cobra.Command) {
	addModuleFlags(cmd)
	cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "window width")
	cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "window height")
	cmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "target frame rate")
}

// setup loads the config file and lets explicitly set flags override it.
func setup(cmd *cobra.Command) (*app, error) {
	cfg, err := config.LoadOrDefault(configFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") || configFile == "" {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("data") {
		cfg.DataDir = dataDir
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("particles") {
		cfg.Particles = particles
	}
	if flags.Changed("width") {
		cfg.Window.Width = width
	}
	if flags.Changed("height") {
		cfg.Window.Height = height
	}
	if flags.Changed("fps") {
		cfg.Window.FPS = fps
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("addr") {
		cfg.Server.Addr = addr
	}
	if flags.Changed("root") {
		cfg.Server.Root = root
	}

	log, err := logging.New(cfg.LogLevel, os.Stderr)
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, cat: catalog.New(), log: log}, nil
}

func (a *app) env() catalog.Env {
	return catalog.Env{
		Bounds:    art.V(float64(a.cfg.Window.Width), float64(a.cfg.Window.Height)),
		Seed:      a.cfg.Seed,
		Particles: a.cfg.Particles,
	}
}

func (a *app) store() *storage.Store { return storage.New(a.cfg.DataDir) }

// parseParams turns name=value pairs into a map.
func parseParams(pairs []string) (map[string]float64, error) {
	out := make(map[string]float64, len(pairs))
	for _, p := range pairs {
		name, val, ok := strings.Cut(p, "=")
		if !ok {
			return nil, fmt.Errorf("param %q: want name=value", p)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return nil, fmt.Errorf("param %q: %w", p, err)
		}
		out[strings.TrimSpace(name)] = v
	}
	return out, nil
}

// moduleParams merges preset, config and --param values for one module id.
// The preset only applies to the module it belongs to.
func (a *app) moduleParams(id, focus string) (map[string]float64, error) {
	p := ""
	if id == focus {
		p = preset
	}
	vals, err := a.cfg.ModuleParams(id, p)
	if err != nil {
		return nil, err
	}
	if id == focus {
		extra, err := parseParams(params)
		if err != nil {
			return nil, err
		}
		for k, v := range extra {
			vals[k] = v
		}
	}
	return vals, nil
}

// driver builds a registry of names (all modules when empty) starting on the
// first name, or the configured module.
func (a *app) driver(names []string) (*frame.Driver, error) {
	reg, err := a.cat.Registry(a.env(), names...)
	if err != nil {
		return nil, err
	}
	focus := a.cfg.Module
	if len(names) > 0 {
		focus = names[0]
	}
	focusID, err := a.cat.ID(focus)
	if err != nil {
		return nil, err
	}

	d := frame.NewDriver(reg, a.log)
	d.Params = make(map[string]map[string]float64)
	for _, info := range a.cat.List() {
		vals, err := a.moduleParams(info.ID, focusID)
		if err != nil {
			return nil, err
		}
		if len(vals) > 0 {
			d.Params[info.Title] = vals
		}
	}

	ids := names
	if len(ids) == 0 {
		ids = a.cat.IDs()
	}
	for i, n := range ids {
		if id, _ := a.cat.ID(n); id == focusID {
			reg.Select(i)
			break
		}
	}
	return d, nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	d, err := a.driver(args)
	if err != nil {
		return err
	}
	gui.NewApp(d, a.store(), gui.Options{
		Width:  a.cfg.Window.Width,
		Height: a.cfg.Window.Height,
		FPS:    a.cfg.Window.FPS,
	}, a.log).Run()
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	// the alternate screen owns the terminal
	a.log = logging.Nop()
	d, err := a.driver(args)
	if err != nil {
		return err
	}
	return viz.Run(d, viz.Options{
		World: a.env().Bounds,
		Theme: a.cfg.Theme,
		FPS:   min(a.cfg.Window.FPS, 30),
	})
}

func runRender(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	id, err := a.cat.ID(args[0])
	if err != nil {
		return err
	}
	vals, err := a.moduleParams(id, id)
	if err != nil {
		return err
	}
	if outFile == "" {
		outFile = id + ".png"
	}
	job := automation.Job{
		Module:    id,
		Seed:      a.cfg.Seed,
		Width:     width,
		Height:    height,
		Particles: a.cfg.Particles,
		Frames:    frames,
		Params:    vals,
		Format:    automation.FormatFor(outFile),
	}
	out, err := automation.Render(cmd.Context(), a.cat, job, a.log)
	if err != nil {
		return err
	}
	if err := out.WriteFile(outFile); err != nil {
		return err
	}
	fmt.Printf("rendered %s (seed %d) to %s\n", out.Module, out.Seed, outFile)
	printMetrics(out.Result.Metrics)

	if save {
		if out.Image == nil {
			return fmt.Errorf("--save needs png output")
		}
		st := a.store()
		if err := st.Init(); err != nil {
			return err
		}
		snapID, err := st.Save(storage.Metadata{
			Module:  id,
			Seed:    out.Seed,
			Frames:  out.Result.Frames,
			Params:  out.Params,
			Metrics: out.Result.Metrics,
		}, out.Image)
		if err != nil {
			return err
		}
		fmt.Printf("snapshot id: %s\n", snapID)
	}
	return nil
}

func printMetrics(m map[string]float64) {
	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	slices.Sort(names)
	for _, n := range names {
		fmt.Printf("  %s: %.4f\n", n, m[n])
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(a.cfg.Server.Root, a.cfg.Server.Addr, a.log)
	a.log.Info("serving", "addr", srv.Addr, "root", srv.Root)
	return srv.ListenAndServe(ctx)
}

func listModules(cmd *cobra.Command, args []string) error {
	cat := catalog.New()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tID\tNAME\tDESCRIPTION")
	for i, info := range cat.List() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, info.ID, info.Title, info.Summary)
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	id, err := catalog.New().ID(args[0])
	if err != nil {
		return err
	}
	names := config.ListPresets(id)
	if len(names) == 0 {
		fmt.Printf("no presets for module: %s\n", id)
		return nil
	}
	fmt.Printf("presets for %s:\n", id)
	for _, n := range names {
		p, _ := config.GetPreset(id, n)
		fmt.Printf("  %-14s %s\n", n, p.Description)
	}
	return nil
}

func listSnapshots(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	snaps, err := a.store().List()
	if err != nil {
		return err
	}
	if len(snaps) == 0 {
		fmt.Println("no snapshots found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODULE\tTIME\tSIZE\tSEED\tFRAMES")
	for _, s := range snaps {
		fmt.Fprintf(w, "%s\t%s\t%s\t%dx%d\t%d\t%d\n",
			s.ID,
			s.Module,
			s.Timestamp.Format("2006-01-02 15:04:05"),
			s.Width, s.Height,
			s.Seed,
			s.Frames,
		)
	}
	return w.Flush()
}

func exportSnapshots(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	snaps, err := a.store().List()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return storage.WriteJSON(os.Stdout, snaps)
	}
	if err := storage.ExportJSON(args[0], snaps); err != nil {
		return err
	}
	fmt.Printf("exported %d snapshots to %s\n", len(snaps), args[0])
	return nil
}

func runInspect(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	k, err := fractal.ParseKind(kind)
	if err != nil {
		return err
	}
	v := fractal.NewView(float64(width), float64(height))
	v.ZoomBy(zoom)
	p := fractal.Params{Kind: k, MaxIter: maxIter, CRe: -0.7, CIm: 0.27, CarpetSize: 243}

	rep := analysis.Inspect(v, p, step, bins)
	fmt.Printf("kind: %s\n", rep.Kind)
	fmt.Printf("cells: %d  escaped: %d  inside: %.1f%%\n", rep.Cells, rep.Escaped, rep.InsideRatio()*100)
	fmt.Printf("mean escape iteration: %.2f / %d\n\n", rep.MeanIter, rep.MaxIter)
	fmt.Println(analysis.Plot(rep.Histogram, "escape-time histogram"))

	// zoom trace of the animated module
	m := fractal.NewModule(art.V(float64(width), float64(height)), a.cfg.Seed)
	const dt = 1.0 / 60
	zooms := make([]float64, 0, trace)
	runner := frame.NewRunner(a.log)
	runner.AddObserver(frame.ObserverFunc(func(mod module.Module, _ int, _ float64) {
		zooms = append(zooms, mod.(*fractal.Module).State().View.Zoom)
	}))
	if _, err := runner.Run(cmd.Context(), m, frame.RunConfig{Dt: dt, Frames: trace}); err != nil {
		return err
	}
	defer module.Cleanup(m)

	fmt.Println()
	fmt.Println(analysis.Plot(zooms, "zoom"))
	if period := analysis.DominantPeriod(zooms, dt); period > 0 {
		fmt.Printf("\nzoom period: %.2fs\n", period)
	}
	return nil
}

func (a *app) runner(dir string) *automation.Runner {
	return &automation.Runner{Catalog: a.cat, OutDir: dir, Store: a.store(), Log: a.log}
}

func runBatch(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	if err := a.store().Init(); err != nil {
		return err
	}
	results, err := a.runner(outDir).RunScenario(cmd.Context(), sc)
	for _, r := range results {
		target := r.Output
		if r.SnapshotID != "" {
			target = "snapshot " + r.SnapshotID
		}
		fmt.Printf("step %d: %s (seed %d) -> %s\n", r.Step, r.Module, r.Seed, target)
	}
	return err
}

func runSweep(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	results, err := a.runner(outDir).RunSweep(cmd.Context(), &automation.ParameterSweep{
		Module:   args[0],
		Param:    args[1],
		Min:      sweepMin,
		Max:      sweepMax,
		NumSteps: numSteps,
		Seed:     seed,
		Frames:   frames,
		Width:    width,
		Height:   height,
	})
	for _, r := range results {
		fmt.Printf("%s=%.4f -> %s\n", args[1], r.Value, r.Output)
	}
	return err
}

func runSeeds(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	results, err := a.runner(outDir).RunSeeds(cmd.Context(), &automation.SeedBatch{
		Module:   args[0],
		BaseSeed: seed,
		Count:    seedCount,
		Frames:   frames,
		Width:    width,
		Height:   height,
	})
	for _, r := range results {
		fmt.Printf("seed %d -> %s\n", r.Seed, r.Output)
	}
	return err
}
