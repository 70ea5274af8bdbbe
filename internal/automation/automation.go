package automation

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/artgen/internal/catalog"
	"github.com/san-kum/artgen/internal/config"
	"github.com/san-kum/artgen/internal/logging"
	"github.com/san-kum/artgen/internal/storage"
)

// Scenario is a scripted sequence of renders
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Width       int            `yaml:"width"`
	Height      int            `yaml:"height"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is a single render in a scenario. Width and Height fall back
// to the scenario's.
type ScenarioStep struct {
	Module   string             `yaml:"module"`
	Preset   string             `yaml:"preset"`
	Seed     int64              `yaml:"seed"`
	Frames   int                `yaml:"frames"`
	Dt       float64            `yaml:"dt"`
	Width    int                `yaml:"width"`
	Height   int                `yaml:"height"`
	Params   map[string]float64 `yaml:"params"`
	Output   string             `yaml:"output"`
	Snapshot bool               `yaml:"snapshot"`
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}

	return &scenario, nil
}

// Runner executes scenarios against a catalog. Outputs are resolved
// relative to OutDir; Store, when set, receives snapshot steps.
type Runner struct {
	Catalog *catalog.Catalog
	OutDir  string
	Store   *storage.Store
	Log     *slog.Logger
}

type StepResult struct {
	Step       int
	Module     string
	Seed       int64
	Output     string
	SnapshotID string
	Metrics    map[string]float64
}

func (r *Runner) log() *slog.Logger { return logging.OrNop(r.Log) }

// RunScenario executes all steps in order and stops at the first failure,
// returning the results gathered so far.
func (r *Runner) RunScenario(ctx context.Context, scenario *Scenario) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		r.log().Info("scenario step", "scenario", scenario.Name, "step", i+1, "of", len(scenario.Steps), "module", step.Module)

		res, err := r.runStep(ctx, scenario, i, step)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		results = append(results, res)
	}

	return results, nil
}

func (r *Runner) runStep(ctx context.Context, sc *Scenario, i int, step ScenarioStep) (StepResult, error) {
	params := make(map[string]float64)
	if step.Preset != "" {
		id, err := r.Catalog.ID(step.Module)
		if err != nil {
			return StepResult{}, err
		}
		p, err := config.GetPreset(id, step.Preset)
		if err != nil {
			return StepResult{}, err
		}
		for k, v := range p.Params {
			params[k] = v
		}
	}
	for k, v := range step.Params {
		params[k] = v
	}

	output := step.Output
	if output == "" && !step.Snapshot {
		output = fmt.Sprintf("%s_%02d.png", step.Module, i+1)
	}

	job := Job{
		Module: step.Module,
		Seed:   step.Seed,
		Width:  firstNonZero(step.Width, sc.Width),
		Height: firstNonZero(step.Height, sc.Height),
		Frames: step.Frames,
		Dt:     step.Dt,
		Params: params,
		Format: FormatFor(output),
	}
	if step.Snapshot {
		job.Format = FormatPNG
	}

	out, err := Render(ctx, r.Catalog, job, r.Log)
	if err != nil {
		return StepResult{}, err
	}

	res := StepResult{Step: i + 1, Module: out.Module, Seed: out.Seed, Metrics: out.Result.Metrics}
	if step.Snapshot {
		if r.Store == nil {
			return res, fmt.Errorf("snapshot requested without a store")
		}
		id, err := r.Store.Save(storage.Metadata{
			Module:  out.Module,
			Seed:    out.Seed,
			Frames:  out.Result.Frames,
			Params:  out.Params,
			Metrics: out.Result.Metrics,
		}, out.Image)
		if err != nil {
			return res, err
		}
		res.SnapshotID = id
	}
	if output != "" {
		res.Output = filepath.Join(r.OutDir, output)
		if err := out.WriteFile(res.Output); err != nil {
			return res, err
		}
	}
	return res, nil
}

func firstNonZero(vals ...int) int {
	for _, v := range vals {
		if v != 0 {
			return v
		}
	}
	return 0
}

// ParameterSweep renders one module across evenly spaced values of one
// parameter.
type ParameterSweep struct {
	Module   string
	Param    string
	Min, Max float64
	NumSteps int
	Seed     int64
	Frames   int
	Width    int
	Height   int
}

type SweepResult struct {
	Value   float64
	Output  string
	Metrics map[string]float64
}

// RunSweep writes one PNG per value into OutDir.
func (r *Runner) RunSweep(ctx context.Context, sweep *ParameterSweep) ([]SweepResult, error) {
	if sweep.NumSteps < 1 {
		return nil, fmt.Errorf("sweep needs at least one step, got %d", sweep.NumSteps)
	}
	results := make([]SweepResult, 0, sweep.NumSteps)

	paramStep := 0.0
	if sweep.NumSteps > 1 {
		paramStep = (sweep.Max - sweep.Min) / float64(sweep.NumSteps-1)
	}

	for i := 0; i < sweep.NumSteps; i++ {
		val := sweep.Min + float64(i)*paramStep
		out, err := Render(ctx, r.Catalog, Job{
			Module: sweep.Module,
			Seed:   sweep.Seed,
			Width:  sweep.Width,
			Height: sweep.Height,
			Frames: sweep.Frames,
			Params: map[string]float64{sweep.Param: val},
		}, r.Log)
		if err != nil {
			return results, fmt.Errorf("sweep %s=%.4f: %w", sweep.Param, val, err)
		}

		path := filepath.Join(r.OutDir, fmt.Sprintf("%s_%s_%02d.png", sweep.Module, sweep.Param, i+1))
		if err := out.WriteFile(path); err != nil {
			return results, err
		}
		results = append(results, SweepResult{Value: val, Output: path, Metrics: out.Result.Metrics})

		r.log().Info("sweep", "step", i+1, "of", sweep.NumSteps, "param", sweep.Param, "value", val)
	}

	return results, nil
}

// SeedBatch renders the same module under consecutive seeds.
type SeedBatch struct {
	Module   string
	BaseSeed int64
	Count    int
	Frames   int
	Width    int
	Height   int
}

type SeedResult struct {
	Seed    int64
	Output  string
	Metrics map[string]float64
}

func (r *Runner) RunSeeds(ctx context.Context, batch *SeedBatch) ([]SeedResult, error) {
	results := make([]SeedResult, 0, batch.Count)
	base := batch.BaseSeed
	if base == 0 {
		base = 1
	}

	for i := 0; i < batch.Count; i++ {
		seed := base + int64(i)
		out, err := Render(ctx, r.Catalog, Job{
			Module: batch.Module,
			Seed:   seed,
			Width:  batch.Width,
			Height: batch.Height,
			Frames: batch.Frames,
		}, r.Log)
		if err != nil {
			return results, fmt.Errorf("seed %d: %w", seed, err)
		}

		path := filepath.Join(r.OutDir, fmt.Sprintf("%s_seed%d.png", batch.Module, seed))
		if err := out.WriteFile(path); err != nil {
			return results, err
		}
		results = append(results, SeedResult{Seed: seed, Output: path, Metrics: out.Result.Metrics})
	}

	return results, nil
}
