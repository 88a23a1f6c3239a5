package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/YuWang03/cluebench/internal/extract"
)

type Config struct {
	Algorithms []Algorithm `yaml:"algorithms"`
	Sweeps     []Sweep     `yaml:"sweeps"`
	Trials     int         `yaml:"trials"`
	Timeouts   Timeouts    `yaml:"timeouts"`
	Results    Results     `yaml:"results"`
	Workspace  string      `yaml:"workspace"`
}

// Algorithm identifies one external program under benchmark. Each algorithm
// carries its own recognition rule chains because the implementations label
// their output differently; after Load every algorithm holds an explicit
// chain for every metric kind, so parsing behavior never depends on name
// matching.
type Algorithm struct {
	Name          string                   `yaml:"name"`
	Dir           string                   `yaml:"dir"`
	Entrypoint    string                   `yaml:"entrypoint"`
	Runtime       string                   `yaml:"runtime"`
	MapFile       string                   `yaml:"map_file"`
	ModeFlag      string                   `yaml:"mode_flag"`
	PassCondition bool                     `yaml:"pass_condition"`
	Metrics       map[string]extract.Chain `yaml:"metrics"`
}

// Sweep declares one independent variable and the ordered values to test.
// Values are iterated and reported in declaration order.
type Sweep struct {
	Variable string    `yaml:"variable"`
	Values   []float64 `yaml:"values"`
	Metric   string    `yaml:"metric"`
}

type Timeouts struct {
	QuickS int `yaml:"quick_s"`
	FullS  int `yaml:"full_s"`
}

func (t Timeouts) Quick() time.Duration { return time.Duration(t.QuickS) * time.Second }
func (t Timeouts) Full() time.Duration  { return time.Duration(t.FullS) * time.Second }

type Results struct {
	Dir string `yaml:"dir"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if len(cfg.Algorithms) == 0 {
		return fmt.Errorf("no algorithms defined")
	}
	for i := range cfg.Algorithms {
		a := &cfg.Algorithms[i]
		if a.Name == "" {
			return fmt.Errorf("algorithm %d: name is required", i)
		}
		if a.Dir == "" {
			return fmt.Errorf("algorithm %q: dir is required", a.Name)
		}
		if a.Entrypoint == "" {
			return fmt.Errorf("algorithm %q: entrypoint is required", a.Name)
		}
		if a.Runtime == "" {
			a.Runtime = "java"
		}
		if a.MapFile == "" {
			a.MapFile = "map.osm"
		}
		if a.Metrics == nil {
			a.Metrics = map[string]extract.Chain{}
		}
		for kind, chain := range a.Metrics {
			if !extract.KnownKind(kind) {
				return fmt.Errorf("algorithm %q: unknown metric kind %q", a.Name, kind)
			}
			if err := chain.Compile(); err != nil {
				return fmt.Errorf("algorithm %q: metric %q: %w", a.Name, kind, err)
			}
		}
		for _, kind := range extract.Kinds() {
			if _, ok := a.Metrics[kind]; !ok {
				a.Metrics[kind] = extract.DefaultChain(kind)
			}
		}
	}
	if len(cfg.Sweeps) == 0 {
		return fmt.Errorf("no sweeps defined")
	}
	seen := map[string]bool{}
	for i := range cfg.Sweeps {
		s := &cfg.Sweeps[i]
		if s.Variable == "" {
			return fmt.Errorf("sweep %d: variable is required", i)
		}
		if seen[s.Variable] {
			return fmt.Errorf("sweep %d: duplicate variable %q", i, s.Variable)
		}
		seen[s.Variable] = true
		if len(s.Values) == 0 {
			return fmt.Errorf("sweep %q: values are required", s.Variable)
		}
		if s.Metric == "" {
			s.Metric = extract.KindDuration
		}
		if !extract.KnownKind(s.Metric) {
			return fmt.Errorf("sweep %q: unknown metric kind %q", s.Variable, s.Metric)
		}
	}
	if cfg.Trials < 1 {
		cfg.Trials = 3
	}
	if cfg.Timeouts.QuickS < 1 {
		cfg.Timeouts.QuickS = 120
	}
	if cfg.Timeouts.FullS < 1 {
		cfg.Timeouts.FullS = 300
	}
	if cfg.Results.Dir == "" {
		cfg.Results.Dir = "results"
	}
	if cfg.Workspace == "" {
		cfg.Workspace = "."
	}
	return nil
}

// ProjectDir resolves an algorithm's project directory against the
// workspace root.
func (c *Config) ProjectDir(a *Algorithm) string {
	if filepath.IsAbs(a.Dir) {
		return a.Dir
	}
	return filepath.Join(c.Workspace, a.Dir)
}
