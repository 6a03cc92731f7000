// Package config loads the YAML run configuration of the districts command.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/districts/logging"
	"github.com/katalvlaran/districts/partition"
	"github.com/katalvlaran/districts/world"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds a complete run description.
type Config struct {
	World       WorldConfig      `yaml:"world"`
	Districts   int              `yaml:"districts"`
	Seed        int64            `yaml:"seed"`
	Strict      bool             `yaml:"strict"`
	Incremental bool             `yaml:"incremental"`
	Population  PopulationConfig `yaml:"population"`
	Walk        WalkConfig       `yaml:"walk"`
	Log         logging.Config   `yaml:"log"`

	// editsDefaulted records that Walk.Edits was filled from Walk.Steps
	// rather than read from the file.
	editsDefaulted bool
}

// WorldConfig describes the voter grid. A non-empty VotesA overrides the
// random generator and fixes Width and Height.
type WorldConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Probability float64 `yaml:"probability"`
	Classes     int     `yaml:"classes"`
	Seed        int64   `yaml:"seed"`
	VotesA      [][]int `yaml:"votes_a"`
	VotesB      [][]int `yaml:"votes_b"`
}

// PopulationConfig bounds district populations during mutation.
// Max == 0 disables the bounds. Tolerance > 0 runs the population-equality
// repair after the partition is built, with at most MaxIters sweeps.
type PopulationConfig struct {
	Min       int     `yaml:"min"`
	Max       int     `yaml:"max"`
	Tolerance float64 `yaml:"tolerance"`
	MaxIters  int     `yaml:"max_iters"`
}

// WalkConfig controls the random mutation walk.
type WalkConfig struct {
	Steps int `yaml:"steps"` // mutation attempts
	Edits int `yaml:"edits"` // stop after this many accepted flips
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML, applies defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if len(c.World.VotesA) > 0 {
		c.World.Height = len(c.World.VotesA)
		c.World.Width = len(c.World.VotesA[0])
	}
	if c.World.Width == 0 {
		c.World.Width = 20
	}
	if c.World.Height == 0 {
		c.World.Height = 20
	}
	if c.World.Probability == 0 {
		c.World.Probability = 0.3
	}
	if c.World.Classes == 0 {
		c.World.Classes = 2
	}
	if c.Districts == 0 {
		c.Districts = 4
	}
	if c.Walk.Steps == 0 {
		c.Walk.Steps = 1000
	}
	if c.Walk.Edits == 0 {
		c.Walk.Edits = c.Walk.Steps
		c.editsDefaulted = true
	}
	if c.Population.MaxIters == 0 {
		c.Population.MaxIters = 10000
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
}

// Validate reports the first inconsistent setting, wrapped in ErrInvalid.
func (c *Config) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world dimensions %dx%d", ErrInvalid, c.World.Width, c.World.Height)
	case c.World.Probability < 0 || c.World.Probability > 1:
		return fmt.Errorf("%w: probability %v outside [0,1]", ErrInvalid, c.World.Probability)
	case c.World.Classes < 1 || c.World.Classes > 2:
		return fmt.Errorf("%w: classes %d not in {1,2}", ErrInvalid, c.World.Classes)
	case c.Districts <= 0:
		return fmt.Errorf("%w: districts %d", ErrInvalid, c.Districts)
	case c.Population.Min < 0 || c.Population.Max < 0:
		return fmt.Errorf("%w: negative population bound", ErrInvalid)
	case c.Population.Max > 0 && c.Population.Max < c.Population.Min:
		return fmt.Errorf("%w: population max %d < min %d", ErrInvalid, c.Population.Max, c.Population.Min)
	case c.Population.Tolerance < 0 || c.Population.Tolerance >= 1:
		return fmt.Errorf("%w: population tolerance %v outside [0,1)", ErrInvalid, c.Population.Tolerance)
	case c.Population.MaxIters < 0:
		return fmt.Errorf("%w: population max_iters %d", ErrInvalid, c.Population.MaxIters)
	case c.Walk.Steps < 0 || c.Walk.Edits < 0:
		return fmt.Errorf("%w: negative walk length", ErrInvalid)
	}
	return nil
}

// SetSteps overrides the walk length. Edits follows Steps only when it was
// not set explicitly in the file.
func (c *Config) SetSteps(steps int) {
	c.Walk.Steps = steps
	if c.editsDefaulted {
		c.Walk.Edits = steps
	}
}

// SetEdits overrides the accepted-flip limit.
func (c *Config) SetEdits(edits int) {
	c.Walk.Edits = edits
	c.editsDefaulted = false
}

// Balance runs the population-equality repair on rm when a tolerance is
// configured. It returns the number of sweeps performed.
func (c *Config) Balance(rm *partition.RegionMap) (int, error) {
	if c.Population.Tolerance == 0 {
		return 0, nil
	}
	return rm.FixPopulation(c.Population.Tolerance, c.Population.MaxIters)
}

// BuildWorld constructs the voter grid described by c.World.
func (c *Config) BuildWorld() (*world.World, error) {
	if len(c.World.VotesA) > 0 {
		return world.FromVotes(c.World.VotesA, c.World.VotesB)
	}
	rule, err := world.Bernoulli(c.World.Probability, c.World.Classes)
	if err != nil {
		return nil, err
	}
	return world.Random(c.World.Width, c.World.Height, rule, world.WithSeed(c.World.Seed))
}

// PartitionOptions translates c into partition options.
func (c *Config) PartitionOptions(log logging.Logger) []partition.Option {
	opts := []partition.Option{partition.WithSeed(c.Seed)}
	if log != nil {
		opts = append(opts, partition.WithLogger(log))
	}
	if c.Strict {
		opts = append(opts, partition.WithStrictContiguity())
	}
	if c.Incremental {
		opts = append(opts, partition.WithIncrementalFrontiers())
	}
	if c.Population.Max > 0 {
		opts = append(opts, partition.WithPopulationBounds(c.Population.Min, c.Population.Max))
	}
	return opts
}
