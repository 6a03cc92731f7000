package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/districts/config"
	"github.com/katalvlaran/districts/logging"
	"github.com/katalvlaran/districts/partition"
)

// runFlags mirrors the config fields that can be overridden on the command line.
type runFlags struct {
	configPath  string
	width       int
	height      int
	probability float64
	worldSeed   int64
	districts   int
	seed        int64
	strict      bool
	incremental bool
	tolerance   float64
	logLevel    string
}

func newRootCmd() *cobra.Command {
	f := &runFlags{}
	root := &cobra.Command{
		Use:           "districts",
		Short:         "Grow and mutate districting partitions of a voter grid",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "YAML run configuration")
	pf.IntVar(&f.width, "width", 0, "Grid width")
	pf.IntVar(&f.height, "height", 0, "Grid height")
	pf.Float64Var(&f.probability, "probability", 0, "Chance that a cell holds a voter")
	pf.Int64Var(&f.worldSeed, "world-seed", 0, "Seed for voter generation")
	pf.IntVarP(&f.districts, "districts", "n", 0, "Number of districts")
	pf.Int64VarP(&f.seed, "seed", "s", 0, "Seed for partition growth and mutation")
	pf.BoolVar(&f.strict, "strict", false, "Flood-fill contiguity check on every mutation")
	pf.BoolVar(&f.incremental, "incremental", false, "Patch frontiers locally after mutation")
	pf.Float64Var(&f.tolerance, "tolerance", 0, "Rebalance district populations to within this fraction of ideal")
	pf.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")

	root.AddCommand(newBuildCmd(f), newWalkCmd(f))
	return root
}

// load resolves the configuration file and applies flag overrides.
func (f *runFlags) load(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if len(cfg.World.VotesA) > 0 && (flags.Changed("width") || flags.Changed("height")) {
		return nil, fmt.Errorf("%w: --width/--height conflict with explicit votes in %s",
			config.ErrInvalid, f.configPath)
	}
	if flags.Changed("width") {
		cfg.World.Width = f.width
	}
	if flags.Changed("height") {
		cfg.World.Height = f.height
	}
	if flags.Changed("probability") {
		cfg.World.Probability = f.probability
	}
	if flags.Changed("world-seed") {
		cfg.World.Seed = f.worldSeed
	}
	if flags.Changed("districts") {
		cfg.Districts = f.districts
	}
	if flags.Changed("seed") {
		cfg.Seed = f.seed
	}
	if flags.Changed("strict") {
		cfg.Strict = f.strict
	}
	if flags.Changed("incremental") {
		cfg.Incremental = f.incremental
	}
	if flags.Changed("tolerance") {
		cfg.Population.Tolerance = f.tolerance
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setup loads configuration, builds the logger, the world and the initial partition.
func (f *runFlags) setup(cmd *cobra.Command) (*config.Config, logging.Logger, *partition.RegionMap, error) {
	cfg, err := f.load(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	log, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, nil, err
	}
	log = log.Named("districts").With(logging.String("cmd", cmd.Name()))

	wd, err := cfg.BuildWorld()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("build world: %w", err)
	}
	rm, err := partition.Build(wd, cfg.Districts, cfg.PartitionOptions(log.Named("partition"))...)
	if err != nil {
		log.Error("partition failed", logging.Err(err))
		return nil, nil, nil, err
	}
	sweeps, err := cfg.Balance(rm)
	if err != nil {
		log.Error("population repair failed", logging.Err(err))
		return nil, nil, nil, err
	}
	log.Info("partition ready",
		logging.Int("width", wd.Width()),
		logging.Int("height", wd.Height()),
		logging.Int("districts", cfg.Districts),
		logging.Int64("seed", cfg.Seed),
		logging.Int("balance_sweeps", sweeps),
	)
	return cfg, log, rm, nil
}
