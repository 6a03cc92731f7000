package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/districts/logging"
)

func newWalkCmd(f *runFlags) *cobra.Command {
	var steps, edits int
	cmd := &cobra.Command{
		Use:   "walk",
		Short: "Grow a partition, then random-walk it with the mutator",
		Long: `Build a partition and apply up to --steps mutation attempts, stopping
early after --edits accepted flips. Rejected attempts leave the partition
unchanged.

Examples:
  districts walk --steps 500
  districts walk --config run.yaml --strict --edits 20`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, rm, err := f.setup(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("steps") {
				cfg.SetSteps(steps)
			}
			if cmd.Flags().Changed("edits") {
				cfg.SetEdits(edits)
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			start := time.Now()
			accepted := rm.MutateN(cfg.Walk.Edits, cfg.Walk.Steps)
			if err := rm.Validate(); err != nil {
				return err
			}
			log.Info("walk done",
				logging.Int("steps", cfg.Walk.Steps),
				logging.Int("accepted", accepted),
				logging.Duration("took", time.Since(start)),
			)

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, "accepted %d of %d attempts\n", accepted, cfg.Walk.Steps); err != nil {
				return err
			}
			return render(out, rm)
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 0, "Maximum mutation attempts")
	cmd.Flags().IntVar(&edits, "edits", 0, "Stop after this many accepted mutations")
	return cmd
}
