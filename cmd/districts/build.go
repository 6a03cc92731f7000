package main

import (
	"github.com/spf13/cobra"
)

func newBuildCmd(f *runFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Grow a random partition and print it",
		Long: `Seed one border cell per district and grow every district until the
grid is covered, then print the label grid and per-district tallies.

Examples:
  districts build -n 3 --width 12 --height 8
  districts build --config run.yaml --seed 9`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _, rm, err := f.setup(cmd)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), rm)
		},
	}
}
