// Command ddpp simulates connection requests against a spectrum-aware
// network topology, routing each with the generic Dijkstra search, the
// edge-exclusion search, or both, and reports blocking and cost
// statistics.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg runConfig

	cmd := &cobra.Command{
		Use:   "ddpp",
		Short: "simulate edge-disjoint, spectrum-feasible path-pair routing",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.net, "net", "", "the network topology file, in the DOT subset dot.Load accepts")
	flags.IntVar(&cfg.units, "units", 0, "the reference modulation's reach, in the adaptive units model")
	flags.BoolVar(&cfg.gd, "gd", false, "run the generic Dijkstra search")
	flags.BoolVar(&cfg.bf, "bf", false, "corroborate with the brute force search (requires --gd)")
	flags.BoolVar(&cfg.ee, "ee", false, "run the edge exclusion search")
	flags.Float64Var(&cfg.ol, "ol", 0, "the offered load")
	flags.Float64Var(&cfg.mht, "mht", 0, "the mean holding time")
	flags.Float64Var(&cfg.mnu, "mnu", 0, "the mean number of units")
	flags.Int64Var(&cfg.seed, "seed", 1, "the seed of the random number generator")
	flags.StringVar(&cfg.population, "population", "uniform", "the source/destination sampling scheme")
	flags.IntVar(&cfg.arrivals, "arrivals", 10000, "the number of connection arrivals to simulate")

	for _, name := range []string{"net", "units", "ol", "mht", "mnu"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}
