package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gopherrouting/ddpp/dot"
	"github.com/gopherrouting/ddpp/search"
	"github.com/gopherrouting/ddpp/sim"
	"github.com/gopherrouting/ddpp/stats"
	"github.com/gopherrouting/ddpp/units"
)

func run(w io.Writer, cfg runConfig) error {
	f, err := os.Open(cfg.net)
	if err != nil {
		return err
	}
	defer f.Close()

	g, err := dot.Load(f)
	if err != nil {
		return fmt.Errorf("loading %s: %w", cfg.net, err)
	}

	population, err := sim.Lookup(cfg.population)
	if err != nil {
		return err
	}

	var algs search.Algorithm
	if cfg.gd {
		algs |= search.GD
	}
	if cfg.ee {
		algs |= search.EE
	}
	if cfg.bf {
		algs |= search.BF
	}

	model := units.Model{Reach: float64(cfg.units)}
	s := sim.New(g, model, cfg.ol, cfg.mht, cfg.mnu, population,
		sim.WithAlgorithm(algs),
		sim.WithSeed(cfg.seed),
	)

	result, err := s.Run(cfg.arrivals)
	if err != nil {
		return err
	}

	var costs stats.Accumulator
	costs.AddAll(result.AcceptedJointCost)

	report := stats.NewReport()
	report.Set("arrivals", float64(result.Arrivals))
	report.Set("blocked", float64(result.Blocked))
	if result.Arrivals > 0 {
		report.Set("blocking_probability", float64(result.Blocked)/float64(result.Arrivals))
	}
	report.Set("mean_joint_cost", costs.Mean())
	report.Set("joint_cost_stddev", costs.StdDev())

	_, err = report.WriteTo(w)
	return err
}
