package main

import (
	"github.com/nuflow/nuflow/internal/graph"
	"github.com/nuflow/nuflow/internal/lib"
	"github.com/nuflow/nuflow/internal/reactornu"
	"github.com/nuflow/nuflow/internal/tensor"
	"github.com/spf13/cobra"
)

func newOscProbCmd(ro *rootOptions) *cobra.Command {
	o := &options{root: ro}
	cmd := &cobra.Command{
		Use:   "oscprob",
		Short: "ν̄e survival probability P(ee) at a baseline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOscProb(cmd, o)
		},
	}
	addEnergyFlags(cmd, o, 1.8, 10)
	cmd.Flags().Float64Var(&o.baseline, "baseline", 52.5, "baseline, in --unit")
	cmd.Flags().StringVar(&o.unit, "unit", string(reactornu.Kilometer), "baseline unit: km or m")
	return cmd
}

func runOscProb(cmd *cobra.Command, o *options) error {
	table, err := o.root.parameters()
	if err != nil {
		return err
	}
	energies, err := o.energies()
	if err != nil {
		return err
	}
	e, err := tensor.FromSlice(energies, tensor.Shape{len(energies)})
	if err != nil {
		return err
	}

	n, err := reactornu.NewNueSurvivalProbability("oscprob", reactornu.WithDistanceUnit(reactornu.DistanceUnit(o.unit)))
	if err != nil {
		return err
	}
	if err := graph.ConnectPositional(n.Inputs(), newSource(reactornu.Enu, e).Output()); err != nil {
		return err
	}

	// The flag wins over a baseline from --params only when given explicitly.
	if _, ok := table.Get(reactornu.Baseline); !ok || cmd.Flags().Changed("baseline") {
		l := lib.NewParameter(reactornu.Baseline, o.baseline, graph.Labels{Text: "baseline, " + o.unit})
		_, err := graph.ConnectKeywords(map[string]*graph.Output{reactornu.Baseline: l.Output()}, n.Inputs())
		if err != nil {
			return err
		}
	}
	if err := connectParameters(table, n.Inputs()); err != nil {
		return err
	}
	if err := closeGraph("oscprob", n); err != nil {
		return err
	}

	p, err := n.Result().Data()
	if err != nil {
		return err
	}
	tw := newTable(cmd.OutOrStdout(), "Enu", n.Labels().Mark)
	for i, v := range p {
		writeRow(tw, energies[i], v)
	}
	return tw.Flush()
}
