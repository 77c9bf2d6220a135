package main

import (
	"fmt"
	"io"

	"github.com/nuflow/nuflow/internal/graph"
	"github.com/nuflow/nuflow/internal/reactornu"
	"github.com/nuflow/nuflow/internal/tensor"
	"github.com/spf13/cobra"
)

// ibdRun is an evaluated IBDXsecVBO1Group over an (E, cosθ) mesh.
type ibdRun struct {
	group  *reactornu.IBDXsecVBO1Group
	energy []float64
	ctheta []float64
}

type ibdPrinter func(w io.Writer, r *ibdRun) error

func newIBDCmd(ro *rootOptions, use, short string, printer ibdPrinter) *cobra.Command {
	o := &options{root: ro}
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := buildIBD(o)
			if err != nil {
				return err
			}
			return printer(cmd.OutOrStdout(), r)
		},
	}
	addEnergyFlags(cmd, o, 1, 10)
	cmd.Flags().BoolVar(&o.edep, "edep", false, "energies are deposited energies (positron energy plus electron mass)")
	cmd.Flags().Float64SliceVar(&o.cosines, "costheta", []float64{-1, 0, 1}, "positron scattering angle cosines")
	return cmd
}

func buildIBD(o *options) (*ibdRun, error) {
	table, err := o.root.parameters()
	if err != nil {
		return nil, err
	}
	energies, err := o.energies()
	if err != nil {
		return nil, err
	}
	if len(o.cosines) == 0 {
		return nil, fmt.Errorf("--costheta needs at least one value")
	}
	for _, c := range o.cosines {
		if c < -1 || c > 1 {
			return nil, fmt.Errorf("--costheta %v is out of [-1, 1]", c)
		}
	}

	mode := reactornu.EnergyEe
	if o.edep {
		mode = reactornu.EnergyEdep
	}
	ee, ct, err := tensor.Meshgrid(energies, o.cosines)
	if err != nil {
		return nil, err
	}

	g, err := reactornu.NewIBDXsecVBO1Group(reactornu.GroupNames{}, reactornu.WithEnergyMode(mode))
	if err != nil {
		return nil, err
	}
	eeSrc := newSource(mode.InputName(), ee)
	ctSrc := newSource(reactornu.CosTheta, ct)
	if err := graph.ConnectPositional(g.Inputs(), eeSrc.Output(), ctSrc.Output()); err != nil {
		return nil, err
	}
	if err := connectParameters(table, g.Inputs()); err != nil {
		return nil, err
	}
	if err := closeGraph("ibd", g); err != nil {
		return nil, err
	}
	return &ibdRun{group: g, energy: ee.Data(), ctheta: ct.Data()}, nil
}

func (r *ibdRun) energyHeader() string {
	if r.group.EnergyMode().UseEdep() {
		return "Edep"
	}
	return "Ee"
}

// columns evaluates the named group outputs.
func (r *ibdRun) columns(names ...string) ([][]float64, error) {
	cols := make([][]float64, len(names))
	for i, name := range names {
		out, ok := r.group.Outputs().Get(name)
		if !ok {
			return nil, fmt.Errorf("group has no output %q", name)
		}
		data, err := out.Data()
		if err != nil {
			return nil, err
		}
		cols[i] = data
	}
	return cols, nil
}

func (r *ibdRun) print(w io.Writer, headers []string, outputs ...string) error {
	cols, err := r.columns(outputs...)
	if err != nil {
		return err
	}
	tw := newTable(w, append([]string{r.energyHeader(), "cosθ"}, headers...)...)
	for i := range r.energy {
		row := []float64{r.energy[i], r.ctheta[i]}
		for _, col := range cols {
			row = append(row, col[i])
		}
		writeRow(tw, row...)
	}
	return tw.Flush()
}

func printEnu(w io.Writer, r *ibdRun) error {
	return r.print(w, []string{"Enu"}, reactornu.Enu)
}

func printJacobian(w io.Writer, r *ibdRun) error {
	return r.print(w, []string{"Enu", "dEnu/dE"}, reactornu.Enu, "jacobian")
}

func printXSec(w io.Writer, r *ibdRun) error {
	return r.print(w, []string{"Enu", "dσ/dcosθ[cm²]", "dEnu/dE"}, reactornu.Enu, reactornu.Result, "jacobian")
}

func printGroup(w io.Writer, r *ibdRun) error {
	return graph.Fprint(w, r.group)
}
