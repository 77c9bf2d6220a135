package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/nuflow/nuflow/internal/graph"
	"github.com/nuflow/nuflow/internal/lib"
	"github.com/nuflow/nuflow/internal/params"
	"github.com/nuflow/nuflow/internal/tensor"
	"github.com/spf13/cobra"
)

const version = "v0.1.0-dev"

// rootOptions are the persistent flags.
type rootOptions struct {
	paramsFile string
}

// options are the flags of one command. Each command owns its own copy so
// that flag defaults do not leak between commands.
type options struct {
	root *rootOptions

	edep    bool
	emin    float64
	emax    float64
	n       int
	cosines []float64

	baseline float64
	unit     string
}

func newRootCmd() *cobra.Command {
	ro := &rootOptions{}
	root := &cobra.Command{
		Use:          "nuflow",
		Short:        "Reactor antineutrino IBD kinematics, cross-section and oscillations",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&ro.paramsFile, "params", "", "YAML parameter table overriding the built-in constants")

	root.AddCommand(
		newIBDCmd(ro, "enu", "Antineutrino energy Enu(E, cosθ)", printEnu),
		newIBDCmd(ro, "jacobian", "Jacobian dEnu/dE of the energy conversion", printJacobian),
		newIBDCmd(ro, "xsec", "IBD cross-section dσ/dcosθ at first order in 1/M", printXSec),
		newIBDCmd(ro, "print", "Ports and wiring of the IBD node group", printGroup),
		newOscProbCmd(ro),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "nuflow %s\n", version)
		},
	}
}

func addEnergyFlags(cmd *cobra.Command, o *options, emin, emax float64) {
	cmd.Flags().Float64Var(&o.emin, "emin", emin, "first energy, MeV")
	cmd.Flags().Float64Var(&o.emax, "emax", emax, "last energy, MeV")
	cmd.Flags().IntVar(&o.n, "n", 10, "number of energies")
}

func (o *options) energies() ([]float64, error) {
	if o.n < 1 {
		return nil, fmt.Errorf("--n must be positive, got %d", o.n)
	}
	if o.emax < o.emin {
		return nil, fmt.Errorf("--emax %v is below --emin %v", o.emax, o.emin)
	}
	return tensor.Linspace(o.emin, o.emax, o.n), nil
}

// parameters returns the built-in table updated from --params.
func (o *rootOptions) parameters() (*params.Table, error) {
	table, err := params.Defaults()
	if err != nil {
		return nil, err
	}
	if o.paramsFile == "" {
		return table, nil
	}
	override, err := params.Load(o.paramsFile)
	if err != nil {
		return nil, fmt.Errorf("params %s: %w", o.paramsFile, err)
	}
	table.Update(override)
	return table, nil
}

func newTable(w io.Writer, header ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	for _, h := range header {
		fmt.Fprintf(tw, "%s\t", h)
	}
	fmt.Fprintln(tw)
	return tw
}

func writeRow(tw io.Writer, values ...float64) {
	for _, v := range values {
		fmt.Fprintf(tw, "%s\t", strconv.FormatFloat(v, 'g', 10, 64))
	}
	fmt.Fprintln(tw)
}

// connectParameters connects the table's parameters to the keyword inputs of
// the given port collections.
func connectParameters[T graph.Sink](table *params.Table, inputs ...*graph.Ports[T]) error {
	outs := table.Outputs()
	for _, in := range inputs {
		if _, err := graph.ConnectKeywords(outs, in); err != nil {
			return err
		}
	}
	return nil
}

func newSource(name string, a *tensor.Array) *lib.Array {
	src := lib.NewArray(name, a)
	src.SetLabels(graph.Labels{}, graph.Labels{Text: name})
	return src
}

// closeGraph propagates the types of nodes and evaluates them.
func closeGraph(name string, nodes ...graph.Evaluator) error {
	g := graph.New(name)
	g.Add(nodes...)
	if err := g.Close(); err != nil {
		return err
	}
	return g.Touch()
}
