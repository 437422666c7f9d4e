package cmd

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobend/internal/diagram"
	"github.com/alexiusacademia/gobend/internal/engine"
	"github.com/alexiusacademia/gobend/internal/load"
	"github.com/alexiusacademia/gobend/internal/units"
)

var (
	momentShowDiagram bool
	momentStations    int
	momentInput       *loadInput
)

var momentCmd = &cobra.Command{
	Use:   "moment",
	Short: "Calculate peak bending moment of a load case",
	Long: `Calculate the peak bending moment of a load case on a single span,
without a section or material.

Closed-form peaks:
  simply supported   point P·a·(L−a)/L   distributed w·L²/8   moment M0
  cantilever         point P·a           distributed w·L²/2   moment M0

Examples:
  # Uniform load on a simply supported 3 m span
  gobend moment --load distributed --intensity 5000 --span 3

  # Point load at midspan with the moment diagram
  gobend moment -l point -P 10000 -a 1.5 -L 3 --diagram

  # Tip load on a cantilever
  gobend moment --support cantilever -l point -P 2000 -a 2 -L 2`,
	RunE: runMoment,
}

func init() {
	rootCmd.AddCommand(momentCmd)

	momentInput = addLoadFlags(momentCmd)

	// Options
	momentCmd.Flags().BoolVar(&momentShowDiagram, "diagram", false, "Show ASCII bending moment diagram")
	momentCmd.Flags().IntVar(&momentStations, "stations", engine.DefaultStations, "Sample points along the span for the diagram")
}

func runMoment(cmd *cobra.Command, args []string) error {
	system, err := units.ParseSystem(unitSystem())
	if err != nil {
		return err
	}
	supportCond, err := load.ParseSupport(supportCondition())
	if err != nil {
		return err
	}
	params, err := momentInput.params(cmd, system)
	if err != nil {
		return err
	}
	lc, err := engine.ResolveLoad(momentInput.kind, params, system)
	if err != nil {
		return err
	}
	spanIn, err := momentInput.spanValue(cmd, system)
	if err != nil {
		return err
	}
	span, err := units.ToCanonical(spanIn, units.LengthSpan, system)
	if err != nil {
		return err
	}

	m, err := load.PeakMoment(lc, span, supportCond)
	if err != nil {
		return err
	}
	peak := units.MustFromCanonical(m, units.Moment, system)

	printHeading(os.Stdout, "BENDING MOMENT")
	fmt.Println("LOAD CASE:")
	fmt.Println(rule)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Load case:\t%s\n", lc.Kind().Label())
	fmt.Fprintf(w, "  Support:\t%s\n", supportCond.Label())
	fmt.Fprintf(w, "  Span (L):\t%.3f %s\n", spanIn, units.Symbol(units.LengthSpan, system))
	fields, err := load.Normalize(lc.Kind(), params)
	if err != nil {
		return err
	}
	for _, k := range slices.Sorted(maps.Keys(fields)) {
		fmt.Fprintf(w, "  %s:\t%.3f %s\n", k, fields[k], units.Symbol(load.Fields[lc.Kind()][k], system))
	}
	w.Flush()
	fmt.Println()

	fmt.Println("RESULT:")
	fmt.Println(rule)
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Max bending moment:\t%.2f %s\n", peak, units.Symbol(units.Moment, system))
	w.Flush()
	fmt.Println()

	if momentShowDiagram {
		p, err := engine.SampleMoment(lc, span, supportCond, momentStations)
		if err != nil {
			return err
		}
		fmt.Println("BENDING MOMENT DIAGRAM:")
		fmt.Println(rule)
		fmt.Print(diagram.DrawMomentDiagram(p))
		fmt.Println()
	}
	return nil
}
