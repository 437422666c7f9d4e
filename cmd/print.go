package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/alexiusacademia/gobend/internal/engine"
	"github.com/alexiusacademia/gobend/internal/report"
	"github.com/alexiusacademia/gobend/internal/units"
)

const rule = "───────────────────────────────────────────────────────────────"

func printHeading(out io.Writer, title string) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintf(out, "          %s\n", title)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)
}

func printRows(out io.Writer, title string, rows []report.Row) {
	fmt.Fprintln(out, title)
	fmt.Fprintln(out, rule)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, r := range rows {
		fmt.Fprintf(w, "  %s:\t%s\n", r.Label, r.String())
	}
	w.Flush()
	fmt.Fprintln(out)
}

// printResult writes the full analysis report of one case
func printResult(out io.Writer, name string, r *engine.Result, system units.System) {
	printHeading(out, "BEAM BENDING ANALYSIS")
	if name != "" {
		fmt.Fprintf(out, "  Case: %s\n\n", name)
	}

	fmt.Fprintln(out, "CONFIGURATION:")
	fmt.Fprintln(out, rule)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Section:\t%s\n", r.Section.Label())
	fmt.Fprintf(w, "  Load case:\t%s\n", r.Load.Label())
	fmt.Fprintf(w, "  Support:\t%s\n", r.Support.Label())
	if r.Material.Description != "" {
		fmt.Fprintf(w, "  Material:\t%s (%s)\n", r.Material.Name, r.Material.Description)
	} else {
		fmt.Fprintf(w, "  Material:\t%s\n", r.Material.Name)
	}
	w.Flush()
	fmt.Fprintln(out)

	printRows(out, "SECTION PROPERTIES:", report.SectionRows(r, system))
	printRows(out, "MATERIAL PROPERTIES:", report.MaterialRows(r, system))
	printRows(out, "RESULTS:", report.ResultRows(r, system))
	printNotes(out)
}

func printNotes(out io.Writer) {
	fmt.Fprintln(out, "ASSUMPTIONS:")
	fmt.Fprintln(out, rule)
	for _, a := range engine.Assumptions {
		fmt.Fprintf(out, "  • %s\n", a)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  ⚠ %s\n\n", engine.Disclaimer)
}
