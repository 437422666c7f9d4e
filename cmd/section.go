package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobend/internal/section"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Cross-section properties",
	Long: `Compute the bending properties of a cross-section without a load.

Supported shapes and their dimensions:
  rectangular         width, height
  circular            diameter
  hollow_rectangular  outer_width, outer_height, wall_thickness
  hollow_circular     outer_diameter, wall_thickness
  i_beam              height, flange_width, flange_thickness, web_thickness
  t_beam              recognized, properties not implemented

Subcommands:
  analyze  - Calculate I, S and A of a section
  shapes   - List the supported shapes and their dimensions`,
}

var sectionShapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "List supported cross-section shapes",
	Run: func(cmd *cobra.Command, args []string) {
		printHeading(os.Stdout, "CROSS-SECTION SHAPES")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Shape\tName\tDimensions\n")
		fmt.Fprintf(w, "  ─────\t────\t──────────\n")
		for _, s := range section.Shapes {
			fields := strings.Join(section.Fields[s], ", ")
			if s == section.ShapeTBeam {
				fields += " (not implemented)"
			}
			fmt.Fprintf(w, "  %s\t%s\t%s\n", s, s.Label(), fields)
		}
		w.Flush()
		fmt.Println()
	},
}

func init() {
	rootCmd.AddCommand(sectionCmd)
	sectionCmd.AddCommand(sectionShapesCmd)
}
