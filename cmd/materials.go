package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobend/internal/units"
)

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List catalog materials",
	Long: `List the reference materials available to --material, including
any added under "materials" in the config file.

Values are shown in the selected unit system.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		system, err := units.ParseSystem(unitSystem())
		if err != nil {
			return err
		}
		printHeading(os.Stdout, "MATERIAL CATALOG")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Name\tE (%s)\tfy (%s)\tDensity (%s)\tDescription\n",
			units.Symbol(units.Modulus, system), units.Symbol(units.Stress, system), units.Symbol(units.Density, system))
		fmt.Fprintf(w, "  ────\t──────\t───────\t────────────\t───────────\n")
		for _, m := range eng.Catalog().List() {
			e := units.MustFromCanonical(m.ElasticModulus, units.Modulus, system)
			fy := units.MustFromCanonical(m.YieldStrength, units.Stress, system)
			rho := units.MustFromCanonical(m.Density, units.Density, system)
			marker := ""
			if m.Name == appConfig.Material {
				marker = " (default)"
			}
			fmt.Fprintf(w, "  %s%s\t%.1f\t%.1f\t%.1f\t%s\n", m.Name, marker, e, fy, rho, m.Description)
		}
		w.Flush()
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(materialsCmd)
}
