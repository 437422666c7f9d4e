package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobend/internal/diagram"
	"github.com/alexiusacademia/gobend/internal/engine"
	"github.com/alexiusacademia/gobend/internal/report"
	"github.com/alexiusacademia/gobend/internal/section"
	"github.com/alexiusacademia/gobend/internal/units"
)

var (
	sectionAnalyzeShowDiagram bool
	sectionAnalyzeExportFile  string
	sectionAnalyzeJSON        bool
	sectionAnalyzeInput       *sectionInput
)

var sectionAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Calculate moment of inertia, section modulus and area",
	Long: `Calculate the moment of inertia (I), elastic section modulus (S)
and area (A) of a cross-section about its horizontal centroidal axis.

Dimensions are read in mm (metric) or in (imperial).

Examples:
  gobend section analyze --shape rectangular --width 50 --height 100
  gobend section analyze -s hollow_circular --outer-diameter 60 --wall-thickness 4 --diagram
  gobend section analyze -s i_beam --height 200 --flange-width 100 \
    --flange-thickness 10 --web-thickness 6 -o ibeam.png`,
	RunE: runSectionAnalyze,
}

func init() {
	sectionCmd.AddCommand(sectionAnalyzeCmd)

	sectionAnalyzeInput = addSectionFlags(sectionAnalyzeCmd)

	// Diagram options
	sectionAnalyzeCmd.Flags().BoolVar(&sectionAnalyzeShowDiagram, "diagram", false, "Show ASCII section outline")
	sectionAnalyzeCmd.Flags().StringVarP(&sectionAnalyzeExportFile, "output", "o", "", "Export section diagram to file (png, svg, pdf)")
	sectionAnalyzeCmd.Flags().BoolVar(&sectionAnalyzeJSON, "json", false, "Print properties as JSON")
}

func runSectionAnalyze(cmd *cobra.Command, args []string) error {
	system, err := units.ParseSystem(unitSystem())
	if err != nil {
		return err
	}
	params, err := sectionAnalyzeInput.params(cmd, system)
	if err != nil {
		return err
	}
	geom, err := engine.ResolveSection(sectionAnalyzeInput.shape, params, system)
	if err != nil {
		return err
	}
	props, err := section.ComputeProperties(geom)
	if err != nil {
		return err
	}
	logger.Debugw("section computed", "shape", geom.Shape(), "I", props.MomentOfInertia, "S", props.SectionModulus)

	if sectionAnalyzeJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Section section.Shape `json:"section"`
			section.Properties
		}{geom.Shape(), props})
	}

	printHeading(os.Stdout, "CROSS-SECTION PROPERTIES")
	fmt.Printf("  Section: %s\n\n", geom.Shape().Label())
	printRows(os.Stdout, "SECTION PROPERTIES:", report.PropertyRows(props, system))

	if sectionAnalyzeShowDiagram || sectionAnalyzeExportFile != "" {
		o, err := geom.Outline()
		if err != nil {
			return err
		}
		if sectionAnalyzeShowDiagram {
			fmt.Println("SECTION:")
			fmt.Println(rule)
			fmt.Print(diagram.DrawSectionOutline(o, 30))
			fmt.Println()
		}
		if sectionAnalyzeExportFile != "" {
			if err := diagram.ExportSectionDiagram(o, geom.Shape().Label(), sectionAnalyzeExportFile); err != nil {
				return fmt.Errorf("exporting diagram: %w", err)
			}
			fmt.Printf("  Diagram exported to: %s\n\n", sectionAnalyzeExportFile)
		}
	}
	return nil
}
