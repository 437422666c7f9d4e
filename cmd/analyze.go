package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobend/internal/casefile"
	"github.com/alexiusacademia/gobend/internal/diagram"
	"github.com/alexiusacademia/gobend/internal/engine"
	"github.com/alexiusacademia/gobend/internal/report"
	"github.com/alexiusacademia/gobend/internal/units"
)

var (
	analyzeFile        string
	analyzeShowDiagram bool
	analyzePlotDir     string
	analyzePDF         string
	analyzeJSON        bool
	analyzeStations    int
	analyzeInput       *beamInput
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute bending moment, stress and deflection of a beam",
	Long: `Compute section properties, peak bending moment, peak bending stress
and peak deflection of a single-span beam.

Inputs come from flags, or from a JSON/YAML case file holding one or
more cases. Every value is read in the selected unit system:

  metric    dimensions mm, span and position m, force N, line load N/m,
            moment N·m, modulus GPa, stress MPa
  imperial  dimensions, span and position in, force lb, line load lb/in,
            moment lb·in, modulus and stress ksi

Omitted dimension or load flags fall back to the calculator's starting
values (a 50 x 100 mm rectangle, a 5000 N/m load over 3 m).

Examples:
  # Rectangular steel joist under a uniform load
  gobend analyze --shape rectangular --width 50 --height 100 --load distributed --intensity 5000 --span 3

  # Cantilevered I-beam with a tip load, imperial input
  gobend analyze -u imperial --support cantilever -s i_beam --height 8 --flange-width 4 \
    --flange-thickness 0.4 --web-thickness 0.25 -l point -P 1000 -a 120 -L 120

  # All cases in a file, with diagrams and a PDF report
  gobend analyze --file cases.yaml --diagram --pdf report.pdf`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeInput = addBeamFlags(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Case file (JSON or YAML); replaces the beam flags")

	// Output options
	analyzeCmd.Flags().BoolVar(&analyzeShowDiagram, "diagram", false, "Show ASCII section, moment and deflection diagrams")
	analyzeCmd.Flags().StringVarP(&analyzePlotDir, "output", "o", "", "Export section, moment and deflection diagrams (PNG) to this directory")
	analyzeCmd.Flags().StringVar(&analyzePDF, "pdf", "", "Write a PDF report of the first successful case to this file")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print results as JSON")
	analyzeCmd.Flags().IntVar(&analyzeStations, "stations", engine.DefaultStations, "Sample points along the span for diagrams")
}

type namedResult struct {
	Name    string          `json:"name,omitempty"`
	Result  *engine.Result  `json:"result,omitempty"`
	Profile *engine.Profile `json:"profile,omitempty"`
	Error   string          `json:"error,omitempty"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cases, err := analyzeCases(cmd)
	if err != nil {
		return err
	}

	var (
		results  []namedResult
		failed   int
		reported bool
	)
	for i, c := range cases {
		system, err := units.ParseSystem(c.Units)
		if err != nil {
			return err
		}
		resolved, err := eng.Resolve(c.Request)
		var r *engine.Result
		if err == nil {
			r, err = engine.AnalyzeCase(resolved)
		}
		if err != nil {
			failed++
			logger.Debugw("case failed", "case", c.Name, "error", err)
			if analyzeJSON {
				results = append(results, namedResult{Name: c.Name, Error: err.Error()})
				continue
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Error analyzing %s: %v\n", caseLabel(c.Name, i), err)
			continue
		}

		var profile *engine.Profile
		if analyzeShowDiagram || analyzePlotDir != "" || analyzePDF != "" || analyzeJSON {
			if profile, err = engine.SampleProfile(resolved, analyzeStations); err != nil {
				return err
			}
		}

		if analyzeJSON {
			results = append(results, namedResult{Name: c.Name, Result: r, Profile: profile})
		} else {
			printResult(os.Stdout, c.Name, r, system)
			if analyzeShowDiagram {
				printDiagrams(resolved, r, profile, system)
			}
		}

		var images []string
		if analyzePlotDir != "" {
			if images, err = exportDiagrams(analyzePlotDir, fmt.Sprintf("case%d", i+1), resolved, profile); err != nil {
				return err
			}
			if !analyzeJSON {
				fmt.Printf("  Diagrams exported to: %s\n\n", analyzePlotDir)
			}
		}
		if analyzePDF != "" && !reported {
			if err := writePDF(c.Name, r, system, images); err != nil {
				return err
			}
			reported = true
			if !analyzeJSON {
				fmt.Printf("  Report written to: %s\n\n", analyzePDF)
			}
		}
	}

	if analyzePDF != "" && !reported {
		fmt.Fprintf(cmd.ErrOrStderr(), "No report written to %s: no case succeeded\n", analyzePDF)
	}
	if analyzeJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d cases failed", failed, len(cases))
	}
	return nil
}

func caseLabel(name string, i int) string {
	if name != "" {
		return name
	}
	return fmt.Sprintf("case %d", i+1)
}

func analyzeCases(cmd *cobra.Command) ([]casefile.Case, error) {
	if analyzeFile == "" {
		req, err := analyzeInput.request(cmd)
		if err != nil {
			return nil, err
		}
		return []casefile.Case{{Request: req}}, nil
	}

	f, err := casefile.LoadFromFile(analyzeFile)
	if err != nil {
		return nil, fmt.Errorf("loading case file: %w", err)
	}
	// command line and config fill what the file leaves open
	for i := range f.Cases {
		c := &f.Cases[i]
		if c.Units == "" {
			c.Units = unitSystem()
		}
		if c.Support == "" {
			c.Support = supportCondition()
		}
		if c.Material == (engine.MaterialInput{}) {
			c.Material.Name = appConfig.Material
		}
	}
	logger.Debugw("case file loaded", "path", analyzeFile, "cases", len(f.Cases))
	return f.Cases, nil
}

func printDiagrams(c engine.Case, r *engine.Result, p *engine.Profile, system units.System) {
	if o, err := c.Geometry.Outline(); err == nil {
		fmt.Println("SECTION:")
		fmt.Println(rule)
		fmt.Print(diagram.DrawSectionOutline(o, 30))
		fmt.Println()
	}
	fmt.Println("BENDING MOMENT DIAGRAM:")
	fmt.Println(rule)
	fmt.Print(diagram.DrawMomentDiagram(p))
	fmt.Println()
	fmt.Println("ELASTIC CURVE:")
	fmt.Println(rule)
	fmt.Print(diagram.DrawDeflectionDiagram(p))
	fmt.Println()

	var lines []string
	for _, row := range report.ResultRows(r, system)[1:4] {
		lines = append(lines, fmt.Sprintf("%s: %s", row.Label, row.String()))
	}
	fmt.Print(diagram.DrawSummaryBox("PEAK VALUES", lines))
	fmt.Println()
}

func exportDiagrams(dir, prefix string, c engine.Case, p *engine.Profile) ([]string, error) {
	section := filepath.Join(dir, prefix+"-section.png")
	moment := filepath.Join(dir, prefix+"-moment.png")
	deflection := filepath.Join(dir, prefix+"-deflection.png")

	o, err := c.Geometry.Outline()
	if err != nil {
		return nil, err
	}
	if err := diagram.ExportSectionDiagram(o, c.Geometry.Shape().Label(), section); err != nil {
		return nil, fmt.Errorf("exporting section diagram: %w", err)
	}
	if err := diagram.ExportMomentDiagram(p, moment); err != nil {
		return nil, fmt.Errorf("exporting moment diagram: %w", err)
	}
	if err := diagram.ExportDeflectionDiagram(p, deflection); err != nil {
		return nil, fmt.Errorf("exporting deflection diagram: %w", err)
	}
	return []string{section, moment, deflection}, nil
}

func writePDF(name string, r *engine.Result, system units.System, images []string) error {
	f, err := os.Create(analyzePDF)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := report.Write(f, report.Report{Project: name, Units: system, Result: r, Images: images}); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return f.Close()
}
