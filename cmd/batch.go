package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobend/internal/batch"
	"github.com/alexiusacademia/gobend/internal/engine"
)

var (
	batchInput   string
	batchOutput  string
	batchWorkers int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Analyze every row of a spreadsheet",
	Long: `Analyze a batch of beams listed in an XLSX workbook and write the
results to a new workbook.

The first sheet is read. Its first row is the header:

  name, units, support, section, load, span, material,
  elastic_modulus, yield_strength, density

Any other column is a dimension (width, height, outer_diameter, ...)
or a load field (magnitude, position, intensity). Empty units and
support cells fall back to --units and --support.

Rows that fail are reported in the output with their error; the rest
of the batch still runs.

Examples:
  gobend batch --input beams.xlsx --output results.xlsx
  gobend batch -i beams.xlsx -o results.xlsx --workers 4`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchInput, "input", "i", "", "Input workbook (xlsx) [required]")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "results.xlsx", "Output workbook (xlsx)")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "Concurrent analyses (default GOMAXPROCS)")
	batchCmd.MarkFlagRequired("input")
}

func runBatch(cmd *cobra.Command, args []string) error {
	f, err := os.Open(batchInput)
	if err != nil {
		return err
	}
	defer f.Close()

	rows, err := batch.ReadWorkbook(f)
	if err != nil {
		return err
	}
	for i := range rows {
		r := &rows[i].Request
		if r.Units == "" {
			r.Units = unitSystem()
		}
		if r.Support == "" {
			r.Support = supportCondition()
		}
		if r.Material == (engine.MaterialInput{}) {
			r.Material.Name = appConfig.Material
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Infow("batch started", "input", batchInput, "rows", len(rows), "workers", batchWorkers)
	outcomes, err := batch.Run(ctx, eng, rows, batchWorkers, logger)
	if err != nil {
		return err
	}
	if err := batch.SaveWorkbook(batchOutput, outcomes); err != nil {
		return err
	}

	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
			fmt.Printf("  line %d (%s): %v\n", o.Line, o.Name, o.Err)
		}
	}
	fmt.Printf("\n  Analyzed %d rows, %d failed. Results written to: %s\n\n", len(outcomes), failed, batchOutput)
	return nil
}
