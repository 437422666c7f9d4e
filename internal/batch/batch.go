package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/alexiusacademia/gobend/internal/engine"
	"github.com/alexiusacademia/gobend/internal/section"
)

var ErrEmptySheet = errors.New("sheet has no data rows")

// Row is one spreadsheet line turned into a request.
// Err is set when the line itself could not be read.
type Row struct {
	Line    int
	Name    string
	Request engine.Request
	Err     error
}

// Outcome pairs a row with its analysis
type Outcome struct {
	Row
	Result *engine.Result
}

// Columns with a fixed meaning; any other header is a section or load field
const (
	colName           = "name"
	colUnits          = "units"
	colSupport        = "support"
	colSection        = "section"
	colLoad           = "load"
	colSpan           = "span"
	colMaterial       = "material"
	colElasticModulus = "elastic_modulus"
	colYieldStrength  = "yield_strength"
	colDensity        = "density"
)

// ReadWorkbook parses the first sheet of an XLSX workbook. The first row is the header.
func ReadWorkbook(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, ErrEmptySheet
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(h)), " ", "_")
	}

	var out []Row
	for i := 1; i < len(rows); i++ {
		if blank(rows[i]) {
			continue
		}
		out = append(out, parseRow(header, rows[i], i+1))
	}
	if len(out) == 0 {
		return nil, ErrEmptySheet
	}
	return out, nil
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func parseRow(header, cells []string, line int) Row {
	row := Row{Line: line, Name: fmt.Sprintf("row %d", line)}
	req := &row.Request
	extra := make(map[string]float64)

	number := func(col, s string) float64 {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil && row.Err == nil {
			row.Err = fmt.Errorf("line %d column %q: %q is not a number", line, col, s)
		}
		return v
	}

	for i, col := range header {
		if i >= len(cells) {
			break
		}
		s := strings.TrimSpace(cells[i])
		if s == "" || col == "" {
			continue
		}
		switch col {
		case colName:
			row.Name = s
		case colUnits:
			req.Units = s
		case colSupport:
			req.Support = s
		case colSection:
			req.Section = s
		case colLoad:
			req.Load = s
		case colMaterial:
			req.Material.Name = s
		case colSpan:
			req.Span = number(col, s)
		case colElasticModulus:
			req.Material.ElasticModulus = number(col, s)
		case colYieldStrength:
			req.Material.YieldStrength = number(col, s)
		case colDensity:
			req.Material.Density = number(col, s)
		default:
			extra[col] = number(col, s)
		}
	}

	// route the remaining columns by the fields the row's shape declares
	req.SectionParams = make(map[string]float64)
	req.LoadParams = make(map[string]float64)
	// an unknown shape declares no fields and is reported by the engine
	shape, _ := section.ParseShape(req.Section)
	known := make(map[string]bool)
	for _, f := range section.Fields[shape] {
		known[f] = true
	}
	for col, v := range extra {
		if known[section.FieldName(shape, col)] {
			req.SectionParams[col] = v
		} else {
			req.LoadParams[col] = v
		}
	}
	return row
}

// Run analyzes rows on up to workers goroutines; workers <= 0 uses GOMAXPROCS.
// Row failures are recorded on the outcome and do not stop the batch.
func Run(ctx context.Context, eng *engine.Engine, rows []Row, workers int, logger *zap.SugaredLogger) ([]Outcome, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	out := make([]Outcome, len(rows))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, row := range rows {
		out[i].Row = row
		if row.Err != nil {
			logger.Warnw("skipping unreadable row", "line", row.Line, "error", row.Err)
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := eng.Analyze(row.Request)
			if err != nil {
				logger.Debugw("row failed", "line", row.Line, "name", row.Name, "error", err)
				out[i].Err = err
				return nil
			}
			out[i].Result = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
