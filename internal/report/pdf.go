package report

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/gobend/internal/engine"
	"github.com/alexiusacademia/gobend/internal/units"
)

// Report describes one analysis rendered to PDF
type Report struct {
	Title   string
	Project string
	Author  string
	Date    time.Time
	Units   units.System // metric when empty
	Result  *engine.Result
	Images  []string // PNG diagrams appended after the tables
}

// the core fonts only cover cp1252
var superscripts = strings.NewReplacer("⁴", "^4")

// Write renders rep as a PDF document to w
func Write(w io.Writer, rep Report) error {
	if rep.Result == nil {
		return errors.New("report has no result")
	}
	if rep.Title == "" {
		rep.Title = "Beam Bending Report"
	}
	if rep.Date.IsZero() {
		rep.Date = time.Now()
	}
	if rep.Units == "" {
		rep.Units = units.Metric
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string { return tr(superscripts.Replace(s)) }

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, text(rep.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if rep.Project != "" {
		pdf.Cell(0, 6, text(fmt.Sprintf("Project: %s", rep.Project)))
		pdf.Ln(6)
	}
	if rep.Author != "" {
		pdf.Cell(0, 6, text(fmt.Sprintf("Author: %s", rep.Author)))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", rep.Date.Format("2006-01-02")))
	pdf.Ln(10)

	r := rep.Result
	table := func(heading string, rows [][2]string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, text(heading))
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, row := range rows {
			pdf.CellFormat(80, 6, text(row[0]), "B", 0, "L", false, 0, "")
			pdf.CellFormat(70, 6, text(row[1]), "B", 1, "R", false, 0, "")
		}
		pdf.Ln(4)
	}

	table("Configuration", [][2]string{
		{"Section", r.Section.Label()},
		{"Load case", r.Load.Label()},
		{"Support", r.Support.Label()},
		{"Material", materialName(r)},
	})
	table("Section Properties", Strings(SectionRows(r, rep.Units)))
	table("Material", Strings(MaterialRows(r, rep.Units)))
	table("Results", Strings(ResultRows(r, rep.Units)))

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Assumptions")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	for _, a := range engine.Assumptions {
		pdf.Cell(0, 5, text("- "+a))
		pdf.Ln(5)
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 5, text(r.Disclaimer), "", "L", false)

	for _, img := range rep.Images {
		pdf.AddPage()
		pdf.ImageOptions(img, 10, 20, 190, 0, false, gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}, 0, "")
	}

	return pdf.Output(w)
}

func materialName(r *engine.Result) string {
	if r.Material.Description != "" {
		return fmt.Sprintf("%s (%s)", r.Material.Name, r.Material.Description)
	}
	return r.Material.Name
}
