package batch

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gobend/internal/engine"
)

const (
	resultsSheet = "Results"
	notesSheet   = "Notes"
)

var resultHeader = []interface{}{
	"Name", "Section", "Load", "Support", "Material", "Span (m)",
	"I (mm⁴)", "S (mm³)", "A (mm²)",
	"Max moment (N·m)", "Max stress (MPa)", "Max deflection (mm)",
	"Stress ratio", "Mass per length (kg/m)", "Error",
}

// WriteWorkbook writes one results line per outcome, in canonical units,
// plus a notes sheet carrying the assumptions and disclaimer.
func WriteWorkbook(w io.Writer, outcomes []Outcome) error {
	f, err := writeFile(outcomes)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

// SaveWorkbook writes the results workbook to path
func SaveWorkbook(path string, outcomes []Outcome) error {
	f, err := writeFile(outcomes)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

func writeFile(outcomes []Outcome) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), resultsSheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(resultsSheet, "A1", &resultHeader); err != nil {
		return nil, err
	}

	for i, o := range outcomes {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := []interface{}{o.Name}
		switch {
		case o.Err != nil:
			values = append(values, o.Request.Section, o.Request.Load, o.Request.Support, o.Request.Material.Name)
			for len(values) < len(resultHeader)-1 {
				values = append(values, nil)
			}
			values = append(values, o.Err.Error())
		case o.Result != nil:
			r := o.Result
			values = append(values,
				string(r.Section), string(r.Load), string(r.Support), r.Material.Name, r.Span,
				r.MomentOfInertia, r.SectionModulus, r.Area,
				r.MaxBendingMoment, r.MaxStress, r.MaxDeflection,
				r.StressRatio, r.MassPerLength, "",
			)
		}
		if err := f.SetSheetRow(resultsSheet, cell, &values); err != nil {
			return nil, err
		}
	}

	if _, err := f.NewSheet(notesSheet); err != nil {
		return nil, err
	}
	notes := append([]string{"Assumptions"}, engine.Assumptions...)
	notes = append(notes, "", engine.Disclaimer)
	for i, n := range notes {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellStr(notesSheet, cell, n); err != nil {
			return nil, err
		}
	}
	return f, nil
}
