package report

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gobend/internal/engine"
	"github.com/alexiusacademia/gobend/internal/section"
	"github.com/alexiusacademia/gobend/internal/units"
)

// Row is one labelled value of a result, already in display units
type Row struct {
	Label string
	Value float64
	Unit  string
	Prec  int
}

// String formats the value with its unit
func (r Row) String() string {
	if r.Unit == "" {
		return fmt.Sprintf("%.*f", r.Prec, r.Value)
	}
	return fmt.Sprintf("%.*f %s", r.Prec, r.Value, r.Unit)
}

// Strings pairs each label with its formatted value
func Strings(rows []Row) [][2]string {
	out := make([][2]string, len(rows))
	for i, r := range rows {
		out[i] = [2]string{r.Label, r.String()}
	}
	return out
}

// areaPower converts mm^n to in^n
func areaPower(v float64, n int, system units.System) (float64, string) {
	sup := map[int]string{2: "²", 3: "³", 4: "⁴"}[n]
	if system == units.Imperial {
		return v / math.Pow(units.MillimetersPerInch, float64(n)), "in" + sup
	}
	return v, "mm" + sup
}

func converted(label string, v float64, kind units.Kind, system units.System, prec int) Row {
	return Row{Label: label, Value: units.MustFromCanonical(v, kind, system), Unit: units.Symbol(kind, system), Prec: prec}
}

// SectionRows lists the section properties of r
func SectionRows(r *engine.Result, system units.System) []Row {
	return PropertyRows(section.Properties{
		MomentOfInertia: r.MomentOfInertia,
		SectionModulus:  r.SectionModulus,
		Area:            r.Area,
	}, system)
}

// PropertyRows lists I, S and A of a section on its own
func PropertyRows(p section.Properties, system units.System) []Row {
	i, iu := areaPower(p.MomentOfInertia, 4, system)
	s, su := areaPower(p.SectionModulus, 3, system)
	a, au := areaPower(p.Area, 2, system)
	rows := []Row{
		{Label: "Moment of inertia (I)", Value: i, Unit: iu, Prec: 2},
		{Label: "Section modulus (S)", Value: s, Unit: su, Prec: 2},
		{Label: "Area (A)", Value: a, Unit: au, Prec: 2},
	}
	if p.Depth > 0 {
		rows = append(rows, converted("Depth (h)", p.Depth, units.LengthSmall, system, 2))
	}
	return rows
}

// ResultRows lists the bending response of r
func ResultRows(r *engine.Result, system units.System) []Row {
	rows := []Row{
		converted("Span (L)", r.Span, units.LengthSpan, system, 3),
		converted("Max bending moment", r.MaxBendingMoment, units.Moment, system, 2),
		converted("Max bending stress", r.MaxStress, units.Stress, system, 2),
		converted("Max deflection", r.MaxDeflection, units.LengthSmall, system, 3),
		{Label: "Stress / yield strength", Value: r.StressRatio, Prec: 3},
	}
	if r.MassPerLength > 0 {
		rows = append(rows, Row{Label: "Mass per length", Value: r.MassPerLength, Unit: "kg/m", Prec: 2})
	}
	return rows
}

// MaterialRows lists the material constants of r
func MaterialRows(r *engine.Result, system units.System) []Row {
	rows := []Row{
		converted("Elastic modulus (E)", r.Material.ElasticModulus, units.Modulus, system, 2),
		converted("Yield strength (fy)", r.Material.YieldStrength, units.Stress, system, 2),
	}
	if r.Material.Density > 0 {
		rows = append(rows, converted("Density", r.Material.Density, units.Density, system, 1))
	}
	return rows
}
