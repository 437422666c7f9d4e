package units

// Scaling between canonical units. The formulas combine section properties in mm
// with spans in m and moduli in GPa; every such step goes through these helpers.

const (
	MillimetersPerMeter      = 1000.0
	MegapascalsPerGigapascal = 1000.0

	squareMillimetersPerSquareMeter = 1e6
)

// MetersToMillimeters converts a span or position in m to mm
func MetersToMillimeters(m float64) float64 { return m * MillimetersPerMeter }

// MillimetersToMeters converts mm to m
func MillimetersToMeters(mm float64) float64 { return mm / MillimetersPerMeter }

// NewtonMetersToNewtonMillimeters converts a moment in N·m to N·mm
func NewtonMetersToNewtonMillimeters(nm float64) float64 { return nm * MillimetersPerMeter }

// NewtonsPerMeterToNewtonsPerMillimeter converts a line load in N/m to N/mm
func NewtonsPerMeterToNewtonsPerMillimeter(npm float64) float64 { return npm / MillimetersPerMeter }

// GigapascalsToMegapascals converts a modulus in GPa to MPa (N/mm²)
func GigapascalsToMegapascals(gpa float64) float64 { return gpa * MegapascalsPerGigapascal }

// SquareMillimetersToSquareMeters converts an area in mm² to m²
func SquareMillimetersToSquareMeters(mm2 float64) float64 {
	return mm2 / squareMillimetersPerSquareMeter
}
