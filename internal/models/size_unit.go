package models

// SizeUnit is the measurement unit a room's size is expressed in.
type SizeUnit string

const (
	SizeUnitSquareFeet   SizeUnit = "sqft"
	SizeUnitSquareMeters SizeUnit = "sqm"
)

// Title returns the human-readable name of the unit, or "" for an
// unknown value.
func (u SizeUnit) Title() string {
	switch u {
	case SizeUnitSquareFeet:
		return "square feet"
	case SizeUnitSquareMeters:
		return "square meters"
	}
	return ""
}

// IsValid reports whether u is one of the known units.
func (u SizeUnit) IsValid() bool {
	return u == SizeUnitSquareFeet || u == SizeUnitSquareMeters
}

// SizeUnitValues lists the accepted wire values in declaration order.
func SizeUnitValues() []string {
	return []string{string(SizeUnitSquareFeet), string(SizeUnitSquareMeters)}
}
