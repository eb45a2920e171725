package trajectory

import "math"

// Flag is the engine-internal flag bitmask (spec 6.3). Bit values are part
// of the contract and must be persisted unchanged across languages.
type Flag uint8

const (
	FlagNone   Flag = 0
	FlagZeroUp Flag = 1 << 0
	FlagZeroDn Flag = 1 << 1
	FlagMach   Flag = 1 << 2
	FlagRange  Flag = 1 << 3
	FlagApex   Flag = 1 << 4
	FlagAll    Flag = FlagRange | FlagZeroUp | FlagZeroDn | FlagMach | FlagApex
)

// Has reports whether the receiver carries every bit of other.
func (f Flag) Has(other Flag) bool {
	return f&other == other
}

// Row is a BaseTrajSample enriched with derived quantities plus the flag
// bitmask recording which filter transitions produced it. Rows may carry
// several flags at once (emission is additive, spec 4.8).
type Row struct {
	BaseTrajSample
	DropAngleRad    float64
	WindageAngleRad float64
	EnergyFtLb      float64
	SpinDriftFt     float64
	SlantHeightFt   float64
	SlantDistanceFt float64
	Flags           Flag
}

// NewRow derives a Row from a base sample. weightGr is the projectile
// weight (for kinetic energy); spinDriftFt is the Litz correction already
// evaluated at this sample's time; lookAngleRad feeds the slant geometry.
func NewRow(sample BaseTrajSample, weightGr, spinDriftFt, lookAngleRad float64, flags Flag) Row {
	speed := sample.Velocity.Magnitude()
	energy := weightGr * speed * speed / 450240.0 // grains*fps^2 -> ft*lbf

	row := Row{
		BaseTrajSample:  sample,
		EnergyFtLb:      energy,
		SpinDriftFt:     spinDriftFt,
		SlantHeightFt:   slantHeight(sample.Position, lookAngleRad),
		SlantDistanceFt: sample.Position.X*math.Cos(lookAngleRad) + sample.Position.Y*math.Sin(lookAngleRad),
		Flags:           flags,
	}
	if sample.Position.X != 0 {
		row.DropAngleRad = math.Atan2(sample.Position.Y, sample.Position.X)
		row.WindageAngleRad = math.Atan2(sample.Position.Z+spinDriftFt, sample.Position.X)
	}
	return row
}

// WithFlags ORs additional flags into the row, matching the filter's
// additive emission semantics.
func (r Row) WithFlags(flags Flag) Row {
	r.Flags |= flags
	return r
}

