package generator

import (
	"fmt"
	"math"
	"math/rand"
)

// FieldSpec shapes one numeric column: every value is
// Base + u(-Jitter, Jitter) + Drift*i, rounded to Precision decimal places.
type FieldSpec struct {
	Base      float64 `toml:"base"`
	Jitter    float64 `toml:"jitter"`
	Drift     float64 `toml:"drift"`
	Precision int     `toml:"precision"`
}

// Value returns the field value for row index i.
func (f FieldSpec) Value(r *rand.Rand, i int) float64 {
	return fp(f.Base+u(r, -f.Jitter, f.Jitter)+f.Drift*float64(i), f.Precision)
}

// Bounds returns the closed range Value may fall in for row index i, before
// rounding.
func (f FieldSpec) Bounds(i int) (low, high float64) {
	trend := f.Base + f.Drift*float64(i)
	return trend - f.Jitter, trend + f.Jitter
}

// Validate returns an error if the spec cannot produce values.
func (f FieldSpec) Validate() error {
	if f.Jitter < 0 {
		return fmt.Errorf("jitter must not be negative: %v", f.Jitter)
	}
	if f.Precision < 0 || f.Precision > 15 {
		return fmt.Errorf("precision must be within [0, 15]: %d", f.Precision)
	}
	if math.IsNaN(f.Base) || math.IsInf(f.Base, 0) || math.IsNaN(f.Drift) || math.IsInf(f.Drift, 0) {
		return fmt.Errorf("base and drift must be finite")
	}
	return nil
}

// u is uniform
func u(r *rand.Rand, low, high float64) float64 {
	x := r.Float64()
	x *= high - low
	x += low
	return x
}

// fp is float precision, rounding half away from zero.
func fp(v float64, precision int) float64 {
	p := math.Pow(10, float64(precision))
	return math.Round(v*p) / p
}
