package ieee754

import (
	"math/big"

	"github.com/calebcase/ieee754/decimal"
)

// Value is a decoded value: a classification, a sign, and (for finite
// kinds) an exact magnitude.
type Value struct {
	Kind     Kind
	Negative bool

	// Abs is the exact magnitude for finite kinds and nil for
	// Infinity and NaN.
	Abs *big.Rat
}

// Rat returns the signed value as a rational, or nil for Infinity and
// NaN. Positive and negative zero both return 0, so the two compare
// equal numerically even though their patterns differ.
func (v *Value) Rat() *big.Rat {
	if v.Abs == nil {
		return nil
	}

	r := new(big.Rat).Set(v.Abs)
	if v.Negative {
		r.Neg(r)
	}

	return r
}

// Decimal returns the exact decimal form of a finite value.
func (v *Value) Decimal() (n *decimal.Number, ok bool) {
	if v.Abs == nil {
		return nil, false
	}

	return decimal.FromRat(v.Negative, v.Abs)
}

// String renders the value: "NaN", "+Inf", "-Inf", "0", "-0", or the
// exact decimal form ("5.75", "-0.4375", "3").
func (v *Value) String() string {
	switch v.Kind {
	case NaN:
		return "NaN"
	case Infinity:
		if v.Negative {
			return "-Inf"
		}

		return "+Inf"
	}

	n, ok := v.Decimal()
	if !ok {
		// Finite decoded magnitudes always have a power of two
		// denominator, so this is unreachable from Decode.
		return v.Rat().RatString()
	}

	return n.String()
}
