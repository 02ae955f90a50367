package ieee754

import (
	"math/big"

	"github.com/calebcase/oops"

	"github.com/calebcase/ieee754/layout"
)

// Decoder decodes bit patterns for one layout. It holds no state
// between calls and is safe for concurrent use.
type Decoder struct {
	layout layout.Layout
}

// NewDecoder returns a new decoder.
func NewDecoder(l layout.Layout) *Decoder {
	return &Decoder{
		layout: l,
	}
}

// Decode classifies a pattern and reconstructs its exact value. The
// pattern width must match the layout.
func (d *Decoder) Decode(b Bits) (v *Value, err error) {
	defer Error.WrapP(&err)

	l := d.layout

	if b.Width != l.TotalBits {
		return nil, oops.Trace(ErrWidthMismatch)
	}

	sign, exponent, mantissa := l.Split(b.Pattern)

	v = &Value{
		Kind:     ClassifyFields(l, exponent, mantissa),
		Negative: sign == 1,
	}

	mb := int(l.MantissaBits)

	switch v.Kind {
	case Zero:
		v.Abs = new(big.Rat)
	case Denormalized:
		// 0.mantissa * 2^(1-bias), no implicit leading bit.
		m := new(big.Int).SetUint64(mantissa)
		v.Abs = shiftRat(m, l.MinExponent()-mb)
	case Normalized:
		// 1.mantissa * 2^(exponent-bias).
		m := new(big.Int).SetUint64(mantissa)
		m.SetBit(m, mb, 1)
		v.Abs = shiftRat(m, int(exponent)-l.Bias()-mb)
	}

	return v, nil
}

// shiftRat returns m * 2^shift as an exact rational.
func shiftRat(m *big.Int, shift int) *big.Rat {
	if shift >= 0 {
		return new(big.Rat).SetInt(new(big.Int).Lsh(m, uint(shift)))
	}

	den := new(big.Int).Lsh(big.NewInt(1), uint(-shift))

	return new(big.Rat).SetFrac(m, den)
}
