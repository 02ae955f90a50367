package ieee754

import (
	"math/big"
	"strings"

	"github.com/calebcase/ieee754/decimal"
	"github.com/calebcase/ieee754/layout"
)

// Encoder encodes real numbers into bit patterns for one layout. It
// holds no state between calls and is safe for concurrent use.
type Encoder struct {
	layout layout.Layout
}

// NewEncoder returns a new encoder.
func NewEncoder(l layout.Layout) *Encoder {
	return &Encoder{
		layout: l,
	}
}

// EncodeString encodes decimal text. The tokens inf, +inf, -inf,
// infinity, and nan (case insensitive) map to the special patterns;
// everything else must parse as a decimal number.
func (e *Encoder) EncodeString(s string) (b Bits, err error) {
	defer Error.WrapP(&err)

	switch strings.ToLower(s) {
	case "inf", "+inf", "infinity", "+infinity":
		return e.Inf(false), nil
	case "-inf", "-infinity":
		return e.Inf(true), nil
	case "nan", "+nan", "-nan":
		return e.NaN(), nil
	}

	n, err := decimal.Parse(s)
	if err != nil {
		return b, err
	}

	return e.Encode(n), nil
}

// Encode encodes a decimal number.
func (e *Encoder) Encode(n *decimal.Number) Bits {
	return e.encode(n.Negative, n.Abs())
}

// EncodeRat encodes a rational. A nil rational is the not a number
// sentinel and yields the canonical NaN pattern.
func (e *Encoder) EncodeRat(r *big.Rat) Bits {
	if r == nil {
		return e.NaN()
	}

	return e.encode(r.Sign() < 0, new(big.Rat).Abs(r))
}

// EncodeRatio encodes the exact rational num/den. A zero denominator
// follows the standard's propagation: 0/0 is NaN and anything else
// over zero is signed infinity. No error is raised.
func (e *Encoder) EncodeRatio(num, den *big.Int) Bits {
	if den.Sign() == 0 {
		if num.Sign() == 0 {
			return e.NaN()
		}

		return e.Inf(num.Sign() < 0)
	}

	return e.EncodeRat(new(big.Rat).SetFrac(num, den))
}

// Zero returns the signed zero pattern.
func (e *Encoder) Zero(negative bool) Bits {
	return e.assemble(negative, 0, 0)
}

// Inf returns the signed infinity pattern.
func (e *Encoder) Inf(negative bool) Bits {
	return e.assemble(negative, e.layout.MaxBiasedExponent(), 0)
}

// NaN returns the canonical quiet NaN pattern: exponent all ones,
// leading mantissa bit set, sign clear.
func (e *Encoder) NaN() Bits {
	return e.assemble(
		false,
		e.layout.MaxBiasedExponent(),
		uint64(1)<<(e.layout.MantissaBits-1),
	)
}

// encode converts a sign magnitude rational to a pattern.
func (e *Encoder) encode(negative bool, abs *big.Rat) Bits {
	l := e.layout

	if abs.Sign() == 0 {
		return e.Zero(negative)
	}

	num := abs.Num()
	den := abs.Denom()
	mb := int(l.MantissaBits)

	// Position of the leading 1 bit relative to the binary point:
	// 2^exp <= num/den < 2^(exp+1).
	exp := num.BitLen() - den.BitLen()
	if cmpPow2(num, den, exp) < 0 {
		exp--
	}

	if exp < l.MinExponent() {
		// Below the normalized range: re-express against the
		// fixed subnormal exponent, no implicit leading bit.
		m := roundEven(num, den, mb-l.MinExponent())

		switch {
		case m.Sign() == 0:
			// Gradual underflow all the way to zero.
			return e.Zero(negative)
		case m.BitLen() > mb:
			// Rounding carried into the hidden bit position:
			// the value became the smallest normalized one.
			return e.assemble(negative, 1, 0)
		}

		return e.assemble(negative, 0, m.Uint64())
	}

	if exp > l.MaxExponent() {
		return e.Inf(negative)
	}

	// Normalized: mb fraction bits plus the leading 1, rounded to
	// nearest with ties to even on the exact remainder.
	m := roundEven(num, den, mb-exp)

	if m.BitLen() > mb+1 {
		// Carry out of the mantissa: 10.00...0 * 2^exp.
		m.Rsh(m, 1)
		exp++

		if exp > l.MaxExponent() {
			return e.Inf(negative)
		}
	}

	m.SetBit(m, mb, 0)

	return e.assemble(negative, uint64(exp+l.Bias()), m.Uint64())
}

func (e *Encoder) assemble(negative bool, exponent, mantissa uint64) Bits {
	var sign uint64
	if negative {
		sign = 1
	}

	return Bits{
		Pattern: e.layout.Pack(sign, exponent, mantissa),
		Width:   e.layout.TotalBits,
	}
}

// cmpPow2 compares num/den with 2^exp.
func cmpPow2(num, den *big.Int, exp int) int {
	n := new(big.Int).Set(num)
	d := new(big.Int).Set(den)

	if exp >= 0 {
		d.Lsh(d, uint(exp))
	} else {
		n.Lsh(n, uint(-exp))
	}

	return n.Cmp(d)
}

// roundEven returns num * 2^shift / den rounded to nearest, ties to
// even. The remainder of the exact division decides the direction, so
// halfway cases are never misread.
func roundEven(num, den *big.Int, shift int) *big.Int {
	n := new(big.Int).Set(num)
	d := new(big.Int).Set(den)

	if shift >= 0 {
		n.Lsh(n, uint(shift))
	} else {
		d.Lsh(d, uint(-shift))
	}

	q, r := new(big.Int).QuoRem(n, d, new(big.Int))

	r.Lsh(r, 1)
	switch r.Cmp(d) {
	case 1:
		q.Add(q, big.NewInt(1))
	case 0:
		if q.Bit(0) == 1 {
			q.Add(q, big.NewInt(1))
		}
	}

	return q
}
