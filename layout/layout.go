package layout

import "github.com/zeebo/errs"

var Error = errs.Class("layout")

// Layout is the field geometry for a binary floating point format. A
// pattern is laid out most significant bit first as:
//
//	| sign (1) | biased exponent (ExponentBits) | mantissa (MantissaBits) |
type Layout struct {
	TotalBits    uint8
	ExponentBits uint8
	MantissaBits uint8
}

// Canonical layouts.
var (
	Single = Layout{TotalBits: 32, ExponentBits: 8, MantissaBits: 23}
	Double = Layout{TotalBits: 64, ExponentBits: 11, MantissaBits: 52}
)

// New returns a validated layout.
func New(total, exponent, mantissa uint8) (l Layout, err error) {
	l = Layout{
		TotalBits:    total,
		ExponentBits: exponent,
		MantissaBits: mantissa,
	}

	err = l.Validate()
	if err != nil {
		return Layout{}, err
	}

	return l, nil
}

// Validate checks the layout invariants.
func (l Layout) Validate() error {
	switch {
	case l.TotalBits == 0 || l.TotalBits > 64:
		return Error.New("invalid: total bits %d not in 1..64", l.TotalBits)
	case l.ExponentBits < 2:
		return Error.New("invalid: exponent bits %d < 2", l.ExponentBits)
	case l.MantissaBits < 1:
		return Error.New("invalid: mantissa bits %d < 1", l.MantissaBits)
	case 1+uint(l.ExponentBits)+uint(l.MantissaBits) != uint(l.TotalBits):
		return Error.New(
			"invalid: 1+%d+%d != %d",
			l.ExponentBits, l.MantissaBits, l.TotalBits,
		)
	}

	return nil
}

// Bias is the exponent bias: 2^(ExponentBits-1) - 1.
func (l Layout) Bias() int {
	return (1 << (l.ExponentBits - 1)) - 1
}

// MaxBiasedExponent is the all ones exponent field: 2^ExponentBits - 1.
func (l Layout) MaxBiasedExponent() uint64 {
	return (1 << l.ExponentBits) - 1
}

// MinExponent is the smallest normalized unbiased exponent: 1 - Bias.
func (l Layout) MinExponent() int {
	return 1 - l.Bias()
}

// MaxExponent is the largest finite unbiased exponent.
func (l Layout) MaxExponent() int {
	return int(l.MaxBiasedExponent()) - 1 - l.Bias()
}

// ExponentMask is the exponent field mask, unshifted.
func (l Layout) ExponentMask() uint64 {
	return l.MaxBiasedExponent()
}

// MantissaMask is the mantissa field mask.
func (l Layout) MantissaMask() uint64 {
	if l.MantissaBits == 64 {
		return ^uint64(0)
	}

	return (uint64(1) << l.MantissaBits) - 1
}

// PatternMask covers all TotalBits.
func (l Layout) PatternMask() uint64 {
	if l.TotalBits == 64 {
		return ^uint64(0)
	}

	return (uint64(1) << l.TotalBits) - 1
}

// Pack assembles the fields into a pattern.
func (l Layout) Pack(sign, exponent, mantissa uint64) uint64 {
	p := sign & 1
	p = p<<l.ExponentBits | exponent&l.ExponentMask()
	p = p<<l.MantissaBits | mantissa&l.MantissaMask()

	return p
}

// Split extracts the fields from a pattern.
func (l Layout) Split(pattern uint64) (sign, exponent, mantissa uint64) {
	mantissa = pattern & l.MantissaMask()
	pattern >>= l.MantissaBits

	exponent = pattern & l.ExponentMask()
	pattern >>= l.ExponentBits

	sign = pattern & 1

	return sign, exponent, mantissa
}
