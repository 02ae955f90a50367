package ieee754

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"

	"github.com/calebcase/ieee754/layout"
)

var Error = errs.Class("ieee754")

var (
	ErrWidthMismatch = Error.New("bit width mismatch")
	ErrOverflow      = Error.New("pattern wider than layout")
)

// Bits is an encoded bit pattern together with its width. The pattern
// occupies the low Width bits.
type Bits struct {
	Pattern uint64
	Width   uint8
}

// FromUint wraps a raw pattern for a layout. The pattern must fit in
// the layout's total width.
func FromUint(pattern uint64, l layout.Layout) (b Bits, err error) {
	defer Error.WrapP(&err)

	if pattern&^l.PatternMask() != 0 {
		return b, oops.Trace(ErrOverflow)
	}

	return Bits{
		Pattern: pattern,
		Width:   l.TotalBits,
	}, nil
}

// ParseHex reads a pattern from hexadecimal text. A 0x prefix is
// optional. The digit count must match the layout width exactly.
func ParseHex(s string, l layout.Layout) (b Bits, err error) {
	defer Error.WrapP(&err)

	digits := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")

	if len(digits) != hexDigits(l.TotalBits) {
		return b, Error.New(
			"malformed pattern %q: want %d hex digits, got %d",
			s, hexDigits(l.TotalBits), len(digits),
		)
	}

	pattern, perr := strconv.ParseUint(digits, 16, 64)
	if perr != nil {
		return b, Error.New("malformed pattern %q", s)
	}

	return FromUint(pattern, l)
}

// Hex renders the pattern as 0x prefixed hexadecimal, zero padded to
// the pattern width.
func (b Bits) Hex() string {
	return fmt.Sprintf("0x%0*X", hexDigits(b.Width), b.Pattern)
}

// Uint64 returns the raw pattern.
func (b Bits) Uint64() uint64 {
	return b.Pattern
}

// String renders the pattern as binary, zero padded to the width.
// Field grouping needs a layout; see Format.
func (b Bits) String() string {
	return fmt.Sprintf("%0*b", int(b.Width), b.Pattern)
}

// Format renders the pattern as binary with the sign, exponent, and
// mantissa fields separated by underscores, e.g.
// 0_10000001_01110000000000000000000. Display only: the codec itself
// works on the integer pattern.
func (b Bits) Format(l layout.Layout) string {
	sign, exponent, mantissa := l.Split(b.Pattern)

	return fmt.Sprintf(
		"%b_%0*b_%0*b",
		sign,
		int(l.ExponentBits), exponent,
		int(l.MantissaBits), mantissa,
	)
}

// hexDigits is the count of hex digits needed for a bit width.
func hexDigits(bits uint8) int {
	return (int(bits) + 3) / 4
}
