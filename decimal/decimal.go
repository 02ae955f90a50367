package decimal

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/zeebo/errs"
)

var Error = errs.Class("decimal")

var (
	one  = big.NewInt(1)
	five = big.NewInt(5)
	ten  = big.NewInt(10)
)

// maxScale bounds the base 10 exponent accepted from text. It is far
// beyond the exponent range of any layout this module can describe
// (double precision tops out near 10^309).
const maxScale = 1 << 20

// Number is a fixed point base 10 number:
//
//	(-1)^sign * value * 10^scale
//
// Value is the magnitude of the unscaled integer; the sign is kept
// separately so that a negative zero survives.
type Number struct {
	Negative bool
	Value    *big.Int
	Scale    int
}

// Parse reads a decimal number from its text form.
//
// The accepted form is an optional sign, digits with an optional
// fractional part, and an optional e/E exponent. Trailing zeros are
// kept as written.
func Parse(s string) (n *Number, err error) {
	defer Error.WrapP(&err)

	rest := s

	n = &Number{}

	switch {
	case strings.HasPrefix(rest, "-"):
		n.Negative = true
		rest = rest[1:]
	case strings.HasPrefix(rest, "+"):
		rest = rest[1:]
	}

	digits := &strings.Builder{}

	i := 0
	for ; i < len(rest) && rest[i] >= '0' && rest[i] <= '9'; i++ {
		digits.WriteByte(rest[i])
	}
	rest = rest[i:]

	if strings.HasPrefix(rest, ".") {
		rest = rest[1:]

		i = 0
		for ; i < len(rest) && rest[i] >= '0' && rest[i] <= '9'; i++ {
			digits.WriteByte(rest[i])
		}
		rest = rest[i:]

		n.Scale = -i
	}

	if digits.Len() == 0 {
		return nil, Error.New("malformed number: %q", s)
	}

	if strings.HasPrefix(rest, "e") || strings.HasPrefix(rest, "E") {
		exp, err := strconv.Atoi(rest[1:])
		if err != nil {
			return nil, Error.New("malformed exponent: %q", s)
		}

		// Bounded so a pathological exponent cannot demand a
		// 10^exp sized integer later.
		if exp > maxScale || exp < -maxScale {
			return nil, Error.New("exponent out of range: %q", s)
		}

		n.Scale += exp
		rest = ""
	}

	if rest != "" {
		return nil, Error.New("malformed number: %q", s)
	}

	n.Value, _ = new(big.Int).SetString(digits.String(), 10)

	return n, nil
}

// FromRat converts a sign magnitude rational into a decimal number. It
// reports false when the value has no finite decimal form (denominator
// with a prime factor other than 2 or 5). The result is normalized: no
// trailing fractional zeros.
func FromRat(negative bool, abs *big.Rat) (n *Number, ok bool) {
	num := new(big.Int).Set(abs.Num())
	den := new(big.Int).Set(abs.Denom())

	// Split the denominator into 2^k2 * 5^k5.
	k2 := 0
	for den.Bit(0) == 0 {
		den.Rsh(den, 1)
		k2++
	}

	k5 := 0
	rem := new(big.Int)
	for {
		q, r := new(big.Int).QuoRem(den, five, rem)
		if r.Sign() != 0 {
			break
		}

		den.Set(q)
		k5++
	}

	if den.Cmp(one) != 0 {
		return nil, false
	}

	// num / (2^k2 * 5^k5) == num * 2^(s-k2) * 5^(s-k5) / 10^s
	s := k2
	if k5 > s {
		s = k5
	}

	num.Lsh(num, uint(s-k2))
	num.Mul(num, new(big.Int).Exp(five, big.NewInt(int64(s-k5)), nil))

	n = &Number{
		Negative: negative,
		Value:    num,
		Scale:    -s,
	}
	n.normalize()

	return n, true
}

// normalize strips trailing fractional zeros.
func (n *Number) normalize() {
	if n.Value.Sign() == 0 {
		n.Scale = 0

		return
	}

	rem := new(big.Int)
	for n.Scale < 0 {
		q, r := new(big.Int).QuoRem(n.Value, ten, rem)
		if r.Sign() != 0 {
			break
		}

		n.Value.Set(q)
		n.Scale++
	}
}

// Abs returns the magnitude as a rational.
func (n *Number) Abs() *big.Rat {
	r := new(big.Rat).SetInt(n.Value)

	scale := big.NewInt(int64(n.Scale))
	pow := new(big.Int).Exp(ten, new(big.Int).Abs(scale), nil)

	if n.Scale >= 0 {
		r.Mul(r, new(big.Rat).SetInt(pow))
	} else {
		r.Quo(r, new(big.Rat).SetInt(pow))
	}

	return r
}

// Rat returns the signed value as a rational. Sign information on a
// zero is lost (big.Rat has no negative zero).
func (n *Number) Rat() *big.Rat {
	r := n.Abs()
	if n.Negative {
		r.Neg(r)
	}

	return r
}

// String renders the number exactly, e.g. "5.75", "-0.4375", "3",
// "-0". Trailing zeros in Value render as held.
func (n *Number) String() string {
	sb := &strings.Builder{}

	if n.Negative {
		sb.WriteString("-")
	}

	digits := n.Value.String()

	switch {
	case n.Scale >= 0:
		sb.WriteString(digits)
		sb.WriteString(strings.Repeat("0", n.Scale))
	case len(digits) <= -n.Scale:
		sb.WriteString("0.")
		sb.WriteString(strings.Repeat("0", -n.Scale-len(digits)))
		sb.WriteString(digits)
	default:
		point := len(digits) + n.Scale
		sb.WriteString(digits[:point])
		sb.WriteString(".")
		sb.WriteString(digits[point:])
	}

	return sb.String()
}
