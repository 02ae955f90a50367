package ieee754

import "github.com/calebcase/ieee754/layout"

// Kind is the classification of a bit pattern.
type Kind uint8

const (
	Normalized Kind = iota
	Zero
	Denormalized
	Infinity
	NaN
)

func (k Kind) String() string {
	switch k {
	case Normalized:
		return "normalized"
	case Zero:
		return "zero"
	case Denormalized:
		return "denormalized"
	case Infinity:
		return "infinity"
	case NaN:
		return "nan"
	}

	return "unknown"
}

// Finite returns true for kinds with an exact rational value.
func (k Kind) Finite() bool {
	switch k {
	case Normalized, Zero, Denormalized:
		return true
	}

	return false
}

// rule matches a predicate triple over the exponent and mantissa
// fields.
type rule struct {
	expZero  bool
	expOnes  bool
	mantZero bool

	kind Kind
}

func (r rule) match(expZero, expOnes, mantZero bool) bool {
	return r.expZero == expZero &&
		r.expOnes == expOnes &&
		r.mantZero == mantZero
}

type rules []rule

func (rs rules) match(expZero, expOnes, mantZero bool) Kind {
	for _, r := range rs {
		if r.match(expZero, expOnes, mantZero) {
			return r.kind
		}
	}

	return Normalized
}

// kinds is the single source of truth for the five way classification.
// Both the encoder and the decoder go through it; neither direction
// carries its own special case logic.
var kinds = rules{
	{true, false, true, Zero},
	{true, false, false, Denormalized},
	{false, true, true, Infinity},
	{false, true, false, NaN},
	{false, false, true, Normalized},
	{false, false, false, Normalized},
}

// ClassifyFields returns the kind of a split pattern.
func ClassifyFields(l layout.Layout, exponent, mantissa uint64) Kind {
	return kinds.match(
		exponent == 0,
		exponent == l.MaxBiasedExponent(),
		mantissa == 0,
	)
}

// Classify returns the kind of a full pattern.
func Classify(l layout.Layout, pattern uint64) Kind {
	_, exponent, mantissa := l.Split(pattern)

	return ClassifyFields(l, exponent, mantissa)
}

// Kind returns the classification of the pattern under a layout.
func (b Bits) Kind(l layout.Layout) Kind {
	return Classify(l, b.Pattern)
}
