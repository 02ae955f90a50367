// Package ieee754 is a bit exact codec between real numbers and their
// binary floating point patterns.
//
// The encoder takes an exact decimal or rational value and produces
// the pattern for a layout; the decoder takes a pattern and
// reconstructs the exact value it stores. All intermediate arithmetic
// is arbitrary precision, so no host float ever touches the numbers
// and rounding happens exactly once, to nearest with ties to even.
//
//	enc := ieee754.NewEncoder(layout.Single)
//	b, err := enc.EncodeString("5.75")
//	// b.Hex() == "0x40B80000"
//
//	dec := ieee754.NewDecoder(layout.Single)
//	v, err := dec.Decode(b)
//	// v.String() == "5.75"
//
// Overflow, underflow, and invalid operands never raise errors; they
// resolve inside the value domain (infinity, signed zero, NaN) the way
// the standard propagates them. Only malformed text or a pattern of
// the wrong width surfaces as an error.
package ieee754
