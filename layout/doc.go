// Package layout describes the bit field geometry of a binary floating
// point format.
//
// A layout is pure configuration: the total width, the exponent field
// width, and the mantissa field width (the sign bit is always exactly
// one bit). Everything else the codec needs is derived from those three
// numbers:
//
//	bias       = 2^(exponentBits - 1) - 1
//	emin       = 1 - bias
//	emax       = (2^exponentBits - 1) - 1 - bias
//
// The two canonical instances are Single (32 = 1 + 8 + 23, bias 127)
// and Double (64 = 1 + 11 + 52, bias 1023). Nothing in the codec is
// allowed to special case them; any layout obeying
//
//	1 + exponentBits + mantissaBits == totalBits
//
// with totalBits <= 64 works, e.g. half precision is New(16, 5, 10).
//
// Pack and Split are the only code that knows where the fields sit
// inside the word. They are plain shift and mask operations over a
// uint64; patterns are never manipulated as strings.
package layout
