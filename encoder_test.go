package ieee754_test

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/ieee754"
	"github.com/calebcase/ieee754/layout"
)

// half is a 16 bit layout; it proves the codec never hard codes the
// two canonical layouts.
func half(t *testing.T) layout.Layout {
	l, err := layout.New(16, 5, 10)
	require.NoError(t, err)

	return l
}

func TestEncodeString(t *testing.T) {
	type TC struct {
		Input  string
		Layout layout.Layout
		Hex    string
		Mark   error
	}

	tcs := []TC{
		{
			Input:  "-6.25",
			Layout: layout.Single,
			Hex:    "0xC0C80000",
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "5.75",
			Layout: layout.Single,
			Hex:    "0x40B80000",
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "-0.15625",
			Layout: layout.Double,
			Hex:    "0xBFC4000000000000",
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "-15.625",
			Layout: layout.Single,
			Hex:    "0xC17A0000",
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "12.375",
			Layout: layout.Single,
			Hex:    "0x41460000",
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "6.5",
			Layout: layout.Single,
			Hex:    "0x40D00000",
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "0.5",
			Layout: layout.Single,
			Hex:    "0x3F000000",
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "1",
			Layout: layout.Single,
			Hex:    "0x3F800000",
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "2",
			Layout: layout.Single,
			Hex:    "0x40000000",
			Mark:   oops.New("unexpected"),
		},
		{
			// Not exactly representable: rounds up in the
			// last place.
			Input:  "0.1",
			Layout: layout.Single,
			Hex:    "0x3DCCCCCD",
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "0.1",
			Layout: layout.Double,
			Hex:    "0x3FB999999999999A",
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "0",
			Layout: layout.Single,
			Hex:    "0x00000000",
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "-0",
			Layout: layout.Single,
			Hex:    "0x80000000",
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "inf",
			Layout: layout.Single,
			Hex:    "0x7F800000",
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "-Inf",
			Layout: layout.Single,
			Hex:    "0xFF800000",
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "nan",
			Layout: layout.Single,
			Hex:    "0x7FC00000",
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "inf",
			Layout: layout.Double,
			Hex:    "0x7FF0000000000000",
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "nan",
			Layout: layout.Double,
			Hex:    "0x7FF8000000000000",
			Mark:   oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		name := fmt.Sprintf("%02d/%s/%d", i, tc.Input, tc.Layout.TotalBits)
		t.Run(name, func(t *testing.T) {
			e := ieee754.NewEncoder(tc.Layout)

			b, err := e.EncodeString(tc.Input)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Hex, b.Hex(), tc.Mark)
		})
	}
}

func TestEncodeStringMalformed(t *testing.T) {
	e := ieee754.NewEncoder(layout.Single)

	for _, input := range []string{"", ".", "abc", "1.2.3", "0x10", "1e"} {
		t.Run(fmt.Sprintf("%q", input), func(t *testing.T) {
			_, err := e.EncodeString(input)
			require.Error(t, err)
		})
	}
}

func TestEncodeFields(t *testing.T) {
	e := ieee754.NewEncoder(layout.Single)

	b, err := e.EncodeString("-6.25")
	require.NoError(t, err)

	sign, exponent, mantissa := layout.Single.Split(b.Pattern)
	require.Equal(t, uint64(1), sign)
	require.Equal(t, uint64(129), exponent)
	require.Equal(t, uint64(0b100_1000_0000_0000_0000_0000), mantissa)

	b, err = e.EncodeString("5.75")
	require.NoError(t, err)

	sign, exponent, mantissa = layout.Single.Split(b.Pattern)
	require.Equal(t, uint64(0), sign)
	require.Equal(t, uint64(129), exponent)
	require.Equal(t, uint64(0b011_1000_0000_0000_0000_0000), mantissa)
}

func TestEncodeRatio(t *testing.T) {
	pow2 := func(n uint) *big.Int {
		return new(big.Int).Lsh(big.NewInt(1), n)
	}

	type TC struct {
		Name   string
		Num    *big.Int
		Den    *big.Int
		Layout layout.Layout
		Hex    string
		Mark   error
	}

	tcs := []TC{
		{
			Name:   "min normalized",
			Num:    big.NewInt(1),
			Den:    pow2(126),
			Layout: layout.Single,
			Hex:    "0x00800000",
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "min subnormal",
			Num:    big.NewInt(1),
			Den:    pow2(149),
			Layout: layout.Single,
			Hex:    "0x00000001",
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "half of min subnormal ties to zero",
			Num:    big.NewInt(1),
			Den:    pow2(150),
			Layout: layout.Single,
			Hex:    "0x00000000",
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "tie between subnormals rounds to even",
			Num:    big.NewInt(3),
			Den:    pow2(150),
			Layout: layout.Single,
			Hex:    "0x00000002",
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "subnormal rounds up into min normalized",
			Num:    new(big.Int).Sub(pow2(24), big.NewInt(1)),
			Den:    pow2(150),
			Layout: layout.Single,
			Hex:    "0x00800000",
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "max finite",
			Num:    new(big.Int).Lsh(new(big.Int).Sub(pow2(24), big.NewInt(1)), 104),
			Den:    big.NewInt(1),
			Layout: layout.Single,
			Hex:    "0x7F7FFFFF",
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "halfway past max finite overflows",
			Num:    new(big.Int).Lsh(new(big.Int).Sub(pow2(25), big.NewInt(1)), 103),
			Den:    big.NewInt(1),
			Layout: layout.Single,
			Hex:    "0x7F800000",
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "far past max finite overflows",
			Num:    pow2(200),
			Den:    big.NewInt(1),
			Layout: layout.Single,
			Hex:    "0x7F800000",
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "negative overflow",
			Num:    new(big.Int).Neg(pow2(200)),
			Den:    big.NewInt(1),
			Layout: layout.Single,
			Hex:    "0xFF800000",
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "zero over zero is nan",
			Num:    big.NewInt(0),
			Den:    big.NewInt(0),
			Layout: layout.Single,
			Hex:    "0x7FC00000",
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "nonzero over zero is signed infinity",
			Num:    big.NewInt(-5),
			Den:    big.NewInt(0),
			Layout: layout.Single,
			Hex:    "0xFF800000",
			Mark:   oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("%02d/%s", i, tc.Name), func(t *testing.T) {
			e := ieee754.NewEncoder(tc.Layout)

			b := e.EncodeRatio(tc.Num, tc.Den)
			require.Equal(t, tc.Hex, b.Hex(), tc.Mark)
		})
	}
}

func TestEncodeTiesToEven(t *testing.T) {
	type TC struct {
		Input string
		Hex   string
		Mark  error
	}

	// Values straddling the 24th significant bit in single
	// precision.
	tcs := []TC{
		{
			// 1 + 2^-24: halfway, rounds down to even.
			Input: "1.000000059604644775390625",
			Hex:   "0x3F800000",
			Mark:  oops.New("unexpected"),
		},
		{
			// 1 + 2^-23: exactly representable.
			Input: "1.00000011920928955078125",
			Hex:   "0x3F800001",
			Mark:  oops.New("unexpected"),
		},
		{
			// 1 + 3*2^-24: halfway, rounds up to even.
			Input: "1.000000178813934326171875",
			Hex:   "0x3F800002",
			Mark:  oops.New("unexpected"),
		},
	}

	e := ieee754.NewEncoder(layout.Single)

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("%02d/%s", i, tc.Input), func(t *testing.T) {
			b, err := e.EncodeString(tc.Input)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Hex, b.Hex(), tc.Mark)
		})
	}
}

func TestEncodeRatNaNSentinel(t *testing.T) {
	e := ieee754.NewEncoder(layout.Single)

	b := e.EncodeRat(nil)
	require.Equal(t, "0x7FC00000", b.Hex())
	require.Equal(t, ieee754.NaN, b.Kind(layout.Single))
}

func TestEncodeCustomLayout(t *testing.T) {
	l := half(t)
	e := ieee754.NewEncoder(l)

	b, err := e.EncodeString("1.5")
	require.NoError(t, err)
	require.Equal(t, "0x3E00", b.Hex())

	b, err = e.EncodeString("65504")
	require.NoError(t, err)
	require.Equal(t, "0x7BFF", b.Hex())

	// Halfway between the largest finite half and 2^16.
	b, err = e.EncodeString("65520")
	require.NoError(t, err)
	require.Equal(t, "0x7C00", b.Hex())
	require.Equal(t, ieee754.Infinity, b.Kind(l))

	// Smallest subnormal half: 2^-24.
	b = e.EncodeRatio(big.NewInt(1), new(big.Int).Lsh(big.NewInt(1), 24))
	require.Equal(t, "0x0001", b.Hex())
	require.Equal(t, ieee754.Denormalized, b.Kind(l))
}

func TestSignSymmetry(t *testing.T) {
	inputs := []string{
		"6.25", "0.4375", "1", "0.1", "123456.789", "0.0000001",
		"340282350000000000000000000000000000000000",
	}

	layouts := []layout.Layout{layout.Single, layout.Double, half(t)}

	for _, l := range layouts {
		e := ieee754.NewEncoder(l)
		signBit := uint64(1) << (l.TotalBits - 1)

		for _, input := range inputs {
			name := fmt.Sprintf("%d/%s", l.TotalBits, input)
			t.Run(name, func(t *testing.T) {
				pos, err := e.EncodeString(input)
				require.NoError(t, err)

				neg, err := e.EncodeString("-" + input)
				require.NoError(t, err)

				require.Equal(t, signBit, pos.Pattern^neg.Pattern)
			})
		}
	}
}
