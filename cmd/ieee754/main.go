package main

import (
	"fmt"
	"os"

	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/calebcase/ieee754"
	"github.com/calebcase/ieee754/layout"
)

var (
	app = kingpin.New(
		"ieee754",
		"Encode and decode binary floating point bit patterns.",
	)
	precision = app.Flag(
		"precision",
		"Floating point precision.",
	).Default("single").Enum("single", "double")

	encodeCmd = app.Command(
		"encode",
		"Encode a decimal number into its bit pattern.",
	)
	encodeValue = encodeCmd.Arg(
		"value",
		"Decimal number, inf, -inf, or nan. Use -- before negative values.",
	).Required().String()

	decodeCmd = app.Command(
		"decode",
		"Decode a hexadecimal bit pattern into a decimal number.",
	)
	decodeBits = decodeCmd.Arg(
		"bits",
		"Hexadecimal bit pattern (e.g. 0x40B80000).",
	).Required().String()
)

func chosen() layout.Layout {
	if *precision == "double" {
		return layout.Double
	}

	return layout.Single
}

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	l := chosen()

	switch command {
	case encodeCmd.FullCommand():
		enc := ieee754.NewEncoder(l)

		b, err := enc.EncodeString(*encodeValue)
		app.FatalIfError(err, "encode")

		show(l, b)
	case decodeCmd.FullCommand():
		b, err := ieee754.ParseHex(*decodeBits, l)
		app.FatalIfError(err, "decode")

		show(l, b)
	}
}

// show prints the pattern breakdown and the exact value it stores.
func show(l layout.Layout, b ieee754.Bits) {
	dec := ieee754.NewDecoder(l)

	v, err := dec.Decode(b)
	app.FatalIfError(err, "decode")

	_, exponent, _ := l.Split(b.Pattern)

	fmt.Printf("hex:      %s\n", b.Hex())
	fmt.Printf("bits:     %s\n", b.Format(l))
	fmt.Printf("class:    %s\n", b.Kind(l))

	if v.Kind.Finite() && v.Kind != ieee754.Zero {
		unbiased := int(exponent) - l.Bias()
		if v.Kind == ieee754.Denormalized {
			unbiased = l.MinExponent()
		}

		fmt.Printf("exponent: %d (biased %d)\n", unbiased, exponent)
	}

	fmt.Printf("value:    %s\n", v)
}
