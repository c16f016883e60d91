// Command dangerousfmt decodes a small illustrative format from stdin
// (or a -hex literal) with a hand-rolled parser built directly on
// dangerous.Reader, and prints either the decoded value or a
// diagnostic produced by the dangerous/display package.
//
// Usage:
//
//	echo -n 'name=ed,lang=go' | dangerousfmt -format kv
//	dangerousfmt -format tlv -hex 01000568656c6c6f
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/clarete/dangerous/display"
)

type args struct {
	format *string
	hex    *string
	color  *bool
}

func readArgs() *args {
	a := &args{
		format: flag.String("format", "tlv", "Input format to decode. Options: 'tlv' and 'kv'"),
		hex:    flag.String("hex", "", "Hex-encoded input literal (default: read stdin)"),
		color:  flag.Bool("color", true, "Colourize diagnostics"),
	}
	flag.Parse()
	return a
}

func main() {
	a := readArgs()

	data, err := readInput(*a.hex)
	if err != nil {
		log.Fatal(err)
	}

	var formatter *display.Formatter
	if *a.color {
		formatter = display.Colourized(os.Stderr)
	} else {
		formatter = display.Plain().To(os.Stderr)
	}

	switch *a.format {
	case "tlv":
		records, err := decodeTLV(data)
		if err != nil {
			formatter.Fprint(err)
			os.Exit(1)
		}
		for _, rec := range records {
			fmt.Printf("tag=0x%02x len=%d value=% x\n", rec.Tag, len(rec.Value), rec.Value)
		}
	case "kv":
		pairs, err := decodeKV(string(data))
		if err != nil {
			formatter.Fprint(err)
			os.Exit(1)
		}
		for _, kv := range pairs {
			fmt.Printf("%s=%s\n", kv.Key, kv.Value)
		}
	default:
		log.Fatalf("unknown format %q", *a.format)
	}
}

func readInput(hexLiteral string) ([]byte, error) {
	if hexLiteral != "" {
		return hex.DecodeString(hexLiteral)
	}
	return io.ReadAll(os.Stdin)
}
