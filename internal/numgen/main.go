// Command numgen generates the fixed-width integer and float read
// methods on *dangerous.BytesReader.
//
// Usage:
//
//	go run ./internal/numgen -output numeric.go   (from the module root)
//
// Each entry in the width table below produces one LE and one BE
// method (U8/I8 have no endianness and produce a single method);
// widening the table and rerunning is the only supported way to add a
// new width.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"text/template"
)

type width struct {
	Name     string // "U32"
	Bits     int    // 32
	Bytes    int    // 4
	GoType   string // "uint32"
	Float    bool
	NoEndian bool
}

var widths = []width{
	{Name: "U8", Bits: 8, Bytes: 1, GoType: "uint8", NoEndian: true},
	{Name: "I8", Bits: 8, Bytes: 1, GoType: "int8", NoEndian: true},
	{Name: "U16", Bits: 16, Bytes: 2, GoType: "uint16"},
	{Name: "I16", Bits: 16, Bytes: 2, GoType: "int16"},
	{Name: "U32", Bits: 32, Bytes: 4, GoType: "uint32"},
	{Name: "I32", Bits: 32, Bytes: 4, GoType: "int32"},
	{Name: "U64", Bits: 64, Bytes: 8, GoType: "uint64"},
	{Name: "I64", Bits: 64, Bytes: 8, GoType: "int64"},
	{Name: "F32", Bits: 32, Bytes: 4, GoType: "float32", Float: true},
	{Name: "F64", Bits: 64, Bytes: 8, GoType: "float64", Float: true},
}

const tmplSrc = `// Code generated by internal/numgen. DO NOT EDIT.

package dangerous

import (
	"encoding/binary"
	"math"
)

{{range .}}
{{if .NoEndian}}
// Read{{.Name}} reads one {{.GoType}}.
func (r *BytesReader) Read{{.Name}}() ({{.GoType}}, error) {
	b, err := r.Take({{.Bytes}})
	if err != nil {
		return 0, newExpectedLengthError("read {{.Name}}", AtLeast({{.Bytes}}), r.input)
	}
	return {{.GoType}}(b.Bytes()[0]), nil
}
{{else}}
// Read{{.Name}}LE reads one little-endian {{.GoType}}.
func (r *BytesReader) Read{{.Name}}LE() ({{.GoType}}, error) {
	b, err := r.Take({{.Bytes}})
	if err != nil {
		return 0, newExpectedLengthError("read {{.Name}}le", AtLeast({{.Bytes}}), r.input)
	}
	{{if .Float}}return math.Float{{.Bits}}frombits(binary.LittleEndian.Uint{{.Bits}}(b.Bytes())), nil
	{{else}}return {{.GoType}}(binary.LittleEndian.Uint{{.Bits}}(b.Bytes())), nil
	{{end}}}

// Read{{.Name}}BE reads one big-endian {{.GoType}}.
func (r *BytesReader) Read{{.Name}}BE() ({{.GoType}}, error) {
	b, err := r.Take({{.Bytes}})
	if err != nil {
		return 0, newExpectedLengthError("read {{.Name}}be", AtLeast({{.Bytes}}), r.input)
	}
	{{if .Float}}return math.Float{{.Bits}}frombits(binary.BigEndian.Uint{{.Bits}}(b.Bytes())), nil
	{{else}}return {{.GoType}}(binary.BigEndian.Uint{{.Bits}}(b.Bytes())), nil
	{{end}}}
{{end}}
{{end}}
`

func main() {
	output := flag.String("output", "numeric.go", "file to write")
	flag.Parse()

	t := template.Must(template.New("numeric").Parse(tmplSrc))
	var buf bytes.Buffer
	if err := t.Execute(&buf, widths); err != nil {
		fmt.Fprintln(os.Stderr, "numgen:", err)
		os.Exit(1)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		fmt.Fprintln(os.Stderr, "numgen: formatting output:", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*output, formatted, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "numgen:", err)
		os.Exit(1)
	}
}
