// Package display renders dangerous errors and input views as
// human-readable diagnostics, with an optional colourized mode ported
// from the ASCII theme idiom used elsewhere in this module family.
package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/clarete/dangerous"
	"github.com/clarete/dangerous/ascii"
)

// FormatToken classifies a fragment of rendered diagnostic text so a
// [Formatter] can colourize it consistently.
type FormatToken int

const (
	TokenNone FormatToken = iota
	TokenSummary
	TokenOperation
	TokenExpected
	TokenSpan
	TokenFrame
)

var theme = map[FormatToken]string{
	TokenNone:      ascii.Reset,
	TokenSummary:   ascii.DefaultTheme.Error,
	TokenOperation: ascii.DefaultTheme.Label,
	TokenExpected:  ascii.DefaultTheme.Literal,
	TokenSpan:      ascii.DefaultTheme.Span,
	TokenFrame:     ascii.DefaultTheme.Muted,
}

// Formatter renders errors and input views as strings, optionally
// colourizing each fragment according to its [FormatToken].
type Formatter struct {
	w    io.Writer
	wrap func(s string, tok FormatToken) string
}

// Plain returns a Formatter that emits uncolourized text.
func Plain() *Formatter {
	return &Formatter{w: os.Stdout, wrap: func(s string, _ FormatToken) string { return s }}
}

// To rebinds f's output writer, returning f for chaining.
func (f *Formatter) To(w io.Writer) *Formatter {
	f.w = w
	return f
}

// Colourized returns a Formatter whose Fprint writes ANSI-coloured
// text to w, using the package's default theme.
func Colourized(w io.Writer) *Formatter {
	return &Formatter{
		w: w,
		wrap: func(s string, tok FormatToken) string {
			return theme[tok] + s + theme[TokenNone]
		},
	}
}

func (f *Formatter) token(s string, tok FormatToken) string { return f.wrap(s, tok) }

// FormatError renders err as an [ErrorDisplay]'s string.
func (f *Formatter) FormatError(err error) string {
	return NewErrorDisplay(err).render(f)
}

// Fprint writes the rendering of err to the Formatter's bound writer.
func (f *Formatter) Fprint(err error) error {
	_, werr := io.WriteString(f.w, f.FormatError(err)+"\n")
	return werr
}

// contextualError is implemented by the three structured error
// variants and by ExpectedError (FatalError and InvalidError carry no
// context and do not implement it); it is how ErrorDisplay recovers a
// backtrace without this package needing access to unexported fields.
type contextualError interface {
	error
	Context() []dangerous.Context
}

// spannedError is implemented by the three structured error variants
// and by ExpectedError; it is how ErrorDisplay recovers an input
// excerpt.
type spannedError interface {
	error
	Span() dangerous.Input
}

// ErrorDisplay renders a dangerous error as: a one-line summary, an
// optional numbered backtrace (outermost-to-innermost), and an
// optional input excerpt pointing at the failing span.
type ErrorDisplay struct {
	err error
}

// NewErrorDisplay wraps err for rendering.
func NewErrorDisplay(err error) ErrorDisplay { return ErrorDisplay{err: err} }

// String implements fmt.Stringer with plain (uncolourized) rendering.
func (d ErrorDisplay) String() string { return d.render(Plain()) }

func (d ErrorDisplay) render(f *Formatter) string {
	var b strings.Builder
	b.WriteString(f.token(d.err.Error(), TokenSummary))

	if ce, ok := d.err.(contextualError); ok {
		if ctx := ce.Context(); len(ctx) > 0 {
			b.WriteString("\n")
			b.WriteString(f.token("backtrace:", TokenFrame))
			for i, c := range ctx {
				fmt.Fprintf(&b, "\n  %d. %s", i+1, f.token(c.String(), TokenOperation))
			}
		}
	}

	if se, ok := d.err.(spannedError); ok {
		view := se.Span().Display()
		b.WriteString("\n")
		b.WriteString(f.token("at: ", TokenFrame))
		b.WriteString(f.token(view.String(), TokenSpan))
		fmt.Fprintf(&b, "\n    %s", f.token(view.Caret(), TokenSpan))
	}

	return b.String()
}
