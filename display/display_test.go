package display_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clarete/dangerous"
	"github.com/clarete/dangerous/display"
)

func decodeFails(t *testing.T) error {
	t.Helper()
	_, err := dangerous.ReadAll(dangerous.Bytes([]byte("ab")), func(r *dangerous.BytesReader) (int, error) {
		return 0, dangerous.BytesReaderContext(r, dangerous.Context{Operation: "decode record"},
			func(r *dangerous.BytesReader) (int, error) {
				_, err := r.Take(10)
				return 0, err
			})
	})
	require.Error(t, err)
	return err
}

func TestErrorDisplayPlainRenderingIncludesBacktraceAndExcerpt(t *testing.T) {
	err := decodeFails(t)
	out := display.NewErrorDisplay(err).String()

	assert.Contains(t, out, "backtrace:")
	assert.Contains(t, out, "decode record")
	assert.Contains(t, out, "at: ")
	assert.Contains(t, out, "^", "excerpt must be underlined with a caret line")
}

func TestFormatterPlainEmitsNoEscapeCodes(t *testing.T) {
	err := decodeFails(t)
	var buf bytes.Buffer
	f := display.Plain().To(&buf)
	require.NoError(t, f.Fprint(err))

	assert.False(t, strings.Contains(buf.String(), "\033["), "plain formatter must not emit ANSI codes")
}

func TestFormatterColourizedWrapsEachFragment(t *testing.T) {
	err := decodeFails(t)
	var buf bytes.Buffer
	f := display.Colourized(&buf)
	require.NoError(t, f.Fprint(err))

	assert.Contains(t, buf.String(), "\033[", "colourized formatter must emit ANSI codes")
}

func TestFormatToString(t *testing.T) {
	err := decodeFails(t)
	plain := display.Plain().FormatError(err)
	assert.Equal(t, display.NewErrorDisplay(err).String(), plain)
}
