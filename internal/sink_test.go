package internal

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClipboard struct {
	writes []string
	err    error
}

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.writes = append(c.writes, text)
	return nil
}

func TestSinkDeliver(t *testing.T) {
	tests := []struct {
		name    string
		quiet   bool
		wantOut string
	}{
		{"prints when not quiet", false, "oak pine\n"},
		{"silent when quiet", true, ""},
	}
	for _, c := range tests {
		t.Run(c.name, func(t *testing.T) {
			var out bytes.Buffer
			clip := &fakeClipboard{}
			err := Sink{Clipboard: clip, Out: &out, Quiet: c.quiet}.Deliver("oak pine")
			require.NoError(t, err)
			assert.Equal(t, []string{"oak pine"}, clip.writes)
			assert.Equal(t, c.wantOut, out.String())
		})
	}
}

func TestSinkClipboardFailure(t *testing.T) {
	cause := errors.New("no display")
	var out bytes.Buffer
	err := Sink{Clipboard: &fakeClipboard{err: cause}, Out: &out}.Deliver("oak pine")

	require.ErrorIs(t, err, ErrClipboard)
	require.ErrorIs(t, err, cause)
	var ce *ClipboardError
	require.True(t, errors.As(err, &ce))
	assert.Empty(t, out.String(), "nothing is printed after a failed clipboard write")
}

func TestSinkQR(t *testing.T) {
	var out bytes.Buffer
	err := Sink{Clipboard: &fakeClipboard{}, Out: &out, QR: true}.Deliver("oak pine")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Greater(t, len(lines), 2)
	assert.Equal(t, "oak pine", lines[0])
	assert.Contains(t, out.String(), "█")
}

func TestRenderQRDimensions(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, RenderQR(&out, "tree river stone"))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	width := len([]rune(lines[0]))
	for _, l := range lines {
		assert.Equal(t, width, len([]rune(l)))
	}
	// Two module rows per line, quiet zone included.
	assert.Equal(t, (width+1)/2, len(lines))
}
