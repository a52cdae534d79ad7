package internal

import (
	"errors"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
)

// Clipboard receives the final passphrase.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

var errNoClipboard = errors.New("no clipboard utility available (install xclip, xsel or wl-clipboard)")

// WriteAll copies text to the OS clipboard.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errNoClipboard
	}
	return clipboard.WriteAll(text)
}

// Sink delivers a passphrase to the clipboard and, unless quiet, to Out.
type Sink struct {
	Clipboard Clipboard
	Out       io.Writer
	Quiet     bool
	// QR additionally renders the passphrase as a terminal QR code.
	QR bool
}

// Deliver writes result to the clipboard exactly once. Nothing is printed if
// that write fails.
func (s Sink) Deliver(result string) error {
	if err := s.Clipboard.WriteAll(result); err != nil {
		return &ClipboardError{Err: err}
	}
	if s.Quiet || s.Out == nil {
		return nil
	}
	if _, err := fmt.Fprintln(s.Out, result); err != nil {
		return fmt.Errorf("write passphrase: %w", err)
	}
	if s.QR {
		return RenderQR(s.Out, result)
	}
	return nil
}
