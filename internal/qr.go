package internal

import (
	"bufio"
	"fmt"
	"io"

	"rsc.io/qr"
)

// qrQuiet is the light border, in modules, around the code.
const qrQuiet = 2

// RenderQR writes text as a QR code using Unicode half blocks, two module
// rows per line. Blocks mark light modules so the code scans on dark
// terminals.
func RenderQR(w io.Writer, text string) error {
	code, err := qr.Encode(text, qr.M)
	if err != nil {
		return fmt.Errorf("encode qr: %w", err)
	}

	bw := bufio.NewWriter(w)
	lo, hi := -qrQuiet, code.Size+qrQuiet
	for y := lo; y < hi; y += 2 {
		for x := lo; x < hi; x++ {
			top := !code.Black(x, y)
			bottom := y+1 >= hi || !code.Black(x, y+1)
			switch {
			case top && bottom:
				bw.WriteRune('█')
			case top:
				bw.WriteRune('▀')
			case bottom:
				bw.WriteRune('▄')
			default:
				bw.WriteRune(' ')
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
