// Package fftext decodes strings stored in the game's own character table.
//
// Printable bytes are the Mac Roman code points shifted down by 0x20; 0xE0
// and up are control codes and 0xFF ends the string.
package fftext

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
)

const (
	terminator   = 0xFF
	controlStart = 0xE0
)

var controls = map[byte]string{
	0xE0: "{CHOICE}",
	0xE1: "\t",
	0xE2: ", ",
	0xE3: ".\"",
	0xE4: "…\"",
	0xE7: "\n",
}

// Decode converts a fixed-size name buffer to a string.
func Decode(b []byte) string {
	var sb strings.Builder
	for _, c := range b {
		if c == terminator {
			break
		}
		if c >= controlStart {
			sb.WriteString(controls[c])
			continue
		}
		sb.WriteRune(charmap.Macintosh.DecodeByte(c + 0x20))
	}
	return sb.String()
}

// Encode is the inverse of Decode for printable text. Runes outside the
// table are dropped. The result is padded with 0xFF up to size when size > 0.
func Encode(s string, size int) []byte {
	out := make([]byte, 0, max(size, len(s)))
	for _, r := range s {
		b, ok := charmap.Macintosh.EncodeRune(r)
		if !ok || b < 0x20 {
			continue
		}
		out = append(out, b-0x20)
	}
	if size > 0 {
		if len(out) > size {
			out = out[:size]
		}
		for len(out) < size {
			out = append(out, terminator)
		}
	}
	return out
}
