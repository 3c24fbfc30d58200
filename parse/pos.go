package parse

import (
	"bytes"
	"unicode/utf8"
)

// Pos is the byte span [Start, End) of a node in its source.
type Pos struct {
	Start int
	End   int
}

// LineCol returns the zero based line and column (in runes) of the byte
// offset off in src.
func LineCol(src []byte, off int) (line, col int) {
	if off > len(src) {
		off = len(src)
	}
	lineStart := 0
	for i := 0; i < off; i++ {
		if src[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	return line, utf8.RuneCount(src[lineStart:off])
}

// Offset is the inverse of LineCol. Positions past the end of a line clamp
// to the line end, positions past the end of src clamp to len(src).
func Offset(src []byte, line, col int) int {
	off := 0
	for l := 0; l < line; l++ {
		i := bytes.IndexByte(src[off:], '\n')
		if i == -1 {
			return len(src)
		}
		off += i + 1
	}
	for c := 0; c < col && off < len(src) && src[off] != '\n'; c++ {
		_, n := utf8.DecodeRune(src[off:])
		off += n
	}
	return off
}
