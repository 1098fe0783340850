package parser

import (
	"bufio"
	"io"
	"strings"
)

// maxLineSize bounds a single input line. Evilginx session records embed
// cookie tokens and can run well past bufio's 64 KiB default.
const maxLineSize = 16 * 1024 * 1024

const utf8BOM = "\xEF\xBB\xBF"

// newLineScanner returns a line scanner sized for capture logs.
func newLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return scanner
}

// stripBOM removes a leading UTF-8 byte order mark.
func stripBOM(s string) string {
	return strings.TrimPrefix(s, utf8BOM)
}

// bomReader skips a UTF-8 BOM at the start of r, if present.
func bomReader(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if b, err := br.Peek(len(utf8BOM)); err == nil && string(b) == utf8BOM {
		_, _ = br.Discard(len(utf8BOM))
	}
	return br
}
