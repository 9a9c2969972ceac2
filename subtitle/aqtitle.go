package subtitle

import (
	"bytes"

	"github.com/avtext/subtext/internal/ascii"
)

// AQTitleMarker parses an AQTitle "-->> frame" marker line: the literal
// "-->>" token, whitespace, then a signed decimal frame number.
func AQTitleMarker(line []byte) (frame int64, consumed int, ok bool) {
	const marker = "-->>"
	if !bytes.HasPrefix(line, []byte(marker)) {
		return 0, 0, false
	}
	i := len(marker)
	rest := ascii.TrimLeadingSpace(line[i:])
	i += len(line[i:]) - len(rest)
	v, n, k := ascii.ScanInt(line[i:], -1<<62, 1<<62-1)
	if !k {
		return 0, 0, false
	}
	return v, i + n, true
}
