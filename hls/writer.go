package hls

import (
	"fmt"
	"strconv"

	"github.com/avtext/subtext/internal/abiresult"
)

// WriteVersionHeader writes "#EXTM3U\n#EXT-X-VERSION:<version>\n" into dst
// followed by a NUL terminator, following the two-pass capacity protocol:
// called with dst == nil or len(dst) == 0 it reports the required length
// (including the terminator) as OutOfSpace without writing; called with a
// short but nonzero dst it writes a safely NUL-terminated prefix and still
// reports OutOfSpace; called with sufficient capacity it writes the full
// header plus terminator and returns nil.
func WriteVersionHeader(version int, dst []byte) (int, error) {
	out := "#EXTM3U\n#EXT-X-VERSION:" + strconv.Itoa(version) + "\n"
	required := len(out) + 1
	if len(dst) == 0 {
		return required, fmt.Errorf("%w: required=%d", abiresult.OutOfSpace, required)
	}
	if len(dst) < required {
		n := len(dst) - 1
		if n > len(out) {
			n = len(out)
		}
		copy(dst, out[:n])
		dst[n] = 0
		return required, fmt.Errorf("%w: required=%d", abiresult.OutOfSpace, required)
	}
	n := copy(dst, out)
	dst[n] = 0
	return required, nil
}
