package subtitle

import (
	"bytes"

	"github.com/avtext/subtext/internal/ascii"
)

// SAMIStart parses one "Start=value" directive into milliseconds.
// Leading/trailing whitespace around the value is tolerated; an
// out-of-range value saturates and is reported as a parse error (spec.md
// §4.C's overflow policy).
func SAMIStart(param []byte) (ms int64, err error) {
	v := ascii.Trim(param)
	if bytes.HasPrefix(v, []byte("Start=")) {
		v = v[len("Start="):]
	}
	v = ascii.Trim(v)
	n, consumed, ok := ascii.ScanInt(v, 0, 1<<62-1)
	if !ok || consumed != len(v) {
		return 0, errParse("bad Start value")
	}
	if n == 1<<62-1 {
		return n, errParse("Start value overflow")
	}
	return n, nil
}
