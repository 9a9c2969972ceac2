package subtitle

import (
	"github.com/avtext/subtext/internal/ascii"
	"github.com/avtext/subtext/internal/tstamp"
)

// SubViewer parses a "HH:MM:SS.mmm,HH:MM:SS.mmm" timing line, returning
// start and duration in milliseconds.
func SubViewer(line []byte) (startMs, durMs int64, consumed int, ok bool) {
	return tstamp.SubViewerPair(line)
}

// SubViewer1 parses the legacy SubViewer 1.0 "[HH:MM:SS]" timestamp tag
// using the generous integer-scan semantics (saturating, no fixed digit
// width) rather than SubViewer's fixed-width fields.
func SubViewer1(b []byte) (startMs int64, consumed int, ok bool) {
	i := 0
	if len(b) == 0 || b[i] != '[' {
		return 0, 0, false
	}
	i++
	h, n, k := ascii.ScanInt(b[i:], 0, 1<<62-1)
	if !k {
		return 0, 0, false
	}
	i += n
	if i >= len(b) || b[i] != ':' {
		return 0, 0, false
	}
	i++
	m, n, k := ascii.ScanInt(b[i:], 0, 1<<62-1)
	if !k {
		return 0, 0, false
	}
	i += n
	if i >= len(b) || b[i] != ':' {
		return 0, 0, false
	}
	i++
	s, n, k := ascii.ScanInt(b[i:], 0, 1<<62-1)
	if !k {
		return 0, 0, false
	}
	i += n
	if i >= len(b) || b[i] != ']' {
		return 0, 0, false
	}
	i++
	return (h*3600 + m*60 + s) * 1000, i, true
}
