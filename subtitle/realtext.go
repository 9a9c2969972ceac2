package subtitle

import "github.com/avtext/subtext/internal/tstamp"

// RealText decodes a RealText timestamp (decimal seconds with up to two
// fractional digits, or the legacy "HH:MM:SS.cc" form), returning
// centiseconds and the bytes consumed.
func RealText(b []byte) (cs int64, consumed int, ok bool) {
	return tstamp.RealText(b)
}
