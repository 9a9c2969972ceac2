// Package subtitle implements the format-specific line/file parsers of
// spec.md §4.D: SubRip, WebVTT, ASS Dialogue, MicroDVD, MPL2, MPSub, PJS,
// STL, VPlayer, JACOsub, LRC, SAMI, RealText, SubViewer, SCC, and MCC.
//
// Every parser here is a pure function over a caller-owned input buffer.
// Line parsers return a single result struct; whole-file parsers
// (SubRip, WebVTT, SCC) return an event slice built with the two-pass
// capacity protocol (see EventsResult). Payload text is never copied: results
// carry (offset, length) slices into the input the caller passed in.
package subtitle

import (
	"fmt"

	"github.com/avtext/subtext/internal/abiresult"
)

// Slice is an (offset, length) range into a caller-owned input buffer.
type Slice struct {
	Offset, Length int
}

// Bytes returns the slice's bytes from buf.
func (s Slice) Bytes(buf []byte) []byte { return buf[s.Offset : s.Offset+s.Length] }

// DurationUnset is the sentinel duration for cues whose end time is not
// known (e.g. an empty MicroDVD/MPL2 end field).
const DurationUnset = -1

// Event is the generic subtitle cue spec.md §3 describes: a start time, a
// duration (or DurationUnset), and a payload slice. The time unit is
// format-specific, documented on each producing function.
type Event struct {
	Start    int64
	Duration int64
	Payload  Slice
}

// EventsResult is the outcome of a whole-file parse: Total is the
// number of cues that exist in the input regardless of capacity,
// Written is how many were actually copied into the caller's
// slice, and Truncated is true when Total > Written.
type EventsResult struct {
	Total     int
	Written   int
	Truncated bool
}

// fillEvents implements the array half of the two-pass capacity protocol:
// all of found is "total", but only as many as fit in dst are copied in.
// There is no InvalidArgs/ParseError signaled here; a capacity shortfall is
// reported through EventsResult.Truncated, not an error return.
func fillEvents(dst []Event, found []Event) ([]Event, EventsResult) {
	res := EventsResult{Total: len(found)}
	n := len(found)
	if n > len(dst) {
		n = len(dst)
	}
	res.Written = n
	res.Truncated = res.Written < res.Total
	copy(dst[:n], found[:n])
	return dst[:n], res
}

func errParse(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{abiresult.ParseError}, args...)...)
}

func errInvalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{abiresult.InvalidArgs}, args...)...)
}
