// Package hls implements the HLS playlist parser, its event-stream form,
// the streaming client state machine, and the version-header writer
// (spec.md §4.E, §4.F, §4.G).
package hls

// Playlist is the parsed form of one HLS playlist, spec.md §3.
type Playlist struct {
	TargetDurationUs int64
	StartSeqNo       int32
	Finished         bool
	Segments         []Segment
	Variants         []Variant
}

// Segment is one media-playlist entry; its media sequence number is
// StartSeqNo + its index in Playlist.Segments.
type Segment struct {
	DurationUs int64
	URL        string
}

// Variant is one master-playlist entry.
type Variant struct {
	Bandwidth int32
	URL       string
}

// armKind distinguishes what a preceding EXTINF/STREAM-INF line armed the
// next URI line to become, per spec.md §9's suggested tagged variant (the
// deliberate deviation from a two-boolean arm/fire state).
type armKind int

const (
	armNone armKind = iota
	armSegment
	armVariant
)

// arming is "the next non-comment, non-blank line is a segment or variant
// URI", with whatever data that line needs to become a Segment/Variant.
type arming struct {
	kind          armKind
	segDurationUs int64
	varBandwidth  int32
}

// EventKind enumerates the HLS parser's event-stream event kinds,
// spec.md §4.E.
type EventKind int

const (
	EventURI EventKind = iota
	EventEXTINF
	EventSTREAMINF
	EventTARGETDURATION
	EventMEDIASEQUENCE
	EventENDLIST
	EventUNKNOWN
)

// Event is one line's worth of the HLS parser's event-stream form: up to
// two slices into the input and two numeric fields, meaning dependent on
// Kind.
type Event struct {
	Kind   EventKind
	LineNo int

	A, B Slice // (offset, length) into the input text; zero Slice if unused

	I64A, I64B int64
}

// Slice is an (offset, length) range into a caller-owned input buffer.
type Slice struct {
	Offset, Length int
}

// Bytes returns the slice's bytes from buf.
func (s Slice) Bytes(buf []byte) []byte { return buf[s.Offset : s.Offset+s.Length] }

// EventsResult is the outcome of ParseEvents: Total events exist in the
// input regardless of capacity; Written were actually copied into the
// caller's slice.
type EventsResult struct {
	Total     int
	Written   int
	Truncated bool
}
