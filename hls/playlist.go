package hls

import (
	"bytes"
	"fmt"

	"github.com/avtext/subtext/internal/abiresult"
	"github.com/avtext/subtext/internal/ascii"
	"github.com/avtext/subtext/internal/urlresolve"
)

var errM3UAbsent = fmt.Errorf("%w: #EXTM3U missing or not first non-empty line", abiresult.ParseError)

// ParseEvents converts playlist text into the flat event stream of
// spec.md §4.E. dst receives up to len(dst) events; EventsResult.Total is
// the number of events present regardless of dst's capacity (the two-pass
// protocol: call with dst == nil to learn Total). strict rejects any
// #EXT* line that isn't one of the recognized tags.
func ParseEvents(text []byte, dst []Event, strict bool) ([]Event, EventsResult, error) {
	lines := ascii.SplitLines(text)
	var found []Event
	sawM3U := false
	firstNonEmpty := true

	for lineNo, l := range lines {
		line := l.Bytes(text)
		trimmed := ascii.Trim(line)
		if len(trimmed) == 0 {
			continue
		}
		if firstNonEmpty {
			firstNonEmpty = false
			if !bytes.Equal(trimmed, []byte("#EXTM3U")) {
				return nil, EventsResult{}, errM3UAbsent
			}
			sawM3U = true
			continue
		}

		ev, recognized, err := classifyLine(line, l.Start, lineNo+1)
		if err != nil {
			return nil, EventsResult{}, err
		}
		if !recognized {
			continue // "#EXTM3U" appearing again carries no event
		}
		if ev.Kind == EventUNKNOWN && strict && hasPrefix(line, "#EXT") {
			return nil, EventsResult{}, fmt.Errorf("%w: unrecognized tag in strict mode: %q", abiresult.ParseError, trimmed)
		}
		found = append(found, ev)
	}
	if !sawM3U {
		return nil, EventsResult{}, errM3UAbsent
	}

	res := EventsResult{Total: len(found)}
	n := len(found)
	if n > len(dst) {
		n = len(dst)
	}
	res.Written = n
	res.Truncated = res.Written < res.Total
	copy(dst[:n], found[:n])
	return dst[:n], res, nil
}

// classifyLine turns one non-blank, non-signature line into an Event.
// recognized is false only for the repeated "#EXTM3U" tag, which carries
// no event of its own.
func classifyLine(line []byte, lineOffset, lineNo int) (Event, bool, error) {
	switch {
	case bytes.Equal(ascii.Trim(line), []byte("#EXTM3U")):
		return Event{}, false, nil

	case hasPrefix(line, "#EXT-X-TARGETDURATION:"):
		val := line[len("#EXT-X-TARGETDURATION:"):]
		n, _, ok := ascii.ScanInt(ascii.Trim(val), 0, 1<<62-1)
		if !ok {
			return Event{}, false, fmt.Errorf("%w: bad EXT-X-TARGETDURATION at line %d", abiresult.ParseError, lineNo)
		}
		return Event{Kind: EventTARGETDURATION, LineNo: lineNo, I64A: n * 1_000_000}, true, nil

	case hasPrefix(line, "#EXT-X-MEDIA-SEQUENCE:"):
		val := line[len("#EXT-X-MEDIA-SEQUENCE:"):]
		n, _, ok := ascii.ScanInt(ascii.Trim(val), 0, 1<<31-1)
		if !ok {
			return Event{}, false, fmt.Errorf("%w: bad EXT-X-MEDIA-SEQUENCE at line %d", abiresult.ParseError, lineNo)
		}
		return Event{Kind: EventMEDIASEQUENCE, LineNo: lineNo, I64A: n}, true, nil

	case bytes.Equal(ascii.Trim(line), []byte("#EXT-X-ENDLIST")):
		return Event{Kind: EventENDLIST, LineNo: lineNo}, true, nil

	case hasPrefix(line, "#EXTINF:"):
		val := line[len("#EXTINF:"):]
		comma := bytes.IndexByte(val, ',')
		durField := val
		var title Slice
		if comma >= 0 {
			durField = val[:comma]
			titleStart := len("#EXTINF:") + comma + 1
			title = Slice{Offset: lineOffset + titleStart, Length: len(line) - titleStart}
		}
		dur, _, ok := ascii.ScanFloat(ascii.Trim(durField))
		if !ok {
			return Event{}, false, fmt.Errorf("%w: bad EXTINF duration at line %d", abiresult.ParseError, lineNo)
		}
		return Event{
			Kind:   EventEXTINF,
			LineNo: lineNo,
			B:      title,
			I64A:   int64(dur*1_000_000 + 0.5),
		}, true, nil

	case hasPrefix(line, "#EXT-X-STREAM-INF:"):
		attrsStart := len("#EXT-X-STREAM-INF:")
		attrs := line[attrsStart:]
		bandwidth, ok := findAttrInt(attrs, "BANDWIDTH")
		if !ok {
			return Event{}, false, fmt.Errorf("%w: EXT-X-STREAM-INF missing BANDWIDTH at line %d", abiresult.ParseError, lineNo)
		}
		return Event{
			Kind:   EventSTREAMINF,
			LineNo: lineNo,
			A:      Slice{Offset: lineOffset + attrsStart, Length: len(attrs)},
			I64A:   bandwidth,
		}, true, nil

	case len(line) > 0 && line[0] == '#':
		return Event{
			Kind:   EventUNKNOWN,
			LineNo: lineNo,
			A:      Slice{Offset: lineOffset, Length: len(line)},
		}, true, nil

	default:
		return Event{
			Kind:   EventURI,
			LineNo: lineNo,
			A:      Slice{Offset: lineOffset, Length: len(line)},
		}, true, nil
	}
}

func hasPrefix(line []byte, prefix string) bool {
	return len(line) >= len(prefix) && string(line[:len(prefix)]) == prefix
}

// findAttrInt finds key=value (value optionally double-quoted) in a
// comma-separated EXT-X-STREAM-INF attribute list and parses value as a
// decimal integer.
func findAttrInt(attrs []byte, key string) (int64, bool) {
	for _, kv := range splitAttrs(attrs) {
		k, v, ok := splitOnce(kv, '=')
		if !ok || string(ascii.Trim(k)) != key {
			continue
		}
		v = ascii.Trim(v)
		v = unquote(v)
		n, consumed, ok := ascii.ScanInt(v, 0, 1<<31-1)
		if !ok || consumed != len(v) {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// splitAttrs splits a STREAM-INF attribute list on commas that are not
// inside a double-quoted value.
func splitAttrs(attrs []byte) [][]byte {
	var out [][]byte
	inQuotes := false
	start := 0
	for i, c := range attrs {
		switch c {
		case '"':
			inQuotes = !inQuotes
		case ',':
			if !inQuotes {
				out = append(out, attrs[start:i])
				start = i + 1
			}
		}
	}
	out = append(out, attrs[start:])
	return out
}

func splitOnce(b []byte, sep byte) (before, after []byte, ok bool) {
	i := bytes.IndexByte(b, sep)
	if i < 0 {
		return nil, nil, false
	}
	return b[:i], b[i+1:], true
}

func unquote(v []byte) []byte {
	if len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"' {
		return v[1 : len(v)-1]
	}
	return v
}

// Parse converts playlist text into a Playlist, resolving segment/variant
// URLs against baseURL. strict rejects unrecognized #EXT* tags.
func Parse(text []byte, baseURL string, resolver urlresolve.Resolver, strict bool) (Playlist, error) {
	_, res, err := ParseEvents(text, nil, strict)
	if err != nil {
		return Playlist{}, err
	}
	events := make([]Event, res.Total)
	_, _, err = ParseEvents(text, events, strict)
	if err != nil {
		return Playlist{}, err
	}

	var pl Playlist
	var arm arming
	for _, ev := range events {
		switch ev.Kind {
		case EventTARGETDURATION:
			pl.TargetDurationUs = ev.I64A
		case EventMEDIASEQUENCE:
			pl.StartSeqNo = int32(ev.I64A)
		case EventENDLIST:
			pl.Finished = true
		case EventEXTINF:
			arm = arming{kind: armSegment, segDurationUs: ev.I64A}
		case EventSTREAMINF:
			arm = arming{kind: armVariant, varBandwidth: int32(ev.I64A)}
		case EventUNKNOWN:
			// tolerated in non-strict mode (strict already failed above);
			// does not disarm.
		case EventURI:
			raw := string(ev.A.Bytes(text))
			resolved, rerr := resolver.Resolve(baseURL, raw)
			if rerr != nil {
				return Playlist{}, fmt.Errorf("%w: resolving %q: %v", abiresult.ParseError, raw, rerr)
			}
			switch arm.kind {
			case armSegment:
				pl.Segments = append(pl.Segments, Segment{DurationUs: arm.segDurationUs, URL: resolved})
			case armVariant:
				pl.Variants = append(pl.Variants, Variant{Bandwidth: arm.varBandwidth, URL: resolved})
			}
			arm = arming{}
		}
	}
	return pl, nil
}

// ParseStrict is Parse with strict mode forced on.
func ParseStrict(text []byte, baseURL string, resolver urlresolve.Resolver) (Playlist, error) {
	return Parse(text, baseURL, resolver, true)
}
