package subtitle

import (
	"bytes"

	"github.com/avtext/subtext/internal/ascii"
	"github.com/avtext/subtext/internal/tstamp"
)

// WebVTTCue is one cue from a WebVTT file: the numeric timing plus all
// three optional slices spec.md §4.D names (identifier, settings,
// payload), each empty (zero length) when absent.
type WebVTTCue struct {
	StartMs, EndMs int64
	Identifier     Slice
	Settings       Slice
	Payload        Slice
}

// WebVTT parses a whole WebVTT file. The file must begin with "WEBVTT"
// followed by whitespace or a blank line, or the parse fails outright
// (unlike SubRip's per-cue resync, a missing signature invalidates the
// whole file per the format's definition).
func WebVTT(input []byte, dst []WebVTTCue) ([]WebVTTCue, EventsResult, error) {
	lines := ascii.SplitLines(input)
	if len(lines) == 0 {
		return nil, EventsResult{}, errParse("empty input")
	}
	first := lines[0].Bytes(input)
	if !bytes.HasPrefix(first, []byte("WEBVTT")) {
		return nil, EventsResult{}, errParse("missing WEBVTT signature")
	}
	rest := first[len("WEBVTT"):]
	if len(rest) > 0 && !ascii.IsSpace(rest[0]) {
		return nil, EventsResult{}, errParse("missing WEBVTT signature")
	}

	var found []WebVTTCue
	i := 1
	for i < len(lines) {
		line := lines[i].Bytes(input)
		if len(ascii.Trim(line)) == 0 {
			i++
			continue
		}
		var identifier Slice
		arrow := bytes.Index(line, []byte("-->"))
		if arrow < 0 {
			// This line is a cue identifier; the timing line follows.
			identifier = Slice{Offset: lines[i].Start, Length: lines[i].End - lines[i].Start}
			i++
			if i >= len(lines) {
				break
			}
			line = lines[i].Bytes(input)
			arrow = bytes.Index(line, []byte("-->"))
			if arrow < 0 {
				i++
				continue
			}
		}
		startMs, _, ok := tstamp.WebVTT(ascii.TrimLeadingSpace(line[:arrow]))
		if !ok {
			i++
			continue
		}
		lineStart := lines[i].Start
		afterArrowAbs := lineStart + arrow + 3
		afterArrow := line[arrow+3:]
		leadSkip := len(afterArrow) - len(ascii.TrimLeadingSpace(afterArrow))
		afterArrowAbs += leadSkip
		afterArrow = ascii.TrimLeadingSpace(afterArrow)
		endMs, consumed, ok := tstamp.WebVTT(afterArrow)
		if !ok {
			i++
			continue
		}
		settingsRaw := afterArrow[consumed:]
		settingsAbs := afterArrowAbs + consumed
		settingsLeadSkip := len(settingsRaw) - len(ascii.TrimLeadingSpace(settingsRaw))
		settingsAbs += settingsLeadSkip
		settingsBytes := ascii.Trim(settingsRaw)
		var settings Slice
		if len(settingsBytes) > 0 {
			settings = Slice{Offset: settingsAbs, Length: len(settingsBytes)}
		}
		i++

		payloadStartLine := i
		payloadEndLine := i - 1
		for i < len(lines) {
			l := lines[i].Bytes(input)
			if len(ascii.Trim(l)) == 0 {
				break
			}
			payloadEndLine = i
			i++
		}
		var payload Slice
		if payloadEndLine >= payloadStartLine {
			payload = Slice{
				Offset: lines[payloadStartLine].Start,
				Length: lines[payloadEndLine].End - lines[payloadStartLine].Start,
			}
		}
		found = append(found, WebVTTCue{
			StartMs:    startMs,
			EndMs:      endMs,
			Identifier: identifier,
			Settings:   settings,
			Payload:    payload,
		})
		if i < len(lines) {
			i++
		}
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
