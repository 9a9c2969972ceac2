package subtitle

import (
	"bytes"

	"github.com/avtext/subtext/internal/ascii"
	"github.com/avtext/subtext/internal/tstamp"
)

// SubRip parses a whole SubRip (.srt) file into cue events, time unit
// milliseconds. A cue is an optional numeric index line, then a
// "start --> end [settings]" timing line, then payload lines up to the
// first blank line or EOF. The payload slice spans the inclusive byte
// range of the payload lines, excluding the separating blank line.
//
// dst receives up to len(dst) events; EventsResult.Total is the number of
// cues present in the input regardless of dst's capacity (the two-pass
// protocol: call once with dst == nil to learn Total).
func SubRip(input []byte, dst []Event) ([]Event, EventsResult) {
	lines := ascii.SplitLines(input)
	var found []Event

	i := 0
	for i < len(lines) {
		line := lines[i].Bytes(input)
		if len(ascii.Trim(line)) == 0 {
			i++
			continue
		}
		// Optional numeric index line.
		if isAllDigits(ascii.Trim(line)) {
			i++
			if i >= len(lines) {
				break
			}
			line = lines[i].Bytes(input)
		}
		arrow := bytes.Index(line, []byte("-->"))
		if arrow < 0 {
			// Not a timing line; skip forward to resync on the next
			// blank line rather than failing the whole file.
			i++
			continue
		}
		startMs, _, ok := tstamp.SubRip(ascii.TrimLeadingSpace(line[:arrow]))
		if !ok {
			i++
			continue
		}
		endField := ascii.TrimLeadingSpace(line[arrow+3:])
		endMs, _, ok := tstamp.SubRip(endField)
		if !ok {
			i++
			continue
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
		found = append(found, Event{
			Start:    startMs,
			Duration: endMs - startMs,
			Payload:  payload,
		})
		// consume the trailing blank line, if any
		if i < len(lines) {
			i++
		}
	}

	out, res := fillEvents(dst, found)
	return out, res
}

func isAllDigits(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	for _, c := range b {
		if !ascii.IsDigit(c) {
			return false
		}
	}
	return true
}
