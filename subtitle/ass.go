package subtitle

import (
	"bytes"

	"github.com/avtext/subtext/internal/ascii"
	"github.com/avtext/subtext/internal/tstamp"
)

// ASSDialogue is the parsed form of one "Dialogue:" line: Layer, Start, End
// in centiseconds, and TextOffset/TextLength delimiting the Text field
// (field 10 of 10, commas included).
type ASSDialogue struct {
	Layer      int
	StartCs    int64
	EndCs      int64
	TextOffset int // offset (absolute, into the input) of field 10, Text
	TextLength int
}

// ASS parses one Dialogue line: "Dialogue: Layer,Start,End,Style,Name,
// MarginL,MarginR,MarginV,Effect,Text". Layer also accepts the legacy
// "Marked=..." spelling, which always resolves to layer 0.
func ASS(line []byte) (ASSDialogue, error) {
	const prefix = "Dialogue:"
	if !bytes.HasPrefix(line, []byte(prefix)) {
		return ASSDialogue{}, errParse("missing Dialogue: prefix")
	}
	rest := ascii.TrimLeadingSpace(line[len(prefix):])

	fields := splitFieldsN(rest, ',', 10)
	if len(fields) < 10 {
		return ASSDialogue{}, errParse("expected 10 comma-separated fields, got %d", len(fields))
	}

	layerField := ascii.Trim(fields[0])
	var layer int
	if bytes.HasPrefix(layerField, []byte("Marked=")) {
		layer = 0
	} else {
		layer = atoiLoose(layerField)
	}

	startCs, _, ok := tstamp.ASS(ascii.Trim(fields[1]))
	if !ok {
		return ASSDialogue{}, errParse("bad start timestamp")
	}
	endCs, _, ok := tstamp.ASS(ascii.Trim(fields[2]))
	if !ok {
		return ASSDialogue{}, errParse("bad end timestamp")
	}

	textField := fields[9]

	return ASSDialogue{
		Layer:      layer,
		StartCs:    startCs,
		EndCs:      endCs,
		TextOffset: fieldAbsOffset(line, rest, fields, 9),
		TextLength: len(textField),
	}, nil
}

// splitFieldsN splits b on sep into at most n fields; the last field keeps
// any further separators verbatim (ASS text may contain commas).
func splitFieldsN(b []byte, sep byte, n int) [][]byte {
	var out [][]byte
	start := 0
	for len(out) < n-1 {
		idx := bytes.IndexByte(b[start:], sep)
		if idx < 0 {
			break
		}
		out = append(out, b[start:start+idx])
		start += idx + 1
	}
	out = append(out, b[start:])
	return out
}

func fieldAbsOffset(line []byte, rest []byte, fields [][]byte, idx int) int {
	// Fields are contiguous slices of rest in order, so the absolute
	// offset of fields[idx] is base + (its start within rest).
	off := 0
	for i := 0; i < idx; i++ {
		off += len(fields[i]) + 1 // +1 for the separator consumed
	}
	return (len(line) - len(rest)) + off
}

func atoiLoose(b []byte) int {
	i := 0
	neg := false
	if i < len(b) && (b[i] == '+' || b[i] == '-') {
		neg = b[i] == '-'
		i++
	}
	v := 0
	for i < len(b) && ascii.IsDigit(b[i]) {
		v = v*10 + int(b[i]-'0')
		i++
	}
	if neg {
		v = -v
	}
	return v
}
