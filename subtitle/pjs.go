package subtitle

import (
	"bytes"

	"github.com/avtext/subtext/internal/ascii"
)

// PJSLine is one PJS "start,end,"payload"" line, time unit format-defined
// (centiseconds).
type PJSLine struct {
	Start, End int64
	Payload    Slice
}

// PJS parses one PJS line. Fails if the quotes around payload are absent
// or unmatched.
func PJS(line []byte, lineOffset int) (PJSLine, error) {
	start, n, ok := ascii.ScanInt(line, -1<<62, 1<<62-1)
	if !ok {
		return PJSLine{}, errParse("bad start field")
	}
	rest := line[n:]
	if len(rest) == 0 || rest[0] != ',' {
		return PJSLine{}, errParse("missing comma after start")
	}
	rest = rest[1:]
	end, n2, ok := ascii.ScanInt(rest, -1<<62, 1<<62-1)
	if !ok {
		return PJSLine{}, errParse("bad end field")
	}
	rest = rest[n2:]
	if len(rest) == 0 || rest[0] != ',' {
		return PJSLine{}, errParse("missing comma after end")
	}
	rest = ascii.TrimLeadingSpace(rest[1:])
	if len(rest) == 0 || rest[0] != '"' {
		return PJSLine{}, errParse("missing opening quote")
	}
	closeIdx := bytes.IndexByte(rest[1:], '"')
	if closeIdx < 0 {
		return PJSLine{}, errParse("unmatched quote")
	}
	payloadStart := len(line) - len(rest) + 1
	return PJSLine{
		Start:   start,
		End:     end,
		Payload: Slice{Offset: lineOffset + payloadStart, Length: closeIdx},
	}, nil
}
