package subtitle

import (
	"github.com/avtext/subtext/internal/ascii"
	"github.com/avtext/subtext/internal/tstamp"
)

// STLLine is one "HH:MM:SS:CC , HH:MM:SS:CC , payload" line, time unit
// centiseconds. Whitespace around the commas is tolerated.
type STLLine struct {
	StartCs, EndCs int64
	Payload        Slice
}

// STL parses one STL line.
func STL(line []byte, lineOffset int) (STLLine, error) {
	startCs, n, ok := tstamp.STL(line)
	if !ok {
		return STLLine{}, errParse("bad start timestamp")
	}
	rest := ascii.TrimLeadingSpace(line[n:])
	if len(rest) == 0 || rest[0] != ',' {
		return STLLine{}, errParse("missing comma after start")
	}
	rest = ascii.TrimLeadingSpace(rest[1:])
	endCs, n2, ok := tstamp.STL(rest)
	if !ok {
		return STLLine{}, errParse("bad end timestamp")
	}
	rest = ascii.TrimLeadingSpace(rest[n2:])
	if len(rest) == 0 || rest[0] != ',' {
		return STLLine{}, errParse("missing comma after end")
	}
	rest = ascii.TrimLeadingSpace(rest[1:])
	payloadStart := len(line) - len(rest)
	return STLLine{
		StartCs: startCs,
		EndCs:   endCs,
		Payload: Slice{Offset: lineOffset + payloadStart, Length: len(rest)},
	}, nil
}
