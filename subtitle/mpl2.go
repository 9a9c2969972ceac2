package subtitle

import "github.com/avtext/subtext/internal/tstamp"

// MPL2TickMs is one MPL2 tick: 100ms (1/10s).
const MPL2TickMs = 100

// MPL2Line is one "[start][end]text" MPL2 line, time unit milliseconds
// (ticks already scaled). An empty end field reports DurationMs ==
// DurationUnset.
type MPL2Line struct {
	StartMs    int64
	DurationMs int64
	Text       Slice
}

// MPL2 parses one MPL2 line.
func MPL2(line []byte, lineOffset int) (MPL2Line, error) {
	start, n, ok := tstamp.MPL2Tick(line)
	if !ok {
		return MPL2Line{}, errParse("bad start field")
	}
	rest := line[n:]
	if len(rest) == 0 || rest[0] != '[' {
		return MPL2Line{}, errParse("missing end field")
	}
	if len(rest) > 1 && rest[1] == ']' {
		return MPL2Line{
			StartMs:    start * MPL2TickMs,
			DurationMs: DurationUnset,
			Text:       Slice{Offset: lineOffset + n + 2, Length: len(line) - n - 2},
		}, nil
	}
	end, n2, ok := tstamp.MPL2Tick(rest)
	if !ok {
		return MPL2Line{}, errParse("bad end field")
	}
	textStart := n + n2
	return MPL2Line{
		StartMs:    start * MPL2TickMs,
		DurationMs: (end - start) * MPL2TickMs,
		Text:       Slice{Offset: lineOffset + textStart, Length: len(line) - textStart},
	}, nil
}
