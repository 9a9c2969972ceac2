package subtitle

import "github.com/avtext/subtext/internal/tstamp"

// VPlayerLine is one "H:MM:SS[.CC][: =]text" line, time unit
// centiseconds.
type VPlayerLine struct {
	StartCs int64
	Text    Slice
}

// VPlayer parses one VPlayer line. The delimiter between timestamp and
// text is one of ':', ' ', or '='.
func VPlayer(line []byte, lineOffset int) (VPlayerLine, error) {
	cs, delim, ok := tstamp.VPlayer(line)
	if !ok {
		return VPlayerLine{}, errParse("bad timestamp")
	}
	textStart := delim + 1
	return VPlayerLine{
		StartCs: cs,
		Text:    Slice{Offset: lineOffset + textStart, Length: len(line) - textStart},
	}, nil
}
