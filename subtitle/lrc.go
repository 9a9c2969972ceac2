package subtitle

import (
	"github.com/avtext/subtext/internal/ascii"
	"github.com/avtext/subtext/internal/tstamp"
)

// LRCCountTSPrefix returns the byte length of the leading timestamp group
// on an LRC line (a run of one or more "[mm:ss.xxx]" tags), 0 if none.
func LRCCountTSPrefix(line []byte) int {
	i := 0
	for {
		_, n, ok := tstamp.LRC(line[i:])
		if !ok {
			break
		}
		i += n
	}
	return i
}

// LRCReadTS parses one leading LRC timestamp, returning the time in
// microseconds and the bytes consumed.
func LRCReadTS(line []byte) (us int64, consumed int, ok bool) {
	return tstamp.LRC(line)
}

// LRCLine is one LRC line's first timestamp tag, with the payload as
// everything after that tag (leading whitespace skipped).
type LRCLine struct {
	StartUs int64
	Text    Slice
}

// LRC parses one LRC line with exactly one leading timestamp tag (multiple
// tags sharing one payload are handled by the caller repeating this call
// at each tag's offset).
func LRC(line []byte, lineOffset int) (LRCLine, error) {
	us, n, ok := tstamp.LRC(line)
	if !ok {
		return LRCLine{}, errParse("bad timestamp")
	}
	text := ascii.TrimLeadingSpace(line[n:])
	textStart := len(line) - len(text)
	return LRCLine{
		StartUs: us,
		Text:    Slice{Offset: lineOffset + textStart, Length: len(text)},
	}, nil
}
