package subtitle

import "github.com/avtext/subtext/internal/tstamp"

// MicroDVDLine is one "{start}{end}text" line, time unit frames. An empty
// end field ("{}") reports DurationFrames == DurationUnset.
type MicroDVDLine struct {
	StartFrames    int64
	DurationFrames int64
	Text           Slice
}

// MicroDVD parses one MicroDVD line. lineOffset is the absolute offset of
// line within the caller's input, used to make Text an absolute slice.
func MicroDVD(line []byte, lineOffset int) (MicroDVDLine, error) {
	start, n, _, ok := tstamp.MicroDVDField(line)
	if !ok {
		return MicroDVDLine{}, errParse("bad start field")
	}
	rest := line[n:]
	end, n2, empty, ok := tstamp.MicroDVDField(rest)
	if !ok {
		return MicroDVDLine{}, errParse("bad end field")
	}
	textStart := n + n2
	dur := end - start
	if empty {
		dur = DurationUnset
	}
	return MicroDVDLine{
		StartFrames:    start,
		DurationFrames: dur,
		Text:           Slice{Offset: lineOffset + textStart, Length: len(line) - textStart},
	}, nil
}
