package subtitle

import (
	"github.com/avtext/subtext/internal/ascii"
	"github.com/avtext/subtext/internal/tstamp"
)

// JACOsubShift parses a frame offset from a "SHIFT" directive's parameter
// (the text after "SHIFT" and any separator). Returns 0 on any failure, per
// spec.md §4.D — this directive is advisory and never fails a parse.
func JACOsubShift(param []byte) int64 {
	p := ascii.TrimLeadingSpace(param)
	v, _, ok := ascii.ScanInt(p, -1<<62, 1<<62-1)
	if !ok {
		return 0
	}
	return v
}

// JACOsubCue is one JACOsub cue line, time unit centiseconds after scaling
// by timeres (ticks/second) and the additive shift frame offset.
type JACOsubCue struct {
	StartCs, EndCs int64
	Text           Slice
}

// jacosubTimestamp decodes a single JACOsub timestamp in either the
// "HH:MM:SS.FF" (frames) or "@frame" form, scaling to centiseconds using
// timeres and shift per spec.md §4.C.
func jacosubTimestamp(b []byte, timeres, shift int64) (cs int64, consumed int, ok bool) {
	if clk, n, k := tstamp.JACOsub(b); k {
		frames := int64(clk.Frames) + shift
		cs = int64(clk.Hours)*360000 + int64(clk.Minutes)*6000 + int64(clk.Seconds)*100
		if timeres > 0 {
			cs += frames * 100 / timeres
		}
		return cs, n, true
	}
	if frame, n, k := tstamp.JACOsubFrameMark(b); k {
		frame += shift
		if timeres > 0 {
			cs = frame * 100 / timeres
		}
		return cs, n, true
	}
	return 0, 0, false
}

// JACOsub parses one JACOsub cue line: two timestamps (either accepted
// form) separated by whitespace, followed by the payload text.
func JACOsub(line []byte, lineOffset int, timeres, shift int64) (JACOsubCue, error) {
	startCs, n, ok := jacosubTimestamp(line, timeres, shift)
	if !ok {
		return JACOsubCue{}, errParse("bad start timestamp")
	}
	rest := ascii.TrimLeadingSpace(line[n:])
	endCs, n2, ok := jacosubTimestamp(rest, timeres, shift)
	if !ok {
		return JACOsubCue{}, errParse("bad end timestamp")
	}
	textRest := ascii.TrimLeadingSpace(rest[n2:])
	textStart := len(line) - len(textRest)
	return JACOsubCue{
		StartCs: startCs,
		EndCs:   endCs,
		Text:    Slice{Offset: lineOffset + textStart, Length: len(textRest)},
	}, nil
}
