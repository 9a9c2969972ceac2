package subtitle

import "github.com/avtext/subtext/internal/ascii"

// MPSubLine is one MPSub timing line: two whitespace-separated floats,
// scaled to TSBASE (10,000,000) units/second. Start is absolute; Duration
// is relative to Start, as the format requires (spec.md §4.D).
type MPSubLine struct {
	Start    int64
	Duration int64
}

const mpsubTSBase = 10_000_000

// MPSub parses one MPSub timing line ("a b", two floats in seconds).
func MPSub(line []byte) (MPSubLine, error) {
	a, n, ok := ascii.ScanFloat(line)
	if !ok {
		return MPSubLine{}, errParse("bad first field")
	}
	rest := ascii.TrimLeadingSpace(line[n:])
	b, _, ok := ascii.ScanFloat(rest)
	if !ok {
		return MPSubLine{}, errParse("bad second field")
	}
	return MPSubLine{
		Start:    int64(a * mpsubTSBase),
		Duration: int64(b * mpsubTSBase),
	}, nil
}
