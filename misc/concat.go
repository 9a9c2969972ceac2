package misc

import "github.com/avtext/subtext/internal/token"

// ConcatKeyword reads one directive keyword from a line of the concat/
// ffconcat demuxer script (e.g. "file", "duration", "option"), per
// spec.md §4.B's degenerate keyword-reader form: whitespace-delimited, no
// escapes or quotes. input must be NUL-terminated.
func ConcatKeyword(input []byte) (leadingSkip, tokenLen, advance int, ok bool) {
	res, ok := token.GetKeyword(input)
	if !ok {
		return 0, 0, 0, false
	}
	return res.LeadingSkip, res.TokenLen, res.Advance, true
}

// ConcatToken reads one quoted/escaped token from a concat script line
// (e.g. a filename argument), following the full §4.B contract including
// the two-pass capacity protocol. input and term must be NUL-terminated.
func ConcatToken(input, term []byte, dst []byte, dstCap int) (required, advance int, err error) {
	res, err := token.Get(input, term, dst, dstCap)
	return res.Required, res.Advance, err
}
