// Package token implements the shared quoted/escaped token reader
// (spec.md §4.B) and its degenerate concat-keyword form, both following the
// two-pass capacity protocol: a call with a zero-capacity destination
// reports the bytes required without writing anything.
package token

import (
	"fmt"

	"github.com/avtext/subtext/internal/abiresult"
	"github.com/avtext/subtext/internal/ascii"
)

// Result is the outcome of a Get call: Required is always the number of
// destination bytes the token would need (including the NUL terminator,
// also on a zero-capacity probe), and Advance is always the number of input
// bytes consumed up to (not including) the delimiter or NUL.
type Result struct {
	Required int
	Advance  int
}

// Get reads one token from a NUL-terminated input against a NUL-terminated
// terminator set, per spec.md §4.B:
//
//  1. leading ASCII whitespace is skipped;
//  2. characters accumulate until an unescaped terminator byte or NUL;
//  3. '\' escapes the next byte literally (dropped at end of input);
//  4. '\'' toggles literal-quote mode, in which terminators are inert and
//     the quote bytes themselves are not copied (backslash still escapes);
//  5. trailing whitespace on the produced token is trimmed;
//  6. dst is always NUL-terminated when dstCap > 0, even on OutOfSpace.
//
// input must be NUL-terminated (len(input) == strlen+1, the NUL included).
// term must likewise be NUL-terminated; the NUL in term is never itself
// matched as a terminator.
func Get(input, term []byte, dst []byte, dstCap int) (Result, error) {
	if len(input) == 0 || len(term) == 0 {
		return Result{}, fmt.Errorf("%w: empty input or terminator set", abiresult.InvalidArgs)
	}

	isTerm := func(b byte) bool {
		for _, t := range term {
			if t == 0 {
				break
			}
			if t == b {
				return true
			}
		}
		return false
	}

	i := 0
	for i < len(input) && input[i] != 0 && ascii.IsSpace(input[i]) {
		i++
	}

	var out []byte
	quoted := false
	for i < len(input) && input[i] != 0 {
		c := input[i]
		if c == '\\' {
			i++
			if i < len(input) && input[i] != 0 {
				out = append(out, input[i])
				i++
			}
			continue
		}
		if c == '\'' {
			quoted = !quoted
			i++
			continue
		}
		if !quoted && isTerm(c) {
			break
		}
		out = append(out, c)
		i++
	}
	advance := i

	out = ascii.TrimTrailingSpace(out)

	required := len(out) + 1 // NUL terminator
	res := Result{Required: required, Advance: advance}

	if dstCap <= 0 || len(dst) == 0 {
		return res, fmt.Errorf("%w: required=%d", abiresult.OutOfSpace, required)
	}
	if dstCap < required {
		n := dstCap - 1
		if n > len(out) {
			n = len(out)
		}
		copy(dst, out[:n])
		dst[n] = 0
		return res, fmt.Errorf("%w: required=%d", abiresult.OutOfSpace, required)
	}
	n := copy(dst, out)
	dst[n] = 0
	return res, nil
}

// KeywordResult is the outcome of GetKeyword.
type KeywordResult struct {
	LeadingSkip int
	TokenLen    int
	Advance     int // past trailing whitespace
}

// GetKeyword implements the concat-script keyword reader: the degenerate
// token form with whitespace as the only terminator set and no
// escape/quote handling.
func GetKeyword(input []byte) (KeywordResult, bool) {
	i := 0
	for i < len(input) && ascii.IsSpace(input[i]) {
		i++
	}
	leadingSkip := i
	start := i
	for i < len(input) && input[i] != 0 && !ascii.IsSpace(input[i]) {
		i++
	}
	tokenLen := i - start
	if tokenLen == 0 {
		return KeywordResult{}, false
	}
	j := i
	for j < len(input) && ascii.IsSpace(input[j]) {
		j++
	}
	return KeywordResult{LeadingSkip: leadingSkip, TokenLen: tokenLen, Advance: j}, true
}
