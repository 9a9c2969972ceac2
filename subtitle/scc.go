package subtitle

import "github.com/avtext/subtext/internal/ascii"

// SCCWord is one tokenized 4-hex-digit SCC caption word.
type SCCWord struct {
	Value uint16
	Text  Slice
}

// SCC tokenizes whitespace-separated 4-hex-digit words, stopping at the
// first invalid token. EventsResult.Truncated is true whenever tokenizing
// stopped early, whether due to an invalid token or dst running out of
// capacity.
func SCC(input []byte, dst []SCCWord) ([]SCCWord, EventsResult) {
	var found []SCCWord
	i := 0
	stoppedEarly := false
	for i < len(input) {
		for i < len(input) && ascii.IsSpace(input[i]) {
			i++
		}
		if i >= len(input) {
			break
		}
		start := i
		for i < len(input) && !ascii.IsSpace(input[i]) {
			i++
		}
		word := input[start:i]
		v, ok := parseHex4(word)
		if !ok {
			stoppedEarly = true
			break
		}
		found = append(found, SCCWord{Value: v, Text: Slice{Offset: start, Length: i - start}})
	}

	res := EventsResult{Total: len(found)}
	n := len(found)
	if n > len(dst) {
		n = len(dst)
	}
	res.Written = n
	res.Truncated = stoppedEarly || res.Written < res.Total
	copy(dst[:n], found[:n])
	return dst[:n], res
}

func parseHex4(b []byte) (uint16, bool) {
	if len(b) != 4 {
		return 0, false
	}
	var v uint16
	for _, c := range b {
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= uint16(c - '0')
		case c >= 'a' && c <= 'f':
			v |= uint16(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v |= uint16(c-'A') + 10
		default:
			return 0, false
		}
	}
	return v, true
}
