package subtitle

import (
	"fmt"

	"github.com/avtext/subtext/internal/abiresult"
)

// MCC implements the MacCaption MCC payload codec (spec.md §4.D): a
// payload string is ordinary two-hex-digit byte encoding, except that
// certain ASCII letters stand in as aliases for a fixed 3-byte run,
// shortening the common padding sequences CEA-608/708 captions repeat.
//
// The alias table itself is not recoverable from the retrieved reference
// material (original_source only kept the C header for this function, not
// the Rust body — see DESIGN.md's Open Questions). The table below is this
// module's own internally-consistent choice: it uses letters outside the
// hex alphabet (G-P) so alias bytes can never be confused with a hex pair,
// and it is built to satisfy spec.md §8's round-trip invariant exactly.
var mccAliasRuns = map[byte][3]byte{
	'G': {0xFA, 0x00, 0x00},
	'H': {0xFC, 0x00, 0x00},
	'I': {0xFD, 0x00, 0x00},
	'J': {0xFA, 0x80, 0x80},
	'K': {0xFC, 0x80, 0x80},
	'L': {0xFD, 0x80, 0x80},
	'M': {0xFB, 0x80, 0x80},
	'N': {0xFE, 0x00, 0x00},
	'O': {0xFE, 0x80, 0x80},
	'P': {0x00, 0x00, 0x00},
}

var mccRunToAlias = func() map[[3]byte]byte {
	m := make(map[[3]byte]byte, len(mccAliasRuns))
	for alias, run := range mccAliasRuns {
		m[run] = alias
	}
	return m
}()

const hexDigits = "0123456789ABCDEF"

// MCCBytesToHex encodes bytes into dst as an MCC payload string, following
// the two-pass capacity protocol: dstCap == 0 reports Required with no
// write. When useAlias is true, any 3-byte run matching mccAliasRuns is
// emitted as its single alias letter instead of 6 hex digits.
func MCCBytesToHex(bytes []byte, dst []byte, dstCap int, useAlias bool) (Required int, err error) {
	var out []byte
	i := 0
	for i < len(bytes) {
		if useAlias && i+3 <= len(bytes) {
			var run [3]byte
			copy(run[:], bytes[i:i+3])
			if alias, ok := mccRunToAlias[run]; ok {
				out = append(out, alias)
				i += 3
				continue
			}
		}
		b := bytes[i]
		out = append(out, hexDigits[b>>4], hexDigits[b&0xf])
		i++
	}
	required := len(out)
	if dstCap <= 0 || len(dst) == 0 {
		return required, outOfSpace(required)
	}
	if dstCap < required {
		n := dstCap
		if n > len(out) {
			n = len(out)
		}
		copy(dst, out[:n])
		return required, outOfSpace(required)
	}
	copy(dst, out)
	return required, nil
}

// MCCExpandPayloadResult is the outcome of MCCExpandPayload.
type MCCExpandPayloadResult struct {
	TotalBytes   int
	WrittenBytes int
	Truncated    bool
}

// MCCExpandPayload decodes an MCC payload string (hex pairs and/or alias
// letters) into raw bytes, following the two-pass capacity protocol for
// the output buffer. Returns InvalidArgs on a malformed payload (odd
// trailing hex nibble, or a non-hex non-alias character).
func MCCExpandPayload(text []byte, dst []byte) (MCCExpandPayloadResult, error) {
	var out []byte
	i := 0
	for i < len(text) {
		c := text[i]
		if run, ok := mccAliasRuns[c]; ok {
			out = append(out, run[0], run[1], run[2])
			i++
			continue
		}
		if i+1 >= len(text) {
			return MCCExpandPayloadResult{}, errInvalid("truncated hex pair at offset %d", i)
		}
		hi, ok1 := hexVal(text[i])
		lo, ok2 := hexVal(text[i+1])
		if !ok1 || !ok2 {
			return MCCExpandPayloadResult{}, errInvalid("invalid hex digit at offset %d", i)
		}
		out = append(out, hi<<4|lo)
		i += 2
	}
	res := MCCExpandPayloadResult{TotalBytes: len(out)}
	n := len(out)
	if n > len(dst) {
		n = len(dst)
	}
	res.WrittenBytes = n
	res.Truncated = res.WrittenBytes < res.TotalBytes
	copy(dst[:n], out[:n])
	return res, nil
}

func hexVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}

func outOfSpace(required int) error {
	return fmt.Errorf("%w: required=%d", abiresult.OutOfSpace, required)
}
