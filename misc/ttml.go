package misc

import "bytes"

// ttmlSignature marks TTML extradata produced in "paragraph mode" (i.e.
// carrying a region/styling prelude ahead of per-sample body text) rather
// than the default single-document form. Like the MCC alias table, the
// exact 48 bytes are not recoverable from the retrieved reference material
// (original_source kept only the encoder's C header, not its body — see
// DESIGN.md's Open Questions); this is this module's own fixed, documented
// choice.
var ttmlSignature = [48]byte{
	'T', 'T', 'M', 'L', 'P', 'A', 'R', 'A', 'G', 'R', 'A', 'P', 'H', 'M', 'O', 'D',
	'E', 'X', 'T', 'R', 'A', 'D', 'A', 'T', 'A', 'V', '1', 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// TTMLExtradata is the outcome of parsing TTML extradata.
type TTMLExtradata struct {
	IsParagraphMode bool
	IsDefault       bool
	TTParams        Slice // offset/length of the NUL-terminated tt_params string, if present
	PreBody         Slice // offset/length of the NUL-terminated pre_body string, if present
}

// ParseTTMLExtradata parses TTML extradata: a 48-byte signature marking
// paragraph mode, optionally followed
// by two inline NUL-terminated strings (tt_params, then pre_body). Offsets
// are reported only when the corresponding string is non-empty; if both
// are absent, IsDefault is true.
func ParseTTMLExtradata(extradata []byte) (TTMLExtradata, error) {
	var res TTMLExtradata
	if len(extradata) < len(ttmlSignature) || !bytes.Equal(extradata[:len(ttmlSignature)], ttmlSignature[:]) {
		res.IsDefault = true
		return res, nil
	}
	res.IsParagraphMode = true
	rest := extradata[len(ttmlSignature):]
	if len(rest) == 0 {
		res.IsDefault = true
		return res, nil
	}

	nul1 := bytes.IndexByte(rest, 0)
	if nul1 < 0 {
		return TTMLExtradata{}, errParse("tt_params is not NUL-terminated")
	}
	if nul1 > 0 {
		res.TTParams = Slice{Offset: len(ttmlSignature), Length: nul1}
	}

	rest2 := rest[nul1+1:]
	if len(rest2) > 0 {
		nul2 := bytes.IndexByte(rest2, 0)
		if nul2 < 0 {
			return TTMLExtradata{}, errParse("pre_body is not NUL-terminated")
		}
		if nul2 > 0 {
			res.PreBody = Slice{Offset: len(ttmlSignature) + nul1 + 1, Length: nul2}
		}
	}

	if res.TTParams.Length == 0 && res.PreBody.Length == 0 {
		res.IsDefault = true
	}
	return res, nil
}
