// Package misc implements the byte-level helpers of spec.md §4.H that
// aren't tied to a specific subtitle format: ID3v2 tag length, data: URI
// splitting, ffmetadata key/value handling, TTML extradata parsing, and
// the concat/ffconcat keyword and token readers. Each follows the same
// contract as subtitle's parsers: pure functions over caller-owned input.
package misc

import "bytes"

// ID3v2TagLength reads the 10-byte ID3v2 header from the start of b,
// validates the "ID3" magic, decodes the 28-bit synch-safe size, and
// returns size+10 (or size+20 if the footer bit is set). Returns 0 on any
// validation failure, per spec.md §4.D.
func ID3v2TagLength(b []byte) int {
	if len(b) < 10 || !bytes.Equal(b[:3], []byte("ID3")) {
		return 0
	}
	// b[3], b[4] are major/minor version, unchecked here; b[5] is flags.
	flags := b[5]
	for _, sz := range b[6:10] {
		if sz&0x80 != 0 {
			return 0 // synch-safe bytes must have their high bit clear
		}
	}
	size := int(b[6])<<21 | int(b[7])<<14 | int(b[8])<<7 | int(b[9])
	const footerBit = 0x10
	if flags&footerBit != 0 {
		return size + 20
	}
	return size + 10
}
