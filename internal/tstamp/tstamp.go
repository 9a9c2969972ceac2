// Package tstamp implements the per-format timestamp decoders of spec.md
// §4.C. Each decoder is a total function: it either fully parses a
// timestamp and reports the bytes consumed, or reports failure with no
// partial state. Overflow in any accumulator saturates to the decoder's
// declared output range rather than wrapping, per spec.md §4.C.
package tstamp

import "github.com/avtext/subtext/internal/ascii"

func scanN(b []byte, n int) (v int, consumed int, ok bool) {
	if len(b) < n {
		return 0, 0, false
	}
	for i := 0; i < n; i++ {
		if !ascii.IsDigit(b[i]) {
			return 0, 0, false
		}
		v = v*10 + int(b[i]-'0')
	}
	return v, n, true
}

func expect(b []byte, c byte) (consumed int, ok bool) {
	if len(b) == 0 || b[0] != c {
		return 0, false
	}
	return 1, true
}

// padFracToMillis right-pads a 1-3 digit fractional run (already parsed as
// an integer with digitCount digits) out to milliseconds.
func padFracToMillis(v, digitCount int) int {
	switch digitCount {
	case 1:
		return v * 100
	case 2:
		return v * 10
	default:
		return v
	}
}

// SubRip decodes "HH:MM:SS,ms" or "HH:MM:SS.ms" (always three fractional
// digits) and returns the time in milliseconds.
func SubRip(b []byte) (ms int64, consumed int, ok bool) {
	i := 0
	h, n, k := scanN(b[i:], 2)
	if !k {
		return 0, 0, false
	}
	i += n
	if c, k2 := expect(b[i:], ':'); !k2 {
		return 0, 0, false
	} else {
		i += c
	}
	m, n, k := scanN(b[i:], 2)
	if !k {
		return 0, 0, false
	}
	i += n
	if c, k2 := expect(b[i:], ':'); !k2 {
		return 0, 0, false
	} else {
		i += c
	}
	s, n, k := scanN(b[i:], 2)
	if !k {
		return 0, 0, false
	}
	i += n
	if len(b) <= i || (b[i] != ',' && b[i] != '.') {
		return 0, 0, false
	}
	i++
	frac, n, k := scanN(b[i:], 3)
	if !k {
		return 0, 0, false
	}
	i += n
	total := int64(h)*3600000 + int64(m)*60000 + int64(s)*1000 + int64(frac)
	return total, i, true
}

// WebVTT decodes "MM:SS.frac" or "HH:MM:SS.frac" where frac is 1-3 digits,
// right-padded to milliseconds.
func WebVTT(b []byte) (ms int64, consumed int, ok bool) {
	i := 0
	first, n1, k := scanN(b, 2)
	if !k {
		return 0, 0, false
	}
	i += n1
	if c, k2 := expect(b[i:], ':'); !k2 {
		return 0, 0, false
	} else {
		i += c
	}
	second, n2, k := scanN(b[i:], 2)
	if !k {
		return 0, 0, false
	}
	i += n2

	var h, m, s int
	if len(b) > i && b[i] == ':' {
		// first:second was HH:MM, a third group is SS
		i++
		third, n3, k := scanN(b[i:], 2)
		if !k {
			return 0, 0, false
		}
		i += n3
		h, m, s = first, second, third
	} else {
		m, s = first, second
	}
	if len(b) <= i || b[i] != '.' {
		return 0, 0, false
	}
	i++
	start := i
	for i < len(b) && ascii.IsDigit(b[i]) && i-start < 3 {
		i++
	}
	digits := i - start
	if digits == 0 {
		return 0, 0, false
	}
	frac := 0
	for j := start; j < i; j++ {
		frac = frac*10 + int(b[j]-'0')
	}
	total := int64(h)*3600000 + int64(m)*60000 + int64(s)*1000 + int64(padFracToMillis(frac, digits))
	return total, i, true
}

// ASSResult is the outcome of decoding one ASS Dialogue timestamp.
type ASSResult struct {
	Centiseconds int64
}

// ASS decodes "H:MM:SS.cc" (centiseconds), hours unbounded width.
func ASS(b []byte) (cs int64, consumed int, ok bool) {
	hv, i, k := ascii.ScanUint(b, 1<<31-1)
	if !k {
		return 0, 0, false
	}
	h := int(hv)
	if c, k := expect(b[i:], ':'); !k {
		return 0, 0, false
	} else {
		i += c
	}
	m, n, k := scanN(b[i:], 2)
	if !k {
		return 0, 0, false
	}
	i += n
	if c, k := expect(b[i:], ':'); !k {
		return 0, 0, false
	} else {
		i += c
	}
	s, n, k := scanN(b[i:], 2)
	if !k {
		return 0, 0, false
	}
	i += n
	if c, k := expect(b[i:], '.'); !k {
		return 0, 0, false
	} else {
		i += c
	}
	cc, n, k := scanN(b[i:], 2)
	if !k {
		return 0, 0, false
	}
	i += n
	total := int64(h)*360000 + int64(m)*6000 + int64(s)*100 + int64(cc)
	return total, i, true
}

// LRC decodes "[mm:ss.xxx]" (optionally "[-mm:ss.xxx]", spaces/tabs
// tolerated before '[') returning microseconds and the bytes consumed
// (including the brackets and any leading spaces/tabs).
func LRC(b []byte) (us int64, consumed int, ok bool) {
	i := 0
	for i < len(b) && (b[i] == ' ' || b[i] == '\t') {
		i++
	}
	if c, k := expect(b[i:], '['); !k {
		return 0, 0, false
	} else {
		i += c
	}
	neg := false
	if i < len(b) && b[i] == '-' {
		neg = true
		i++
	}
	m, n, k := scanN(b[i:], 2)
	if !k {
		return 0, 0, false
	}
	i += n
	if c, k := expect(b[i:], ':'); !k {
		return 0, 0, false
	} else {
		i += c
	}
	s, n, k := scanN(b[i:], 2)
	if !k {
		return 0, 0, false
	}
	i += n
	if c, k := expect(b[i:], '.'); !k {
		return 0, 0, false
	} else {
		i += c
	}
	start := i
	for i < len(b) && ascii.IsDigit(b[i]) && i-start < 3 {
		i++
	}
	digits := i - start
	if digits == 0 {
		return 0, 0, false
	}
	frac := 0
	for j := start; j < i; j++ {
		frac = frac*10 + int(b[j]-'0')
	}
	if c, k := expect(b[i:], ']'); !k {
		return 0, 0, false
	} else {
		i += c
	}
	ms := int64(m)*60000 + int64(s)*1000 + int64(padFracToMillis(frac, digits))
	if neg {
		ms = -ms
	}
	return ms * 1000, i, true
}

// RealText decodes either decimal seconds with up to two fractional digits,
// or the legacy "HH:MM:SS.cc" form, returning centiseconds.
func RealText(b []byte) (cs int64, consumed int, ok bool) {
	// Try legacy colon form first: it is unambiguous because it contains
	// ':' which decimal-seconds form never does.
	colon := -1
	for i, c := range b {
		if c == ':' {
			colon = i
			break
		}
		if !ascii.IsDigit(c) && c != '.' {
			break
		}
	}
	if colon >= 0 {
		i := 0
		h, n, k := scanN(b, 2)
		if !k {
			return 0, 0, false
		}
		i += n
		if c, k := expect(b[i:], ':'); !k {
			return 0, 0, false
		} else {
			i += c
		}
		m, n, k := scanN(b[i:], 2)
		if !k {
			return 0, 0, false
		}
		i += n
		if c, k := expect(b[i:], ':'); !k {
			return 0, 0, false
		} else {
			i += c
		}
		s, n, k := scanN(b[i:], 2)
		if !k {
			return 0, 0, false
		}
		i += n
		cc := 0
		if i < len(b) && b[i] == '.' {
			i++
			start := i
			for i < len(b) && ascii.IsDigit(b[i]) && i-start < 2 {
				i++
			}
			for j := start; j < i; j++ {
				cc = cc*10 + int(b[j]-'0')
			}
			if i-start == 1 {
				cc *= 10
			}
		}
		total := int64(h)*360000 + int64(m)*6000 + int64(s)*100 + int64(cc)
		return total, i, true
	}

	v, n, ok := ascii.ScanFloat(b)
	if !ok {
		return 0, 0, false
	}
	return int64(v*100 + 0.5), n, true
}

// SubViewerPair decodes "HH:MM:SS.mmm,HH:MM:SS.mmm" returning the start and
// duration in milliseconds (duration = end - start, clamped to 0).
func SubViewerPair(b []byte) (startMs, durMs int64, consumed int, ok bool) {
	start, n, k := subViewerOne(b)
	if !k {
		return 0, 0, 0, false
	}
	i := n
	i = i + skipCommaSpace(b[i:])
	end, n2, k := subViewerOne(b[i:])
	if !k {
		return 0, 0, 0, false
	}
	i += n2
	dur := end - start
	if dur < 0 {
		dur = 0
	}
	return start, dur, i, true
}

func skipCommaSpace(b []byte) int {
	i := 0
	for i < len(b) && (b[i] == ' ' || b[i] == '\t') {
		i++
	}
	if i < len(b) && b[i] == ',' {
		i++
	}
	for i < len(b) && (b[i] == ' ' || b[i] == '\t') {
		i++
	}
	return i
}

func subViewerOne(b []byte) (ms int64, consumed int, ok bool) {
	i := 0
	h, n, k := scanN(b, 2)
	if !k {
		return 0, 0, false
	}
	i += n
	if c, k := expect(b[i:], ':'); !k {
		return 0, 0, false
	} else {
		i += c
	}
	m, n, k := scanN(b[i:], 2)
	if !k {
		return 0, 0, false
	}
	i += n
	if c, k := expect(b[i:], ':'); !k {
		return 0, 0, false
	} else {
		i += c
	}
	s, n, k := scanN(b[i:], 2)
	if !k {
		return 0, 0, false
	}
	i += n
	if c, k := expect(b[i:], '.'); !k {
		return 0, 0, false
	} else {
		i += c
	}
	f, n, k := scanN(b[i:], 3)
	if !k {
		return 0, 0, false
	}
	i += n
	return int64(h)*3600000 + int64(m)*60000 + int64(s)*1000 + int64(f), i, true
}

// STL decodes "HH:MM:SS:CC" returning centiseconds.
func STL(b []byte) (cs int64, consumed int, ok bool) {
	i := 0
	h, n, k := scanN(b, 2)
	if !k {
		return 0, 0, false
	}
	i += n
	if c, k := expect(b[i:], ':'); !k {
		return 0, 0, false
	} else {
		i += c
	}
	m, n, k := scanN(b[i:], 2)
	if !k {
		return 0, 0, false
	}
	i += n
	if c, k := expect(b[i:], ':'); !k {
		return 0, 0, false
	} else {
		i += c
	}
	s, n, k := scanN(b[i:], 2)
	if !k {
		return 0, 0, false
	}
	i += n
	if c, k := expect(b[i:], ':'); !k {
		return 0, 0, false
	} else {
		i += c
	}
	cc, n, k := scanN(b[i:], 2)
	if !k {
		return 0, 0, false
	}
	i += n
	return int64(h)*360000 + int64(m)*6000 + int64(s)*100 + int64(cc), i, true
}

// VPlayer decodes "H:MM:SS[.CC][: =]" returning centiseconds and the byte
// offset of the delimiter that separates the timestamp from the payload
// text (one of ':', ' ', '=').
func VPlayer(b []byte) (cs int64, delimOffset int, ok bool) {
	hv, i, k := ascii.ScanUint(b, 1<<31-1)
	if !k {
		return 0, 0, false
	}
	h := int(hv)
	if c, k := expect(b[i:], ':'); !k {
		return 0, 0, false
	} else {
		i += c
	}
	m, n, k := scanN(b[i:], 2)
	if !k {
		return 0, 0, false
	}
	i += n
	if c, k := expect(b[i:], ':'); !k {
		return 0, 0, false
	} else {
		i += c
	}
	s, n, k := scanN(b[i:], 2)
	if !k {
		return 0, 0, false
	}
	i += n
	cc := 0
	if i < len(b) && b[i] == '.' {
		i++
		fstart := i
		for i < len(b) && ascii.IsDigit(b[i]) && i-fstart < 2 {
			i++
		}
		for j := fstart; j < i; j++ {
			cc = cc*10 + int(b[j]-'0')
		}
		if i-fstart == 1 {
			cc *= 10
		}
	}
	if i >= len(b) {
		return 0, 0, false
	}
	switch b[i] {
	case ':', ' ', '=':
	default:
		return 0, 0, false
	}
	total := int64(h)*360000 + int64(m)*6000 + int64(s)*100 + int64(cc)
	return total, i, true
}

// MPL2Tick decodes a bracketed tick integer "[N]" used by MPL2, where one
// tick is 100ms. Returns the tick value (not yet scaled) and bytes consumed.
func MPL2Tick(b []byte) (tick int64, consumed int, ok bool) {
	i := 0
	if c, k := expect(b[i:], '['); !k {
		return 0, 0, false
	} else {
		i += c
	}
	v, n, k := ascii.ScanInt(b[i:], -1<<62, 1<<62-1)
	if !k {
		return 0, 0, false
	}
	i += n
	if c, k := expect(b[i:], ']'); !k {
		return 0, 0, false
	} else {
		i += c
	}
	return v, i, true
}

// MicroDVDField decodes a bracketed frame-count field "{N}" used by
// MicroDVD; an empty field ("{}") reports ok but empty=true.
func MicroDVDField(b []byte) (v int64, consumed int, empty bool, ok bool) {
	i := 0
	if c, k := expect(b[i:], '{'); !k {
		return 0, 0, false, false
	} else {
		i += c
	}
	if len(b) > i && b[i] == '}' {
		return 0, i + 1, true, true
	}
	n, nn, k := ascii.ScanInt(b[i:], 0, 1<<62-1)
	if !k {
		return 0, 0, false, false
	}
	i += nn
	if c, k := expect(b[i:], '}'); !k {
		return 0, 0, false, false
	} else {
		i += c
	}
	return n, i, false, true
}

// MPSubTSBase is the MPSub fixed time base, 10,000,000 units/second.
const MPSubTSBase = 10_000_000

// JACOsub decodes either "HH:MM:SS.FF" (frames) and returns the raw h/m/s/
// frame components for the caller to scale by timeres and shift (the
// scaling depends on playlist-wide state spec.md assigns to the caller,
// not this decoder), or fails so the caller can try the "@frame" form.
type JACOsubClock struct {
	Hours, Minutes, Seconds, Frames int
}

func JACOsub(b []byte) (JACOsubClock, int, bool) {
	i := 0
	h, n, k := scanN(b, 2)
	if !k {
		return JACOsubClock{}, 0, false
	}
	i += n
	if c, k := expect(b[i:], ':'); !k {
		return JACOsubClock{}, 0, false
	} else {
		i += c
	}
	m, n, k := scanN(b[i:], 2)
	if !k {
		return JACOsubClock{}, 0, false
	}
	i += n
	if c, k := expect(b[i:], ':'); !k {
		return JACOsubClock{}, 0, false
	} else {
		i += c
	}
	s, n, k := scanN(b[i:], 2)
	if !k {
		return JACOsubClock{}, 0, false
	}
	i += n
	if c, k := expect(b[i:], '.'); !k {
		return JACOsubClock{}, 0, false
	} else {
		i += c
	}
	fv, fn, k := ascii.ScanUint(b[i:], 1<<31-1)
	if !k {
		return JACOsubClock{}, 0, false
	}
	i += fn
	f := int(fv)
	return JACOsubClock{Hours: h, Minutes: m, Seconds: s, Frames: f}, i, true
}

// JACOsubFrameMark decodes "@frame" (a bare '@' followed by a decimal frame
// number) used as the alternative JACOsub timestamp form.
func JACOsubFrameMark(b []byte) (frame int64, consumed int, ok bool) {
	if len(b) == 0 || b[0] != '@' {
		return 0, 0, false
	}
	v, n, k := ascii.ScanInt(b[1:], 0, 1<<62-1)
	if !k {
		return 0, 0, false
	}
	return v, n + 1, true
}
