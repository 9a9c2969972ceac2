// Package cabi is the C ABI surface over this module's pure parsers,
// mirroring the import "C" / //export shape used by embedded media
// libraries: every exported function takes (ptr, len) pairs, writes
// through out-parameters, and returns a negative abiresult.Status code on
// failure (0 on success), never panicking across the cgo boundary. Every
// pure parser in subtitle/ and misc/ (spec.md §4.B-H) is exported; only
// line-oriented formats with no error return (RealText, SubViewer,
// SubViewer1, AQTitleMarker, FFMetadataSplitKV, ConcatKeyword) map their
// bool "ok" result to ParseError.
//
// The streaming client (hls.Client) is deliberately not exposed here: it
// depends on Go interfaces (ioabi.Opener, clock.Clock, clock.Interrupter)
// that have no stable C representation in this module, so a host embeds
// it through Go, not through this package.
package cabi

/*
#include <stdint.h>

typedef struct {
	int64_t start;
	int64_t duration;
	int32_t payload_offset;
	int32_t payload_length;
} subtext_event_t;

typedef struct {
	int64_t duration_us;
	int32_t url_offset;
	int32_t url_length;
} subtext_hls_segment_t;

typedef struct {
	uint16_t value;
	int32_t text_offset;
	int32_t text_length;
} subtext_scc_word_t;
*/
import "C"

import (
	"errors"
	"unsafe"

	"github.com/avtext/subtext/hls"
	"github.com/avtext/subtext/internal/abiresult"
	"github.com/avtext/subtext/internal/token"
	"github.com/avtext/subtext/misc"
	"github.com/avtext/subtext/subtitle"
)

// statusCode maps a Go error to the C ABI's negative-status convention.
func statusCode(err error) C.int {
	if err == nil {
		return 0
	}
	var st abiresult.Status
	for _, s := range []abiresult.Status{
		abiresult.InvalidArgs, abiresult.ParseError, abiresult.OutOfSpace,
		abiresult.EmptyPlaylist, abiresult.WriteUnsupported, abiresult.Interrupt,
		abiresult.EOF, abiresult.IOError,
	} {
		if errors.Is(err, s) {
			st = s
			break
		}
	}
	if st == abiresult.OK {
		st = abiresult.ParseError
	}
	return C.int(st.Code())
}

func goBytes(ptr *C.uint8_t, length C.int) []byte {
	if ptr == nil || length <= 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(ptr)), int(length))
}

//export SubtextTokenGet
func SubtextTokenGet(input *C.uint8_t, inputLen C.int, term *C.uint8_t, termLen C.int,
	dst *C.uint8_t, dstCap C.int, outRequired, outAdvance *C.int) C.int {
	in := goBytes(input, inputLen)
	t := goBytes(term, termLen)
	var out []byte
	if dstCap > 0 && dst != nil {
		out = unsafe.Slice((*byte)(unsafe.Pointer(dst)), int(dstCap))
	}
	res, err := token.Get(in, t, out, int(dstCap))
	if outRequired != nil {
		*outRequired = C.int(res.Required)
	}
	if outAdvance != nil {
		*outAdvance = C.int(res.Advance)
	}
	return statusCode(err)
}

//export SubtextSubRipParse
func SubtextSubRipParse(input *C.uint8_t, inputLen C.int,
	dst *C.subtext_event_t, dstCap C.int, outTotal, outWritten *C.int) C.int {
	in := goBytes(input, inputLen)
	_, res := subtitle.SubRip(in, nil)
	if outTotal != nil {
		*outTotal = C.int(res.Total)
	}
	if dstCap <= 0 || dst == nil {
		if outWritten != nil {
			*outWritten = 0
		}
		if res.Total > 0 {
			return C.int(abiresult.OutOfSpace.Code())
		}
		return 0
	}
	events := make([]subtitle.Event, res.Total)
	out, res2 := subtitle.SubRip(in, events)
	writeEvents(dst, dstCap, out)
	if outWritten != nil {
		*outWritten = C.int(res2.Written)
	}
	if res2.Truncated {
		return C.int(abiresult.OutOfSpace.Code())
	}
	return 0
}

//export SubtextWebVTTParse
func SubtextWebVTTParse(input *C.uint8_t, inputLen C.int,
	dst *C.subtext_event_t, dstCap C.int, outTotal, outWritten *C.int) C.int {
	in := goBytes(input, inputLen)
	_, res0, err := subtitle.WebVTT(in, nil)
	if err != nil {
		return statusCode(err)
	}
	if outTotal != nil {
		*outTotal = C.int(res0.Total)
	}
	cues := make([]subtitle.WebVTTCue, res0.Total)
	cues, res, err := subtitle.WebVTT(in, cues)
	if err != nil {
		return statusCode(err)
	}
	n := len(cues)
	if C.int(n) > dstCap {
		n = int(dstCap)
	}
	for i := 0; i < n; i++ {
		ev := (*C.subtext_event_t)(unsafe.Add(unsafe.Pointer(dst), uintptr(i)*unsafe.Sizeof(*dst)))
		ev.start = C.int64_t(cues[i].StartMs)
		ev.duration = C.int64_t(cues[i].EndMs - cues[i].StartMs)
		ev.payload_offset = C.int32_t(cues[i].Payload.Offset)
		ev.payload_length = C.int32_t(cues[i].Payload.Length)
	}
	if outWritten != nil {
		*outWritten = C.int(n)
	}
	if res.Truncated {
		return C.int(abiresult.OutOfSpace.Code())
	}
	return 0
}

func writeEvents(dst *C.subtext_event_t, dstCap C.int, events []subtitle.Event) {
	n := len(events)
	if C.int(n) > dstCap {
		n = int(dstCap)
	}
	for i := 0; i < n; i++ {
		ev := (*C.subtext_event_t)(unsafe.Add(unsafe.Pointer(dst), uintptr(i)*unsafe.Sizeof(*dst)))
		ev.start = C.int64_t(events[i].Start)
		ev.duration = C.int64_t(events[i].Duration)
		ev.payload_offset = C.int32_t(events[i].Payload.Offset)
		ev.payload_length = C.int32_t(events[i].Payload.Length)
	}
}

//export SubtextID3v2TagLength
func SubtextID3v2TagLength(input *C.uint8_t, inputLen C.int) C.int {
	return C.int(misc.ID3v2TagLength(goBytes(input, inputLen)))
}

//export SubtextDataURIParse
func SubtextDataURIParse(input *C.uint8_t, inputLen C.int,
	outMediaType, outParams, outPayload *C.subtext_event_t) C.int {
	in := goBytes(input, inputLen)
	d, err := misc.ParseDataURI(in)
	if err != nil {
		return statusCode(err)
	}
	if outMediaType != nil {
		outMediaType.payload_offset = C.int32_t(d.MediaType.Offset)
		outMediaType.payload_length = C.int32_t(d.MediaType.Length)
	}
	if outParams != nil {
		outParams.payload_offset = C.int32_t(d.Params.Offset)
		outParams.payload_length = C.int32_t(d.Params.Length)
	}
	if outPayload != nil {
		outPayload.payload_offset = C.int32_t(d.Payload.Offset)
		outPayload.payload_length = C.int32_t(d.Payload.Length)
	}
	return 0
}

//export SubtextHLSParseEvents
func SubtextHLSParseEvents(input *C.uint8_t, inputLen C.int, strict C.int,
	dstKinds *C.int32_t, dstLineNo *C.int32_t,
	dstAOff, dstALen, dstBOff, dstBLen *C.int32_t,
	dstI64A, dstI64B *C.int64_t,
	dstCap C.int, outTotal, outWritten *C.int) C.int {
	in := goBytes(input, inputLen)
	_, probe, err := hls.ParseEvents(in, nil, strict != 0)
	if err != nil {
		return statusCode(err)
	}
	if outTotal != nil {
		*outTotal = C.int(probe.Total)
	}
	events := make([]hls.Event, probe.Total)
	events, res, err := hls.ParseEvents(in, events, strict != 0)
	if err != nil {
		return statusCode(err)
	}
	n := len(events)
	if C.int(n) > dstCap {
		n = int(dstCap)
	}
	for i := 0; i < n; i++ {
		idx := uintptr(i)
		setInt32(dstKinds, idx, int32(events[i].Kind))
		setInt32(dstLineNo, idx, int32(events[i].LineNo))
		setInt32(dstAOff, idx, int32(events[i].A.Offset))
		setInt32(dstALen, idx, int32(events[i].A.Length))
		setInt32(dstBOff, idx, int32(events[i].B.Offset))
		setInt32(dstBLen, idx, int32(events[i].B.Length))
		setInt64(dstI64A, idx, events[i].I64A)
		setInt64(dstI64B, idx, events[i].I64B)
	}
	if outWritten != nil {
		*outWritten = C.int(n)
	}
	if res.Truncated {
		return C.int(abiresult.OutOfSpace.Code())
	}
	return 0
}

func setInt32(base *C.int32_t, idx uintptr, v int32) {
	if base == nil {
		return
	}
	p := (*C.int32_t)(unsafe.Add(unsafe.Pointer(base), idx*unsafe.Sizeof(*base)))
	*p = C.int32_t(v)
}

func setInt64(base *C.int64_t, idx uintptr, v int64) {
	if base == nil {
		return
	}
	p := (*C.int64_t)(unsafe.Add(unsafe.Pointer(base), idx*unsafe.Sizeof(*base)))
	*p = C.int64_t(v)
}

//export SubtextHLSWriteVersionHeader
func SubtextHLSWriteVersionHeader(version C.int, dst *C.uint8_t, dstCap C.int, outRequired *C.int) C.int {
	var out []byte
	if dstCap > 0 && dst != nil {
		out = unsafe.Slice((*byte)(unsafe.Pointer(dst)), int(dstCap))
	}
	n, err := hls.WriteVersionHeader(int(version), out)
	if outRequired != nil {
		*outRequired = C.int(n)
	}
	return statusCode(err)
}

//export SubtextASSParse
func SubtextASSParse(line *C.uint8_t, lineLen C.int, outLayer *C.int32_t, outCue *C.subtext_event_t) C.int {
	d, err := subtitle.ASS(goBytes(line, lineLen))
	if err != nil {
		return statusCode(err)
	}
	if outLayer != nil {
		*outLayer = C.int32_t(d.Layer)
	}
	if outCue != nil {
		outCue.start = C.int64_t(d.StartCs)
		outCue.duration = C.int64_t(d.EndCs - d.StartCs)
		outCue.payload_offset = C.int32_t(d.TextOffset)
		outCue.payload_length = C.int32_t(d.TextLength)
	}
	return 0
}

//export SubtextMicroDVDParse
func SubtextMicroDVDParse(line *C.uint8_t, lineLen C.int, lineOffset C.int, outCue *C.subtext_event_t) C.int {
	d, err := subtitle.MicroDVD(goBytes(line, lineLen), int(lineOffset))
	if err != nil {
		return statusCode(err)
	}
	if outCue != nil {
		outCue.start = C.int64_t(d.StartFrames)
		outCue.duration = C.int64_t(d.DurationFrames)
		outCue.payload_offset = C.int32_t(d.Text.Offset)
		outCue.payload_length = C.int32_t(d.Text.Length)
	}
	return 0
}

//export SubtextMPL2Parse
func SubtextMPL2Parse(line *C.uint8_t, lineLen C.int, lineOffset C.int, outCue *C.subtext_event_t) C.int {
	d, err := subtitle.MPL2(goBytes(line, lineLen), int(lineOffset))
	if err != nil {
		return statusCode(err)
	}
	if outCue != nil {
		outCue.start = C.int64_t(d.StartMs)
		outCue.duration = C.int64_t(d.DurationMs)
		outCue.payload_offset = C.int32_t(d.Text.Offset)
		outCue.payload_length = C.int32_t(d.Text.Length)
	}
	return 0
}

//export SubtextMPSubParse
func SubtextMPSubParse(line *C.uint8_t, lineLen C.int, outStart, outDuration *C.int64_t) C.int {
	d, err := subtitle.MPSub(goBytes(line, lineLen))
	if err != nil {
		return statusCode(err)
	}
	if outStart != nil {
		*outStart = C.int64_t(d.Start)
	}
	if outDuration != nil {
		*outDuration = C.int64_t(d.Duration)
	}
	return 0
}

//export SubtextPJSParse
func SubtextPJSParse(line *C.uint8_t, lineLen C.int, lineOffset C.int, outCue *C.subtext_event_t) C.int {
	d, err := subtitle.PJS(goBytes(line, lineLen), int(lineOffset))
	if err != nil {
		return statusCode(err)
	}
	if outCue != nil {
		outCue.start = C.int64_t(d.Start)
		outCue.duration = C.int64_t(d.End - d.Start)
		outCue.payload_offset = C.int32_t(d.Payload.Offset)
		outCue.payload_length = C.int32_t(d.Payload.Length)
	}
	return 0
}

//export SubtextSTLParse
func SubtextSTLParse(line *C.uint8_t, lineLen C.int, lineOffset C.int, outCue *C.subtext_event_t) C.int {
	d, err := subtitle.STL(goBytes(line, lineLen), int(lineOffset))
	if err != nil {
		return statusCode(err)
	}
	if outCue != nil {
		outCue.start = C.int64_t(d.StartCs)
		outCue.duration = C.int64_t(d.EndCs - d.StartCs)
		outCue.payload_offset = C.int32_t(d.Payload.Offset)
		outCue.payload_length = C.int32_t(d.Payload.Length)
	}
	return 0
}

//export SubtextVPlayerParse
func SubtextVPlayerParse(line *C.uint8_t, lineLen C.int, lineOffset C.int, outCue *C.subtext_event_t) C.int {
	d, err := subtitle.VPlayer(goBytes(line, lineLen), int(lineOffset))
	if err != nil {
		return statusCode(err)
	}
	if outCue != nil {
		outCue.start = C.int64_t(d.StartCs)
		outCue.duration = 0
		outCue.payload_offset = C.int32_t(d.Text.Offset)
		outCue.payload_length = C.int32_t(d.Text.Length)
	}
	return 0
}

//export SubtextJACOsubParse
func SubtextJACOsubParse(line *C.uint8_t, lineLen C.int, lineOffset C.int,
	timeres, shift C.int64_t, outCue *C.subtext_event_t) C.int {
	d, err := subtitle.JACOsub(goBytes(line, lineLen), int(lineOffset), int64(timeres), int64(shift))
	if err != nil {
		return statusCode(err)
	}
	if outCue != nil {
		outCue.start = C.int64_t(d.StartCs)
		outCue.duration = C.int64_t(d.EndCs - d.StartCs)
		outCue.payload_offset = C.int32_t(d.Text.Offset)
		outCue.payload_length = C.int32_t(d.Text.Length)
	}
	return 0
}

//export SubtextJACOsubShift
func SubtextJACOsubShift(param *C.uint8_t, paramLen C.int) C.int64_t {
	return C.int64_t(subtitle.JACOsubShift(goBytes(param, paramLen)))
}

//export SubtextLRCParse
func SubtextLRCParse(line *C.uint8_t, lineLen C.int, lineOffset C.int, outCue *C.subtext_event_t) C.int {
	d, err := subtitle.LRC(goBytes(line, lineLen), int(lineOffset))
	if err != nil {
		return statusCode(err)
	}
	if outCue != nil {
		outCue.start = C.int64_t(d.StartUs)
		outCue.duration = 0
		outCue.payload_offset = C.int32_t(d.Text.Offset)
		outCue.payload_length = C.int32_t(d.Text.Length)
	}
	return 0
}

//export SubtextSAMIStart
func SubtextSAMIStart(param *C.uint8_t, paramLen C.int, outMs *C.int64_t) C.int {
	ms, err := subtitle.SAMIStart(goBytes(param, paramLen))
	if err != nil {
		return statusCode(err)
	}
	if outMs != nil {
		*outMs = C.int64_t(ms)
	}
	return 0
}

//export SubtextRealTextParse
func SubtextRealTextParse(b *C.uint8_t, bLen C.int, outCs *C.int64_t, outConsumed *C.int32_t) C.int {
	cs, consumed, ok := subtitle.RealText(goBytes(b, bLen))
	if !ok {
		return C.int(abiresult.ParseError.Code())
	}
	if outCs != nil {
		*outCs = C.int64_t(cs)
	}
	if outConsumed != nil {
		*outConsumed = C.int32_t(consumed)
	}
	return 0
}

//export SubtextSubViewerParse
func SubtextSubViewerParse(line *C.uint8_t, lineLen C.int, outStartMs, outDurMs *C.int64_t, outConsumed *C.int32_t) C.int {
	startMs, durMs, consumed, ok := subtitle.SubViewer(goBytes(line, lineLen))
	if !ok {
		return C.int(abiresult.ParseError.Code())
	}
	if outStartMs != nil {
		*outStartMs = C.int64_t(startMs)
	}
	if outDurMs != nil {
		*outDurMs = C.int64_t(durMs)
	}
	if outConsumed != nil {
		*outConsumed = C.int32_t(consumed)
	}
	return 0
}

//export SubtextSubViewer1Parse
func SubtextSubViewer1Parse(b *C.uint8_t, bLen C.int, outStartMs *C.int64_t, outConsumed *C.int32_t) C.int {
	startMs, consumed, ok := subtitle.SubViewer1(goBytes(b, bLen))
	if !ok {
		return C.int(abiresult.ParseError.Code())
	}
	if outStartMs != nil {
		*outStartMs = C.int64_t(startMs)
	}
	if outConsumed != nil {
		*outConsumed = C.int32_t(consumed)
	}
	return 0
}

//export SubtextAQTitleMarker
func SubtextAQTitleMarker(line *C.uint8_t, lineLen C.int, outFrame *C.int64_t, outConsumed *C.int32_t) C.int {
	frame, consumed, ok := subtitle.AQTitleMarker(goBytes(line, lineLen))
	if !ok {
		return C.int(abiresult.ParseError.Code())
	}
	if outFrame != nil {
		*outFrame = C.int64_t(frame)
	}
	if outConsumed != nil {
		*outConsumed = C.int32_t(consumed)
	}
	return 0
}

//export SubtextSCCParse
func SubtextSCCParse(input *C.uint8_t, inputLen C.int, dst *C.subtext_scc_word_t, dstCap C.int, outTotal, outWritten *C.int) C.int {
	in := goBytes(input, inputLen)
	_, probe := subtitle.SCC(in, nil)
	if outTotal != nil {
		*outTotal = C.int(probe.Total)
	}
	words := make([]subtitle.SCCWord, probe.Total)
	words, res := subtitle.SCC(in, words)
	n := len(words)
	if C.int(n) > dstCap {
		n = int(dstCap)
	}
	for i := 0; i < n; i++ {
		w := (*C.subtext_scc_word_t)(unsafe.Add(unsafe.Pointer(dst), uintptr(i)*unsafe.Sizeof(*dst)))
		w.value = C.uint16_t(words[i].Value)
		w.text_offset = C.int32_t(words[i].Text.Offset)
		w.text_length = C.int32_t(words[i].Text.Length)
	}
	if outWritten != nil {
		*outWritten = C.int(n)
	}
	if res.Truncated {
		return C.int(abiresult.OutOfSpace.Code())
	}
	return 0
}

//export SubtextMCCBytesToHex
func SubtextMCCBytesToHex(input *C.uint8_t, inputLen C.int, useAlias C.int,
	dst *C.uint8_t, dstCap C.int, outRequired *C.int) C.int {
	in := goBytes(input, inputLen)
	var out []byte
	if dstCap > 0 && dst != nil {
		out = unsafe.Slice((*byte)(unsafe.Pointer(dst)), int(dstCap))
	}
	required, err := subtitle.MCCBytesToHex(in, out, int(dstCap), useAlias != 0)
	if outRequired != nil {
		*outRequired = C.int(required)
	}
	return statusCode(err)
}

//export SubtextMCCExpandPayload
func SubtextMCCExpandPayload(input *C.uint8_t, inputLen C.int,
	dst *C.uint8_t, dstCap C.int, outTotal, outWritten *C.int) C.int {
	in := goBytes(input, inputLen)
	var out []byte
	if dstCap > 0 && dst != nil {
		out = unsafe.Slice((*byte)(unsafe.Pointer(dst)), int(dstCap))
	}
	res, err := subtitle.MCCExpandPayload(in, out)
	if err != nil {
		return statusCode(err)
	}
	if outTotal != nil {
		*outTotal = C.int(res.TotalBytes)
	}
	if outWritten != nil {
		*outWritten = C.int(res.WrittenBytes)
	}
	if res.Truncated {
		return C.int(abiresult.OutOfSpace.Code())
	}
	return 0
}

//export SubtextFFMetadataSplitKV
func SubtextFFMetadataSplitKV(line *C.uint8_t, lineLen C.int, outOffset *C.int32_t) C.int {
	off, ok := misc.FFMetadataSplitKV(goBytes(line, lineLen))
	if !ok {
		return C.int(abiresult.ParseError.Code())
	}
	if outOffset != nil {
		*outOffset = C.int32_t(off)
	}
	return 0
}

//export SubtextFFMetadataUnescape
func SubtextFFMetadataUnescape(input *C.uint8_t, inputLen C.int,
	dst *C.uint8_t, dstCap C.int, outRequired *C.int) C.int {
	in := goBytes(input, inputLen)
	var out []byte
	if dstCap > 0 && dst != nil {
		out = unsafe.Slice((*byte)(unsafe.Pointer(dst)), int(dstCap))
	}
	required, err := misc.FFMetadataUnescape(in, out, int(dstCap))
	if outRequired != nil {
		*outRequired = C.int(required)
	}
	return statusCode(err)
}

//export SubtextTTMLParseExtradata
func SubtextTTMLParseExtradata(extradata *C.uint8_t, extradataLen C.int,
	outIsParagraphMode, outIsDefault *C.int,
	outTTParamsOff, outTTParamsLen, outPreBodyOff, outPreBodyLen *C.int32_t) C.int {
	d, err := misc.ParseTTMLExtradata(goBytes(extradata, extradataLen))
	if err != nil {
		return statusCode(err)
	}
	if outIsParagraphMode != nil {
		*outIsParagraphMode = boolToC(d.IsParagraphMode)
	}
	if outIsDefault != nil {
		*outIsDefault = boolToC(d.IsDefault)
	}
	if outTTParamsOff != nil {
		*outTTParamsOff = C.int32_t(d.TTParams.Offset)
	}
	if outTTParamsLen != nil {
		*outTTParamsLen = C.int32_t(d.TTParams.Length)
	}
	if outPreBodyOff != nil {
		*outPreBodyOff = C.int32_t(d.PreBody.Offset)
	}
	if outPreBodyLen != nil {
		*outPreBodyLen = C.int32_t(d.PreBody.Length)
	}
	return 0
}

func boolToC(b bool) C.int {
	if b {
		return 1
	}
	return 0
}

//export SubtextConcatKeyword
func SubtextConcatKeyword(input *C.uint8_t, inputLen C.int, outLeadingSkip, outTokenLen, outAdvance *C.int) C.int {
	leadingSkip, tokenLen, advance, ok := misc.ConcatKeyword(goBytes(input, inputLen))
	if !ok {
		return C.int(abiresult.ParseError.Code())
	}
	if outLeadingSkip != nil {
		*outLeadingSkip = C.int(leadingSkip)
	}
	if outTokenLen != nil {
		*outTokenLen = C.int(tokenLen)
	}
	if outAdvance != nil {
		*outAdvance = C.int(advance)
	}
	return 0
}

//export SubtextConcatToken
func SubtextConcatToken(input *C.uint8_t, inputLen C.int, term *C.uint8_t, termLen C.int,
	dst *C.uint8_t, dstCap C.int, outRequired, outAdvance *C.int) C.int {
	in := goBytes(input, inputLen)
	t := goBytes(term, termLen)
	var out []byte
	if dstCap > 0 && dst != nil {
		out = unsafe.Slice((*byte)(unsafe.Pointer(dst)), int(dstCap))
	}
	required, advance, err := misc.ConcatToken(in, t, out, int(dstCap))
	if outRequired != nil {
		*outRequired = C.int(required)
	}
	if outAdvance != nil {
		*outAdvance = C.int(advance)
	}
	return statusCode(err)
}
