package subtitle

import (
	"testing"

	"github.com/matryer/is"
)

func TestLRCLine(t *testing.T) {
	is := is.New(t)
	line := []byte("[00:12.34]Hello")
	l, err := LRC(line, 0)
	is.NoErr(err)
	is.Equal(l.StartUs, int64(12340)*1000)
	is.Equal(string(l.Text.Bytes(line)), "Hello")
}

func TestLRCCountTSPrefixMultiTag(t *testing.T) {
	is := is.New(t)
	n := LRCCountTSPrefix([]byte("[00:01.00][00:02.00]Shared line"))
	is.Equal(n, len("[00:01.00][00:02.00]"))
}

func TestSAMIStart(t *testing.T) {
	is := is.New(t)
	ms, err := SAMIStart([]byte("Start=1500"))
	is.NoErr(err)
	is.Equal(ms, int64(1500))

	_, err = SAMIStart([]byte("Start=notanumber"))
	is.True(err != nil)
}

func TestRealTextFormat(t *testing.T) {
	is := is.New(t)
	cs, _, ok := RealText([]byte("1.25"))
	is.True(ok)
	is.Equal(cs, int64(125))
}

func TestSubViewerPairFormat(t *testing.T) {
	is := is.New(t)
	start, dur, _, ok := SubViewer([]byte("00:00:01.000,00:00:02.000"))
	is.True(ok)
	is.Equal(start, int64(1000))
	is.Equal(dur, int64(1000))
}

func TestSubViewer1(t *testing.T) {
	is := is.New(t)
	ms, n, ok := SubViewer1([]byte("[00:01:02]"))
	is.True(ok)
	is.Equal(ms, int64(62)*1000)
	is.Equal(n, 10)
}

func TestPJSLine(t *testing.T) {
	is := is.New(t)
	line := []byte(`100,200,"Hello there"`)
	l, err := PJS(line, 0)
	is.NoErr(err)
	is.Equal(l.Start, int64(100))
	is.Equal(l.End, int64(200))
	is.Equal(string(l.Payload.Bytes(line)), "Hello there")
}

func TestMPL2Line(t *testing.T) {
	is := is.New(t)
	line := []byte("[10][30]Hello")
	l, err := MPL2(line, 0)
	is.NoErr(err)
	is.Equal(l.StartMs, int64(1000))
	is.Equal(l.DurationMs, int64(2000))
	is.Equal(string(l.Text.Bytes(line)), "Hello")
}

func TestMPL2LineEmptyEnd(t *testing.T) {
	is := is.New(t)
	line := []byte("[10][]Hello")
	l, err := MPL2(line, 0)
	is.NoErr(err)
	is.Equal(l.DurationMs, int64(DurationUnset))
}

func TestMPSubLine(t *testing.T) {
	is := is.New(t)
	l, err := MPSub([]byte("1.0 2.5"))
	is.NoErr(err)
	is.Equal(l.Start, int64(1.0*mpsubTSBase))
	is.Equal(l.Duration, int64(2.5*mpsubTSBase))
}

func TestVPlayerLine(t *testing.T) {
	is := is.New(t)
	line := []byte("1:02:03.50:Hello there")
	l, err := VPlayer(line, 0)
	is.NoErr(err)
	is.Equal(l.StartCs, int64(1*360000+2*6000+3*100+50))
	is.Equal(string(l.Text.Bytes(line)), "Hello there")
}

func TestJACOsubShift(t *testing.T) {
	is := is.New(t)
	is.Equal(JACOsubShift([]byte("  10")), int64(10))
	is.Equal(JACOsubShift([]byte("notanumber")), int64(0))
}

func TestJACOsubCue(t *testing.T) {
	is := is.New(t)
	line := []byte("00:00:01.00 00:00:02.00 Hello there")
	c, err := JACOsub(line, 0, 30, 0)
	is.NoErr(err)
	is.Equal(c.StartCs, int64(100))
	is.Equal(c.EndCs, int64(200))
	is.Equal(string(c.Text.Bytes(line)), "Hello there")
}

func TestAQTitleMarker(t *testing.T) {
	is := is.New(t)
	frame, n, ok := AQTitleMarker([]byte("-->> 120"))
	is.True(ok)
	is.Equal(frame, int64(120))
	is.Equal(n, 8)
}

func TestSCCTwoPass(t *testing.T) {
	is := is.New(t)
	input := []byte("9420 94AE 942C")
	_, res := SCC(input, nil)
	is.Equal(res.Total, 3)

	dst := make([]SCCWord, res.Total)
	out, res2 := SCC(input, dst)
	is.Equal(res2.Truncated, false)
	is.Equal(out[0].Value, uint16(0x9420))
}

func TestSCCStopsOnInvalidToken(t *testing.T) {
	is := is.New(t)
	input := []byte("9420 ZZZZ 942C")
	out, res := SCC(input, make([]SCCWord, 10))
	is.Equal(len(out), 1)
	is.True(res.Truncated)
}

func TestMCCRoundTrip(t *testing.T) {
	is := is.New(t)
	raw := []byte{0xFA, 0x00, 0x00, 0x01, 0x02}

	required, err := MCCBytesToHex(raw, nil, 0, true)
	is.True(err != nil) // zero-capacity probe reports OutOfSpace

	dst := make([]byte, required)
	n, err := MCCBytesToHex(raw, dst, len(dst), true)
	is.NoErr(err)
	encoded := dst[:n]
	is.Equal(encoded[0], byte('G')) // first 3 bytes alias to 'G'

	out := make([]byte, len(raw))
	res, err := MCCExpandPayload(encoded, out)
	is.NoErr(err)
	is.Equal(res.Truncated, false)
	is.Equal(out[:res.WrittenBytes], raw)
}

func TestMCCExpandRejectsBadHex(t *testing.T) {
	is := is.New(t)
	_, err := MCCExpandPayload([]byte("ZZ"), make([]byte, 4))
	is.True(err != nil)
}
