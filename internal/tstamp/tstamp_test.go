package tstamp

import (
	"testing"

	"github.com/matryer/is"
)

func TestSubRip(t *testing.T) {
	is := is.New(t)
	ms, n, ok := SubRip([]byte("00:02:17,440 --> "))
	is.True(ok)
	is.Equal(ms, int64(2*60000+17000+440))
	is.Equal(n, 12)
}

func TestWebVTTShortForm(t *testing.T) {
	is := is.New(t)
	ms, _, ok := WebVTT([]byte("00:01.500"))
	is.True(ok)
	is.Equal(ms, int64(1500))
}

func TestWebVTTLongForm(t *testing.T) {
	is := is.New(t)
	ms, _, ok := WebVTT([]byte("01:00:01.500"))
	is.True(ok)
	is.Equal(ms, int64(3600000+1500))
}

func TestASS(t *testing.T) {
	is := is.New(t)
	cs, _, ok := ASS([]byte("0:02:17.44"))
	is.True(ok)
	is.Equal(cs, int64(2*6000+1700+44))
}

func TestLRC(t *testing.T) {
	is := is.New(t)
	us, _, ok := LRC([]byte("[00:12.34]"))
	is.True(ok)
	is.Equal(us, int64(12340)*1000)
}

func TestRealTextColonForm(t *testing.T) {
	is := is.New(t)
	cs, _, ok := RealText([]byte("00:00:05.00"))
	is.True(ok)
	is.Equal(cs, int64(500))
}

func TestRealTextSecondsForm(t *testing.T) {
	is := is.New(t)
	cs, _, ok := RealText([]byte("5.5"))
	is.True(ok)
	is.Equal(cs, int64(550))
}

func TestSubViewerPair(t *testing.T) {
	is := is.New(t)
	start, dur, _, ok := SubViewerPair([]byte("00:00:01.000,00:00:03.500"))
	is.True(ok)
	is.Equal(start, int64(1000))
	is.Equal(dur, int64(2500))
}

func TestSTL(t *testing.T) {
	is := is.New(t)
	cs, n, ok := STL([]byte("01:02:03:04"))
	is.True(ok)
	is.Equal(cs, int64(1*360000+2*6000+3*100+4))
	is.Equal(n, 11)
}

func TestVPlayer(t *testing.T) {
	is := is.New(t)
	cs, delim, ok := VPlayer([]byte("1:02:03.50:text"))
	is.True(ok)
	is.Equal(cs, int64(1*360000+2*6000+3*100+50))
	is.Equal(delim, 10)
}

func TestMPL2Tick(t *testing.T) {
	is := is.New(t)
	tick, n, ok := MPL2Tick([]byte("[123]rest"))
	is.True(ok)
	is.Equal(tick, int64(123))
	is.Equal(n, 5)
}

func TestMicroDVDField(t *testing.T) {
	is := is.New(t)
	v, n, empty, ok := MicroDVDField([]byte("{100}"))
	is.True(ok)
	is.Equal(empty, false)
	is.Equal(v, int64(100))
	is.Equal(n, 5)

	_, _, empty, ok = MicroDVDField([]byte("{}"))
	is.True(ok)
	is.True(empty)
}

func TestJACOsub(t *testing.T) {
	is := is.New(t)
	c, _, ok := JACOsub([]byte("00:01:02.10"))
	is.True(ok)
	is.Equal(c, JACOsubClock{Hours: 0, Minutes: 1, Seconds: 2, Frames: 10})
}

func TestJACOsubFrameMark(t *testing.T) {
	is := is.New(t)
	frame, n, ok := JACOsubFrameMark([]byte("@42"))
	is.True(ok)
	is.Equal(frame, int64(42))
	is.Equal(n, 3)
}
