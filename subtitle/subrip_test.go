package subtitle

import (
	"testing"

	"github.com/matryer/is"
)

const srtSample = "1\n00:00:01,000 --> 00:00:04,000\nHello there\n\n2\n00:00:05,000 --> 00:00:06,500\nSecond line\nwraps\n\n"

func TestSubRipTwoPass(t *testing.T) {
	is := is.New(t)
	input := []byte(srtSample)

	_, res := SubRip(input, nil)
	is.Equal(res.Total, 2)

	dst := make([]Event, res.Total)
	out, res2 := SubRip(input, dst)
	is.Equal(res2.Truncated, false)
	is.Equal(len(out), 2)
	is.Equal(out[0].Start, int64(1000))
	is.Equal(out[0].Duration, int64(3000))
	is.Equal(string(out[0].Payload.Bytes(input)), "Hello there")
	is.Equal(string(out[1].Payload.Bytes(input)), "Second line\nwraps")
}

func TestSubRipTruncation(t *testing.T) {
	is := is.New(t)
	input := []byte(srtSample)
	short := make([]Event, 1)
	out, res := SubRip(input, short)
	is.Equal(len(out), 1)
	is.True(res.Truncated)
	is.Equal(res.Total, 2)
}
