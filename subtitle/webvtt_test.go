package subtitle

import (
	"testing"

	"github.com/matryer/is"
)

const vttSample = "WEBVTT\n\ncue-1\n00:00:01.000 --> 00:00:02.500 line:0 position:50%\nHi there\n\n00:00:03.000 --> 00:00:04.000\nNo identifier\n"

func TestWebVTTSignatureRequired(t *testing.T) {
	is := is.New(t)
	_, _, err := WebVTT([]byte("not a vtt file"), nil)
	is.True(err != nil)
}

func TestWebVTTTwoPass(t *testing.T) {
	is := is.New(t)
	input := []byte(vttSample)

	_, res, err := WebVTT(input, nil)
	is.NoErr(err)
	is.Equal(res.Total, 2)

	dst := make([]WebVTTCue, res.Total)
	out, res2, err := WebVTT(input, dst)
	is.NoErr(err)
	is.Equal(res2.Written, 2)
	is.Equal(out[0].StartMs, int64(1000))
	is.Equal(out[0].EndMs, int64(2500))
	is.Equal(string(out[0].Identifier.Bytes(input)), "cue-1")
	is.Equal(string(out[0].Settings.Bytes(input)), "line:0 position:50%")
	is.Equal(string(out[0].Payload.Bytes(input)), "Hi there")
	is.Equal(out[1].Identifier.Length, 0)
	is.Equal(string(out[1].Payload.Bytes(input)), "No identifier")
}
