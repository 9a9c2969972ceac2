package subtitle

import (
	"testing"

	"github.com/matryer/is"
)

func TestMicroDVD(t *testing.T) {
	is := is.New(t)
	line := []byte("{100}{200}Hello there")
	l, err := MicroDVD(line, 0)
	is.NoErr(err)
	is.Equal(l.StartFrames, int64(100))
	is.Equal(l.DurationFrames, int64(100))
	is.Equal(string(l.Text.Bytes(line)), "Hello there")
}

func TestMicroDVDEmptyEnd(t *testing.T) {
	is := is.New(t)
	line := []byte("{100}{}Hello")
	l, err := MicroDVD(line, 0)
	is.NoErr(err)
	is.Equal(l.DurationFrames, int64(DurationUnset))
}
