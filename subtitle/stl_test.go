package subtitle

import (
	"testing"

	"github.com/matryer/is"
)

func TestSTLLine(t *testing.T) {
	is := is.New(t)
	line := []byte("01:02:03:04 , 01:02:05:00 , Hello there")
	l, err := STL(line, 0)
	is.NoErr(err)
	is.Equal(l.StartCs, int64(1*360000+2*6000+3*100+4))
	is.Equal(l.EndCs, int64(1*360000+2*6000+5*100))
	is.Equal(string(l.Payload.Bytes(line)), "Hello there")
}

func TestSTLLineMissingComma(t *testing.T) {
	is := is.New(t)
	_, err := STL([]byte("01:02:03:04 01:02:05:00 text"), 0)
	is.True(err != nil)
}
