package misc

import (
	"testing"

	"github.com/matryer/is"
)

func TestID3v2TagLength(t *testing.T) {
	is := is.New(t)
	tag := []byte{'I', 'D', '3', 3, 0, 0, 0, 0, 0, 10}
	is.Equal(ID3v2TagLength(tag), 20) // size 10 + header 10

	is.Equal(ID3v2TagLength([]byte("short")), 0)
	is.Equal(ID3v2TagLength([]byte("XD3")), 0)
}

func TestID3v2TagLengthFooter(t *testing.T) {
	is := is.New(t)
	tag := []byte{'I', 'D', '3', 4, 0, 0x10, 0, 0, 0, 5}
	is.Equal(ID3v2TagLength(tag), 25) // size 5 + header 10 + footer 10
}
