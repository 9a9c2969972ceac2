package token

import (
	"errors"
	"testing"

	"github.com/avtext/subtext/internal/abiresult"
	"github.com/matryer/is"
)

func TestGetSimple(t *testing.T) {
	is := is.New(t)
	input := []byte("  hello world\x00")
	term := []byte(" \x00")
	dst := make([]byte, 16)
	res, err := Get(input, term, dst, len(dst))
	is.NoErr(err)
	is.Equal(res.Required, len("hello")+1)
	is.Equal(string(dst[:res.Required-1]), "hello")
}

func TestGetEscapeAndQuote(t *testing.T) {
	is := is.New(t)
	input := []byte(`'a b'\,c,` + "\x00")
	term := []byte(",\x00")
	dst := make([]byte, 32)
	res, err := Get(input, term, dst, len(dst))
	is.NoErr(err)
	is.Equal(string(dst[:res.Required-1]), "a b,c")
}

func TestGetOutOfSpaceProbe(t *testing.T) {
	is := is.New(t)
	input := []byte("hello\x00")
	term := []byte(" \x00")
	res, err := Get(input, term, nil, 0)
	is.True(errors.Is(err, abiresult.OutOfSpace))
	is.Equal(res.Required, len("hello")+1)
}

func TestGetShortBufferTruncatesSafely(t *testing.T) {
	is := is.New(t)
	input := []byte("hello world\x00")
	term := []byte(" \x00")
	dst := make([]byte, 3)
	res, err := Get(input, term, dst, len(dst))
	is.True(errors.Is(err, abiresult.OutOfSpace))
	is.Equal(res.Required, len("hello")+1)
	is.Equal(dst[len(dst)-1], byte(0)) // always NUL-terminated
}

func TestGetKeyword(t *testing.T) {
	is := is.New(t)
	res, ok := GetKeyword([]byte("   file foo.ts   "))
	is.True(ok)
	is.Equal(res.LeadingSkip, 3)
	is.Equal(res.TokenLen, 4)

	_, ok = GetKeyword([]byte("   "))
	is.Equal(ok, false)
}
