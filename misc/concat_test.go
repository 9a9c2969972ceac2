package misc

import (
	"testing"

	"github.com/matryer/is"
)

func TestConcatKeyword(t *testing.T) {
	is := is.New(t)
	leadingSkip, tokenLen, _, ok := ConcatKeyword([]byte("  file segment.ts\x00"))
	is.True(ok)
	is.Equal(leadingSkip, 2)
	is.Equal(tokenLen, 4)
}

func TestConcatToken(t *testing.T) {
	is := is.New(t)
	dst := make([]byte, 32)
	required, _, err := ConcatToken([]byte("'my file.ts'\x00"), []byte(" \x00"), dst, len(dst))
	is.NoErr(err)
	is.Equal(string(dst[:required-1]), "my file.ts")
}
