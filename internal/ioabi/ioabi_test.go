package ioabi

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/matryer/is"
)

func TestMemOpenerReadsRegisteredContent(t *testing.T) {
	is := is.New(t)
	opener := MemOpener{Contents: map[string][]byte{
		"https://example.com/a.ts": []byte("hello world"),
	}}
	rc, err := opener.Open(context.Background(), "https://example.com/a.ts")
	is.NoErr(err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	is.NoErr(err)
	is.Equal(string(got), "hello world")
}

func TestMemOpenerNotFound(t *testing.T) {
	is := is.New(t)
	opener := MemOpener{}
	_, err := opener.Open(context.Background(), "https://example.com/missing.ts")
	is.True(errors.Is(err, ErrNotFound))
}
