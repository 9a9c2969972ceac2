package urlresolve

import (
	"testing"

	"github.com/matryer/is"
)

func TestStdlibResolve(t *testing.T) {
	is := is.New(t)
	got, err := Stdlib{}.Resolve("https://example.com/live/index.m3u8", "seg1.ts")
	is.NoErr(err)
	is.Equal(got, "https://example.com/live/seg1.ts")
}

func TestStdlibResolveAbsoluteRef(t *testing.T) {
	is := is.New(t)
	got, err := Stdlib{}.Resolve("https://example.com/live/index.m3u8", "https://cdn.example.com/seg1.ts")
	is.NoErr(err)
	is.Equal(got, "https://cdn.example.com/seg1.ts")
}
