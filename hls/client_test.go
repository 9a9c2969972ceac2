package hls

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/avtext/subtext/internal/clock"
	"github.com/avtext/subtext/internal/ioabi"
	"github.com/avtext/subtext/internal/urlresolve"
	"github.com/matryer/is"
)

const vodPlaylist = `#EXTM3U
#EXT-X-TARGETDURATION:4
#EXT-X-MEDIA-SEQUENCE:0
#EXTINF:4.0,
seg0.ts
#EXTINF:4.0,
seg1.ts
#EXT-X-ENDLIST
`

func newMemClient(contents map[string][]byte) *Client {
	opener := ioabi.MemOpener{Contents: contents}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewClient(opener, urlresolve.Stdlib{}, clock.System{}, nil, log)
}

func TestClientOpenAndReadVOD(t *testing.T) {
	is := is.New(t)
	c := newMemClient(map[string][]byte{
		"https://example.com/live.m3u8": []byte(vodPlaylist),
		"https://example.com/seg0.ts":   []byte("AAAA"),
		"https://example.com/seg1.ts":   []byte("BBBB"),
	})

	err := c.Open(context.Background(), "hls+https://example.com/live.m3u8")
	is.NoErr(err) // open must succeed

	buf := make([]byte, 16)
	var all []byte
	for {
		n, rerr := c.Read(context.Background(), buf)
		all = append(all, buf[:n]...)
		if rerr != nil {
			is.Equal(rerr.Error(), "eof")
			break
		}
	}
	is.Equal(string(all), "AAAABBBB") // both segments drained in order

	is.NoErr(c.Close())
	is.NoErr(c.Close()) // Close must be idempotent
}

func TestClientOpenRejectsEmptyPlaylist(t *testing.T) {
	is := is.New(t)
	c := newMemClient(map[string][]byte{
		"https://example.com/empty.m3u8": []byte("#EXTM3U\n#EXT-X-TARGETDURATION:4\n"),
	})
	err := c.Open(context.Background(), "hls+https://example.com/empty.m3u8")
	is.True(err != nil) // no segments and no variants must fail
}

func TestSplitHLSScheme(t *testing.T) {
	is := is.New(t)
	inner, err := splitHLSScheme("hls+https://example.com/x.m3u8")
	is.NoErr(err)
	is.Equal(inner, "https://example.com/x.m3u8")

	_, err2 := splitHLSScheme("https://example.com/x.m3u8")
	is.True(err2 != nil) // missing hls+ prefix is invalid_arg

	_, err3 := splitHLSScheme("hls://example.com/x.m3u8")
	is.True(err3 != nil) // bare hls:// must be rejected, not tolerated
}
