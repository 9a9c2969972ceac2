package hls

import (
	"errors"
	"testing"

	"github.com/avtext/subtext/internal/abiresult"
	"github.com/avtext/subtext/internal/urlresolve"
	"github.com/matryer/is"
)

const mediaPlaylist = `#EXTM3U
#EXT-X-TARGETDURATION:10
#EXT-X-MEDIA-SEQUENCE:5
#EXTINF:9.009,
https://example.com/seg5.ts
#EXTINF:9.009,title here
seg6.ts
#EXT-X-ENDLIST
`

const masterPlaylist = `#EXTM3U
#EXT-X-STREAM-INF:BANDWIDTH=1280000,RESOLUTION=720x480
low.m3u8
#EXT-X-STREAM-INF:BANDWIDTH=2560000,RESOLUTION=1280x720
high.m3u8
`

func TestParseMediaPlaylist(t *testing.T) {
	is := is.New(t)
	pl, err := Parse([]byte(mediaPlaylist), "https://example.com/live.m3u8", urlresolve.Stdlib{}, false)
	is.NoErr(err)                                    // must parse
	is.Equal(pl.TargetDurationUs, int64(10_000_000)) // target duration
	is.Equal(pl.StartSeqNo, int32(5))                // media sequence
	is.True(pl.Finished)                             // endlist seen
	is.Equal(len(pl.Segments), 2)                    // two segments
	is.Equal(pl.Segments[0].URL, "https://example.com/seg5.ts")
	is.Equal(pl.Segments[1].URL, "https://example.com/seg6.ts") // resolved against base
	is.Equal(pl.Segments[0].DurationUs, int64(9_009_000))
}

func TestParseMasterPlaylistSelectsByBandwidth(t *testing.T) {
	is := is.New(t)
	pl, err := Parse([]byte(masterPlaylist), "https://example.com/master.m3u8", urlresolve.Stdlib{}, false)
	is.NoErr(err)                 // must parse
	is.Equal(len(pl.Variants), 2) // two variants
	is.Equal(pl.Variants[0].Bandwidth, int32(1280000))
	is.Equal(pl.Variants[1].Bandwidth, int32(2560000))
	best := selectVariant(pl.Variants)
	is.Equal(best, "https://example.com/high.m3u8") // highest bandwidth wins
}

func TestParseRejectsMissingSignature(t *testing.T) {
	is := is.New(t)
	_, err := Parse([]byte("#EXT-X-TARGETDURATION:10\n"), "https://example.com/x.m3u8", urlresolve.Stdlib{}, false)
	is.True(err != nil) // missing #EXTM3U must fail
}

func TestParseStrictRejectsUnknownTag(t *testing.T) {
	is := is.New(t)
	text := "#EXTM3U\n#EXT-X-SOME-FUTURE-TAG:1\n#EXT-X-TARGETDURATION:10\n#EXT-X-MEDIA-SEQUENCE:0\n#EXTINF:1,\nseg.ts\n"
	_, err := ParseStrict([]byte(text), "https://example.com/x.m3u8", urlresolve.Stdlib{})
	is.True(err != nil) // strict mode rejects unknown tag

	pl, err := Parse([]byte(text), "https://example.com/x.m3u8", urlresolve.Stdlib{}, false)
	is.NoErr(err)                 // non-strict tolerates it
	is.Equal(len(pl.Segments), 1) // unknown tag does not disarm or break parsing
}

func TestParseEventsTwoPass(t *testing.T) {
	is := is.New(t)
	_, res, err := ParseEvents([]byte(mediaPlaylist), nil, false)
	is.NoErr(err) // capacity probe must not fail

	dst := make([]Event, res.Total)
	got, res2, err := ParseEvents([]byte(mediaPlaylist), dst, false)
	is.NoErr(err)
	is.Equal(res2.Truncated, false)
	is.Equal(len(got), res.Total)

	short := make([]Event, 1)
	got2, res3, err := ParseEvents([]byte(mediaPlaylist), short, false)
	is.NoErr(err)
	is.True(res3.Truncated) // fewer events than total requested
	is.Equal(len(got2), 1)
	is.Equal(res3.Total, res.Total)
}

func TestWriteVersionHeaderTwoPass(t *testing.T) {
	is := is.New(t)
	required, err := WriteVersionHeader(3, nil)
	is.True(errors.Is(err, abiresult.OutOfSpace)) // zero-capacity probe reports OutOfSpace

	dst := make([]byte, required)
	n, err := WriteVersionHeader(3, dst)
	is.NoErr(err)
	is.Equal(n, required)
	is.Equal(string(dst[:n-1]), "#EXTM3U\n#EXT-X-VERSION:3\n")
	is.Equal(dst[n-1], byte(0)) // NUL terminator

	short := make([]byte, 4)
	n2, err := WriteVersionHeader(3, short)
	is.True(errors.Is(err, abiresult.OutOfSpace)) // short buffer must report OutOfSpace
	is.Equal(n2, required)
	is.Equal(short[3], byte(0)) // truncated prefix still safely terminated
}
