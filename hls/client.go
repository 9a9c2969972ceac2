package hls

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/avtext/subtext/internal/abiresult"
	"github.com/avtext/subtext/internal/clock"
	"github.com/avtext/subtext/internal/ioabi"
	"github.com/avtext/subtext/internal/urlresolve"
)

// liveStartBackSegments is how many segments from the end of a live
// (non-Finished) playlist Open starts reading, spec.md §4.F.
const liveStartBackSegments = 3

// reloadPollSliceMicro is the maximum span of one interruptible sleep
// slice while waiting for a live playlist to become due for reload,
// spec.md §4.F step 5 and §5's "at least every 100 ms" MUST.
const reloadPollSliceMicro = 100_000

// Client is the streaming HLS reader: Open resolves the uri to a variant's
// media playlist (or treats it as one directly), Read drains segments in
// sequence, reloading the playlist as needed for live streams.
type Client struct {
	opener   ioabi.Opener
	resolver urlresolve.Resolver
	clk      clock.Clock
	interupt clock.Interrupter
	log      *slog.Logger

	baseURL    string
	playlist   Playlist
	curSeqNo   int32
	cur        ioabi.SegmentReader
	lastReload int64 // clk.NowMicro() at the last successful playlist fetch
	closed     bool
}

// NewClient builds a Client from its collaborators. log may be nil, in
// which case slog.Default() is used.
func NewClient(opener ioabi.Opener, resolver urlresolve.Resolver, clk clock.Clock, interupt clock.Interrupter, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	return &Client{opener: opener, resolver: resolver, clk: clk, interupt: interupt, log: log}
}

// Open resolves uri, which must have the form "hls+<scheme>://...", fetches
// the playlist it names, selects the highest-bandwidth variant if it is a
// master playlist, and positions the client at the live start point if the
// playlist is not yet Finished.
func (c *Client) Open(ctx context.Context, uri string) error {
	inner, err := splitHLSScheme(uri)
	if err != nil {
		if strings.HasPrefix(uri, "hls://") {
			c.log.Warn("hls: no nested scheme given, use hls+<scheme>://", "uri", uri)
		}
		return err
	}

	pl, resolvedBase, err := c.fetchPlaylist(ctx, inner)
	if err != nil {
		return err
	}

	if len(pl.Segments) == 0 && len(pl.Variants) > 0 {
		variantURL := selectVariant(pl.Variants)
		pl, resolvedBase, err = c.fetchPlaylist(ctx, variantURL)
		if err != nil {
			return err
		}
	}

	if len(pl.Segments) == 0 {
		return fmt.Errorf("%w: no segments after variant selection", abiresult.EmptyPlaylist)
	}

	c.playlist = pl
	c.baseURL = resolvedBase
	c.curSeqNo = pl.StartSeqNo
	if !pl.Finished && len(pl.Segments) > liveStartBackSegments {
		back := len(pl.Segments) - liveStartBackSegments
		c.curSeqNo = pl.StartSeqNo + int32(back)
	}
	return nil
}

func (c *Client) fetchPlaylist(ctx context.Context, url string) (Playlist, string, error) {
	rc, err := c.opener.Open(ctx, url)
	if err != nil {
		return Playlist{}, "", err
	}
	defer rc.Close()
	text, err := io.ReadAll(rc)
	if err != nil {
		return Playlist{}, "", err
	}
	pl, err := Parse(text, url, c.resolver, false)
	if err != nil {
		return Playlist{}, "", err
	}
	c.lastReload = c.clk.NowMicro()
	return pl, url, nil
}

// selectVariant returns the URL of the variant with the highest bandwidth,
// breaking ties in favor of the first one seen, per spec.md's Open Question
// resolution (strict '>' comparison).
func selectVariant(variants []Variant) string {
	best := variants[0]
	for _, v := range variants[1:] {
		if v.Bandwidth > best.Bandwidth {
			best = v
		}
	}
	return best.URL
}

// Read fills dst with up to len(dst) bytes from the current segment,
// opening the next segment and reloading the live playlist as needed. It
// returns abiresult.EOF once the playlist is Finished and all segments are
// exhausted, and abiresult.Interrupt if the interrupter fires while
// waiting for a live reload.
func (c *Client) Read(ctx context.Context, dst []byte) (int, error) {
	if c.closed {
		return 0, fmt.Errorf("%w: client closed", abiresult.InvalidArgs)
	}

	for {
		if c.cur != nil {
			n, err := c.cur.Read(dst)
			if n > 0 {
				return n, nil
			}
			if err == io.EOF || err == nil {
				c.cur.Close()
				c.cur = nil
				c.curSeqNo++
				continue
			}
			return 0, err
		}

		if err := c.awaitNextSegment(ctx); err != nil {
			return 0, err
		}
	}
}

// errSegmentSkipped signals openCurrentSegment failed to open the segment
// at the current sequence number and has already advanced past it; the
// caller should re-enter the retry loop rather than retry the same index.
var errSegmentSkipped = fmt.Errorf("hls: segment open failed, advancing")

// awaitNextSegment implements spec.md §4.F read() steps 2-6: it reloads the
// live playlist when due, waits for the next reload when the known
// segments are exhausted, and opens the segment at c.curSeqNo, leaving it
// in c.cur on success.
func (c *Client) awaitNextSegment(ctx context.Context) error {
	reloaded := false
	for {
		interval := c.reloadIntervalMicro(reloaded)

		if !c.playlist.Finished && c.clk.NowMicro()-c.lastReload >= interval {
			if err := c.reload(ctx); err != nil {
				return err
			}
			reloaded = true
			continue
		}

		idx := int(c.curSeqNo - c.playlist.StartSeqNo)
		if idx < 0 || idx >= len(c.playlist.Segments) {
			if c.playlist.Finished {
				return abiresult.EOF
			}
			if err := c.waitForReload(interval); err != nil {
				return err
			}
			continue
		}

		err := c.openCurrentSegment(ctx)
		switch err {
		case nil:
			return nil
		case errSegmentSkipped:
			continue
		default:
			return err
		}
	}
}

// waitForReload sleeps in slices no longer than reloadPollSliceMicro,
// polling the interrupter between each one, until interval has elapsed
// since the last reload (spec.md §4.F step 5, §5's MUST).
func (c *Client) waitForReload(interval int64) error {
	for {
		elapsed := c.clk.NowMicro() - c.lastReload
		if elapsed >= interval {
			return nil
		}
		slice := interval - elapsed
		if slice > reloadPollSliceMicro {
			slice = reloadPollSliceMicro
		}
		c.clk.SleepMicro(slice)
		if c.interrupted() {
			return abiresult.Interrupt
		}
	}
}

// openCurrentSegment opens the segment at c.curSeqNo. On an open failure
// that is not an interrupt, it warns, advances c.curSeqNo past the failed
// segment, and returns errSegmentSkipped so the caller re-enters the retry
// loop instead of retrying in place (spec.md §4.F step 6).
func (c *Client) openCurrentSegment(ctx context.Context) error {
	idx := int(c.curSeqNo - c.playlist.StartSeqNo)
	seg := c.playlist.Segments[idx]
	rc, err := c.opener.Open(ctx, seg.URL)
	if err != nil {
		if c.interrupted() {
			return abiresult.Interrupt
		}
		c.log.Warn("hls: segment open failed, skipping", "url", seg.URL, "seq", c.curSeqNo, "error", err)
		c.curSeqNo++
		return errSegmentSkipped
	}
	c.cur = rc
	return nil
}

func (c *Client) interrupted() bool {
	return c.interupt != nil && c.interupt.Interrupted()
}

// reloadIntervalMicro is the last known segment's duration, falling back
// to the playlist's target duration when no segments are known yet
// (spec.md §4.F step 2); once a reload has already happened inside this
// Read call it is half the target duration instead.
func (c *Client) reloadIntervalMicro(reloaded bool) int64 {
	var interval int64
	if reloaded {
		interval = c.playlist.TargetDurationUs / 2
	} else if n := len(c.playlist.Segments); n > 0 {
		interval = c.playlist.Segments[n-1].DurationUs
	} else {
		interval = c.playlist.TargetDurationUs
	}
	if interval <= 0 {
		interval = 1_000_000
	}
	return interval
}

// reload re-fetches the current playlist and reconciles c.curSeqNo against
// its (possibly advanced) StartSeqNo.
func (c *Client) reload(ctx context.Context) error {
	pl, _, err := c.fetchPlaylist(ctx, c.baseURL)
	if err != nil {
		return err
	}
	prevSeqNo := c.curSeqNo
	c.playlist = pl

	if prevSeqNo < pl.StartSeqNo {
		gap := int64(pl.StartSeqNo) - int64(prevSeqNo)
		c.log.Warn("hls: sequence snapped forward on reload", "gap", gap, "prev_seq", prevSeqNo, "new_start", pl.StartSeqNo)
		c.curSeqNo = pl.StartSeqNo
	}
	return nil
}

// Close releases the current segment stream. It is safe to call more than
// once.
func (c *Client) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if c.cur != nil {
		err := c.cur.Close()
		c.cur = nil
		return err
	}
	return nil
}

// splitHLSScheme validates the "hls+<scheme>://" wrapper and returns the
// unwrapped URL. Any uri not in that form is invalid_arg: "hls://" without
// a nested scheme gets a message telling the caller to supply one
// explicitly (spec.md §6); any other form is rejected with a generic
// malformed-uri message.
func splitHLSScheme(uri string) (inner string, err error) {
	if strings.HasPrefix(uri, "hls://") {
		return "", fmt.Errorf("%w: hls:// requires a nested scheme, use hls+<scheme>:// instead", abiresult.InvalidArgs)
	}
	const prefix = "hls+"
	if !strings.HasPrefix(uri, prefix) {
		return "", fmt.Errorf("%w: uri %q must have the form hls+<scheme>://...", abiresult.InvalidArgs, uri)
	}
	rest := uri[len(prefix):]
	sep := strings.Index(rest, "://")
	if sep <= 0 {
		return "", fmt.Errorf("%w: malformed hls+ uri %q", abiresult.InvalidArgs, uri)
	}
	scheme := rest[:sep]
	return scheme + rest[sep:], nil
}
