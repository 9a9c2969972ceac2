package subtitle

import (
	"testing"

	"github.com/matryer/is"
)

func TestASSDialogue(t *testing.T) {
	is := is.New(t)
	line := []byte("Dialogue: 0,0:00:01.00,0:00:02.50,Default,,0,0,0,,Hello, world")
	d, err := ASS(line)
	is.NoErr(err)
	is.Equal(d.Layer, 0)
	is.Equal(d.StartCs, int64(100))
	is.Equal(d.EndCs, int64(250))
	is.Equal(string(line[d.TextOffset:d.TextOffset+d.TextLength]), "Hello, world")
}

func TestASSDialogueMarkedLayer(t *testing.T) {
	is := is.New(t)
	line := []byte("Dialogue: Marked=0,0:00:01.00,0:00:02.50,Default,,0,0,0,,Text")
	d, err := ASS(line)
	is.NoErr(err)
	is.Equal(d.Layer, 0)
}

func TestASSRejectsMissingPrefix(t *testing.T) {
	is := is.New(t)
	_, err := ASS([]byte("not a dialogue line"))
	is.True(err != nil)
}
