package clock

import (
	"testing"

	"github.com/matryer/is"
)

func TestTokenTriggerAndReset(t *testing.T) {
	is := is.New(t)
	var tok Token
	is.Equal(tok.Interrupted(), false)
	tok.Trigger()
	is.True(tok.Interrupted())
	tok.Reset()
	is.Equal(tok.Interrupted(), false)
}

func TestSystemClockAdvances(t *testing.T) {
	is := is.New(t)
	var c System
	before := c.NowMicro()
	c.SleepMicro(1000)
	after := c.NowMicro()
	is.True(after >= before)
}
