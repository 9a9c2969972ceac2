package abiresult

import (
	"errors"
	"fmt"
	"testing"

	"github.com/matryer/is"
)

func TestStatusCode(t *testing.T) {
	is := is.New(t)
	is.Equal(OK.Code(), 0)
	is.Equal(ParseError.Code(), -int(ParseError))
	is.True(ParseError.Code() < 0)
}

func TestStatusErrorsIsThroughWrap(t *testing.T) {
	is := is.New(t)
	err := fmt.Errorf("%w: context here", OutOfSpace)
	is.True(errors.Is(err, OutOfSpace))
	is.Equal(errors.Is(err, ParseError), false)
}
