package misc

import (
	"fmt"

	"github.com/avtext/subtext/internal/abiresult"
)

func errParse(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{abiresult.ParseError}, args...)...)
}

func errInvalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{abiresult.InvalidArgs}, args...)...)
}

func errOutOfSpace(required int) error {
	return fmt.Errorf("%w: required=%d", abiresult.OutOfSpace, required)
}
