package greeting

import "errors"

var (
	// ErrFlagAsValue is returned when the token following --name is itself a flag.
	ErrFlagAsValue = errors.New("name value looks like a flag")
)
