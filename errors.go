package progress

import "errors"

var (
	// ErrValueTooLarge reports an update beyond a known maximum while
	// MaxError is set. Without MaxError the same condition silently widens
	// the maximum instead.
	ErrValueTooLarge = errors.New("progress: value exceeds maximum")

	// ErrInvalidRange reports a maximum value below the minimum.
	ErrInvalidRange = errors.New("progress: max value needs to be bigger than the min value")
)
