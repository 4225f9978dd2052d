package selection

import "errors"

var (
	// ErrInsufficientPool is returned when a draw asks for more cards than the pool holds
	ErrInsufficientPool = errors.New("not enough eligible cards to draw from")
	// ErrInvalidCount is returned for a negative draw count
	ErrInvalidCount = errors.New("card count must not be negative")
)
