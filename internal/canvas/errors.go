package canvas

import "errors"

var (
	// ErrResourceLoad is returned when an image or font cannot be loaded.
	ErrResourceLoad = errors.New("resource load failed")

	// ErrNotImplemented is returned by operations that are deliberately
	// unavailable.
	ErrNotImplemented = errors.New("not implemented")

	// ErrInvalidState is returned when a render target is used outside its
	// begin/end bracket, or bracketed twice.
	ErrInvalidState = errors.New("invalid render state")

	// ErrInvalidSize is returned for non-positive surface dimensions.
	ErrInvalidSize = errors.New("invalid size")
)
