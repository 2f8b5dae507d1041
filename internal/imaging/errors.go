package imaging

import "errors"

// Sentinel errors for codec and compositor failures. Every error returned by
// this package wraps exactly one of these.
var (
	// ErrUnreadableFile indicates an image file that could not be opened
	// or whose contents could not be decoded.
	ErrUnreadableFile = errors.New("unreadable image file")

	// ErrUnrecognizedFormat indicates a file extension outside the
	// supported set (jpg/jpeg/jpe, png, gif).
	ErrUnrecognizedFormat = errors.New("unrecognized image format")

	// ErrEncode indicates a failure while encoding a composited sprite.
	ErrEncode = errors.New("image encode failed")

	// ErrComposition indicates a failure while building the sprite canvas.
	ErrComposition = errors.New("sprite composition failed")
)
