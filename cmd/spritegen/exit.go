package main

import (
	"errors"

	"github.com/IndyHallLabs/css-sprite-generator/internal/imaging"
	"github.com/IndyHallLabs/css-sprite-generator/internal/sprite"
)

// Exit codes distinguish the failure classes so shell scripts can react to
// a specific one.
const (
	exitFailure             = 1
	exitDirectoryUnreadable = 2
	exitUnreadableFile      = 3
	exitUnrecognizedFormat  = 4
	exitCompositionFailed   = 5
	exitPathNotWritable     = 6
	exitEncodeFailed        = 7
	exitWriteFailed         = 8
)

// exitCode maps an error chain to its exit code. Joined errors from a
// collect-and-continue batch are classified by the first sentinel below
// found anywhere in the chain.
func exitCode(err error) int {
	switch {
	case errors.Is(err, sprite.ErrDirectoryUnreadable):
		return exitDirectoryUnreadable
	case errors.Is(err, imaging.ErrUnreadableFile):
		return exitUnreadableFile
	case errors.Is(err, imaging.ErrUnrecognizedFormat):
		return exitUnrecognizedFormat
	case errors.Is(err, imaging.ErrComposition):
		return exitCompositionFailed
	case errors.Is(err, sprite.ErrPathNotWritable):
		return exitPathNotWritable
	case errors.Is(err, imaging.ErrEncode):
		return exitEncodeFailed
	case errors.Is(err, sprite.ErrWrite):
		return exitWriteFailed
	}
	return exitFailure
}
