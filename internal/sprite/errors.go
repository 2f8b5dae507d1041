package sprite

import "errors"

var (
	// ErrDirectoryUnreadable indicates a scan directory that could not be
	// opened.
	ErrDirectoryUnreadable = errors.New("directory unreadable")

	// ErrPathNotWritable indicates an existing output path the process
	// lacks permission to overwrite.
	ErrPathNotWritable = errors.New("output path not writable")

	// ErrWrite indicates an I/O failure while committing a sprite.
	ErrWrite = errors.New("sprite write failed")

	// ErrInvalidPair indicates an explicit pair missing one of its paths.
	ErrInvalidPair = errors.New("invalid pair")
)
