package sprite

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"

	"github.com/IndyHallLabs/css-sprite-generator/internal/imaging"
)

// Writer encodes composited sprites and commits them to disk.
type Writer struct {
	Format imaging.Format
	// JPEGQuality applies to JPEG output only; out-of-range values fall
	// back to imaging.DefaultJPEGQuality.
	JPEGQuality int
}

// Write encodes img, overwrites primary with the result, and then deletes
// secondary. The deletion is unconditional once the primary write succeeds:
// the raw hover-state source file is gone. Any failure before that point
// leaves secondary untouched.
func (w Writer) Write(img image.Image, primary, secondary string) error {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, w.Format, w.JPEGQuality); err != nil {
		return err
	}

	f, err := os.OpenFile(primary, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return fmt.Errorf("%w: %s", ErrPathNotWritable, primary)
		}
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close()
		return fmt.Errorf("%w: %s: %v", ErrWrite, primary, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, primary, err)
	}

	if err := os.Remove(secondary); err != nil {
		return fmt.Errorf("%w: remove %s: %v", ErrWrite, secondary, err)
	}
	return nil
}
