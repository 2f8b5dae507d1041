package imaging

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
)

// Format identifies one of the supported sprite codecs.
type Format int

const (
	PNG Format = iota
	JPEG
	GIF
)

// DefaultJPEGQuality is used for JPEG output when no quality is configured.
const DefaultJPEGQuality = 90

// String returns the canonical lowercase name of the format.
func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case JPEG:
		return "jpeg"
	case GIF:
		return "gif"
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// ParseFormat converts a configuration value into a Format. "jpg" is
// accepted as an alias for "jpeg".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "png":
		return PNG, nil
	case "jpeg", "jpg":
		return JPEG, nil
	case "gif":
		return GIF, nil
	}
	return 0, fmt.Errorf("unknown output format %q (want png, jpeg, or gif)", s)
}

// extFormats is the closed extension table driving decoder selection.
var extFormats = map[string]Format{
	".jpg":  JPEG,
	".jpeg": JPEG,
	".jpe":  JPEG,
	".png":  PNG,
	".gif":  GIF,
}

// FormatForPath resolves a file path to its codec by extension,
// case-insensitively. Extensions outside the table wrap
// ErrUnrecognizedFormat.
func FormatForPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	f, ok := extFormats[ext]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnrecognizedFormat, path)
	}
	return f, nil
}

var decoders = map[Format]func(io.Reader) (image.Image, error){
	PNG:  png.Decode,
	JPEG: jpeg.Decode,
	GIF:  gif.Decode,
}

// Decode reads the image at path using the decoder its extension selects.
// Open and decode failures wrap ErrUnreadableFile; an extension outside the
// supported set wraps ErrUnrecognizedFormat.
func Decode(path string) (image.Image, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}
	defer f.Close()

	img, err := decoders[format](f)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrUnreadableFile, path, err)
	}
	return img, nil
}

// encodeGIF adapts image/gif to the imgio.Encoder shape; imgio ships PNG,
// JPEG, and BMP encoders but no GIF one.
func encodeGIF(w io.Writer, img image.Image) error {
	return gif.Encode(w, img, nil)
}

// EncoderFor returns the encoder for f. JPEG output uses jpegQuality
// (1-100); values outside that range fall back to DefaultJPEGQuality. The
// other formats ignore it.
func EncoderFor(f Format, jpegQuality int) (imgio.Encoder, error) {
	switch f {
	case PNG:
		return imgio.PNGEncoder(), nil
	case JPEG:
		if jpegQuality < 1 || jpegQuality > 100 {
			jpegQuality = DefaultJPEGQuality
		}
		return imgio.JPEGEncoder(jpegQuality), nil
	case GIF:
		return encodeGIF, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnrecognizedFormat, f)
}

// Encode writes img to w in the given format. Encoder failures wrap
// ErrEncode.
func Encode(w io.Writer, img image.Image, f Format, jpegQuality int) error {
	enc, err := EncoderFor(f, jpegQuality)
	if err != nil {
		return err
	}
	if err := enc(w, img); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncode, f, err)
	}
	return nil
}
