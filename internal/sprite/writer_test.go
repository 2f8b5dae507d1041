package sprite

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/IndyHallLabs/css-sprite-generator/internal/imaging"
)

// solidImage creates a solid-color NRGBA image in memory.
func solidImage(t *testing.T, width, height int, c color.NRGBA) *image.NRGBA {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// writePNG encodes img as a PNG file at path.
func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
}

func TestWriter_CommitsPrimaryAndDeletesSecondary(t *testing.T) {
	dir := t.TempDir()
	primary := filepath.Join(dir, "logo.png")
	secondary := filepath.Join(dir, "logo_over.png")
	writePNG(t, primary, solidImage(t, 4, 4, color.NRGBA{255, 0, 0, 255}))
	writePNG(t, secondary, solidImage(t, 4, 4, color.NRGBA{0, 0, 255, 255}))

	sprite := solidImage(t, 4, 8, color.NRGBA{0, 255, 0, 255})
	w := Writer{Format: imaging.PNG}
	if err := w.Write(sprite, primary, secondary); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	img, err := imaging.Decode(primary)
	if err != nil {
		t.Fatalf("decoding written sprite failed: %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 8 {
		t.Errorf("sprite dimensions = %dx%d, want 4x8",
			img.Bounds().Dx(), img.Bounds().Dy())
	}

	if _, err := os.Stat(secondary); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("secondary file should be deleted, stat returned %v", err)
	}
}

// The configured output format wins over the primary path's extension: a
// pair of .png files can produce a JPEG payload at the .png path.
func TestWriter_FormatIgnoresOutputExtension(t *testing.T) {
	dir := t.TempDir()
	primary := filepath.Join(dir, "logo.png")
	secondary := filepath.Join(dir, "logo_over.png")
	writePNG(t, secondary, solidImage(t, 2, 2, color.NRGBA{0, 0, 255, 255}))

	w := Writer{Format: imaging.JPEG, JPEGQuality: 80}
	if err := w.Write(solidImage(t, 2, 4, color.NRGBA{9, 9, 9, 255}), primary, secondary); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	f, err := os.Open(primary)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	_, format, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode config failed: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("written format = %q, want jpeg", format)
	}
}

func TestWriter_NotWritablePreservesSecondary(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	dir := t.TempDir()
	primary := filepath.Join(dir, "logo.png")
	secondary := filepath.Join(dir, "logo_over.png")
	writePNG(t, primary, solidImage(t, 2, 2, color.NRGBA{255, 0, 0, 255}))
	writePNG(t, secondary, solidImage(t, 2, 2, color.NRGBA{0, 0, 255, 255}))
	if err := os.Chmod(primary, 0o444); err != nil {
		t.Fatal(err)
	}

	w := Writer{Format: imaging.PNG}
	err := w.Write(solidImage(t, 2, 4, color.NRGBA{0, 255, 0, 255}), primary, secondary)
	if !errors.Is(err, ErrPathNotWritable) {
		t.Fatalf("Write = %v, want ErrPathNotWritable", err)
	}

	// The destructive step must not have happened.
	if _, err := os.Stat(secondary); err != nil {
		t.Errorf("secondary file must survive a failed write: %v", err)
	}
}

func TestWriter_MissingSecondary(t *testing.T) {
	dir := t.TempDir()
	primary := filepath.Join(dir, "logo.png")
	secondary := filepath.Join(dir, "gone_over.png")

	w := Writer{Format: imaging.PNG}
	err := w.Write(solidImage(t, 2, 2, color.NRGBA{1, 2, 3, 255}), primary, secondary)
	if !errors.Is(err, ErrWrite) {
		t.Errorf("Write = %v, want ErrWrite for unremovable secondary", err)
	}
}
