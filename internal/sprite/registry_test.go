package sprite

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/IndyHallLabs/css-sprite-generator/internal/imaging"
)

func TestRegistry_Defaults(t *testing.T) {
	reg := NewRegistry()
	if reg.Format() != imaging.PNG {
		t.Errorf("default format = %v, want PNG", reg.Format())
	}
	if len(reg.Pairs()) != 0 {
		t.Errorf("new registry should hold no pairs")
	}
}

func TestRegistry_SetPairsValidation(t *testing.T) {
	reg := NewRegistry()
	err := reg.SetPairs([]Pair{{Primary: "a.png", Secondary: ""}})
	if !errors.Is(err, ErrInvalidPair) {
		t.Errorf("SetPairs = %v, want ErrInvalidPair", err)
	}

	if err := reg.SetPairs([]Pair{{Primary: "a.png", Secondary: "a_over.png"}}); err != nil {
		t.Fatalf("SetPairs failed: %v", err)
	}
	if len(reg.Pairs()) != 1 {
		t.Errorf("got %d pairs, want 1", len(reg.Pairs()))
	}
}

// SetDirectory must scan the directory it is handed, including on a second
// call that replaces an earlier scan.
func TestRegistry_SetDirectoryScansGivenDirectory(t *testing.T) {
	dirA := t.TempDir()
	touch(t, dirA, "alpha.png")
	touch(t, dirA, "alpha_over.png")

	dirB := t.TempDir()
	touch(t, dirB, "beta.png")
	touch(t, dirB, "beta_over.png")

	reg := NewRegistry()
	if err := reg.SetDirectory(dirA); err != nil {
		t.Fatalf("SetDirectory(dirA) failed: %v", err)
	}
	if err := reg.SetDirectory(dirB); err != nil {
		t.Fatalf("SetDirectory(dirB) failed: %v", err)
	}

	pairs := reg.Pairs()
	if len(pairs) != 1 {
		t.Fatalf("got %d pairs, want 1", len(pairs))
	}
	if pairs[0].Primary != filepath.Join(dirB, "beta.png") {
		t.Errorf("pairs came from the wrong directory: %s", pairs[0].Primary)
	}
}

func TestRegistry_SetDirectoryUnreadable(t *testing.T) {
	reg := NewRegistry()
	err := reg.SetDirectory(filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, ErrDirectoryUnreadable) {
		t.Errorf("SetDirectory = %v, want ErrDirectoryUnreadable", err)
	}
}

func TestRegistry_SetPatterns(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "icon-default.png")
	touch(t, dir, "icon-hover.png")

	rule, err := CompilePatterns(`^(.+)-default\.png$`, `^(.+)-hover\.png$`)
	if err != nil {
		t.Fatalf("CompilePatterns failed: %v", err)
	}

	reg := NewRegistry()
	reg.SetPatterns(rule)
	if err := reg.SetDirectory(dir); err != nil {
		t.Fatalf("SetDirectory failed: %v", err)
	}
	if len(reg.Pairs()) != 1 {
		t.Errorf("got %d pairs, want 1 with custom patterns", len(reg.Pairs()))
	}
}
