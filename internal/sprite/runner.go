package sprite

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	"github.com/IndyHallLabs/css-sprite-generator/internal/imaging"
)

// Runner drives one batch: for each pair in order it decodes both sides,
// stacks the primary image above the secondary one, and commits the sprite.
type Runner struct {
	Writer Writer

	// Background fills canvas regions not covered by either source image;
	// nil means black.
	Background color.Color

	// ContinueOnError switches the batch from fail-fast to collecting
	// per-pair failures and processing every pair.
	ContinueOnError bool

	// Log receives per-pair progress; nil means slog.Default().
	Log *slog.Logger
}

// Run processes pairs strictly in sequence. Under fail-fast (the default)
// the first failure halts the batch and is returned; pairs already
// processed stay committed, pairs at and after the failure are untouched.
// With ContinueOnError set, failed pairs are reported and skipped, and the
// joined failures come back after the last pair.
func (r Runner) Run(pairs []Pair) error {
	logger := r.Log
	if logger == nil {
		logger = slog.Default()
	}

	var failures []error
	for i, pair := range pairs {
		logger.Info("compositing sprite",
			"pair", fmt.Sprintf("%d/%d", i+1, len(pairs)),
			"primary", pair.Primary,
			"secondary", pair.Secondary)

		err := r.runPair(pair)
		if err == nil {
			continue
		}
		err = fmt.Errorf("pair %s: %w", pair.Primary, err)
		if !r.ContinueOnError {
			return err
		}
		logger.Error("pair failed", "primary", pair.Primary, "error", err)
		failures = append(failures, err)
	}
	return errors.Join(failures...)
}

func (r Runner) runPair(pair Pair) error {
	base, err := imaging.Decode(pair.Primary)
	if err != nil {
		return err
	}
	over, err := imaging.Decode(pair.Secondary)
	if err != nil {
		return err
	}

	sprite, err := imaging.StackVertical(base, over, r.Background)
	if err != nil {
		return err
	}

	return r.Writer.Write(sprite, pair.Primary, pair.Secondary)
}
