package sprite

import (
	"fmt"

	"github.com/IndyHallLabs/css-sprite-generator/internal/imaging"
)

// Registry holds the pairs for one batch plus the output format applied to
// every sprite it produces.
type Registry struct {
	pairs  []Pair
	rule   PatternRule
	format imaging.Format
}

// NewRegistry returns an empty registry using the default patterns and PNG
// output.
func NewRegistry() *Registry {
	return &Registry{
		rule:   DefaultPatterns(),
		format: imaging.PNG,
	}
}

// SetFormat overrides the output format for this registry.
func (r *Registry) SetFormat(f imaging.Format) { r.format = f }

// Format returns the configured output format.
func (r *Registry) Format() imaging.Format { return r.format }

// SetPatterns overrides the discovery patterns used by SetDirectory.
func (r *Registry) SetPatterns(rule PatternRule) { r.rule = rule }

// SetPairs replaces the registry contents with an explicit pair list.
func (r *Registry) SetPairs(pairs []Pair) error {
	for i, p := range pairs {
		if p.Primary == "" || p.Secondary == "" {
			return fmt.Errorf("%w: pair %d must name both files", ErrInvalidPair, i)
		}
	}
	r.pairs = append([]Pair(nil), pairs...)
	return nil
}

// SetDirectory replaces the registry contents with the pairs discovered in
// dir.
func (r *Registry) SetDirectory(dir string) error {
	pairs, err := Discover(dir, r.rule)
	if err != nil {
		return err
	}
	r.pairs = pairs
	return nil
}

// Pairs returns the current pair list in batch order.
func (r *Registry) Pairs() []Pair { return r.pairs }
