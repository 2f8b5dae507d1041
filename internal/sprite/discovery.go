package sprite

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// Pair names the two source files of one sprite. The primary file survives
// as the output target; the secondary file is consumed and deleted once the
// sprite is written.
type Pair struct {
	Primary   string
	Secondary string
}

// Default patterns pairing a base image (name.ext) with its hover
// counterpart (name_over.ext) across the supported extensions. RE2 has no
// lookbehind, so the primary pattern rejects stems ending in "_over" with an
// alternation over the stem's trailing characters.
const (
	DefaultPrimaryPattern   = `(?i)^(.*(?:[^_]over|[^o]ver|[^v]er|[^e]r|[^r])|.{1,4})\.(jpe?g|jpe|png|gif)$`
	DefaultSecondaryPattern = `(?i)^(.+)_over\.(jpe?g|jpe|png|gif)$`
)

// PatternRule carries the two compiled expressions classifying directory
// entries during discovery. The first capture group of each yields the base
// key shared by a pair; the second, when present, is the matched extension.
type PatternRule struct {
	Primary   *regexp.Regexp
	Secondary *regexp.Regexp
}

// DefaultPatterns compiles the package default patterns.
func DefaultPatterns() PatternRule {
	return PatternRule{
		Primary:   regexp.MustCompile(DefaultPrimaryPattern),
		Secondary: regexp.MustCompile(DefaultSecondaryPattern),
	}
}

// CompilePatterns builds a PatternRule from user-supplied expressions. Each
// expression must carry at least one capture group for the base key.
func CompilePatterns(primary, secondary string) (PatternRule, error) {
	p, err := regexp.Compile(primary)
	if err != nil {
		return PatternRule{}, fmt.Errorf("primary pattern: %w", err)
	}
	s, err := regexp.Compile(secondary)
	if err != nil {
		return PatternRule{}, fmt.Errorf("secondary pattern: %w", err)
	}
	if p.NumSubexp() < 1 {
		return PatternRule{}, fmt.Errorf("primary pattern %q has no capture group for the base key", primary)
	}
	if s.NumSubexp() < 1 {
		return PatternRule{}, fmt.Errorf("secondary pattern %q has no capture group for the base key", secondary)
	}
	return PatternRule{Primary: p, Secondary: s}, nil
}

// Discover scans dir and groups matching entries into pairs keyed by the
// base name the patterns capture. Classification is primary-first: an entry
// claimed by the primary pattern is never tested against the secondary one,
// and entries matching neither (or subdirectories) are ignored. Base keys
// with only one side present are skipped. Pairs come back in first-seen
// key order, which with os.ReadDir's sorted listing makes batches
// deterministic.
func Discover(dir string, rule PatternRule) ([]Pair, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDirectoryUnreadable, err)
	}

	type slots struct {
		primary   string
		secondary string
	}
	group := make(map[string]*slots)
	var order []string

	record := func(key string) *slots {
		s, ok := group[key]
		if !ok {
			s = &slots{}
			group[key] = s
			order = append(order, key)
		}
		return s
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if m := rule.Primary.FindStringSubmatch(name); m != nil {
			s := record(m[1])
			if s.primary == "" {
				s.primary = filepath.Join(dir, name)
			}
			continue
		}
		if m := rule.Secondary.FindStringSubmatch(name); m != nil {
			s := record(m[1])
			if s.secondary == "" {
				s.secondary = filepath.Join(dir, name)
			}
		}
	}

	var pairs []Pair
	for _, key := range order {
		s := group[key]
		if s.primary == "" || s.secondary == "" {
			continue
		}
		pairs = append(pairs, Pair{Primary: s.primary, Secondary: s.secondary})
	}
	return pairs, nil
}
