package aws

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"spotadvisor/pkg/known"
	"spotadvisor/pkg/models"
)

// familyMatcher matches a family prefix; the zero value matches everything
type familyMatcher struct {
	re *regexp.Regexp
}

func (m familyMatcher) match(prefix string) bool {
	return m.re == nil || m.re.MatchString(prefix)
}

func compileFamily(p models.FamilyPattern, presets map[string]string) (familyMatcher, error) {
	switch p.Kind {
	case models.PatternAny:
		return familyMatcher{}, nil
	case models.PatternPreset:
		expr, ok := presets[p.Preset]
		if !ok {
			return familyMatcher{}, &SelectionError{Kind: ErrInvalidPattern, Value: p.Preset, Err: errors.New("no such preset")}
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return familyMatcher{}, &SelectionError{Kind: ErrInvalidPattern, Value: p.Preset, Err: err}
		}
		return familyMatcher{re: re}, nil
	case models.PatternAlternation:
		if len(p.Fragments) == 0 {
			return familyMatcher{}, nil
		}
		parts := make([]string, 0, len(p.Fragments))
		for _, f := range p.Fragments {
			// compile alone first so the error names the offending fragment
			if _, err := regexp.Compile(f); err != nil {
				return familyMatcher{}, &SelectionError{Kind: ErrInvalidPattern, Value: f, Err: err}
			}
			parts = append(parts, "(?:"+f+")")
		}
		expr := "^(?:" + strings.Join(parts, "|") + ")$"
		re, err := regexp.Compile(expr)
		if err != nil {
			return familyMatcher{}, &SelectionError{Kind: ErrInvalidPattern, Value: strings.Join(p.Fragments, ","), Err: err}
		}
		return familyMatcher{re: re}, nil
	default:
		return familyMatcher{}, &SelectionError{Kind: ErrInvalidPattern, Value: p.Preset, Err: errors.Errorf("unknown pattern kind %d", p.Kind)}
	}
}

// procMatcher matches the 3rd character of a family prefix against a
// processor suffix set. A lenient matcher accepts prefixes too short to
// carry a suffix.
type procMatcher struct {
	any     bool
	set     string
	lenient bool
}

func (m procMatcher) match(prefix string) bool {
	if m.any {
		return true
	}
	if len(prefix) < 3 {
		return m.lenient
	}
	return strings.IndexByte(m.set, prefix[2]) >= 0
}

func compileProcessor(family string, tax known.Taxonomy) (procMatcher, error) {
	if family == "" || family == known.ProcAny {
		return procMatcher{any: true}, nil
	}
	set, ok := tax.SuffixSet(family)
	if !ok {
		return procMatcher{}, &SelectionError{Kind: ErrUnknownProcessor, Value: family}
	}
	return procMatcher{set: set, lenient: family == tax.CatchAll}, nil
}
