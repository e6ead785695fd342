package models

import (
	"strings"

	"spotadvisor/pkg/known"
)

// PatternKind tags a FamilyPattern
type PatternKind int

const (
	// PatternAny matches every family
	PatternAny PatternKind = iota
	// PatternPreset names a fixed pattern from the taxonomy
	PatternPreset
	// PatternAlternation is a list of regexp fragments, any of which must
	// match the whole family prefix
	PatternAlternation
)

// FamilyPattern selects instance families by their prefix ("m5a" in "m5a.xlarge")
type FamilyPattern struct {
	Kind      PatternKind
	Preset    string
	Fragments []string
}

// ParseFamilyPattern turns the user's family list into a tagged pattern.
// "any", "all" and the empty string match everything; a name found in
// presets selects that preset; anything else is split on commas.
func ParseFamilyPattern(s string, presets map[string]string) FamilyPattern {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", known.FamilyAny, known.FamilyAll:
		return FamilyPattern{Kind: PatternAny}
	}
	if _, ok := presets[strings.ToLower(s)]; ok {
		return FamilyPattern{Kind: PatternPreset, Preset: strings.ToLower(s)}
	}
	var fragments []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fragments = append(fragments, f)
		}
	}
	if len(fragments) == 0 {
		return FamilyPattern{Kind: PatternAny}
	}
	return FamilyPattern{Kind: PatternAlternation, Fragments: fragments}
}

// Query is one selection request
type Query struct {
	Region          string
	OS              OperatingSystem
	Family          FamilyPattern
	Processor       string
	MinCores        int
	MaxCores        int // 0 means unbounded
	MaxInterruption int
	Sort            string // name, avail or vcpucount; empty means name
}
