package known

// Taxonomy maps processor families to the suffix letters that follow the
// generation digit of an instance family (the 3rd character of "m5a").
// CatchAll names the family that owns every letter not claimed by another one.
type Taxonomy struct {
	Suffixes map[string]string
	CatchAll string
	Presets  map[string]string
}

// DefaultTaxonomy is the AWS naming scheme as of the spot advisor dataset.
var DefaultTaxonomy = Taxonomy{
	Suffixes: map[string]string{
		ProcAMD:      "a",
		ProcGraviton: "g",
	},
	CatchAll: ProcIntel,
	Presets: map[string]string{
		"ppo": ppoPattern,
		"ppa": ppoPattern,
	},
}

// SuffixSet returns the suffix letters owned by family. For the catch-all
// family it is every lowercase letter the other families do not claim.
func (t Taxonomy) SuffixSet(family string) (string, bool) {
	if family != t.CatchAll {
		s, ok := t.Suffixes[family]
		return s, ok
	}
	claimed := make(map[rune]bool)
	for _, s := range t.Suffixes {
		for _, c := range s {
			claimed[c] = true
		}
	}
	set := make([]rune, 0, 26)
	for c := 'a'; c <= 'z'; c++ {
		if !claimed[c] {
			set = append(set, c)
		}
	}
	return string(set), true
}

// Families lists every processor family the taxonomy knows, catch-all included.
func (t Taxonomy) Families() []string {
	families := make([]string, 0, len(t.Suffixes)+1)
	for f := range t.Suffixes {
		families = append(families, f)
	}
	if t.CatchAll != "" {
		families = append(families, t.CatchAll)
	}
	return families
}
