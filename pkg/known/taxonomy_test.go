package known

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuffixSet(t *testing.T) {
	s, ok := DefaultTaxonomy.SuffixSet(ProcAMD)
	assert.True(t, ok)
	assert.Equal(t, "a", s)

	s, ok = DefaultTaxonomy.SuffixSet(ProcIntel)
	assert.True(t, ok)
	assert.Equal(t, "bcdefhijklmnopqrstuvwxyz", s)

	_, ok = DefaultTaxonomy.SuffixSet("power")
	assert.False(t, ok)
}

func TestSuffixSetCustomTaxonomy(t *testing.T) {
	tax := Taxonomy{
		Suffixes: map[string]string{"amd": "ab"},
		CatchAll: "other",
	}
	s, ok := tax.SuffixSet("other")
	assert.True(t, ok)
	assert.NotContains(t, s, "a")
	assert.NotContains(t, s, "b")
	assert.Len(t, s, 24)
}

func TestFamilies(t *testing.T) {
	families := DefaultTaxonomy.Families()
	sort.Strings(families)
	assert.Equal(t, []string{ProcAMD, ProcGraviton, ProcIntel}, families)
}
