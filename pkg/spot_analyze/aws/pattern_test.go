package aws

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spotadvisor/pkg/known"
	"spotadvisor/pkg/models"
)

func TestProcMatcher(t *testing.T) {
	tests := []struct {
		proc   string
		prefix string
		want   bool
	}{
		{known.ProcAny, "m5", true},
		{known.ProcAny, "u-6tb1", true},
		{known.ProcAMD, "m5a", true},
		{known.ProcAMD, "m5ad", true},
		{known.ProcAMD, "m5", false},
		{known.ProcAMD, "m6g", false},
		{known.ProcGraviton, "c7gn", true},
		{known.ProcGraviton, "c7", false},
		{known.ProcIntel, "m5", true},
		{known.ProcIntel, "t2", true},
		{known.ProcIntel, "m5n", true},
		{known.ProcIntel, "m5a", false},
		{known.ProcIntel, "a1", true},
		{known.ProcIntel, "u-6tb1", false},
	}
	for _, tt := range tests {
		t.Run(tt.proc+"/"+tt.prefix, func(t *testing.T) {
			m, err := compileProcessor(tt.proc, known.DefaultTaxonomy)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.match(tt.prefix))
		})
	}
}

func TestFamilyMatcher(t *testing.T) {
	presets := known.DefaultTaxonomy.Presets

	ppo, err := compileFamily(models.ParseFamilyPattern("ppo", presets), presets)
	require.NoError(t, err)
	for _, p := range []string{"m3", "m4", "m5", "m6", "m5a", "c6gn", "r5d", "r6i"} {
		assert.True(t, ppo.match(p), p)
	}
	for _, p := range []string{"m7", "m2", "c7g", "t3", "x1e", ""} {
		assert.False(t, ppo.match(p), p)
	}

	all, err := compileFamily(models.ParseFamilyPattern("all", presets), presets)
	require.NoError(t, err)
	assert.True(t, all.match(""))
	assert.True(t, all.match("p4d"))

	list, err := compileFamily(models.ParseFamilyPattern("p4d,g5", presets), presets)
	require.NoError(t, err)
	assert.True(t, list.match("p4d"))
	assert.True(t, list.match("g5"))
	assert.False(t, list.match("g5g"))
	assert.False(t, list.match("xp4d"))
}

func TestFamilyMatcherInvalid(t *testing.T) {
	for _, pattern := range []string{"(m5", "m5,*", "c[5-"} {
		_, err := compileFamily(models.ParseFamilyPattern(pattern, nil), nil)
		var selErr *SelectionError
		if assert.ErrorAs(t, err, &selErr, pattern) {
			assert.Equal(t, ErrInvalidPattern, selErr.Kind)
		}
	}
}
