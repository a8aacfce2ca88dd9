package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank_SingleInterestFilter(t *testing.T) {
	got := Rank(Filters{Interest: "medical"})
	require.Len(t, got, 2)
	assert.Equal(t, "biology", got[0].Profile.Key)
	assert.Equal(t, "healthcare", got[1].Profile.Key)
	assert.Equal(t, 50, got[0].MatchScore)
	assert.Equal(t, 50, got[1].MatchScore)
}

func TestRank_AllFiltersAligned(t *testing.T) {
	got := Rank(Filters{Interest: "tech", Skills: "coding", Salary: "high", Difficulty: "hard"})
	require.Len(t, got, 4)

	// technology and data both take the full 14 points; the score is
	// capped at 100. Ties keep catalog order.
	assert.Equal(t, "technology", got[0].Profile.Key)
	assert.Equal(t, 100, got[0].MatchScore)
	assert.Equal(t, "data", got[1].Profile.Key)
	assert.Equal(t, 100, got[1].MatchScore)

	assert.Equal(t, "science", got[2].Profile.Key)
	assert.Equal(t, 50, got[2].MatchScore)
	assert.Equal(t, "biology", got[3].Profile.Key)
	assert.Equal(t, 30, got[3].MatchScore)
}

func TestRank_NoFiltersFallsBackToCatalogHead(t *testing.T) {
	got := Rank(Filters{})
	require.Len(t, got, 5)
	keys := make([]string, 0, len(got))
	for _, s := range got {
		keys = append(keys, s.Profile.Key)
		assert.Equal(t, 50, s.MatchScore)
	}
	assert.Equal(t, []string{"technology", "drawing", "singing", "dancing", "biology"}, keys)
}

func TestRank_FilterTokensOutsideCatalogNeverSurface(t *testing.T) {
	// The teaching interest points only at keys with no catalog profile,
	// so nothing scores and the neutral fallback kicks in.
	got := Rank(Filters{Interest: "teaching"})
	require.Len(t, got, 5)
	for _, s := range got {
		assert.Equal(t, 50, s.MatchScore)
	}
}

func TestRank_TopFiveCap(t *testing.T) {
	got := Rank(Filters{Interest: "creative", Skills: "creative", Salary: "medium", Difficulty: "medium"})
	assert.LessOrEqual(t, len(got), 5)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].MatchScore, got[i].MatchScore)
	}
}
