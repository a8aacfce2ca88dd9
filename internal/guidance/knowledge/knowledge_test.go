package knowledge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"career-guidance-workers/internal/guidance/langdetect"
)

func TestEntries_Integrity(t *testing.T) {
	assert.Len(t, Entries, 24)

	seen := map[string]bool{}
	for _, e := range Entries {
		assert.False(t, seen[e.Key], "duplicate entry key %q", e.Key)
		seen[e.Key] = true
		assert.NotEmpty(t, e.Keywords, "entry %q has no keywords", e.Key)
		assert.NotEmpty(t, e.Text[langdetect.English], "entry %q has no English text", e.Key)
		assert.NotEmpty(t, e.Category, "entry %q has no category", e.Key)
	}
}

func TestEntries_ScanOrderFavorsSpecificTopics(t *testing.T) {
	// Named exams must precede the generic topics whose keyword lists
	// would otherwise swallow their queries.
	positions := map[string]int{}
	for i, e := range Entries {
		positions[e.Key] = i
	}
	assert.Less(t, positions["upsc"], positions["preparation"])
	assert.Less(t, positions["jee"], positions["exams"])
	assert.Less(t, positions["internship"], positions["gate"])
}

func TestEntryByKey(t *testing.T) {
	e := EntryByKey("upsc")
	require.NotNil(t, e)
	assert.Contains(t, e.Text[langdetect.English], "Union Public Service Commission")

	assert.Nil(t, EntryByKey("astrology"))
}

func TestTextFor_FallsBackToEnglish(t *testing.T) {
	job := EntryByKey("job")
	require.NotNil(t, job)
	assert.Equal(t, job.Text[langdetect.English], job.TextFor(langdetect.Marathi))

	mpsc := EntryByKey("mpsc")
	require.NotNil(t, mpsc)
	assert.NotEqual(t, mpsc.Text[langdetect.English], mpsc.TextFor(langdetect.Marathi))
	assert.Contains(t, mpsc.TextFor(langdetect.Marathi), "महाराष्ट्र")
}

func TestIndex_BestMatch(t *testing.T) {
	idx := NewIndex(Entries)

	tests := []struct {
		query string
		key   string
	}{
		{"how should i prepare for upsc civil service", "upsc"},
		{"mpsc rajya seva exam pattern", "mpsc"},
		{"which colleges are best for engineering admission", "college"},
		{"scholarship financial aid for students", "scholarship"},
	}
	for _, tt := range tests {
		m := idx.BestMatch(tt.query)
		require.NotNil(t, m.Entry, "query %q matched nothing", tt.query)
		assert.Equal(t, tt.key, m.Entry.Key, "query %q", tt.query)
		assert.Greater(t, m.Similarity, DefaultSimilarityThreshold, "query %q", tt.query)
	}
}

func TestIndex_BestMatch_NoSharedTerms(t *testing.T) {
	idx := NewIndex(Entries)

	m := idx.BestMatch("xylophone zeppelin quux")
	assert.Nil(t, m.Entry)
	assert.Zero(t, m.Similarity)

	m = idx.BestMatch("")
	assert.Nil(t, m.Entry)
}

func TestIndex_TextPrefixCountsCharacters(t *testing.T) {
	// 470 rupee signs are well past 500 bytes but under 500 characters,
	// so the terms after them must still be indexed.
	filler := strings.Repeat("₹", 470)
	entries := []Entry{
		{
			Key:      "stipend",
			Category: "jobs",
			Keywords: []string{"zzq"},
			Text: map[langdetect.Language]string{
				langdetect.English: filler + " stipend negotiation details",
			},
		},
	}
	idx := NewIndex(entries)

	m := idx.BestMatch("stipend negotiation")
	require.NotNil(t, m.Entry)
	assert.Equal(t, "stipend", m.Entry.Key)
	assert.Greater(t, m.Similarity, 0.0)
}

func TestIndex_StopwordsOnlyQuery(t *testing.T) {
	idx := NewIndex(Entries)
	m := idx.BestMatch("how to do that")
	assert.Nil(t, m.Entry)
}
