package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"career-guidance-workers/internal/guidance/knowledge"
	"career-guidance-workers/internal/guidance/langdetect"
)

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	return New(knowledge.Entries, langdetect.New(langdetect.Config{}), Config{})
}

func TestResolve_ExactKeywordMatch(t *testing.T) {
	r := newTestResolver(t)

	res := r.Resolve("How to prepare for UPSC", langdetect.English)
	assert.Equal(t, MatchExact, res.MatchType)
	assert.Equal(t, "upsc", res.Key)
	assert.Contains(t, res.Response, "Union Public Service Commission")
	assert.Equal(t, langdetect.English, res.Language)
}

func TestResolve_ExactMatchRespectsCorpusOrder(t *testing.T) {
	r := newTestResolver(t)

	// "preparation" also carries a "how to prepare" keyword, but upsc
	// sits earlier in the corpus and its keyword hits first.
	res := r.Resolve("how to prepare for upsc exam", langdetect.English)
	assert.Equal(t, "upsc", res.Key)
}

func TestResolve_SemanticFallback(t *testing.T) {
	r := newTestResolver(t)

	res := r.Resolve("ibps po cutoff marks", langdetect.English)
	assert.Equal(t, MatchSemantic, res.MatchType)
	assert.Equal(t, "exams", res.Key)
	assert.Greater(t, res.Similarity, 0.05)
}

func TestResolve_DefaultResponse(t *testing.T) {
	r := newTestResolver(t)

	res := r.Resolve("xyzzy plugh frobnicate", langdetect.English)
	assert.Equal(t, MatchDefault, res.MatchType)
	assert.Empty(t, res.Key)
	assert.Contains(t, res.Response, "career guidance")
}

func TestResolve_NeverEmpty(t *testing.T) {
	r := newTestResolver(t)

	for _, msg := range []string{"", "   ", "qqqq", "how to prepare for upsc", "नमस्कार"} {
		for _, lang := range []langdetect.Language{langdetect.English, langdetect.Hindi, langdetect.Marathi, langdetect.Auto} {
			res := r.Resolve(msg, lang)
			assert.NotEmpty(t, res.Response, "msg %q lang %q", msg, lang)
		}
	}
}

func TestResolve_AutoDetectsDevanagari(t *testing.T) {
	r := newTestResolver(t)

	res := r.Resolve("MPSC परीक्षा कशी आहे", langdetect.Auto)
	require.Equal(t, "mpsc", res.Key)
	assert.Equal(t, langdetect.Marathi, res.Language)
	assert.Contains(t, res.Response, "महाराष्ट्र")
}

func TestResolve_EnglishRequestOverriddenByScript(t *testing.T) {
	// The UI default is English; a Devanagari question still gets a
	// localized answer.
	r := newTestResolver(t)

	res := r.Resolve("MPSC परीक्षा कशी आहे", langdetect.English)
	assert.Equal(t, langdetect.Marathi, res.Language)
}

func TestResolve_ExplicitLanguageHonored(t *testing.T) {
	r := newTestResolver(t)

	res := r.Resolve("tell me about upsc", langdetect.Hindi)
	assert.Equal(t, langdetect.Hindi, res.Language)
	assert.Equal(t, knowledge.EntryByKey("upsc").Text[langdetect.Hindi], res.Response)
}

func TestResolve_MissingTranslationFallsBackToEnglish(t *testing.T) {
	r := newTestResolver(t)

	res := r.Resolve("which skills should i develop", langdetect.Marathi)
	require.Equal(t, "skill", res.Key)
	assert.Equal(t, langdetect.Marathi, res.Language)
	assert.Contains(t, res.Response, "Important Skills")
}

func TestResolve_UnknownLanguageNormalizedToEnglish(t *testing.T) {
	r := newTestResolver(t)

	res := r.Resolve("tell me about upsc", langdetect.Language("fr"))
	assert.Equal(t, langdetect.English, res.Language)
}
