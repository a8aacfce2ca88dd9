package conflict

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"career-guidance-workers/internal/guidance/catalog"
)

func TestAnalyze_TechVersusGovernment(t *testing.T) {
	got := Analyze("I want to be a game developer", "Government job like MPSC")

	assert.Equal(t, "game_developer", got.StudentKey)
	assert.Equal(t, "government", got.ParentKey)
	assert.Equal(t, catalog.CategoryTechnology, got.StudentCategory)
	assert.Equal(t, catalog.CategoryGovernment, got.ParentCategory)
	assert.Equal(t, 60, got.AgreementLevel)
	assert.Equal(t, "💡 Good Compromise Possible", got.AgreementText)
	assert.Equal(t, "yellow", got.AgreementColor)
	assert.Equal(t, "Government IT / Gaming in PSUs", got.Compromise.Suggestion)
}

func TestAnalyze_IdenticalChoices(t *testing.T) {
	got := Analyze("doctor", "doctor")

	assert.Equal(t, got.StudentKey, got.ParentKey)
	assert.Equal(t, 100, got.AgreementLevel)
	assert.Equal(t, "🎉 Perfect Match!", got.AgreementText)
	assert.Equal(t, "green", got.AgreementColor)
	assert.Equal(t, "Explore Related Fields", got.Compromise.Suggestion)
}

func TestAnalyze_SameCategoryDifferentKey(t *testing.T) {
	got := Analyze("coding", "data analytics")

	assert.Equal(t, "game_developer", got.StudentKey)
	assert.Equal(t, "data", got.ParentKey)
	assert.Equal(t, 75, got.AgreementLevel)
	assert.Equal(t, "👍 Good Match!", got.AgreementText)
}

func TestAnalyze_CreativeVersusGovernment(t *testing.T) {
	got := Analyze("singer", "bank clerk")

	assert.Equal(t, "singing", got.StudentKey)
	assert.Equal(t, "government", got.ParentKey)
	assert.Equal(t, 45, got.AgreementLevel)
	assert.Equal(t, "🤝 Compromise Needed", got.AgreementText)
	assert.Equal(t, "orange", got.AgreementColor)
	assert.Equal(t, "Government Media & Cultural Sector", got.Compromise.Suggestion)
}

func TestAnalyze_ReversedTextInKeywordMatch(t *testing.T) {
	// "teach" is not a table keyword, but it occurs inside "teacher", and
	// matching is containment in either direction.
	got := Analyze("teach", "teacher")
	assert.Equal(t, "teaching", got.StudentKey)
	assert.Equal(t, "teaching", got.ParentKey)
	assert.Equal(t, 100, got.AgreementLevel)
}

func TestAnalyze_HintRules(t *testing.T) {
	got := Analyze("fly drones cheaply", "i want my kid to teach someday")

	// The student statement matches nothing and falls to the default; the
	// parent statement is caught by the "teach" hint rule.
	assert.Equal(t, catalog.DefaultStudentKey, got.StudentKey)
	assert.Equal(t, "teaching", got.ParentKey)
	assert.Equal(t, 30, got.AgreementLevel)
	assert.Equal(t, "⚠️ Different Perspectives", got.AgreementText)
	assert.Equal(t, "red", got.AgreementColor)
}

func TestAnalyze_EmptyInputUsesDefaults(t *testing.T) {
	got := Analyze("", "")

	assert.Equal(t, catalog.DefaultStudentKey, got.StudentKey)
	assert.Equal(t, catalog.DefaultParentKey, got.ParentKey)
	assert.Equal(t, 60, got.AgreementLevel)
	assert.Equal(t, "Government IT / Gaming in PSUs", got.Compromise.Suggestion)
	assert.Empty(t, got.StudentChoice)
}

func TestAnalyze_TitleCasesEchoedChoices(t *testing.T) {
	got := Analyze("  GAME Developer ", "civil service")
	assert.Equal(t, "Game Developer", got.StudentChoice)
	assert.Equal(t, "Civil Service", got.ParentChoice)
}
