// Package conflict reconciles a student's career wish with their parents'
// preference: both statements are mapped onto the career keyword table, the
// category pair is scored for agreement, and a compromise suggestion is
// attached for mismatched pairs.
package conflict

import (
	"strings"
	"unicode"

	"career-guidance-workers/internal/guidance/catalog"
)

// Analysis is the full conflict report for one student/parent pair.
type Analysis struct {
	StudentChoice   string
	ParentChoice    string
	StudentKey      string
	ParentKey       string
	StudentCategory catalog.Category
	ParentCategory  catalog.Category
	AgreementLevel  int
	AgreementText   string
	AgreementColor  string
	Compromise      catalog.CompromiseRule
}

// Analyze maps both statements to career keys and scores their agreement.
// It never fails: unmatched statements fall back to the student/parent
// defaults, so even empty input yields a usable report.
func Analyze(studentChoice, parentChoice string) Analysis {
	student := strings.ToLower(strings.TrimSpace(studentChoice))
	parent := strings.ToLower(strings.TrimSpace(parentChoice))

	studentKey := matchKey(student, catalog.StudentHintRules, catalog.DefaultStudentKey)
	parentKey := matchKey(parent, catalog.ParentHintRules, catalog.DefaultParentKey)

	studentCat := categoryOf(studentKey, catalog.CategoryTechnology)
	parentCat := categoryOf(parentKey, catalog.CategoryGovernment)

	level, text, color := agreement(studentKey, parentKey, studentCat, parentCat)

	return Analysis{
		StudentChoice:   titleCase(student),
		ParentChoice:    titleCase(parent),
		StudentKey:      studentKey,
		ParentKey:       parentKey,
		StudentCategory: studentCat,
		ParentCategory:  parentCat,
		AgreementLevel:  level,
		AgreementText:   text,
		AgreementColor:  color,
		Compromise:      catalog.CompromiseFor(studentCat, parentCat),
	}
}

// matchKey scans the keyword table in order; the first entry with a
// bidirectional containment hit wins. Hint rules cover statements the
// table misses, and the hard default covers everything else.
func matchKey(choice string, hints []catalog.HintRule, defaultKey string) string {
	if choice != "" {
		for _, entry := range catalog.CareerKeywords {
			for _, kw := range entry.Keywords {
				if strings.Contains(choice, kw) || strings.Contains(kw, choice) {
					return entry.Key
				}
			}
		}
		for _, rule := range hints {
			for _, sub := range rule.Substrings {
				if strings.Contains(choice, sub) {
					return rule.Key
				}
			}
		}
	}
	return defaultKey
}

func categoryOf(key string, fallback catalog.Category) catalog.Category {
	if e := catalog.KeywordEntryByKey(key); e != nil {
		return e.Category
	}
	return fallback
}

func agreement(studentKey, parentKey string, studentCat, parentCat catalog.Category) (int, string, string) {
	switch {
	case studentKey == parentKey:
		return 100, "🎉 Perfect Match!", "green"
	case studentCat == parentCat:
		return 75, "👍 Good Match!", "lightgreen"
	case pairIs(studentCat, parentCat, catalog.CategoryTechnology, catalog.CategoryGovernment):
		return 60, "💡 Good Compromise Possible", "yellow"
	case pairIs(studentCat, parentCat, catalog.CategoryCreative, catalog.CategoryGovernment):
		return 45, "🤝 Compromise Needed", "orange"
	default:
		return 30, "⚠️ Different Perspectives", "red"
	}
}

func pairIs(a, b, x, y catalog.Category) bool {
	return (a == x && b == y) || (a == y && b == x)
}

func titleCase(s string) string {
	if s == "" {
		return ""
	}
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
