// Package suggest ranks the career catalog against a student's filter
// preferences.
package suggest

import (
	"sort"

	"career-guidance-workers/internal/guidance/catalog"
)

const (
	interestWeight   = 5
	skillsWeight     = 4
	salaryWeight     = 3
	difficultyWeight = 2

	maxSuggestions = 5
	// neutralMatchScore is assigned when no filter selects anything and
	// the ranker falls back to an unfiltered catalog slice.
	neutralMatchScore = 50
)

// Filters are the four preference dimensions. Any subset may be empty;
// unrecognized tokens contribute no weight.
type Filters struct {
	Interest   string
	Skills     string
	Salary     string
	Difficulty string
}

// Suggestion pairs a catalog profile with its percentage match score.
type Suggestion struct {
	Profile    catalog.CareerProfile
	MatchScore int
}

// Rank scores every profile against the filters and returns the top five
// with positive weight, ordered by descending score. Ties keep catalog
// order. When nothing scores, it returns the first five profiles at a
// neutral score so the caller always has something to show.
func Rank(f Filters) []Suggestion {
	type scored struct {
		profile catalog.CareerProfile
		score   int
	}
	candidates := make([]scored, 0, len(catalog.Profiles))
	for _, p := range catalog.Profiles {
		score := 0
		if contains(catalog.InterestMap[f.Interest], p.Key) {
			score += interestWeight
		}
		if contains(catalog.SkillsMap[f.Skills], p.Key) {
			score += skillsWeight
		}
		if contains(catalog.SalaryMap[f.Salary], p.Key) {
			score += salaryWeight
		}
		if contains(catalog.DifficultyMap[f.Difficulty], p.Key) {
			score += difficultyWeight
		}
		if score > 0 {
			candidates = append(candidates, scored{profile: p, score: score})
		}
	}

	if len(candidates) == 0 {
		out := make([]Suggestion, 0, maxSuggestions)
		for _, p := range catalog.Profiles[:maxSuggestions] {
			out = append(out, Suggestion{Profile: p, MatchScore: neutralMatchScore})
		}
		return out
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > maxSuggestions {
		candidates = candidates[:maxSuggestions]
	}

	out := make([]Suggestion, 0, len(candidates))
	for _, c := range candidates {
		score := c.score * 10
		if score > 100 {
			score = 100
		}
		out = append(out, Suggestion{Profile: c.profile, MatchScore: score})
	}
	return out
}

func contains(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
