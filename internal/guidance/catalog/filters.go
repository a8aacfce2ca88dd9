package catalog

// Filter maps for the suggestion ranker. Values are profile keys; tokens
// that point at keys outside the profile catalog simply never score.
// Unrecognized filter tokens contribute zero weight.

// InterestMap maps an interest token to the profile keys it favors (+5).
var InterestMap = map[string][]string{
	"tech":      {"technology", "data", "bca"},
	"medical":   {"biology", "healthcare"},
	"business":  {"business", "bcom", "banking"},
	"creative":  {"drawing", "singing", "dancing"},
	"science":   {"science", "technology"},
	"teaching":  {"teacher"},
	"law":       {"law"},
	"marketing": {"marketing"},
}

// SkillsMap maps a primary-skill token to the profile keys it favors (+4).
var SkillsMap = map[string][]string{
	"coding":        {"technology", "data", "bca"},
	"creative":      {"drawing", "singing", "dancing"},
	"communication": {"business", "marketing", "teacher"},
	"analytical":    {"data", "science", "business"},
	"medical":       {"biology", "healthcare"},
	"legal":         {"law"},
}

// SalaryMap maps a salary-expectation band to the profile keys it favors (+3).
var SalaryMap = map[string][]string{
	"low":    {"teacher", "drawing", "ba", "beauty"},
	"medium": {"business", "marketing", "bca", "bcom", "healthcare"},
	"high":   {"technology", "data", "biology", "science"},
}

// DifficultyMap maps a difficulty band to the profile keys it favors (+2).
var DifficultyMap = map[string][]string{
	"easy":      {"teacher", "drawing", "marketing", "beauty", "ba"},
	"medium":    {"business", "bca", "bcom", "healthcare", "banking"},
	"hard":      {"technology", "data", "science", "law", "engineering"},
	"very_hard": {"biology"},
}
