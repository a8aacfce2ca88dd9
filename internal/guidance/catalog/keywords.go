package catalog

// CareerKeywordEntry maps freeform career statements onto a key and
// category for the conflict analyzer. The table is scanned in order and
// the first match wins, so order is part of the contract.
type CareerKeywordEntry struct {
	Key       string
	Category  Category
	Keywords  []string
	Stability Stability
}

// CareerKeywords is the ordered matching table. Keyword matching is
// case-insensitive bidirectional containment: an entry matches when a
// keyword occurs in the input or the whole input occurs in a keyword.
var CareerKeywords = []CareerKeywordEntry{
	{Key: "game_developer", Category: CategoryTechnology, Stability: StabilityMedium,
		Keywords: []string{"game", "gaming", "software", "coding", "programming", "app", "development", "tech", "it"}},
	{Key: "technology", Category: CategoryTechnology, Stability: StabilityMedium,
		Keywords: []string{"software", "developer", "engineer", "coding", "programming", "tech", "it", "computer"}},
	{Key: "data", Category: CategoryTechnology, Stability: StabilityMedium,
		Keywords: []string{"data", "analytics", "science", "ai", "ml", "machine learning"}},
	{Key: "government", Category: CategoryGovernment, Stability: StabilityHigh,
		Keywords: []string{"government", "govt", "job", "mpsc", "upsc", "bank", "psc", "civil service", "police", "railway", "admin"}},
	{Key: "banking", Category: CategoryGovernment, Stability: StabilityHigh,
		Keywords: []string{"bank", "banking", "po", "clerk", "rbi", "nationalized"}},
	{Key: "teaching", Category: CategoryEducation, Stability: StabilityHigh,
		Keywords: []string{"teacher", "teaching", "professor", "education", "tutor"}},
	{Key: "biology", Category: CategoryHealthcare, Stability: StabilityHigh,
		Keywords: []string{"doctor", "medical", "mbbs", "health", "hospital", "nurse", "pharma"}},
	{Key: "healthcare", Category: CategoryHealthcare, Stability: StabilityHigh,
		Keywords: []string{"health", "medical", "nurse", "pharmacy", "hospital"}},
	{Key: "business", Category: CategoryBusiness, Stability: StabilityMedium,
		Keywords: []string{"business", "management", "mba", "entrepreneur", "company"}},
	{Key: "engineering", Category: CategoryEngineering, Stability: StabilityMedium,
		Keywords: []string{"engineer", "engineering", "civil", "mechanical", "electrical"}},
	{Key: "drawing", Category: CategoryCreative, Stability: StabilityLow,
		Keywords: []string{"design", "graphic", "art", "drawing", "creative"}},
	{Key: "singing", Category: CategoryCreative, Stability: StabilityLow,
		Keywords: []string{"singer", "music", "singing", "audio"}},
	{Key: "dancing", Category: CategoryCreative, Stability: StabilityLow,
		Keywords: []string{"dance", "dancer", "performer"}},
	{Key: "science", Category: CategoryScience, Stability: StabilityMedium,
		Keywords: []string{"science", "research", "physics", "chemistry", "researcher"}},
	{Key: "marketing", Category: CategoryMarketing, Stability: StabilityMedium,
		Keywords: []string{"marketing", "digital", "sales", "advertising", "brand"}},
}

var careerKeywordsByKey = func() map[string]*CareerKeywordEntry {
	m := make(map[string]*CareerKeywordEntry, len(CareerKeywords))
	for i := range CareerKeywords {
		m[CareerKeywords[i].Key] = &CareerKeywords[i]
	}
	return m
}()

// KeywordEntryByKey returns the keyword entry for key, or nil.
func KeywordEntryByKey(key string) *CareerKeywordEntry {
	return careerKeywordsByKey[key]
}

// HintRule is a fallback inference applied when no keyword entry matched.
type HintRule struct {
	Substrings []string
	Key        string
}

// StudentHintRules apply to the student statement, in order.
var StudentHintRules = []HintRule{
	{Substrings: []string{"game"}, Key: "game_developer"},
	{Substrings: []string{"software", "coding", "programming", "tech", "it"}, Key: "technology"},
}

// ParentHintRules apply to the parent statement, in order.
var ParentHintRules = []HintRule{
	{Substrings: []string{"government", "govt", "job", "mpsc", "upsc", "psc", "bank", "civil", "admin"}, Key: "government"},
	{Substrings: []string{"bank"}, Key: "banking"},
	{Substrings: []string{"teach"}, Key: "teaching"},
}

// Hard defaults when neither the table nor the hint rules matched.
const (
	DefaultStudentKey = "technology"
	DefaultParentKey  = "government"
)
