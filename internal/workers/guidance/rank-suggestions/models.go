// internal/workers/guidance/rank-suggestions/models.go
package ranksuggestions

// Input holds the four filter dimensions. Any subset may be empty.
type Input struct {
	SessionID  string `json:"sessionId"`
	Interest   string `json:"interest"`
	Skills     string `json:"skills"`
	Salary     string `json:"salary"`
	Difficulty string `json:"difficulty"`
}

// CareerSuggestion is one ranked catalog entry enriched with college,
// salary-band and related-career data for display.
type CareerSuggestion struct {
	Key            string   `json:"key"`
	Career         string   `json:"career"`
	Skills         string   `json:"skills"`
	Courses        string   `json:"courses"`
	Salary         string   `json:"salary"`
	FutureScope    string   `json:"futureScope"`
	MatchScore     int      `json:"matchScore"`
	TopColleges    []string `json:"topColleges"`
	EntranceExam   string   `json:"entranceExam"`
	EntrySalary    string   `json:"entrySalary"`
	GrowthRate     string   `json:"growthRate"`
	RelatedCareers []string `json:"relatedCareers,omitempty"`
}

type Output struct {
	Suggestions []CareerSuggestion `json:"careerSuggestions"`
	Count       int                `json:"suggestionCount"`
}
