// internal/workers/guidance/analyze-conflict/models.go
package analyzeconflict

// Input carries the two free-form career statements.
type Input struct {
	SessionID     string `json:"sessionId"`
	StudentChoice string `json:"studentChoice"`
	ParentChoice  string `json:"parentChoice"`
}

// Output is the full agreement report plus the compromise suggestion.
type Output struct {
	AnalysisID        string   `json:"conflictAnalysisId,omitempty"`
	StudentChoice     string   `json:"studentChoice"`
	ParentChoice      string   `json:"parentChoice"`
	StudentKey        string   `json:"studentKey"`
	ParentKey         string   `json:"parentKey"`
	StudentCategory   string   `json:"studentCategory"`
	ParentCategory    string   `json:"parentCategory"`
	AgreementLevel    int      `json:"agreementLevel"`
	AgreementText     string   `json:"agreementText"`
	AgreementColor    string   `json:"agreementColor"`
	Compromise        string   `json:"compromiseSuggestion"`
	CompromiseDetails string   `json:"compromiseDescription"`
	CompromiseCareers []string `json:"compromiseCareers"`
	Explanation       string   `json:"compromiseExplanation"`
}
