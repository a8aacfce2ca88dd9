// internal/workers/guidance/resolve-query/models.go
package resolvequery

// Input carries the student's free-form question.
type Input struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
	Language  string `json:"language"`
}

// Output is merged back into the process instance.
type Output struct {
	Response   string  `json:"guidanceResponse"`
	Language   string  `json:"responseLanguage"`
	MatchedKey string  `json:"matchedKey,omitempty"`
	Category   string  `json:"matchedCategory,omitempty"`
	MatchType  string  `json:"matchType"`
	Similarity float64 `json:"similarity,omitempty"`
	Cached     bool    `json:"cached"`
}
