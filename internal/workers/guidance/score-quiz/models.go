// internal/workers/guidance/score-quiz/models.go
package scorequiz

// QuizAnswers mirrors the four-question aptitude quiz.
type QuizAnswers struct {
	Skill     string `json:"skill"`
	Interest  string `json:"interest"`
	WorkStyle string `json:"workStyle"`
	Goal      string `json:"goal"`
}

type Input struct {
	SessionID string      `json:"sessionId"`
	Answers   QuizAnswers `json:"quizAnswers"`
}

// SalaryBand is the expected progression for the winning career.
type SalaryBand struct {
	Entry      string `json:"entry"`
	Mid        string `json:"mid"`
	Senior     string `json:"senior"`
	GrowthRate string `json:"growthRate"`
}

// Output carries the winning career profile plus the per-category
// score breakdown so the process can branch on close calls.
type Output struct {
	ResultID    string         `json:"quizResultId,omitempty"`
	CareerKey   string         `json:"careerKey"`
	Career      string         `json:"career"`
	Skills      string         `json:"skills"`
	Courses     string         `json:"courses"`
	Salary      string         `json:"salary"`
	FutureScope string         `json:"futureScope"`
	StudyPlan   string         `json:"studyPlan"`
	SalaryBand  SalaryBand     `json:"salaryBand"`
	Scores      map[string]int `json:"scoreBreakdown"`
}
