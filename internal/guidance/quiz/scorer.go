// Package quiz scores the four-question aptitude quiz into a career
// archetype and its catalog profile.
package quiz

import "career-guidance-workers/internal/guidance/catalog"

// Answers holds the raw option values of the four quiz questions. Unknown
// or empty values contribute nothing to the score.
type Answers struct {
	Skill     string // q1
	Interest  string // q2
	WorkStyle string // q3
	Goal      string // q4
}

// Result is the winning archetype with the full score breakdown.
type Result struct {
	Key     string
	Profile *catalog.CareerProfile
	Scores  map[string]int
}

type increment struct {
	key    string
	points int
}

// Per-question scoring tables. The point values are tuned so that a
// consistent answer set produces a clear winner while mixed answers still
// resolve deterministically.
var (
	skillIncrements = map[string][]increment{
		"coding":        {{"technology", 2}, {"data", 1}},
		"drawing":       {{"drawing", 2}},
		"singing":       {{"singing", 2}},
		"dancing":       {{"dancing", 2}},
		"biology":       {{"biology", 2}, {"science", 1}},
		"science":       {{"science", 2}, {"technology", 1}},
		"communication": {{"business", 1}, {"marketing", 2}},
	}
	interestIncrements = map[string][]increment{
		"technology": {{"technology", 2}},
		"drawing":    {{"drawing", 2}},
		"singing":    {{"singing", 2}},
		"dancing":    {{"dancing", 2}},
		"biology":    {{"biology", 2}},
		"science":    {{"science", 2}},
		"business":   {{"business", 2}},
	}
	workStyleIncrements = map[string][]increment{
		"computer":   {{"technology", 2}, {"data", 2}},
		"creative":   {{"drawing", 2}},
		"performing": {{"singing", 1}, {"dancing", 2}},
		"lab":        {{"science", 2}, {"biology", 2}},
		"people":     {{"business", 1}, {"marketing", 2}, {"biology", 1}},
	}
	goalIncrements = map[string][]increment{
		"money":   {{"technology", 1}, {"data", 1}, {"biology", 1}},
		"fame":    {{"singing", 2}, {"dancing", 2}},
		"impact":  {{"biology", 2}, {"science", 1}, {"healthcare", 2}},
		"growth":  {{"technology", 2}, {"data", 1}},
		"helping": {{"biology", 2}, {"healthcare", 2}},
	}
)

// archetypeOrder fixes the tie-break: the first archetype reaching the
// maximum score wins. All-zero answer sets therefore resolve to technology.
var archetypeOrder = []string{
	"technology", "drawing", "singing", "dancing", "biology",
	"science", "business", "data", "marketing", "healthcare",
}

// Score evaluates the answers and returns the winning archetype. The
// profile is never nil; unknown winners fall back to the technology
// profile, mirroring the quiz UI's safety default.
func Score(a Answers) Result {
	scores := make(map[string]int, len(archetypeOrder))
	for _, key := range archetypeOrder {
		scores[key] = 0
	}
	apply := func(table map[string][]increment, answer string) {
		for _, inc := range table[answer] {
			scores[inc.key] += inc.points
		}
	}
	apply(skillIncrements, a.Skill)
	apply(interestIncrements, a.Interest)
	apply(workStyleIncrements, a.WorkStyle)
	apply(goalIncrements, a.Goal)

	winner := archetypeOrder[0]
	best := scores[winner]
	for _, key := range archetypeOrder[1:] {
		if scores[key] > best {
			winner = key
			best = scores[key]
		}
	}

	profile := catalog.ProfileByKey(winner)
	if profile == nil {
		profile = catalog.ProfileByKey("technology")
	}
	return Result{Key: winner, Profile: profile, Scores: scores}
}
