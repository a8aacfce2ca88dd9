package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore_ConsistentAnswers(t *testing.T) {
	tests := []struct {
		name    string
		answers Answers
		winner  string
		best    int
	}{
		{
			name:    "technology profile",
			answers: Answers{Skill: "coding", Interest: "technology", WorkStyle: "computer", Goal: "growth"},
			winner:  "technology",
			best:    8,
		},
		{
			name:    "performer profile",
			answers: Answers{Skill: "dancing", Interest: "dancing", WorkStyle: "performing", Goal: "fame"},
			winner:  "dancing",
			best:    8,
		},
		{
			name:    "healthcare leaning",
			answers: Answers{Skill: "biology", Interest: "biology", WorkStyle: "lab", Goal: "helping"},
			winner:  "biology",
			best:    8,
		},
		{
			name:    "marketing profile",
			answers: Answers{Skill: "communication", WorkStyle: "people", Goal: "money"},
			winner:  "marketing",
			best:    4,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Score(tt.answers)
			assert.Equal(t, tt.winner, res.Key)
			assert.Equal(t, tt.best, res.Scores[tt.winner])
			require.NotNil(t, res.Profile)
			assert.Equal(t, tt.winner, res.Profile.Key)
		})
	}
}

func TestScore_EmptyAnswersDefaultToTechnology(t *testing.T) {
	res := Score(Answers{})
	assert.Equal(t, "technology", res.Key)
	require.NotNil(t, res.Profile)
	assert.Equal(t, "Software Developer/Engineer", res.Profile.Career)
	for _, v := range res.Scores {
		assert.Zero(t, v)
	}
}

func TestScore_UnknownAnswersIgnored(t *testing.T) {
	res := Score(Answers{Skill: "juggling", Interest: "philately", WorkStyle: "outdoors", Goal: "rest"})
	assert.Equal(t, "technology", res.Key)
	assert.Zero(t, res.Scores["technology"])
}

func TestScore_TieBreakFollowsArchetypeOrder(t *testing.T) {
	// fame gives singing and dancing 2 points each; singing precedes
	// dancing in the archetype order and wins the tie.
	res := Score(Answers{Goal: "fame"})
	assert.Equal(t, "singing", res.Key)
	assert.Equal(t, res.Scores["singing"], res.Scores["dancing"])
}

func TestScore_BreakdownCoversAllArchetypes(t *testing.T) {
	res := Score(Answers{Skill: "coding"})
	assert.Len(t, res.Scores, 10)
	assert.Equal(t, 2, res.Scores["technology"])
	assert.Equal(t, 1, res.Scores["data"])
}
