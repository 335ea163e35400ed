package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeScore(t *testing.T) {
	tests := []struct {
		name  string
		marks float64
		want  int
	}{
		{"below range clamps to zero", -10, 0},
		{"above range clamps to twenty", 150, 20},
		{"midpoint", 50, 10},
		{"zero", 0, 0},
		{"full marks", 100, 20},
		{"fractional marks round", 87.4, 17},
		{"NaN coerces to zero", math.NaN(), 0},
		{"positive infinity clamps", math.Inf(1), 20},
		{"negative infinity clamps", math.Inf(-1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeScore(tt.marks))
		})
	}
}

func aptitudeQuestions() []Question {
	return []Question{
		{ID: 1, AnswerKey: "A"},
		{ID: 2, AnswerKey: "C"},
		{ID: 3, AnswerKey: "B"},
		{ID: 4, AnswerKey: "D"},
	}
}

func TestScoreAptitude(t *testing.T) {
	qs := aptitudeQuestions()

	tests := []struct {
		name    string
		answers map[uint]string
		want    int
	}{
		{"all correct", map[uint]string{1: "A", 2: "C", 3: "B", 4: "D"}, 4},
		{"no answers", map[uint]string{}, 0},
		{"mixed", map[uint]string{1: "A", 2: "B", 3: "B"}, 2},
		{"unknown question ids ignored", map[uint]string{1: "A", 99: "A"}, 1},
		{"wrong everywhere", map[uint]string{1: "B", 2: "A", 3: "C", 4: "A"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScoreAptitude(tt.answers, qs))
		})
	}
}

func TestScorePersonality(t *testing.T) {
	qs := []Question{
		{ID: 10, Traits: map[string]map[string]int{
			"A": {"Creative": 2},
			"B": {"Analytical": 3},
		}},
		{ID: 11, Traits: map[string]map[string]int{
			"A": {"Creative": 1, "Social": 2},
			"B": {"Practical": 2},
		}},
	}

	t.Run("chosen option awards its traits", func(t *testing.T) {
		got := ScorePersonality(map[uint]string{10: "A"}, qs)
		assert.Equal(t, map[string]int{"Creative": 2}, got)
	})

	t.Run("unanswered questions contribute nothing", func(t *testing.T) {
		got := ScorePersonality(map[uint]string{}, qs)
		assert.Empty(t, got)
	})

	t.Run("points accumulate across questions", func(t *testing.T) {
		got := ScorePersonality(map[uint]string{10: "A", 11: "A"}, qs)
		assert.Equal(t, map[string]int{"Creative": 3, "Social": 2}, got)
	})

	t.Run("option key outside trait map contributes nothing", func(t *testing.T) {
		got := ScorePersonality(map[uint]string{10: "Z"}, qs)
		assert.Empty(t, got)
	})
}

func TestDominantTrait(t *testing.T) {
	tests := []struct {
		name   string
		traits map[string]int
		want   string
	}{
		{"empty map defaults", map[string]int{}, "Analytical"},
		{"nil map defaults", nil, "Analytical"},
		{"single trait", map[string]int{"Creative": 2}, "Creative"},
		{"strict maximum wins", map[string]int{"Social": 5, "Creative": 4, "Practical": 7}, "Practical"},
		{"tie breaks lexicographically", map[string]int{"Creative": 3, "Analytical": 3}, "Analytical"},
		{"three-way tie", map[string]int{"Social": 2, "Practical": 2, "Creative": 2}, "Creative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DominantTrait(tt.traits))
		})
	}
}
