package engine

import (
	"math"
	"sort"
)

// Question is the engine's read contract over stored quiz questions. The
// service layer maps persisted records into this shape; the engine never
// touches storage itself.
type Question struct {
	ID        uint
	AnswerKey string
	// Traits maps option key → trait name → points awarded when that
	// option is chosen. Empty for aptitude questions.
	Traits map[string]map[string]int
}

// DefaultTrait is returned when a trait map is empty.
const DefaultTrait = "Analytical"

// NormalizeScore converts a raw board percentage to the 0-20 scale used
// by the recommender. Out-of-range and non-finite inputs are clamped, not
// rejected.
func NormalizeScore(marks float64) int {
	if math.IsNaN(marks) {
		marks = 0
	}
	m := math.Max(0, math.Min(100, marks))
	return int(math.Round(m * 0.2))
}

// ScoreAptitude counts submitted answers that exactly match the stored
// answer key. Unanswered questions and answers for unknown question ids
// contribute nothing.
func ScoreAptitude(answers map[uint]string, questions []Question) int {
	keys := make(map[uint]string, len(questions))
	for _, q := range questions {
		keys[q.ID] = q.AnswerKey
	}
	score := 0
	for qid, chosen := range answers {
		if key, ok := keys[qid]; ok && key != "" && key == chosen {
			score++
		}
	}
	return score
}

// ScorePersonality accumulates trait points from the chosen options.
// Option keys absent from a question's trait map contribute nothing, so a
// trait appears in the result only if it accrued at least one point.
func ScorePersonality(answers map[uint]string, questions []Question) map[string]int {
	totals := map[string]int{}
	for _, q := range questions {
		chosen, ok := answers[q.ID]
		if !ok {
			continue
		}
		for trait, pts := range q.Traits[chosen] {
			totals[trait] += pts
		}
	}
	return totals
}

// DominantTrait picks the trait with the highest point total. Ties break
// lexicographically by trait name so the result is deterministic across
// map iteration orders. An empty map yields DefaultTrait.
func DominantTrait(traits map[string]int) string {
	if len(traits) == 0 {
		return DefaultTrait
	}
	names := make([]string, 0, len(traits))
	for name := range traits {
		names = append(names, name)
	}
	sort.Strings(names)

	best := names[0]
	for _, name := range names[1:] {
		if traits[name] > traits[best] {
			best = name
		}
	}
	return best
}
