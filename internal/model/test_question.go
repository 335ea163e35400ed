package model

import "encoding/json"

type TestKind string

const (
	KindAptitude    TestKind = "aptitude"
	KindPersonality TestKind = "personality"
)

// TestQuestion is one seeded quiz question. Aptitude questions carry an
// answer key; personality questions carry a per-option trait-point map.
// swagger:model TestQuestion
type TestQuestion struct {
	BaseModel
	Kind      TestKind        `gorm:"type:enum('aptitude','personality');index;not null" json:"kind"`
	Question  string          `gorm:"type:text;not null" json:"question"`
	Options   json.RawMessage `gorm:"type:json" json:"options"` // JSON: {"A": "...", "B": "..."}
	AnswerKey string          `gorm:"size:10" json:"-"`         // aptitude only
	TraitMap  json.RawMessage `gorm:"type:json" json:"-"`       // personality only: {"A": {"Analytical": 2}}
}

func (TestQuestion) TableName() string {
	return "test_questions"
}

// DecodeTraitMap returns the option-key → trait → points map. A missing
// or malformed column decodes to an empty map, never an error value the
// scorer has to care about.
func (q *TestQuestion) DecodeTraitMap() map[string]map[string]int {
	traits := map[string]map[string]int{}
	if len(q.TraitMap) == 0 {
		return traits
	}
	if err := json.Unmarshal(q.TraitMap, &traits); err != nil {
		return map[string]map[string]int{}
	}
	return traits
}
