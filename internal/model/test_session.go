package model

import "encoding/json"

// TestSession records one test-taking run and its scored outcome.
// ResultJSON holds {"score": n} for aptitude runs and the accumulated
// trait map for personality runs.
// swagger:model TestSession
type TestSession struct {
	BaseModel
	UserID     uint            `gorm:"index;not null" json:"userId"`
	Kind       TestKind        `gorm:"type:enum('aptitude','personality');not null" json:"kind"`
	TotalMarks int             `gorm:"default:0" json:"totalMarks"`
	Score      int             `gorm:"default:0" json:"score"`
	ResultJSON json.RawMessage `gorm:"type:json" json:"result"`
}

func (TestSession) TableName() string {
	return "test_sessions"
}
