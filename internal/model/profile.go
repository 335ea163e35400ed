package model

// Profile is one submission of the guidance form. Submissions are
// append-only; the latest row per user wins.
// swagger:model Profile
type Profile struct {
	BaseModel
	UserID               uint    `gorm:"index;not null" json:"userId"`
	HighestQualification string  `gorm:"size:100" json:"highestQualification"`
	Stream               string  `gorm:"size:50" json:"stream"` // Science, Commerce, Arts
	BoardMarks           float64 `json:"boardMarks"`            // board percentage, 0-100
	City                 string  `gorm:"size:100" json:"city"`
	Country              string  `gorm:"size:100" json:"country"`
	Abroad               bool    `gorm:"default:false" json:"abroad"`
	Budget               int     `gorm:"default:0" json:"budget"` // yearly fee ceiling, 0 = unconstrained
	DreamCourse          string  `gorm:"size:20" json:"dreamCourse"`
}

func (Profile) TableName() string {
	return "profiles"
}
