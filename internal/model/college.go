package model

// College is one catalog entry. Courses is a comma-joined list of course
// codes; the catalog is seeded once and never mutated by requests.
// swagger:model College
type College struct {
	BaseModel
	Name         string `gorm:"size:255;not null" json:"name"`
	Country      string `gorm:"size:100;index" json:"country"`
	City         string `gorm:"size:100" json:"city"`
	IsGovernment bool   `gorm:"default:false" json:"isGovernment"`
	Courses      string `gorm:"type:text" json:"courses"` // comma-joined course codes, e.g. "CSE,ECE,ME"
	FeesPerYear  int    `gorm:"default:0" json:"feesPerYear"`
	Scholarships string `gorm:"type:text" json:"scholarships"`
	Placements   string `gorm:"type:text" json:"placements"`
	Website      string `gorm:"size:255" json:"website"`
}

func (College) TableName() string {
	return "colleges"
}
