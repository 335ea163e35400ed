package model

// Resource is a free or paid study resource attached to a course code.
// swagger:model Resource
type Resource struct {
	BaseModel
	CourseCode string `gorm:"size:20;index;not null" json:"courseCode"`
	Title      string `gorm:"size:255;not null" json:"title"`
	URL        string `gorm:"size:255" json:"url"`
	IsFree     bool   `gorm:"default:true" json:"isFree"`
}

func (Resource) TableName() string {
	return "resources"
}
