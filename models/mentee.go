package models

// Mentee is a user enrolled to accumulate learning materials
type Mentee struct {
	Base
	UserID    string `gorm:"type:uuid;not null;uniqueIndex" json:"userId"`
	FirstName string `gorm:"not null" json:"firstName"`
	LastName  string `gorm:"not null" json:"lastName"`

	Materials []Material `gorm:"foreignKey:MenteeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"materials,omitempty"`
}
