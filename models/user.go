package models

// User represents an account in the system
type User struct {
	Base
	Email string `gorm:"not null;uniqueIndex" json:"email"`

	// Set to null when the inviting user is deleted
	InvitedByUserID *string `gorm:"type:uuid;index" json:"invitedByUserId"`
	InvitedBy       *User   `gorm:"foreignKey:InvitedByUserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Mentee *Mentee `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"mentee,omitempty"`
}
