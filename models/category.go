package models

// Category groups materials by topic. A category can be superseded by
// another one, which is tracked through the predecessor/successor links.
type Category struct {
	Base
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"not null" json:"description"`

	PredecessorCategoryID *string   `gorm:"type:uuid;index" json:"predecessorCategoryId"`
	Predecessor           *Category `gorm:"foreignKey:PredecessorCategoryID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`
	SuccessorCategoryID   *string   `gorm:"type:uuid;index" json:"successorCategoryId"`
	Successor             *Category `gorm:"foreignKey:SuccessorCategoryID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`
}

// Superseded reports whether another category has replaced this one.
func (c *Category) Superseded() bool {
	return c.SuccessorCategoryID != nil
}
