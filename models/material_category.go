package models

// MaterialCategory links a material to a category. The composite primary
// key keeps a (category, material) pair unique.
type MaterialCategory struct {
	CategoryID string    `gorm:"type:uuid;primaryKey" json:"categoryId"`
	Category   *Category `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	MaterialID string    `gorm:"type:uuid;primaryKey;index" json:"materialId"`
}
