package models

// MaterialRecommendation is a directed edge from a material to a material it recommends
type MaterialRecommendation struct {
	MaterialID            string    `gorm:"type:uuid;primaryKey" json:"materialId"`
	Material              *Material `gorm:"foreignKey:MaterialID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	RecommendedMaterialID string    `gorm:"type:uuid;primaryKey;index" json:"recommendedMaterialId"`
	RecommendedMaterial   *Material `gorm:"foreignKey:RecommendedMaterialID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

// All lists every model in foreign key dependency order, for AutoMigrate.
func All() []any {
	return []any{
		&User{},
		&Mentee{},
		&Category{},
		&Material{},
		&MaterialCategory{},
		&MaterialRecommendation{},
	}
}
