package models

type MaterialType string

const (
	MaterialTypeArticle       MaterialType = "ARTICLE"
	MaterialTypeVideo         MaterialType = "VIDEO"
	MaterialTypeCourse        MaterialType = "COURSE"
	MaterialTypeImage         MaterialType = "IMAGE"
	MaterialTypeDocumentation MaterialType = "DOCUMENTATION"
	MaterialTypeBook          MaterialType = "BOOK"
	MaterialTypeOther         MaterialType = "OTHER"
)

// Material is a single learning resource
type Material struct {
	Base
	URL  string       `gorm:"not null" json:"url"`
	Type MaterialType `gorm:"type:text;not null;check:chk_materials_type,type IN ('ARTICLE','VIDEO','COURSE','IMAGE','DOCUMENTATION','BOOK','OTHER')" json:"type"`

	// Owning mentee, optional
	MenteeID *string `gorm:"type:uuid;index" json:"menteeId"`

	MaterialCategories []MaterialCategory `gorm:"foreignKey:MaterialID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
