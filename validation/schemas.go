package validation

import "github.com/andrewpaige1/mentorship-api/models"

// IDParams is the shape of every `{id}` path parameter.
type IDParams struct {
	ID string `json:"id" validate:"required,uuid"`
}

type UserInsert struct {
	Email string `json:"email" validate:"required,email"`
}

type UserUpdate struct {
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
}

type MenteeInsert struct {
	UserID    string `json:"userId" validate:"required,uuid"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

type MenteeUpdate struct {
	UserID    *string `json:"userId,omitempty" validate:"omitempty,uuid"`
	FirstName *string `json:"firstName,omitempty" validate:"omitempty,min=1"`
	LastName  *string `json:"lastName,omitempty" validate:"omitempty,min=1"`
}

// CategoryInsert excludes the succession chain fields, those are only
// written by the replace operations. Description must be present but may
// be empty.
type CategoryInsert struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description" validate:"required"`
}

type CategoryUpdate struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Description *string `json:"description,omitempty"`
}

// RecommendedMaterialDef describes a material to create and link as a
// recommendation. Definitions nest: each created material can recommend
// further new materials.
type RecommendedMaterialDef struct {
	URL                     string                   `json:"url" validate:"required,url"`
	Type                    models.MaterialType      `json:"type" validate:"required,oneof=ARTICLE VIDEO COURSE IMAGE DOCUMENTATION BOOK OTHER"`
	CategoryIDs             []string                 `json:"categoryIds" validate:"required,dive,uuid"`
	NewRecommendedMaterials []RecommendedMaterialDef `json:"newRecommendedMaterials,omitempty" validate:"omitempty,dive"`
}

type MaterialInsert struct {
	URL                            string                   `json:"url" validate:"required,url"`
	Type                           models.MaterialType      `json:"type" validate:"required,oneof=ARTICLE VIDEO COURSE IMAGE DOCUMENTATION BOOK OTHER"`
	MenteeID                       *string                  `json:"menteeId,omitempty" validate:"omitempty,uuid"`
	CategoryIDs                    []string                 `json:"categoryIds" validate:"required,dive,uuid"`
	NewRecommendedMaterials        []RecommendedMaterialDef `json:"newRecommendedMaterials,omitempty" validate:"omitempty,dive"`
	ExistingRecommendedMaterialIDs []string                 `json:"existingRecommendedMaterialIds,omitempty" validate:"omitempty,dive,uuid"`
}

// MaterialUpdate fields are all optional. A nil CategoryIDs leaves the
// links alone, an empty one removes them all. A null menteeId detaches the
// material from its mentee.
type MaterialUpdate struct {
	URL                                    *string                  `json:"url,omitempty" validate:"omitempty,url"`
	Type                                   *models.MaterialType     `json:"type,omitempty" validate:"omitempty,oneof=ARTICLE VIDEO COURSE IMAGE DOCUMENTATION BOOK OTHER"`
	MenteeID                               NullableID               `json:"menteeId" validate:"omitempty,uuid"`
	CategoryIDs                            []string                 `json:"categoryIds,omitempty" validate:"omitempty,dive,uuid"`
	ExistingRecommendedMaterialIDsToAdd    []string                 `json:"existingRecommendedMaterialIdsToAdd,omitempty" validate:"omitempty,dive,uuid"`
	ExistingRecommendedMaterialIDsToRemove []string                 `json:"existingRecommendedMaterialIdsToRemove,omitempty" validate:"omitempty,dive,uuid"`
	NewRecommendedMaterials                []RecommendedMaterialDef `json:"newRecommendedMaterials,omitempty" validate:"omitempty,dive"`
}
