package relations

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/andrewpaige1/mentorship-api/models"
	"github.com/andrewpaige1/mentorship-api/validation"
)

// LinkExistingRecommendations adds a recommendation edge from materialID to
// every given material. Edges that already exist are kept as they are.
func LinkExistingRecommendations(tx *gorm.DB, materialID string, recommendedIDs []string) error {
	ids := unique(recommendedIDs)
	if len(ids) == 0 {
		return nil
	}
	for _, id := range ids {
		if id == materialID {
			return ErrSelfRecommendation
		}
	}
	if err := ensureMaterialsExist(tx, ids); err != nil {
		return err
	}

	edges := make([]models.MaterialRecommendation, 0, len(ids))
	for _, id := range ids {
		edges = append(edges, models.MaterialRecommendation{MaterialID: materialID, RecommendedMaterialID: id})
	}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&edges).Error; err != nil {
		return fmt.Errorf("insert recommendations: %w", err)
	}
	return nil
}

// UnlinkRecommendations removes every recommendation edge pointing at one of
// the given materials, whichever material it starts from.
func UnlinkRecommendations(tx *gorm.DB, recommendedIDs []string) error {
	ids := unique(recommendedIDs)
	if len(ids) == 0 {
		return nil
	}
	if err := ensureMaterialsExist(tx, ids); err != nil {
		return err
	}

	err := tx.Where("recommended_material_id IN ?", ids).
		Delete(&models.MaterialRecommendation{}).Error
	if err != nil {
		return fmt.Errorf("delete recommendations: %w", err)
	}
	return nil
}

// CreateRecommendedMaterials creates each definition as a new material,
// links its categories and records it as recommended by materialID. Nested
// definitions are created the same way, recommended by their parent.
func CreateRecommendedMaterials(tx *gorm.DB, materialID string, defs []validation.RecommendedMaterialDef) ([]models.Material, error) {
	created := make([]models.Material, 0, len(defs))
	for _, def := range defs {
		material := models.Material{URL: def.URL, Type: def.Type}
		if err := tx.Create(&material).Error; err != nil {
			return nil, fmt.Errorf("create recommended material: %w", err)
		}

		if err := LinkCategories(tx, material.ID, def.CategoryIDs); err != nil {
			return nil, err
		}

		edge := models.MaterialRecommendation{MaterialID: materialID, RecommendedMaterialID: material.ID}
		if err := tx.Create(&edge).Error; err != nil {
			return nil, fmt.Errorf("insert recommendation: %w", err)
		}

		if len(def.NewRecommendedMaterials) > 0 {
			if _, err := CreateRecommendedMaterials(tx, material.ID, def.NewRecommendedMaterials); err != nil {
				return nil, err
			}
		}
		created = append(created, material)
	}
	return created, nil
}

// RecommendedMaterials lists the materials materialID recommends.
func RecommendedMaterials(tx *gorm.DB, materialID string) ([]models.Material, error) {
	materials := []models.Material{}
	err := tx.Joins("JOIN material_recommendations mr ON mr.recommended_material_id = materials.id").
		Where("mr.material_id = ?", materialID).
		Order("materials.created_at").
		Find(&materials).Error
	if err != nil {
		return nil, fmt.Errorf("read recommendations: %w", err)
	}
	return materials, nil
}

// ids must already be deduplicated
func ensureMaterialsExist(tx *gorm.DB, ids []string) error {
	var count int64
	if err := tx.Model(&models.Material{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
		return fmt.Errorf("check material ids: %w", err)
	}
	if count != int64(len(ids)) {
		return ErrInvalidMaterialIDs
	}
	return nil
}
