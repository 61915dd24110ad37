package relations

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/andrewpaige1/mentorship-api/models"
)

// LinkCategories attaches a freshly created material to the given
// categories. Nothing is written unless every id names an existing category.
func LinkCategories(tx *gorm.DB, materialID string, categoryIDs []string) error {
	ids := unique(categoryIDs)
	if err := ensureCategoriesExist(tx, ids); err != nil {
		return err
	}
	return insertCategoryLinks(tx, materialID, ids)
}

// ReconcileCategories makes the material's linked categories exactly
// desired. Links that already match are left untouched, so repeating the
// call with the same set writes nothing.
func ReconcileCategories(tx *gorm.DB, materialID string, desired []string) error {
	if err := ensureCategoriesExist(tx, unique(desired)); err != nil {
		return err
	}

	current, err := LinkedCategoryIDs(tx, materialID)
	if err != nil {
		return err
	}

	toAdd, toRemove := Diff(desired, current)
	if len(toRemove) > 0 {
		err := tx.Where("material_id = ? AND category_id IN ?", materialID, toRemove).
			Delete(&models.MaterialCategory{}).Error
		if err != nil {
			return fmt.Errorf("remove category links: %w", err)
		}
	}
	return insertCategoryLinks(tx, materialID, toAdd)
}

// LinkedCategoryIDs returns the ids of the categories a material belongs to.
func LinkedCategoryIDs(tx *gorm.DB, materialID string) ([]string, error) {
	var ids []string
	err := tx.Model(&models.MaterialCategory{}).
		Where("material_id = ?", materialID).
		Order("category_id").
		Pluck("category_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("read category links: %w", err)
	}
	return ids, nil
}

func insertCategoryLinks(tx *gorm.DB, materialID string, categoryIDs []string) error {
	if len(categoryIDs) == 0 {
		return nil
	}
	links := make([]models.MaterialCategory, 0, len(categoryIDs))
	for _, id := range categoryIDs {
		links = append(links, models.MaterialCategory{CategoryID: id, MaterialID: materialID})
	}
	if err := tx.Create(&links).Error; err != nil {
		return fmt.Errorf("insert category links: %w", err)
	}
	return nil
}

// ids must already be deduplicated
func ensureCategoriesExist(tx *gorm.DB, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	var count int64
	if err := tx.Model(&models.Category{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
		return fmt.Errorf("check category ids: %w", err)
	}
	if count != int64(len(ids)) {
		return ErrInvalidCategoryIDs
	}
	return nil
}
