package relations

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrewpaige1/mentorship-api/models"
	"github.com/andrewpaige1/mentorship-api/validation"
)

// ReplaceWithExisting marks oldID as superseded by newID and moves every
// material of the old category to the new one. Returns the updated old
// category. All writes happen in one transaction.
func ReplaceWithExisting(db *gorm.DB, oldID, newID string) (*models.Category, error) {
	if oldID == newID {
		return nil, ErrSelfSuccession
	}

	var old models.Category
	err := db.Transaction(func(tx *gorm.DB) error {
		var next models.Category
		if err := loadCategory(tx, oldID, &old); err != nil {
			return err
		}
		if err := loadCategory(tx, newID, &next); err != nil {
			return err
		}
		if next.Superseded() || next.PredecessorCategoryID != nil {
			return ErrAlreadySuperseded
		}
		return succeed(tx, &old, &next)
	})
	if err != nil {
		return nil, err
	}
	return &old, nil
}

// ReplaceWithNew creates a category from def as the successor of oldID and
// moves the old category's materials to it.
func ReplaceWithNew(db *gorm.DB, oldID string, def validation.CategoryInsert) (*models.Category, error) {
	var old models.Category
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := loadCategory(tx, oldID, &old); err != nil {
			return err
		}
		if old.Superseded() {
			return ErrAlreadySuperseded
		}

		next := models.Category{
			Name:                  def.Name,
			Description:           deref(def.Description),
			PredecessorCategoryID: &old.ID,
		}
		if err := tx.Create(&next).Error; err != nil {
			return fmt.Errorf("create successor category: %w", err)
		}
		return succeed(tx, &old, &next)
	})
	if err != nil {
		return nil, err
	}
	return &old, nil
}

func loadCategory(tx *gorm.DB, id string, dst *models.Category) error {
	if err := tx.Where("id = ?", id).First(dst).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %s", ErrCategoryNotFound, id)
		}
		return fmt.Errorf("load category %s: %w", id, err)
	}
	return nil
}

// succeed writes both sides of the chain link and re-points the material
// links. Materials already linked to next lose their old link instead of
// getting a duplicate.
func succeed(tx *gorm.DB, old, next *models.Category) error {
	if old.Superseded() {
		return ErrAlreadySuperseded
	}

	old.SuccessorCategoryID = &next.ID
	if err := tx.Save(old).Error; err != nil {
		return fmt.Errorf("set successor: %w", err)
	}
	next.PredecessorCategoryID = &old.ID
	if err := tx.Save(next).Error; err != nil {
		return fmt.Errorf("set predecessor: %w", err)
	}

	err := tx.Where("category_id = ? AND material_id IN (?)", old.ID,
		tx.Model(&models.MaterialCategory{}).Select("material_id").Where("category_id = ?", next.ID),
	).Delete(&models.MaterialCategory{}).Error
	if err != nil {
		return fmt.Errorf("drop overlapping material links: %w", err)
	}

	err = tx.Model(&models.MaterialCategory{}).
		Where("category_id = ?", old.ID).
		Update("category_id", next.ID).Error
	if err != nil {
		return fmt.Errorf("re-point material links: %w", err)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
