package handlers

import (
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/andrewpaige1/mentorship-api/utils"
)

type DBHandler struct {
	*gorm.DB
}

// conn scopes queries to the request so a dropped client cancels them.
func (db *DBHandler) conn(r *http.Request) *gorm.DB {
	return db.WithContext(r.Context())
}

// findByID loads the row with the given id into dst, reporting a missing
// row as a NotFoundError for resource.
func findByID(tx *gorm.DB, dst any, resource, id string) error {
	if err := tx.Where("id = ?", id).First(dst).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &utils.NotFoundError{Resource: resource, ID: id}
		}
		return err
	}
	return nil
}

// deleteByID removes one row of model and reports a NotFoundError when
// nothing matched.
func deleteByID(tx *gorm.DB, model any, resource, id string) error {
	result := tx.Where("id = ?", id).Delete(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &utils.NotFoundError{Resource: resource, ID: id}
	}
	return nil
}

// RouteNotFound answers every request no other route matched.
func RouteNotFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteText(w, http.StatusNotFound, "Route not found")
}
