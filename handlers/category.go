package handlers

import (
	"log"
	"net/http"

	"github.com/andrewpaige1/mentorship-api/models"
	"github.com/andrewpaige1/mentorship-api/relations"
	"github.com/andrewpaige1/mentorship-api/utils"
	"github.com/andrewpaige1/mentorship-api/validation"
)

// POST /categories
func (db *DBHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req validation.CategoryInsert
	if err := validation.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, r, "CreateCategory", err)
		return
	}

	category := models.Category{Name: req.Name, Description: *req.Description}
	if err := db.conn(r).Create(&category).Error; err != nil {
		utils.WriteError(w, r, "CreateCategory", err)
		return
	}

	log.Printf("CreateCategory: Created category id=%s", category.ID)
	utils.WriteJSON(w, http.StatusCreated, category)
}

// GET /categories
func (db *DBHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories := []models.Category{}
	if err := db.conn(r).Order("created_at").Find(&categories).Error; err != nil {
		utils.WriteError(w, r, "GetCategories", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, categories)
}

// GET /categories/{id}
func (db *DBHandler) GetCategoryByID(w http.ResponseWriter, r *http.Request) {
	id, err := validation.PathID(r, "id")
	if err != nil {
		utils.WriteError(w, r, "GetCategoryByID", err)
		return
	}

	var category models.Category
	if err := findByID(db.conn(r), &category, "Category", id); err != nil {
		utils.WriteError(w, r, "GetCategoryByID", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, category)
}

// PUT /categories/{id}
func (db *DBHandler) UpdateCategoryByID(w http.ResponseWriter, r *http.Request) {
	id, err := validation.PathID(r, "id")
	if err != nil {
		utils.WriteError(w, r, "UpdateCategoryByID", err)
		return
	}

	var req validation.CategoryUpdate
	if err := validation.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, r, "UpdateCategoryByID", err)
		return
	}

	conn := db.conn(r)
	var category models.Category
	if err := findByID(conn, &category, "Category", id); err != nil {
		utils.WriteError(w, r, "UpdateCategoryByID", err)
		return
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}

	if err := conn.Save(&category).Error; err != nil {
		utils.WriteError(w, r, "UpdateCategoryByID", err)
		return
	}

	log.Printf("UpdateCategoryByID: Successfully updated category id=%s", category.ID)
	utils.WriteJSON(w, http.StatusOK, category)
}

// DELETE /categories/{id}
//
// Material links of the category are removed by the foreign key cascade and
// chain references to it are nulled.
func (db *DBHandler) DeleteCategoryByID(w http.ResponseWriter, r *http.Request) {
	id, err := validation.PathID(r, "id")
	if err != nil {
		utils.WriteError(w, r, "DeleteCategoryByID", err)
		return
	}

	if err := deleteByID(db.conn(r), &models.Category{}, "Category", id); err != nil {
		utils.WriteError(w, r, "DeleteCategoryByID", err)
		return
	}

	log.Printf("DeleteCategoryByID: Successfully deleted category id=%s", id)
	utils.WriteText(w, http.StatusOK, "Category deleted successfully")
}

// POST /categories/{oldId}/replace/{newId}
func (db *DBHandler) ReplaceCategory(w http.ResponseWriter, r *http.Request) {
	oldID, err := validation.PathID(r, "oldId")
	if err != nil {
		utils.WriteError(w, r, "ReplaceCategory", err)
		return
	}
	newID, err := validation.PathID(r, "newId")
	if err != nil {
		utils.WriteError(w, r, "ReplaceCategory", err)
		return
	}

	old, err := relations.ReplaceWithExisting(db.conn(r), oldID, newID)
	if err != nil {
		utils.WriteError(w, r, "ReplaceCategory", err)
		return
	}

	log.Printf("ReplaceCategory: Category id=%s superseded by id=%s", oldID, newID)
	utils.WriteJSON(w, http.StatusOK, old)
}

// POST /categories/{oldId}/replace
func (db *DBHandler) ReplaceCategoryWithNew(w http.ResponseWriter, r *http.Request) {
	oldID, err := validation.PathID(r, "oldId")
	if err != nil {
		utils.WriteError(w, r, "ReplaceCategoryWithNew", err)
		return
	}

	var req validation.CategoryInsert
	if err := validation.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, r, "ReplaceCategoryWithNew", err)
		return
	}

	old, err := relations.ReplaceWithNew(db.conn(r), oldID, req)
	if err != nil {
		utils.WriteError(w, r, "ReplaceCategoryWithNew", err)
		return
	}

	log.Printf("ReplaceCategoryWithNew: Category id=%s superseded by new id=%s", oldID, *old.SuccessorCategoryID)
	utils.WriteJSON(w, http.StatusOK, old)
}
