package handlers

import (
	"log"
	"net/http"

	"gorm.io/gorm"

	"github.com/andrewpaige1/mentorship-api/models"
	"github.com/andrewpaige1/mentorship-api/relations"
	"github.com/andrewpaige1/mentorship-api/utils"
	"github.com/andrewpaige1/mentorship-api/validation"
)

// MaterialResponse is a material together with the ids of its categories.
type MaterialResponse struct {
	models.Material
	CategoryIDs []string `json:"categoryIds"`
}

// CategorizedMaterial is a material annotated with its category names.
type CategorizedMaterial struct {
	models.Material
	Categories []string `json:"categories"`
}

func materialResponse(m models.Material) MaterialResponse {
	ids := make([]string, 0, len(m.MaterialCategories))
	for _, link := range m.MaterialCategories {
		ids = append(ids, link.CategoryID)
	}
	return MaterialResponse{Material: m, CategoryIDs: ids}
}

func loadMaterial(tx *gorm.DB, material *models.Material, id string) error {
	return findByID(tx.Preload("MaterialCategories", func(db *gorm.DB) *gorm.DB {
		return db.Order("category_id")
	}), material, "Material", id)
}

func ensureMenteeExists(tx *gorm.DB, menteeID *string) error {
	if menteeID == nil {
		return nil
	}
	var mentee models.Mentee
	return findByID(tx, &mentee, "Mentee", *menteeID)
}

// POST /materials
func (db *DBHandler) CreateMaterial(w http.ResponseWriter, r *http.Request) {
	var req validation.MaterialInsert
	if err := validation.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, r, "CreateMaterial", err)
		return
	}

	conn := db.conn(r)
	material := models.Material{URL: req.URL, Type: req.Type, MenteeID: req.MenteeID}

	err := conn.Transaction(func(tx *gorm.DB) error {
		if err := ensureMenteeExists(tx, req.MenteeID); err != nil {
			return err
		}
		if err := tx.Create(&material).Error; err != nil {
			return err
		}
		if err := relations.LinkCategories(tx, material.ID, req.CategoryIDs); err != nil {
			return err
		}
		if len(req.NewRecommendedMaterials) > 0 {
			if _, err := relations.CreateRecommendedMaterials(tx, material.ID, req.NewRecommendedMaterials); err != nil {
				return err
			}
		}
		if len(req.ExistingRecommendedMaterialIDs) > 0 {
			if err := relations.LinkExistingRecommendations(tx, material.ID, req.ExistingRecommendedMaterialIDs); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.WriteError(w, r, "CreateMaterial", err)
		return
	}

	var saved models.Material
	if err := loadMaterial(conn, &saved, material.ID); err != nil {
		utils.WriteError(w, r, "CreateMaterial", err)
		return
	}

	log.Printf("CreateMaterial: Created material id=%s", saved.ID)
	utils.WriteJSON(w, http.StatusCreated, materialResponse(saved))
}

// GET /materials
func (db *DBHandler) GetMaterials(w http.ResponseWriter, r *http.Request) {
	var materials []models.Material
	err := db.conn(r).
		Preload("MaterialCategories", func(db *gorm.DB) *gorm.DB { return db.Order("category_id") }).
		Order("created_at").
		Find(&materials).Error
	if err != nil {
		utils.WriteError(w, r, "GetMaterials", err)
		return
	}

	response := make([]MaterialResponse, 0, len(materials))
	for _, m := range materials {
		response = append(response, materialResponse(m))
	}
	utils.WriteJSON(w, http.StatusOK, response)
}

// GET /materials/{id}
func (db *DBHandler) GetMaterialByID(w http.ResponseWriter, r *http.Request) {
	id, err := validation.PathID(r, "id")
	if err != nil {
		utils.WriteError(w, r, "GetMaterialByID", err)
		return
	}

	var material models.Material
	if err := loadMaterial(db.conn(r), &material, id); err != nil {
		utils.WriteError(w, r, "GetMaterialByID", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, materialResponse(material))
}

// GET /materials/category/{id}
func (db *DBHandler) GetMaterialsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := validation.PathID(r, "id")
	if err != nil {
		utils.WriteError(w, r, "GetMaterialsByCategory", err)
		return
	}

	var materials []models.Material
	err = db.conn(r).
		Where("EXISTS (SELECT 1 FROM material_categories mc WHERE mc.material_id = materials.id AND mc.category_id = ?)", categoryID).
		Preload("MaterialCategories.Category").
		Order("materials.created_at").
		Find(&materials).Error
	if err != nil {
		utils.WriteError(w, r, "GetMaterialsByCategory", err)
		return
	}

	response := make([]CategorizedMaterial, 0, len(materials))
	for _, m := range materials {
		names := make([]string, 0, len(m.MaterialCategories))
		for _, link := range m.MaterialCategories {
			if link.Category != nil {
				names = append(names, link.Category.Name)
			}
		}
		response = append(response, CategorizedMaterial{Material: m, Categories: names})
	}
	utils.WriteJSON(w, http.StatusOK, response)
}

// GET /materials/recommendations/{id}
func (db *DBHandler) GetMaterialRecommendations(w http.ResponseWriter, r *http.Request) {
	id, err := validation.PathID(r, "id")
	if err != nil {
		utils.WriteError(w, r, "GetMaterialRecommendations", err)
		return
	}

	conn := db.conn(r)
	var material models.Material
	if err := findByID(conn, &material, "Material", id); err != nil {
		utils.WriteError(w, r, "GetMaterialRecommendations", err)
		return
	}

	recommended, err := relations.RecommendedMaterials(conn, material.ID)
	if err != nil {
		utils.WriteError(w, r, "GetMaterialRecommendations", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, recommended)
}

// PUT /materials/{id}
func (db *DBHandler) UpdateMaterialByID(w http.ResponseWriter, r *http.Request) {
	id, err := validation.PathID(r, "id")
	if err != nil {
		utils.WriteError(w, r, "UpdateMaterialByID", err)
		return
	}

	var req validation.MaterialUpdate
	if err := validation.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, r, "UpdateMaterialByID", err)
		return
	}

	conn := db.conn(r)
	var material models.Material

	err = conn.Transaction(func(tx *gorm.DB) error {
		if err := findByID(tx, &material, "Material", id); err != nil {
			return err
		}

		if req.URL != nil {
			material.URL = *req.URL
		}
		if req.Type != nil {
			material.Type = *req.Type
		}
		if req.MenteeID.Set {
			if err := ensureMenteeExists(tx, req.MenteeID.ID); err != nil {
				return err
			}
			material.MenteeID = req.MenteeID.ID
		}
		// Save locks the material row before its links are read, so
		// concurrent updates of one material reconcile one after the other.
		if err := tx.Save(&material).Error; err != nil {
			return err
		}

		if req.CategoryIDs != nil {
			if err := relations.ReconcileCategories(tx, material.ID, req.CategoryIDs); err != nil {
				return err
			}
		}
		if len(req.ExistingRecommendedMaterialIDsToAdd) > 0 {
			if err := relations.LinkExistingRecommendations(tx, material.ID, req.ExistingRecommendedMaterialIDsToAdd); err != nil {
				return err
			}
		}
		if len(req.ExistingRecommendedMaterialIDsToRemove) > 0 {
			if err := relations.UnlinkRecommendations(tx, req.ExistingRecommendedMaterialIDsToRemove); err != nil {
				return err
			}
		}
		if len(req.NewRecommendedMaterials) > 0 {
			if _, err := relations.CreateRecommendedMaterials(tx, material.ID, req.NewRecommendedMaterials); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.WriteError(w, r, "UpdateMaterialByID", err)
		return
	}

	var saved models.Material
	if err := loadMaterial(conn, &saved, material.ID); err != nil {
		utils.WriteError(w, r, "UpdateMaterialByID", err)
		return
	}

	log.Printf("UpdateMaterialByID: Successfully updated material id=%s", saved.ID)
	utils.WriteJSON(w, http.StatusOK, materialResponse(saved))
}

// DELETE /materials/{id}
func (db *DBHandler) DeleteMaterialByID(w http.ResponseWriter, r *http.Request) {
	id, err := validation.PathID(r, "id")
	if err != nil {
		utils.WriteError(w, r, "DeleteMaterialByID", err)
		return
	}

	if err := deleteByID(db.conn(r), &models.Material{}, "Material", id); err != nil {
		utils.WriteError(w, r, "DeleteMaterialByID", err)
		return
	}

	log.Printf("DeleteMaterialByID: Successfully deleted material id=%s", id)
	utils.WriteText(w, http.StatusOK, "Material deleted successfully")
}
