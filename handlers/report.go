package handlers

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/andrewpaige1/mentorship-api/models"
	"github.com/andrewpaige1/mentorship-api/utils"
)

// MenteeMaterials always serializes materials, even when the mentee has none.
type MenteeMaterials struct {
	models.Mentee
	Materials []models.Material `json:"materials"`
}

type CategoryMaterialCount struct {
	CategoryID    string `json:"categoryId"`
	Name          string `json:"name"`
	MaterialCount int64  `json:"materialCount"`
}

type UserReferralCount struct {
	UserID       string `json:"userId"`
	Email        string `json:"email"`
	InvitedCount int64  `json:"invitedCount"`
}

type CategorySuccession struct {
	CategoryID    string `json:"categoryId"`
	Name          string `json:"name"`
	SuccessorID   string `json:"successorId"`
	SuccessorName string `json:"successorName"`
}

// GET /reports/mentees-with-materials
func (db *DBHandler) GetMenteesWithMaterials(w http.ResponseWriter, r *http.Request) {
	mentees := []models.Mentee{}
	if err := db.conn(r).Preload("Materials", func(db *gorm.DB) *gorm.DB { return db.Order("created_at") }).Order("last_name, first_name").Find(&mentees).Error; err != nil {
		utils.WriteError(w, r, "GetMenteesWithMaterials", err)
		return
	}
	rows := make([]MenteeMaterials, 0, len(mentees))
	for _, m := range mentees {
		materials := m.Materials
		if materials == nil {
			materials = []models.Material{}
		}
		rows = append(rows, MenteeMaterials{Mentee: m, Materials: materials})
	}
	utils.WriteJSON(w, http.StatusOK, rows)
}

// GET /reports/category-material-counts
func (db *DBHandler) GetCategoryMaterialCounts(w http.ResponseWriter, r *http.Request) {
	rows := []CategoryMaterialCount{}
	err := db.conn(r).
		Table("categories").
		Select("categories.id AS category_id, categories.name AS name, COUNT(material_categories.material_id) AS material_count").
		Joins("LEFT JOIN material_categories ON material_categories.category_id = categories.id").
		Group("categories.id, categories.name").
		Order("categories.name").
		Scan(&rows).Error
	if err != nil {
		utils.WriteError(w, r, "GetCategoryMaterialCounts", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, rows)
}

// GET /reports/user-referrals
func (db *DBHandler) GetUserReferrals(w http.ResponseWriter, r *http.Request) {
	rows := []UserReferralCount{}
	err := db.conn(r).
		Table("users").
		Select("users.id AS user_id, users.email AS email, COUNT(invited.id) AS invited_count").
		Joins("LEFT JOIN users invited ON invited.invited_by_user_id = users.id").
		Group("users.id, users.email").
		Order("users.email").
		Scan(&rows).Error
	if err != nil {
		utils.WriteError(w, r, "GetUserReferrals", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, rows)
}

// GET /reports/category-successions
func (db *DBHandler) GetCategorySuccessions(w http.ResponseWriter, r *http.Request) {
	rows := []CategorySuccession{}
	err := db.conn(r).
		Table("categories AS c").
		Select("c.id AS category_id, c.name AS name, s.id AS successor_id, s.name AS successor_name").
		Joins("JOIN categories s ON s.id = c.successor_category_id").
		Order("c.name").
		Scan(&rows).Error
	if err != nil {
		utils.WriteError(w, r, "GetCategorySuccessions", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, rows)
}
