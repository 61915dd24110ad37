package handlers

import (
	"log"
	"net/http"

	"gorm.io/gorm"

	"github.com/andrewpaige1/mentorship-api/models"
	"github.com/andrewpaige1/mentorship-api/utils"
	"github.com/andrewpaige1/mentorship-api/validation"
)

// A user can be enrolled as a mentee at most once.
func ensureUserHasNoMentee(tx *gorm.DB, userID string) error {
	var count int64
	if err := tx.Model(&models.Mentee{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return utils.Conflict("Mentee for this user already exists")
	}
	return nil
}

// POST /mentees
func (db *DBHandler) CreateMentee(w http.ResponseWriter, r *http.Request) {
	var req validation.MenteeInsert
	if err := validation.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, r, "CreateMentee", err)
		return
	}

	conn := db.conn(r)
	var user models.User
	if err := findByID(conn, &user, "User", req.UserID); err != nil {
		utils.WriteError(w, r, "CreateMentee", err)
		return
	}
	if err := ensureUserHasNoMentee(conn, user.ID); err != nil {
		utils.WriteError(w, r, "CreateMentee", err)
		return
	}

	mentee := models.Mentee{
		UserID:    user.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if err := conn.Create(&mentee).Error; err != nil {
		utils.WriteError(w, r, "CreateMentee", err)
		return
	}

	log.Printf("CreateMentee: Created mentee id=%s for userID=%s", mentee.ID, user.ID)
	utils.WriteJSON(w, http.StatusCreated, mentee)
}

// GET /mentees
func (db *DBHandler) GetMentees(w http.ResponseWriter, r *http.Request) {
	mentees := []models.Mentee{}
	if err := db.conn(r).Order("created_at").Find(&mentees).Error; err != nil {
		utils.WriteError(w, r, "GetMentees", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, mentees)
}

// GET /mentees/{id}
func (db *DBHandler) GetMenteeByID(w http.ResponseWriter, r *http.Request) {
	id, err := validation.PathID(r, "id")
	if err != nil {
		utils.WriteError(w, r, "GetMenteeByID", err)
		return
	}

	var mentee models.Mentee
	if err := findByID(db.conn(r).Preload("Materials"), &mentee, "Mentee", id); err != nil {
		utils.WriteError(w, r, "GetMenteeByID", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, mentee)
}

// PUT /mentees/{id}
func (db *DBHandler) UpdateMenteeByID(w http.ResponseWriter, r *http.Request) {
	id, err := validation.PathID(r, "id")
	if err != nil {
		utils.WriteError(w, r, "UpdateMenteeByID", err)
		return
	}

	var req validation.MenteeUpdate
	if err := validation.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, r, "UpdateMenteeByID", err)
		return
	}

	conn := db.conn(r)
	var mentee models.Mentee
	if err := findByID(conn, &mentee, "Mentee", id); err != nil {
		utils.WriteError(w, r, "UpdateMenteeByID", err)
		return
	}

	if req.UserID != nil && *req.UserID != mentee.UserID {
		var user models.User
		if err := findByID(conn, &user, "User", *req.UserID); err != nil {
			utils.WriteError(w, r, "UpdateMenteeByID", err)
			return
		}
		if err := ensureUserHasNoMentee(conn, user.ID); err != nil {
			utils.WriteError(w, r, "UpdateMenteeByID", err)
			return
		}
		mentee.UserID = user.ID
	}
	if req.FirstName != nil {
		mentee.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		mentee.LastName = *req.LastName
	}

	if err := conn.Save(&mentee).Error; err != nil {
		utils.WriteError(w, r, "UpdateMenteeByID", err)
		return
	}

	log.Printf("UpdateMenteeByID: Successfully updated mentee id=%s", mentee.ID)
	utils.WriteJSON(w, http.StatusOK, mentee)
}

// DELETE /mentees/{id}
func (db *DBHandler) DeleteMenteeByID(w http.ResponseWriter, r *http.Request) {
	id, err := validation.PathID(r, "id")
	if err != nil {
		utils.WriteError(w, r, "DeleteMenteeByID", err)
		return
	}

	if err := deleteByID(db.conn(r), &models.Mentee{}, "Mentee", id); err != nil {
		utils.WriteError(w, r, "DeleteMenteeByID", err)
		return
	}

	log.Printf("DeleteMenteeByID: Successfully deleted mentee id=%s", id)
	utils.WriteText(w, http.StatusOK, "Mentee deleted successfully")
}
