package handlers

import (
	"errors"
	"log"
	"net/http"

	"gorm.io/gorm"

	"github.com/andrewpaige1/mentorship-api/models"
	"github.com/andrewpaige1/mentorship-api/utils"
	"github.com/andrewpaige1/mentorship-api/validation"
)

// A missing user is answered with 400 rather than 404.
func findUser(tx *gorm.DB, user *models.User, id string) error {
	err := findByID(tx, user, "User", id)
	var nferr *utils.NotFoundError
	if errors.As(err, &nferr) {
		nferr.Status = http.StatusBadRequest
	}
	return err
}

func emailTaken(tx *gorm.DB, email, exceptID string) (bool, error) {
	query := tx.Model(&models.User{}).Where("email = ?", email)
	if exceptID != "" {
		query = query.Where("id <> ?", exceptID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (db *DBHandler) createUser(w http.ResponseWriter, r *http.Request, op string, req validation.UserInsert, invitedBy *string) {
	conn := db.conn(r)

	taken, err := emailTaken(conn, req.Email, "")
	if err != nil {
		utils.WriteError(w, r, op, err)
		return
	}
	if taken {
		utils.WriteError(w, r, op, utils.Conflict("User with this email already exists"))
		return
	}

	user := models.User{Email: req.Email, InvitedByUserID: invitedBy}
	if err := conn.Create(&user).Error; err != nil {
		utils.WriteError(w, r, op, err)
		return
	}

	log.Printf("%s: Created user id=%s", op, user.ID)
	utils.WriteJSON(w, http.StatusCreated, user)
}

// POST /users
func (db *DBHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req validation.UserInsert
	if err := validation.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, r, "CreateUser", err)
		return
	}
	db.createUser(w, r, "CreateUser", req, nil)
}

// POST /users/referred/{id}
func (db *DBHandler) CreateReferredUser(w http.ResponseWriter, r *http.Request) {
	referrerID, err := validation.PathID(r, "id")
	if err != nil {
		utils.WriteError(w, r, "CreateReferredUser", err)
		return
	}

	var req validation.UserInsert
	if err := validation.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, r, "CreateReferredUser", err)
		return
	}

	var referrer models.User
	if err := findUser(db.conn(r), &referrer, referrerID); err != nil {
		utils.WriteError(w, r, "CreateReferredUser", err)
		return
	}

	db.createUser(w, r, "CreateReferredUser", req, &referrer.ID)
}

// GET /users
func (db *DBHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users := []models.User{}
	if err := db.conn(r).Order("created_at").Find(&users).Error; err != nil {
		utils.WriteError(w, r, "GetUsers", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, users)
}

// GET /users/{id}
func (db *DBHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	id, err := validation.PathID(r, "id")
	if err != nil {
		utils.WriteError(w, r, "GetUserByID", err)
		return
	}

	var user models.User
	if err := findUser(db.conn(r).Preload("Mentee"), &user, id); err != nil {
		utils.WriteError(w, r, "GetUserByID", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, user)
}

// PUT /users/{id}
func (db *DBHandler) UpdateUserByID(w http.ResponseWriter, r *http.Request) {
	id, err := validation.PathID(r, "id")
	if err != nil {
		utils.WriteError(w, r, "UpdateUserByID", err)
		return
	}

	var req validation.UserUpdate
	if err := validation.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, r, "UpdateUserByID", err)
		return
	}

	conn := db.conn(r)
	var user models.User
	if err := findUser(conn, &user, id); err != nil {
		utils.WriteError(w, r, "UpdateUserByID", err)
		return
	}

	if req.Email != nil && *req.Email != user.Email {
		taken, err := emailTaken(conn, *req.Email, user.ID)
		if err != nil {
			utils.WriteError(w, r, "UpdateUserByID", err)
			return
		}
		if taken {
			utils.WriteError(w, r, "UpdateUserByID", utils.Conflict("User with this email already exists"))
			return
		}
		user.Email = *req.Email
	}

	if err := conn.Save(&user).Error; err != nil {
		utils.WriteError(w, r, "UpdateUserByID", err)
		return
	}

	log.Printf("UpdateUserByID: Successfully updated user id=%s", user.ID)
	utils.WriteJSON(w, http.StatusOK, user)
}

// DELETE /users/{id}
func (db *DBHandler) DeleteUserByID(w http.ResponseWriter, r *http.Request) {
	id, err := validation.PathID(r, "id")
	if err != nil {
		utils.WriteError(w, r, "DeleteUserByID", err)
		return
	}

	err = deleteByID(db.conn(r), &models.User{}, "User", id)
	var nferr *utils.NotFoundError
	if errors.As(err, &nferr) {
		nferr.Status = http.StatusBadRequest
	}
	if err != nil {
		utils.WriteError(w, r, "DeleteUserByID", err)
		return
	}

	log.Printf("DeleteUserByID: Successfully deleted user id=%s", id)
	utils.WriteText(w, http.StatusOK, "User deleted successfully")
}
