package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"gorm.io/gorm"

	"github.com/andrewpaige1/mentorship-api/middleware"
	"github.com/andrewpaige1/mentorship-api/relations"
	"github.com/andrewpaige1/mentorship-api/validation"
)

// WriteJSON encodes v as the response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("WriteJSON: Failed to encode response: %v", err)
	}
}

// WriteText writes a plain text body.
func WriteText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(msg))
}

// NotFoundError reports that the resource addressed by a request does not
// exist. Status defaults to 404.
type NotFoundError struct {
	Resource string
	ID       string
	Status   int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with provided id %s is not found", e.Resource, e.ID)
}

// WriteError maps err to a client or server response. Unexpected errors are
// logged with op as prefix and never reach the client.
func WriteError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var verr *validation.Error
	var nferr *NotFoundError
	switch {
	case errors.As(err, &verr):
		WriteJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"message": "Invalid input",
			"fields":  verr.Fields,
		})
	case errors.As(err, &nferr):
		status := nferr.Status
		if status == 0 {
			status = http.StatusNotFound
		}
		WriteText(w, status, nferr.Error())
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, relations.ErrCategoryNotFound):
		WriteText(w, http.StatusNotFound, err.Error())
	case errors.Is(err, relations.ErrInvalidCategoryIDs),
		errors.Is(err, relations.ErrInvalidMaterialIDs),
		errors.Is(err, relations.ErrSelfRecommendation),
		errors.Is(err, relations.ErrSelfSuccession),
		errors.Is(err, relations.ErrAlreadySuperseded),
		errors.Is(err, ErrConflict):
		WriteText(w, http.StatusConflict, err.Error())
	case errors.Is(err, gorm.ErrDuplicatedKey):
		WriteText(w, http.StatusConflict, "Resource already exists")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		WriteText(w, http.StatusConflict, "Referenced resource does not exist")
	default:
		requestID, _ := middleware.RequestID(r.Context())
		log.Printf("%s: %v request_id=%s", op, err, requestID)
		WriteText(w, http.StatusInternalServerError, "Internal server error")
	}
}

// ErrConflict is wrapped by handlers for uniqueness checks they run
// themselves, e.g. a taken email.
var ErrConflict = errors.New("conflict")

// Conflict builds a conflict error whose message is shown to the client.
func Conflict(msg string) error {
	return &conflictError{msg: msg}
}

type conflictError struct{ msg string }

func (e *conflictError) Error() string { return e.msg }
func (e *conflictError) Unwrap() error { return ErrConflict }
