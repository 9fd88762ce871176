package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-user-directory/internal/logger"
	"github.com/sbilibin2017/gw-user-directory/internal/models"
	"github.com/sbilibin2017/gw-user-directory/internal/services"
)

// NewCreateUserHandler returns an HTTP handler creating a user.
// @Summary Create a user
// @Description Inserts a user. The id and created_at are assigned by the store.
// @Tags users
// @Accept json
// @Produce json
// @Param createUserRequest body models.CreateUserRequest true "User to create"
// @Success 201 {array} models.User "Inserted rows"
// @Failure 400 {object} models.ErrorResponse "Invalid body or missing name/email"
// @Failure 500 {object} models.ErrorResponse "Store error"
// @Router /api/users [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateUserRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		users, err := svc.Create(r.Context(), req)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				writeError(w, http.StatusBadRequest, msgRequiredFields)
			default:
				logger.Log.Errorw("failed to create user", "err", err)
				writeError(w, http.StatusInternalServerError, err.Error())
			}
			return
		}

		writeJSON(w, http.StatusCreated, users)
	}
}
