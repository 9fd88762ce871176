package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-user-directory/internal/logger"
	"github.com/sbilibin2017/gw-user-directory/internal/models"
	"github.com/sbilibin2017/gw-user-directory/internal/services"
)

// NewUpdateUserHandler returns an HTTP handler overwriting name and email of a user.
// @Summary Update a user
// @Description Overwrites name and email of the user with the given id.
// @Tags users
// @Accept json
// @Produce json
// @Param updateUserRequest body models.UpdateUserRequest true "User fields"
// @Success 200 {array} models.User "Updated rows"
// @Failure 400 {object} models.ErrorResponse "Missing or invalid id, missing name/email"
// @Failure 404 {object} models.ErrorResponse "Unknown id"
// @Failure 500 {object} models.ErrorResponse "Store error"
// @Router /api/users [put]
func NewUpdateUserHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.UpdateUserRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		users, err := svc.Update(r.Context(), req)
		if err != nil {
			var verr *services.ValidationError
			switch {
			case errors.As(err, &verr) && verr.Field == "id":
				writeError(w, http.StatusBadRequest, msgInvalidUserID)
			case errors.Is(err, services.ErrValidation):
				writeError(w, http.StatusBadRequest, msgRequiredFields)
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, msgUserNotFound)
			default:
				logger.Log.Errorw("failed to update user", "id", req.ID, "err", err)
				writeError(w, http.StatusInternalServerError, err.Error())
			}
			return
		}

		writeJSON(w, http.StatusOK, users)
	}
}
