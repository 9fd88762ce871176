package handlers

import (
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-user-directory/internal/logger"
	"github.com/sbilibin2017/gw-user-directory/internal/models"
	"github.com/sbilibin2017/gw-user-directory/internal/services"
)

// NewDeleteUserHandler returns an HTTP handler deleting a user.
// @Summary Delete a user
// @Description Removes the user with the given id. Deleting an unknown id succeeds.
// @Tags users
// @Produce json
// @Param id query string true "User ID"
// @Success 200 {object} models.MessageResponse "User deleted"
// @Failure 400 {object} models.ErrorResponse "Missing or invalid id"
// @Failure 500 {object} models.ErrorResponse "Store error"
// @Router /api/users [delete]
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("id")

		if err := svc.Delete(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				writeError(w, http.StatusBadRequest, msgInvalidUserID)
			default:
				logger.Log.Errorw("failed to delete user", "id", id, "err", err)
				writeError(w, http.StatusInternalServerError, err.Error())
			}
			return
		}

		writeJSON(w, http.StatusOK, models.MessageResponse{Message: msgUserDeleted})
	}
}
