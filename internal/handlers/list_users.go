package handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-user-directory/internal/logger"
)

// NewListUsersHandler returns an HTTP handler listing users.
// @Summary List users
// @Description Returns all users in insertion order. With the id query parameter only the matching user is returned; an unknown id yields an empty array.
// @Tags users
// @Produce json
// @Param id query string false "User ID"
// @Success 200 {array} models.User "Users"
// @Failure 500 {object} models.ErrorResponse "Store error"
// @Router /api/users [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("id")

		users, err := svc.List(r.Context(), id)
		if err != nil {
			logger.Log.Errorw("failed to list users", "id", id, "err", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, users)
	}
}
