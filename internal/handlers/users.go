package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-user-directory/internal/models"
)

//go:generate mockgen -source=users.go -destination=mock_users.go -package=handlers

// UserLister defines the list operation the service must implement.
type UserLister interface {
	List(ctx context.Context, id string) ([]models.User, error)
}

// UserCreator defines the create operation the service must implement.
type UserCreator interface {
	Create(ctx context.Context, req models.CreateUserRequest) ([]models.User, error)
}

// UserUpdater defines the update operation the service must implement.
type UserUpdater interface {
	Update(ctx context.Context, req models.UpdateUserRequest) ([]models.User, error)
}

// UserDeleter defines the delete operation the service must implement.
type UserDeleter interface {
	Delete(ctx context.Context, id string) error
}

// Error messages returned in ErrorResponse bodies.
const (
	msgInvalidBody    = "Invalid request body"
	msgInvalidUserID  = "Invalid user id"
	msgRequiredFields = "Name and email are required"
	msgUserNotFound   = "User not found"
	msgUserDeleted    = "User deleted successfully"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.ErrorResponse{Error: message})
}
