package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-user-directory/internal/logger"
	"github.com/sbilibin2017/gw-user-directory/internal/models"
	"github.com/segmentio/kafka-go"
)

// Error variables
var (
	ErrValidation   = errors.New("validation failed")
	ErrUserNotFound = errors.New("user not found")
	ErrStore        = errors.New("store error")
)

// ValidationError reports a missing or malformed request field.
type ValidationError struct {
	Field string
	Tag   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: field %q failed on %q", ErrValidation, e.Field, e.Tag)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

//go:generate mockgen -source=user.go -destination=mock_user.go -package=services

// UserReader defines read-only operations for users.
type UserReader interface {
	List(ctx context.Context, id *uuid.UUID) ([]models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, name, email string) ([]models.User, error)
	Update(ctx context.Context, id uuid.UUID, name, email string) ([]models.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// UserService checks required fields, forwards user operations to the store
// and publishes a UserEvent after every successful change.
type UserService struct {
	reader      UserReader
	writer      UserWriter
	kafkaWriter KafkaWriter
	validate    *validator.Validate
}

// NewUserService creates a new UserService instance. A nil kafkaWriter disables publishing.
func NewUserService(reader UserReader, writer UserWriter, kafkaWriter KafkaWriter) *UserService {
	return &UserService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
	}
}

// List returns all users, or the user with the given id when rawID is not empty.
// A malformed id matches no user.
func (svc *UserService) List(ctx context.Context, rawID string) ([]models.User, error) {
	var filter *uuid.UUID
	if rawID != "" {
		id, err := svc.parseID(rawID)
		if err != nil {
			logger.Log.Infow("malformed user id in list filter", "id", rawID)
			return []models.User{}, nil
		}
		filter = &id
	}

	users, err := svc.reader.List(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to list users", "id", rawID, "err", err)
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}

	return users, nil
}

// Create inserts a new user and returns the inserted rows.
func (svc *UserService) Create(ctx context.Context, req models.CreateUserRequest) ([]models.User, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	if err := svc.check(req); err != nil {
		logger.Log.Infow("rejected create request", "err", err)
		return nil, err
	}

	users, err := svc.writer.Create(ctx, req.Name, req.Email)
	if err != nil {
		logger.Log.Errorw("failed to create user", "name", req.Name, "email", req.Email, "err", err)
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}

	for i := range users {
		svc.publish(ctx, models.UserCreated, users[i].ID, &users[i])
	}
	return users, nil
}

// Update overwrites name and email of an existing user and returns the updated rows.
func (svc *UserService) Update(ctx context.Context, req models.UpdateUserRequest) ([]models.User, error) {
	req.ID = strings.TrimSpace(req.ID)
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	if err := svc.check(req); err != nil {
		logger.Log.Infow("rejected update request", "id", req.ID, "err", err)
		return nil, err
	}

	id, err := svc.parseID(req.ID)
	if err != nil {
		return nil, err
	}

	users, err := svc.writer.Update(ctx, id, req.Name, req.Email)
	if err != nil {
		logger.Log.Errorw("failed to update user", "id", id, "err", err)
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}
	if len(users) == 0 {
		logger.Log.Errorw("user does not exist", "id", id)
		return nil, ErrUserNotFound
	}

	for i := range users {
		svc.publish(ctx, models.UserUpdated, users[i].ID, &users[i])
	}
	return users, nil
}

// Delete removes a user. Deleting an unknown id succeeds.
func (svc *UserService) Delete(ctx context.Context, rawID string) error {
	id, err := svc.parseID(strings.TrimSpace(rawID))
	if err != nil {
		logger.Log.Infow("rejected delete request", "id", rawID, "err", err)
		return err
	}

	if err := svc.writer.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete user", "id", id, "err", err)
		return fmt.Errorf("%w: %w", ErrStore, err)
	}

	svc.publish(ctx, models.UserDeleted, id, nil)
	return nil
}

// publish sends a UserEvent keyed by the user id. Failures are logged only.
func (svc *UserService) publish(ctx context.Context, eventType string, id uuid.UUID, user *models.User) {
	if svc.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "type", eventType, "id", id)
		return
	}

	data, err := json.Marshal(models.UserEvent{
		Type:       eventType,
		UserID:     id,
		User:       user,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		logger.Log.Errorw("failed to marshal user event", "type", eventType, "id", id, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(id.String()),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish user event", "type", eventType, "id", id, "error", err)
	} else {
		logger.Log.Infow("user event published", "type", eventType, "id", id)
	}
}

func (svc *UserService) parseID(rawID string) (uuid.UUID, error) {
	if err := svc.validate.Var(rawID, "required,uuid"); err != nil {
		return uuid.Nil, toValidationError("id", err)
	}
	return uuid.Parse(rawID)
}

func (svc *UserService) check(req any) error {
	if err := svc.validate.Struct(req); err != nil {
		return toValidationError("", err)
	}
	return nil
}

// toValidationError reports the first failed field. field overrides the name for single-value checks.
func toValidationError(field string, err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	first := fieldErrs[0]
	if field == "" {
		field = strings.ToLower(first.Field())
	}
	return &ValidationError{Field: field, Tag: first.Tag()}
}
