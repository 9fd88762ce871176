package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-user-directory/internal/models"
	"github.com/sbilibin2017/gw-user-directory/internal/services"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(name, email string) models.User {
	return models.User{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Date(2025, 9, 26, 10, 0, 0, 0, time.UTC),
	}
}

func assertValidationField(t *testing.T, err error, field string) {
	t.Helper()
	require.ErrorIs(t, err, services.ErrValidation)
	var verr *services.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, field, verr.Field)
}

func TestUserService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	svc := services.NewUserService(mockReader, mockWriter, nil)

	tanaka := newUser("Tanaka", "t@example.com")

	t.Run("all users", func(t *testing.T) {
		mockReader.EXPECT().List(gomock.Any(), gomock.Nil()).Return([]models.User{tanaka}, nil)

		users, err := svc.List(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, []models.User{tanaka}, users)
	})

	t.Run("filtered by id", func(t *testing.T) {
		id := tanaka.ID
		mockReader.EXPECT().List(gomock.Any(), gomock.Eq(&id)).Return([]models.User{tanaka}, nil)

		users, err := svc.List(context.Background(), tanaka.ID.String())
		require.NoError(t, err)
		assert.Equal(t, []models.User{tanaka}, users)
	})

	t.Run("unknown id is empty", func(t *testing.T) {
		unknown := uuid.New()
		mockReader.EXPECT().List(gomock.Any(), gomock.Eq(&unknown)).Return([]models.User{}, nil)

		users, err := svc.List(context.Background(), unknown.String())
		require.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
	})

	t.Run("malformed id matches nothing without querying", func(t *testing.T) {
		users, err := svc.List(context.Background(), "not-a-uuid")
		require.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
	})

	t.Run("store error", func(t *testing.T) {
		dbErr := errors.New("connection refused")
		mockReader.EXPECT().List(gomock.Any(), gomock.Nil()).Return(nil, dbErr)

		users, err := svc.List(context.Background(), "")
		assert.Nil(t, users)
		assert.ErrorIs(t, err, services.ErrStore)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestUserService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	svc := services.NewUserService(mockReader, mockWriter, nil)

	tests := []struct {
		name      string
		req       models.CreateUserRequest
		setup     func()
		wantField string
		wantErr   error
		wantUsers int
	}{
		{
			name: "success with trimmed fields",
			req:  models.CreateUserRequest{Name: "  Tanaka ", Email: " t@example.com "},
			setup: func() {
				mockWriter.EXPECT().
					Create(gomock.Any(), "Tanaka", "t@example.com").
					Return([]models.User{newUser("Tanaka", "t@example.com")}, nil)
			},
			wantUsers: 1,
		},
		{
			name:      "blank name",
			req:       models.CreateUserRequest{Name: "   ", Email: "t@example.com"},
			wantField: "name",
		},
		{
			name:      "missing email",
			req:       models.CreateUserRequest{Name: "Tanaka"},
			wantField: "email",
		},
		{
			name: "store error",
			req:  models.CreateUserRequest{Name: "Tanaka", Email: "t@example.com"},
			setup: func() {
				mockWriter.EXPECT().
					Create(gomock.Any(), "Tanaka", "t@example.com").
					Return(nil, errors.New("insert failed"))
			},
			wantErr: services.ErrStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}

			users, err := svc.Create(context.Background(), tt.req)
			switch {
			case tt.wantField != "":
				assertValidationField(t, err, tt.wantField)
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				require.NoError(t, err)
				assert.Len(t, users, tt.wantUsers)
			}
		})
	}
}

func TestUserService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	svc := services.NewUserService(mockReader, mockWriter, nil)

	existing := newUser("Suzuki", "s@example.com")

	tests := []struct {
		name      string
		req       models.UpdateUserRequest
		setup     func()
		wantField string
		wantErr   error
	}{
		{
			name: "success",
			req:  models.UpdateUserRequest{ID: existing.ID.String(), Name: "Suzuki", Email: "s@example.com"},
			setup: func() {
				mockWriter.EXPECT().
					Update(gomock.Any(), existing.ID, "Suzuki", "s@example.com").
					Return([]models.User{existing}, nil)
			},
		},
		{
			name:      "missing id",
			req:       models.UpdateUserRequest{Name: "Suzuki", Email: "s@example.com"},
			wantField: "id",
		},
		{
			name:      "malformed id",
			req:       models.UpdateUserRequest{ID: "42", Name: "Suzuki", Email: "s@example.com"},
			wantField: "id",
		},
		{
			name:      "blank name",
			req:       models.UpdateUserRequest{ID: existing.ID.String(), Name: "", Email: "s@example.com"},
			wantField: "name",
		},
		{
			name: "unknown id",
			req:  models.UpdateUserRequest{ID: existing.ID.String(), Name: "Suzuki", Email: "s@example.com"},
			setup: func() {
				mockWriter.EXPECT().
					Update(gomock.Any(), existing.ID, "Suzuki", "s@example.com").
					Return([]models.User{}, nil)
			},
			wantErr: services.ErrUserNotFound,
		},
		{
			name: "store error",
			req:  models.UpdateUserRequest{ID: existing.ID.String(), Name: "Suzuki", Email: "s@example.com"},
			setup: func() {
				mockWriter.EXPECT().
					Update(gomock.Any(), existing.ID, "Suzuki", "s@example.com").
					Return(nil, errors.New("deadlock detected"))
			},
			wantErr: services.ErrStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}

			users, err := svc.Update(context.Background(), tt.req)
			switch {
			case tt.wantField != "":
				assertValidationField(t, err, tt.wantField)
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, users)
			default:
				require.NoError(t, err)
				assert.Equal(t, []models.User{existing}, users)
			}
		})
	}
}

func TestUserService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	svc := services.NewUserService(mockReader, mockWriter, nil)

	id := uuid.New()

	t.Run("missing id", func(t *testing.T) {
		assertValidationField(t, svc.Delete(context.Background(), ""), "id")
	})

	t.Run("malformed id", func(t *testing.T) {
		assertValidationField(t, svc.Delete(context.Background(), "abc"), "id")
	})

	t.Run("deleting twice succeeds both times", func(t *testing.T) {
		mockWriter.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(2)

		assert.NoError(t, svc.Delete(context.Background(), id.String()))
		assert.NoError(t, svc.Delete(context.Background(), id.String()))
	})

	t.Run("store error", func(t *testing.T) {
		mockWriter.EXPECT().Delete(gomock.Any(), id).Return(errors.New("connection reset"))

		err := svc.Delete(context.Background(), id.String())
		assert.ErrorIs(t, err, services.ErrStore)
	})
}

func decodeEvent(t *testing.T, msg kafka.Message) models.UserEvent {
	t.Helper()
	var ev models.UserEvent
	require.NoError(t, json.Unmarshal(msg.Value, &ev))
	assert.Equal(t, ev.UserID.String(), string(msg.Key))
	return ev
}

func TestUserService_PublishesEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)
	svc := services.NewUserService(mockReader, mockWriter, mockKafka)

	tanaka := newUser("Tanaka", "t@example.com")

	var published []kafka.Message
	record := func(_ context.Context, msgs ...kafka.Message) error {
		published = append(published, msgs...)
		return nil
	}

	t.Run("create", func(t *testing.T) {
		published = nil
		mockWriter.EXPECT().Create(gomock.Any(), "Tanaka", "t@example.com").Return([]models.User{tanaka}, nil)
		mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).DoAndReturn(record)

		_, err := svc.Create(context.Background(), models.CreateUserRequest{Name: "Tanaka", Email: "t@example.com"})
		require.NoError(t, err)

		require.Len(t, published, 1)
		ev := decodeEvent(t, published[0])
		assert.Equal(t, models.UserCreated, ev.Type)
		assert.Equal(t, tanaka.ID, ev.UserID)
		require.NotNil(t, ev.User)
		assert.Equal(t, "Tanaka", ev.User.Name)
	})

	t.Run("update", func(t *testing.T) {
		published = nil
		renamed := tanaka
		renamed.Name = "Suzuki"
		mockWriter.EXPECT().Update(gomock.Any(), tanaka.ID, "Suzuki", "t@example.com").Return([]models.User{renamed}, nil)
		mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).DoAndReturn(record)

		_, err := svc.Update(context.Background(), models.UpdateUserRequest{ID: tanaka.ID.String(), Name: "Suzuki", Email: "t@example.com"})
		require.NoError(t, err)

		require.Len(t, published, 1)
		ev := decodeEvent(t, published[0])
		assert.Equal(t, models.UserUpdated, ev.Type)
		require.NotNil(t, ev.User)
		assert.Equal(t, "Suzuki", ev.User.Name)
	})

	t.Run("delete", func(t *testing.T) {
		published = nil
		mockWriter.EXPECT().Delete(gomock.Any(), tanaka.ID).Return(nil)
		mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).DoAndReturn(record)

		require.NoError(t, svc.Delete(context.Background(), tanaka.ID.String()))

		require.Len(t, published, 1)
		ev := decodeEvent(t, published[0])
		assert.Equal(t, models.UserDeleted, ev.Type)
		assert.Equal(t, tanaka.ID, ev.UserID)
		assert.Nil(t, ev.User)
	})

	t.Run("failed store write publishes nothing", func(t *testing.T) {
		mockWriter.EXPECT().Delete(gomock.Any(), tanaka.ID).Return(errors.New("connection reset"))

		err := svc.Delete(context.Background(), tanaka.ID.String())
		assert.ErrorIs(t, err, services.ErrStore)
	})

	t.Run("publish error does not fail the operation", func(t *testing.T) {
		mockWriter.EXPECT().Delete(gomock.Any(), tanaka.ID).Return(nil)
		mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("kafka error"))

		assert.NoError(t, svc.Delete(context.Background(), tanaka.ID.String()))
	})
}
