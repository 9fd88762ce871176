package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-user-directory/internal/models"
	"github.com/sbilibin2017/gw-user-directory/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	created := models.User{ID: uuid.New(), Name: "Tanaka", Email: "t@example.com"}

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockUserCreator)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "success",
			body: `{"name":"Tanaka","email":"t@example.com"}`,
			mockSetup: func(m *MockUserCreator) {
				m.EXPECT().
					Create(gomock.Any(), models.CreateUserRequest{Name: "Tanaka", Email: "t@example.com"}).
					Return([]models.User{created}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "missing email",
			body: `{"name":"Tanaka"}`,
			mockSetup: func(m *MockUserCreator) {
				m.EXPECT().
					Create(gomock.Any(), models.CreateUserRequest{Name: "Tanaka"}).
					Return(nil, &services.ValidationError{Field: "email", Tag: "required"})
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Name and email are required",
		},
		{
			name:         "invalid json",
			body:         "{invalid json}",
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Invalid request body",
		},
		{
			name: "store error",
			body: `{"name":"Tanaka","email":"t@example.com"}`,
			mockSetup: func(m *MockUserCreator) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("store error: insert failed"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "store error: insert failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			NewCreateUserHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedErr != "" {
				var resp map[string]string
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, map[string]string{"error": tt.expectedErr}, resp)
				return
			}

			var users []models.User
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &users))
			assert.Equal(t, []models.User{created}, users)
		})
	}
}
