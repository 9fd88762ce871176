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

func TestUpdateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	updated := models.User{ID: id, Name: "Suzuki", Email: "s@example.com"}

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockUserUpdater)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "success",
			body: `{"id":"` + id.String() + `","name":"Suzuki","email":"s@example.com"}`,
			mockSetup: func(m *MockUserUpdater) {
				m.EXPECT().
					Update(gomock.Any(), models.UpdateUserRequest{ID: id.String(), Name: "Suzuki", Email: "s@example.com"}).
					Return([]models.User{updated}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "missing id",
			body: `{"name":"Suzuki","email":"s@example.com"}`,
			mockSetup: func(m *MockUserUpdater) {
				m.EXPECT().
					Update(gomock.Any(), gomock.Any()).
					Return(nil, &services.ValidationError{Field: "id", Tag: "required"})
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Invalid user id",
		},
		{
			name: "blank name",
			body: `{"id":"` + id.String() + `","name":"","email":"s@example.com"}`,
			mockSetup: func(m *MockUserUpdater) {
				m.EXPECT().
					Update(gomock.Any(), gomock.Any()).
					Return(nil, &services.ValidationError{Field: "name", Tag: "required"})
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Name and email are required",
		},
		{
			name: "unknown id",
			body: `{"id":"` + id.String() + `","name":"Suzuki","email":"s@example.com"}`,
			mockSetup: func(m *MockUserUpdater) {
				m.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedErr:  "User not found",
		},
		{
			name:         "invalid json",
			body:         "[",
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Invalid request body",
		},
		{
			name: "store error",
			body: `{"id":"` + id.String() + `","name":"Suzuki","email":"s@example.com"}`,
			mockSetup: func(m *MockUserUpdater) {
				m.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserUpdater(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := httptest.NewRequest(http.MethodPut, "/api/users", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			NewUpdateUserHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedErr != "" {
				var resp map[string]string
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, map[string]string{"error": tt.expectedErr}, resp)
				return
			}

			var users []models.User
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &users))
			assert.Equal(t, []models.User{updated}, users)
		})
	}
}
