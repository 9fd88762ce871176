package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-user-directory/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New().String()

	tests := []struct {
		name         string
		target       string
		mockSetup    func(m *MockUserDeleter)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name:   "success",
			target: "/api/users?id=" + id,
			mockSetup: func(m *MockUserDeleter) {
				m.EXPECT().Delete(gomock.Any(), id).Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]string{"message": "User deleted successfully"},
		},
		{
			name:   "missing id",
			target: "/api/users",
			mockSetup: func(m *MockUserDeleter) {
				m.EXPECT().Delete(gomock.Any(), "").Return(&services.ValidationError{Field: "id", Tag: "required"})
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "Invalid user id"},
		},
		{
			name:   "store error",
			target: "/api/users?id=" + id,
			mockSetup: func(m *MockUserDeleter) {
				m.EXPECT().Delete(gomock.Any(), id).Return(errors.New("connection reset"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]string{"error": "connection reset"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserDeleter(ctrl)
			tt.mockSetup(mockSvc)

			req := httptest.NewRequest(http.MethodDelete, tt.target, nil)
			rr := httptest.NewRecorder()
			NewDeleteUserHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}
