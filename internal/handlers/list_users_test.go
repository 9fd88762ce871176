package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-user-directory/internal/models"
	"github.com/sbilibin2017/gw-user-directory/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUsersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tanaka := models.User{
		ID:        uuid.New(),
		Name:      "Tanaka",
		Email:     "t@example.com",
		CreatedAt: time.Date(2025, 9, 26, 10, 0, 0, 0, time.UTC),
	}
	unknown := uuid.New().String()

	tests := []struct {
		name         string
		target       string
		mockSetup    func(m *MockUserLister)
		expectedCode int
		expectedBody string
	}{
		{
			name:   "all users",
			target: "/api/users",
			mockSetup: func(m *MockUserLister) {
				m.EXPECT().List(gomock.Any(), "").Return([]models.User{tanaka}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "unknown id returns empty array",
			target: "/api/users?id=" + unknown,
			mockSetup: func(m *MockUserLister) {
				m.EXPECT().List(gomock.Any(), unknown).Return([]models.User{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: "[]\n",
		},
		{
			name:   "store error",
			target: "/api/users",
			mockSetup: func(m *MockUserLister) {
				m.EXPECT().List(gomock.Any(), "").Return(nil, errors.Join(services.ErrStore, errors.New("connection refused")))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserLister(ctrl)
			tt.mockSetup(mockSvc)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rr := httptest.NewRecorder()
			NewListUsersHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, rr.Body.String())
			}
		})
	}

	t.Run("body carries the records", func(t *testing.T) {
		mockSvc := NewMockUserLister(ctrl)
		mockSvc.EXPECT().List(gomock.Any(), "").Return([]models.User{tanaka}, nil)

		rr := httptest.NewRecorder()
		NewListUsersHandler(mockSvc)(rr, httptest.NewRequest(http.MethodGet, "/api/users", nil))

		var users []models.User
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &users))
		assert.Equal(t, []models.User{tanaka}, users)
	})

	t.Run("error body has error field", func(t *testing.T) {
		mockSvc := NewMockUserLister(ctrl)
		mockSvc.EXPECT().List(gomock.Any(), "").Return(nil, errors.New("boom"))

		rr := httptest.NewRecorder()
		NewListUsersHandler(mockSvc)(rr, httptest.NewRequest(http.MethodGet, "/api/users", nil))

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, map[string]string{"error": "boom"}, resp)
	})
}
