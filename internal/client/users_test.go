package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-user-directory/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsersClient_List(t *testing.T) {
	id := uuid.New()
	var gotQuery string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/users", r.URL.Path)
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode([]models.User{{ID: id, Name: "Tanaka", Email: "t@example.com"}})
	}))
	defer srv.Close()

	c := NewUsersClient(srv.URL+"/", nil)

	users, err := c.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, id, users[0].ID)
	assert.Empty(t, gotQuery)

	_, err = c.List(context.Background(), id.String())
	require.NoError(t, err)
	assert.Equal(t, "id="+id.String(), gotQuery)
}

func TestUsersClient_ListNullBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("null"))
	}))
	defer srv.Close()

	users, err := NewUsersClient(srv.URL, nil).List(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestUsersClient_CreateAndUpdate(t *testing.T) {
	id := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		raw, _ := io.ReadAll(r.Body)

		switch r.Method {
		case http.MethodPost:
			assert.JSONEq(t, `{"name":"Tanaka","email":"t@example.com"}`, string(raw))
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode([]models.User{{ID: id, Name: "Tanaka", Email: "t@example.com"}})
		case http.MethodPut:
			assert.JSONEq(t, `{"id":"`+id.String()+`","name":"Suzuki","email":"s@example.com"}`, string(raw))
			json.NewEncoder(w).Encode([]models.User{{ID: id, Name: "Suzuki", Email: "s@example.com"}})
		default:
			t.Fatalf("unexpected method %s", r.Method)
		}
	}))
	defer srv.Close()

	c := NewUsersClient(srv.URL, srv.Client())

	created, err := c.Create(context.Background(), "Tanaka", "t@example.com")
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, "Tanaka", created[0].Name)

	updated, err := c.Update(context.Background(), id.String(), "Suzuki", "s@example.com")
	require.NoError(t, err)
	require.Len(t, updated, 1)
	assert.Equal(t, "Suzuki", updated[0].Name)
}

func TestUsersClient_Delete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		if r.URL.Query().Get("id") == "" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"Invalid user id"}`))
			return
		}
		w.Write([]byte(`{"message":"User deleted successfully"}`))
	}))
	defer srv.Close()

	c := NewUsersClient(srv.URL, nil)

	assert.NoError(t, c.Delete(context.Background(), uuid.NewString()))

	err := c.Delete(context.Background(), "")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Invalid user id", apiErr.Message)
}

func TestUsersClient_NonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusMethodNotAllowed)
		w.Write([]byte("Method GET Not Allowed"))
	}))
	defer srv.Close()

	_, err := NewUsersClient(srv.URL, nil).List(context.Background(), "")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusMethodNotAllowed, apiErr.StatusCode)
	assert.Equal(t, "Method GET Not Allowed", apiErr.Message)
}

func TestUsersClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewUsersClient(url, nil).List(context.Background(), "")

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, "list users", netErr.Op)
	assert.True(t, errors.Unwrap(err) != nil)
}
