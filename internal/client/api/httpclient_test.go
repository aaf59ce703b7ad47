package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.Empty(t, r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "ann@x.com", body["email"])
		require.Equal(t, "secret1", body["password"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"tok123","user":{"id":"u1","name":"Ann","email":"ann@x.com"}}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 0)
	sess, err := c.Login(context.Background(), "ann@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "tok123", sess.Token)
	assert.Equal(t, "Ann", sess.User.Name)
}

func TestLogin_RejectedCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"invalid email or password"}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 0)
	_, err := c.Login(context.Background(), "ann@x.com", "wrong")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "invalid email or password", apiErr.Message)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogin_GenericMessageWhenBodyUnusable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 0)
	_, err := c.Login(context.Background(), "a@b.c", "secret1")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "request failed", apiErr.Message)
	assert.False(t, errors.Is(err, ErrUnauthorized))
}

func TestTransportFailure_IsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	c := NewHTTPClient(srv.URL, 0)
	_, err := c.ListNotes(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestRegister_SendsAllFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/register", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "Ann", body["name"])
		require.Equal(t, "9876543210", body["mobile"])
		require.Equal(t, "ann@x.com", body["email"])
		require.Equal(t, "secret1", body["password"])
		w.Write([]byte(`{"token":"t","user":{"id":"u1","name":"Ann","email":"ann@x.com","mobile":"9876543210"}}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 0)
	sess, err := c.Register(context.Background(), "Ann", "9876543210", "ann@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "9876543210", sess.User.Mobile)
}

func TestListNotes_BearerTokenAndOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))
		w.Write([]byte(`[{"_id":"b","title":"second"},{"_id":"a","title":"first"}]`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 0)
	notes, err := c.ListNotes(context.Background(), "tok123")
	require.NoError(t, err)
	require.Len(t, notes, 2)
	// server order is preserved as-is
	assert.Equal(t, "b", notes[0].ID)
	assert.Equal(t, "a", notes[1].ID)
}

func TestCreateAndUpdateNote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/notes":
			w.Write([]byte(`{"_id":"n1","title":"Groceries","content":"Milk, eggs","updatedAt":"2024-05-01T10:00:00Z"}`))
		case r.Method == http.MethodPut && r.URL.Path == "/notes/n1":
			w.Write([]byte(`{"_id":"n1","title":"Groceries","content":"Milk, eggs, bread"}`))
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 0)

	created, err := c.CreateNote(context.Background(), "tok", "Groceries", "Milk, eggs")
	require.NoError(t, err)
	assert.Equal(t, "n1", created.ID)
	assert.False(t, created.UpdatedAt.IsZero())

	updated, err := c.UpdateNote(context.Background(), "tok", "n1", "Groceries", "Milk, eggs, bread")
	require.NoError(t, err)
	assert.Equal(t, "n1", updated.ID)
	assert.Equal(t, "Milk, eggs, bread", updated.Content)
	assert.True(t, updated.UpdatedAt.IsZero())
}

func TestDeleteNote_AckContract(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		status  int
		wantErr bool
	}{
		{"explicit success", `{"success":true}`, http.StatusOK, false},
		{"explicit failure", `{"success":false}`, http.StatusOK, true},
		{"foreign shape treated as error", `{"deleted":1}`, http.StatusOK, true},
		{"server error", `{"message":"nope"}`, http.StatusInternalServerError, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodDelete, r.Method)
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewHTTPClient(srv.URL, 0)
			err := c.DeleteNote(context.Background(), "tok", "n1")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPathEscaping(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 0)
	require.NoError(t, c.DeleteNote(context.Background(), "tok", "a/b"))
	assert.Equal(t, "/notes/a%2Fb", gotPath)
}
