package follow

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() chi.Router {
	h := NewHandler(NewService(newFakeStore()))

	r := chi.NewRouter()
	r.Post("/api/follow", h.Follow)
	r.Delete("/api/follow", h.Unfollow)
	r.Get("/api/follow/following/{followerId}", h.ListFollowing)
	return r
}

func edgeBody(t *testing.T, follower, following string) *bytes.Reader {
	t.Helper()

	payload, err := json.Marshal(EdgeRequest{FollowerID: follower, FollowingID: following})
	require.NoError(t, err)
	return bytes.NewReader(payload)
}

func TestHandler_FollowLifecycle(t *testing.T) {
	router := newTestRouter()
	alice := uuid.New().String()
	bob := uuid.New().String()

	// Follow succeeds
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/follow", edgeBody(t, alice, bob)))
	require.Equal(t, http.StatusCreated, rec.Code)

	var edge Follow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &edge))
	assert.Equal(t, alice, edge.FollowerID.String())
	assert.Equal(t, bob, edge.FollowingID.String())

	// Following the same user again conflicts
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/follow", edgeBody(t, alice, bob)))
	assert.Equal(t, http.StatusConflict, rec.Code)

	// The edge shows up in the following list
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/follow/following/"+alice, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var follows []Follow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &follows))
	assert.Len(t, follows, 1)

	// Unfollow removes it
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/follow", edgeBody(t, alice, bob)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unfollowed successfully")

	// A second unfollow finds nothing
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/follow", edgeBody(t, alice, bob)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_Follow_BadRequests(t *testing.T) {
	router := newTestRouter()
	id := uuid.New().String()

	tests := []struct {
		name string
		body *bytes.Reader
	}{
		{"missing follower", edgeBody(t, "", id)},
		{"missing following", edgeBody(t, id, "")},
		{"malformed id", edgeBody(t, "not-a-uuid", id)},
		{"self follow", edgeBody(t, id, id)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/follow", tt.body))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandler_ListFollowing_InvalidID(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/follow/following/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
