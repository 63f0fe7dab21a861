package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/quotesync/internal/models"
	"github.com/iudanet/quotesync/internal/server/storage"
	"github.com/iudanet/quotesync/pkg/api"
)

// newPostsMux регистрирует обработчики так же, как роутер сервера
func newPostsMux(h *PostsHandler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /posts", h.List)
	mux.HandleFunc("GET /posts/{id}", h.Get)
	mux.HandleFunc("POST /posts", h.Create)
	return mux
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp api.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp.Error
}

func TestPostsHandler_List(t *testing.T) {
	mockStorage := &storage.PostStorageMock{
		ListPostsFunc: func(ctx context.Context, limit int) ([]*models.Post, error) {
			return []*models.Post{
				{ID: 1, UserID: 1, Title: "first", Body: "b1"},
				{ID: 2, UserID: 2, Title: "second", Body: "b2"},
			}, nil
		},
	}
	mux := newPostsMux(NewPostsHandler(setupTestLogger(), mockStorage))

	req := httptest.NewRequest(http.MethodGet, "/posts?limit=5", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, mockStorage.ListPostsCalls(), 1)
	assert.Equal(t, 5, mockStorage.ListPostsCalls()[0].Limit)

	var posts []api.Post
	require.NoError(t, json.NewDecoder(w.Body).Decode(&posts))
	assert.Equal(t, []api.Post{
		{ID: 1, UserID: 1, Title: "first", Body: "b1"},
		{ID: 2, UserID: 2, Title: "second", Body: "b2"},
	}, posts)
}

func TestPostsHandler_List_EmptyIsArray(t *testing.T) {
	mockStorage := &storage.PostStorageMock{
		ListPostsFunc: func(ctx context.Context, limit int) ([]*models.Post, error) {
			return []*models.Post{}, nil
		},
	}
	mux := newPostsMux(NewPostsHandler(setupTestLogger(), mockStorage))

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/posts", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]\n", w.Body.String())
	assert.Equal(t, 0, mockStorage.ListPostsCalls()[0].Limit)
}

func TestPostsHandler_List_Errors(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		storageErr error
		wantCode   int
		wantCalls  int
	}{
		{name: "bad limit", url: "/posts?limit=abc", wantCode: http.StatusBadRequest},
		{name: "negative limit", url: "/posts?limit=-1", wantCode: http.StatusBadRequest},
		{name: "storage failure", url: "/posts", storageErr: errors.New("disk"), wantCode: http.StatusInternalServerError, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStorage := &storage.PostStorageMock{
				ListPostsFunc: func(ctx context.Context, limit int) ([]*models.Post, error) {
					return nil, tt.storageErr
				},
			}
			mux := newPostsMux(NewPostsHandler(setupTestLogger(), mockStorage))

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Len(t, mockStorage.ListPostsCalls(), tt.wantCalls)
			assert.NotEmpty(t, decodeError(t, w))
		})
	}
}

func TestPostsHandler_Get(t *testing.T) {
	mockStorage := &storage.PostStorageMock{
		GetPostFunc: func(ctx context.Context, id int64) (*models.Post, error) {
			if id == 3 {
				return &models.Post{ID: 3, UserID: 1, Title: "third"}, nil
			}
			return nil, storage.ErrPostNotFound
		},
	}
	mux := newPostsMux(NewPostsHandler(setupTestLogger(), mockStorage))

	tests := []struct {
		name     string
		url      string
		wantCode int
	}{
		{"found", "/posts/3", http.StatusOK},
		{"not found", "/posts/4", http.StatusNotFound},
		{"bad id", "/posts/abc", http.StatusBadRequest},
		{"zero id", "/posts/0", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.url, nil))
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/posts/3", nil))
	var post api.Post
	require.NoError(t, json.NewDecoder(w.Body).Decode(&post))
	assert.Equal(t, "third", post.Title)
}

func TestPostsHandler_Create(t *testing.T) {
	var stored *models.Post
	mockStorage := &storage.PostStorageMock{
		CreatePostFunc: func(ctx context.Context, post *models.Post) error {
			post.ID = 101
			stored = post
			return nil
		},
	}
	mux := newPostsMux(NewPostsHandler(setupTestLogger(), mockStorage))

	body := `{"title":"Stay hungry","body":"Life","userId":1}`
	req := httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var created api.Post
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))
	assert.Equal(t, api.Post{ID: 101, UserID: 1, Title: "Stay hungry", Body: "Life"}, created)

	require.NotNil(t, stored)
	assert.Equal(t, "Life", stored.Body)
}

func TestPostsHandler_Create_UserFromToken(t *testing.T) {
	mockStorage := &storage.PostStorageMock{
		CreatePostFunc: func(ctx context.Context, post *models.Post) error {
			post.ID = 1
			return nil
		},
	}
	h := NewPostsHandler(setupTestLogger(), mockStorage)

	req := httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(`{"title":"t","body":"b"}`))
	req = req.WithContext(WithUserID(req.Context(), 9))
	w := httptest.NewRecorder()
	h.Create(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, mockStorage.CreatePostCalls(), 1)
	assert.Equal(t, int64(9), mockStorage.CreatePostCalls()[0].Post.UserID)
}

func TestPostsHandler_Create_Errors(t *testing.T) {
	tests := []struct {
		storageErr error
		name       string
		body       string
		wantCode   int
	}{
		{name: "malformed json", body: `{"title":`, wantCode: http.StatusBadRequest},
		{name: "missing title", body: `{"body":"b","userId":1}`, wantCode: http.StatusBadRequest},
		{name: "blank title", body: `{"title":"   "}`, wantCode: http.StatusBadRequest},
		{name: "invalid post", body: `{"title":"t"}`, storageErr: storage.ErrInvalidPost, wantCode: http.StatusBadRequest},
		{name: "storage failure", body: `{"title":"t"}`, storageErr: errors.New("disk"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStorage := &storage.PostStorageMock{
				CreatePostFunc: func(ctx context.Context, post *models.Post) error {
					return tt.storageErr
				},
			}
			mux := newPostsMux(NewPostsHandler(setupTestLogger(), mockStorage))

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, w.Code)
			assert.NotEmpty(t, decodeError(t, w))
		})
	}
}
