package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/iudanet/quotesync/internal/models"
	"github.com/iudanet/quotesync/internal/server/storage"
	"github.com/iudanet/quotesync/pkg/api"
)

// maxPostBodyBytes ограничивает размер тела POST /posts
const maxPostBodyBytes = 64 << 10

// PostsHandler handles the /posts resource
type PostsHandler struct {
	logger  *slog.Logger
	storage storage.PostStorage
}

// NewPostsHandler creates a new posts handler
func NewPostsHandler(logger *slog.Logger, storage storage.PostStorage) *PostsHandler {
	return &PostsHandler{
		logger:  logger,
		storage: storage,
	}
}

// List обрабатывает GET /posts?limit=N
func (h *PostsHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			SendError(w, h.logger, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	posts, err := h.storage.ListPosts(r.Context(), limit)
	if err != nil {
		h.logger.Error("Failed to list posts", "error", err)
		SendError(w, h.logger, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := make([]api.Post, 0, len(posts))
	for _, p := range posts {
		resp = append(resp, toAPIPost(p))
	}

	sendJSON(w, h.logger, resp, http.StatusOK)
}

// Get обрабатывает GET /posts/{id}
func (h *PostsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		SendError(w, h.logger, "invalid post id", http.StatusBadRequest)
		return
	}

	post, err := h.storage.GetPost(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrPostNotFound) {
			SendError(w, h.logger, "post not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to get post", "post_id", id, "error", err)
		SendError(w, h.logger, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(w, h.logger, toAPIPost(post), http.StatusOK)
}

// Create обрабатывает POST /posts
// Без userId в теле пост попадает в группу из токена
func (h *PostsHandler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxPostBodyBytes)

	var req api.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid create post request", "error", err)
		SendError(w, h.logger, "invalid request body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		SendError(w, h.logger, "title is required", http.StatusBadRequest)
		return
	}

	userID := req.UserID
	if tokenUser, ok := GetUserID(r.Context()); ok && userID == 0 {
		userID = tokenUser
	}

	post := &models.Post{
		UserID: userID,
		Title:  req.Title,
		Body:   req.Body,
	}

	if err := h.storage.CreatePost(r.Context(), post); err != nil {
		if errors.Is(err, storage.ErrInvalidPost) {
			SendError(w, h.logger, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error("Failed to create post", "error", err)
		SendError(w, h.logger, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("Post created", "post_id", post.ID, "user_id", post.UserID)

	sendJSON(w, h.logger, toAPIPost(post), http.StatusCreated)
}

func toAPIPost(p *models.Post) api.Post {
	return api.Post{
		ID:     p.ID,
		UserID: p.UserID,
		Title:  p.Title,
		Body:   p.Body,
	}
}
