// Package rest exposes the JSON API. Handlers translate wire requests
// into service calls and map service errors back to statuses; no business
// rules live here.
package rest

import (
	"context"
	"net/http"

	"miniblog/internal/model"
	"miniblog/internal/service"
)

type UserService interface {
	CreateUser(ctx context.Context, req service.CreateUserRequest) (model.User, error)
	GetUserByID(ctx context.Context, userID int64) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, userID int64, patch service.UserPatch) (model.User, error)
	DeleteUser(ctx context.Context, userID int64) error
	Count(ctx context.Context) (int, error)
}

type PostService interface {
	CreatePost(ctx context.Context, req service.CreatePostRequest) (model.Post, error)
	GetPostByID(ctx context.Context, postID int64) (model.Post, error)
	ListPosts(ctx context.Context) ([]model.Post, error)
	UpdatePost(ctx context.Context, postID int64, patch service.PostPatch) (model.Post, error)
	DeletePost(ctx context.Context, postID int64) error
	Count(ctx context.Context) (int, error)
}

type Handler struct {
	users UserService
	posts PostService
}

func NewHandler(users UserService, posts PostService) *Handler {
	return &Handler{
		users: users,
		posts: posts,
	}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/users", h.createUser)
	mux.HandleFunc("GET /api/users", h.listUsers)
	mux.HandleFunc("GET /api/users/{id}", h.getUser)
	mux.HandleFunc("PUT /api/users/{id}", h.updateUser)
	mux.HandleFunc("DELETE /api/users/{id}", h.deleteUser)

	mux.HandleFunc("POST /api/posts", h.createPost)
	mux.HandleFunc("GET /api/posts", h.listPosts)
	mux.HandleFunc("GET /api/posts/{id}", h.getPost)
	mux.HandleFunc("PUT /api/posts/{id}", h.updatePost)
	mux.HandleFunc("DELETE /api/posts/{id}", h.deletePost)

	mux.HandleFunc("GET /health", h.health)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	userCount, err := h.users.Count(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	postCount, err := h.posts.Count(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "healthy",
		"users":  userCount,
		"posts":  postCount,
	})
}
