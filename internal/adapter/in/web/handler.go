// Package web serves the rendered pages: the post feed, single posts and
// the creation form.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"miniblog/internal/model"
	"miniblog/internal/service"
	"miniblog/pkg/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

type PostService interface {
	ListFeed(ctx context.Context) ([]model.Post, error)
	GetPostByID(ctx context.Context, postID int64) (model.Post, error)
	SubmitPost(ctx context.Context, req service.SubmitPostRequest) (model.Post, error)
}

type Handler struct {
	posts PostService
	tmpl  *template.Template
}

func NewHandler(posts PostService) (*Handler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Handler{posts: posts, tmpl: tmpl}, nil
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.index)
	mux.HandleFunc("GET /posts/{id}", h.postDetail)
	mux.HandleFunc("GET /create", h.createForm)
	mux.HandleFunc("POST /create", h.submitPost)
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.ListFeed(r.Context())
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	h.render(w, r, "index.html", toPostViews(posts))
}

func (h *Handler) postDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Post not found", http.StatusNotFound)
		return
	}

	p, err := h.posts.GetPostByID(r.Context(), id)
	if errors.Is(err, service.ErrNotFound) {
		http.Error(w, "Post not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	h.render(w, r, "post.html", toPostView(p))
}

func (h *Handler) createForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "create_post.html", nil)
}

func (h *Handler) submitPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	// An omitted author defaults to user 1; an unknown author becomes a
	// placeholder user rather than an error on this path.
	authorID := int64(1)
	if raw := r.PostFormValue("authorId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}
		authorID = id
	}

	req := service.SubmitPostRequest{
		AuthorID: authorID,
		Title:    r.PostFormValue("title"),
		Content:  r.PostFormValue("content"),
	}
	if _, err := h.posts.SubmitPost(r.Context(), req); err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		logger.FromContext(r.Context()).Error("rendering page failed", "template", name, "error", err)
	}
}
