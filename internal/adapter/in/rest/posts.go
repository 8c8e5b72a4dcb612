package rest

import (
	"errors"
	"net/http"

	"miniblog/internal/service"
)

const (
	msgPostNotFound   = "Post not found"
	msgAuthorNotFound = "Author not found"
)

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	var req service.CreatePostRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgNoBody)
		return
	}

	p, err := h.posts.CreatePost(r.Context(), req)
	if errors.Is(err, service.ErrAuthorNotFound) {
		writeError(w, http.StatusNotFound, msgAuthorNotFound)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.ListPosts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, msgPostNotFound)
		return
	}

	p, err := h.posts.GetPostByID(r.Context(), id)
	if errors.Is(err, service.ErrNotFound) {
		writeError(w, http.StatusNotFound, msgPostNotFound)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, msgPostNotFound)
		return
	}

	if _, err := h.posts.GetPostByID(r.Context(), id); errors.Is(err, service.ErrNotFound) {
		writeError(w, http.StatusNotFound, msgPostNotFound)
		return
	}

	var patch service.PostPatch
	if err := decodeBody(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, msgNoBody)
		return
	}

	p, err := h.posts.UpdatePost(r.Context(), id, patch)
	if errors.Is(err, service.ErrNotFound) {
		writeError(w, http.StatusNotFound, msgPostNotFound)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, msgPostNotFound)
		return
	}

	err := h.posts.DeletePost(r.Context(), id)
	if errors.Is(err, service.ErrNotFound) {
		writeError(w, http.StatusNotFound, msgPostNotFound)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Post deleted"})
}
