package web

import (
	"time"

	"miniblog/internal/model"
)

// postView flattens the nullable post fields for templating.
type postView struct {
	ID        int64
	AuthorID  int64
	Title     string
	Content   string
	CreatedAt time.Time
}

func toPostView(p model.Post) postView {
	v := postView{
		ID:        p.ID,
		AuthorID:  p.AuthorID,
		Title:     "(untitled)",
		CreatedAt: p.CreatedAt,
	}
	if p.Title != nil {
		v.Title = *p.Title
	}
	if p.Content != nil {
		v.Content = *p.Content
	}
	return v
}

func toPostViews(posts []model.Post) []postView {
	out := make([]postView, 0, len(posts))
	for _, p := range posts {
		out = append(out, toPostView(p))
	}
	return out
}
