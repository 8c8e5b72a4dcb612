package service

import (
	"context"
	"fmt"
	"sort"

	"miniblog/internal/model"

	"github.com/go-playground/validator/v10"
)

//go:generate mockgen -source=posts.go -destination=./post_storage_mock.go -package=service miniblog/internal/service PostStorage
type PostStorage interface {
	CreatePost(ctx context.Context, in CreatePostRequest) (model.Post, error)
	GetPostByID(ctx context.Context, postID int64) (model.Post, error)
	ListPosts(ctx context.Context) ([]model.Post, error)
	UpdatePost(ctx context.Context, postID int64, patch PostPatch) (model.Post, error)
	DeletePost(ctx context.Context, postID int64) error
	CountPosts(ctx context.Context) (int, error)
}

type PostService struct {
	postStorage PostStorage
	userStorage UserStorage
}

func NewPostService(postStorage PostStorage, userStorage UserStorage) *PostService {
	return &PostService{
		postStorage: postStorage,
		userStorage: userStorage,
	}
}

// CreatePost is the API path: the author must already exist, otherwise the
// storage reports ErrAuthorNotFound and nothing is written.
func (s *PostService) CreatePost(ctx context.Context, req CreatePostRequest) (model.Post, error) {
	return s.postStorage.CreatePost(ctx, req)
}

// SubmitPost is the page-form path: a missing author is synthesized as a
// placeholder user instead of failing.
func (s *PostService) SubmitPost(ctx context.Context, req SubmitPostRequest) (model.Post, error) {
	if err := validator.New().Struct(req); err != nil {
		return model.Post{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if _, err := s.userStorage.EnsureUser(ctx, req.AuthorID); err != nil {
		return model.Post{}, err
	}
	return s.postStorage.CreatePost(ctx, CreatePostRequest{
		AuthorID: req.AuthorID,
		Title:    &req.Title,
		Content:  &req.Content,
	})
}

func (s *PostService) GetPostByID(ctx context.Context, postID int64) (model.Post, error) {
	return s.postStorage.GetPostByID(ctx, postID)
}

func (s *PostService) ListPosts(ctx context.Context) ([]model.Post, error) {
	return s.postStorage.ListPosts(ctx)
}

// ListFeed returns posts newest first for page rendering. The sort is
// stable so posts created in the same instant keep insertion order.
func (s *PostService) ListFeed(ctx context.Context) ([]model.Post, error) {
	posts, err := s.postStorage.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

func (s *PostService) UpdatePost(ctx context.Context, postID int64, patch PostPatch) (model.Post, error) {
	return s.postStorage.UpdatePost(ctx, postID, patch)
}

func (s *PostService) DeletePost(ctx context.Context, postID int64) error {
	return s.postStorage.DeletePost(ctx, postID)
}

func (s *PostService) Count(ctx context.Context) (int, error) {
	return s.postStorage.CountPosts(ctx)
}
