package snapshot

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"miniblog/internal/model"
	"miniblog/internal/service"
	"miniblog/pkg/logger"
)

// Store owns both collections, their id counters and the snapshot file.
// A single lock guards all of it: mutators hold the write lock across the
// mutation and the persist, so a snapshot never captures a half-applied
// change and ids cannot race.
type Store struct {
	mu   sync.RWMutex
	path string

	users map[int64]model.User
	posts map[int64]model.Post

	nextUserID int64
	nextPostID int64
}

func New(path string) *Store {
	return &Store{
		path:       path,
		users:      make(map[int64]model.User),
		posts:      make(map[int64]model.Post),
		nextUserID: 1,
		nextPostID: 1,
	}
}

// Load hydrates the collections from the snapshot file. A missing file is
// a fresh start. Any read or decode failure resets the store to empty and
// reports the error; the caller is expected to log it and keep going.
// Counters are recomputed as max(id)+1, so id holes from deletions are
// never reclaimed within a process lifetime.
func (s *Store) Load(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		s.resetLocked()
		return fmt.Errorf("reading snapshot %s: %w", s.path, err)
	}

	users, posts, err := decode(data)
	if err != nil {
		s.resetLocked()
		return fmt.Errorf("decoding snapshot %s: %w", s.path, err)
	}

	s.users = users
	s.posts = posts
	s.nextUserID = maxKey(users) + 1
	s.nextPostID = maxKey(posts) + 1
	return nil
}

func (s *Store) resetLocked() {
	s.users = make(map[int64]model.User)
	s.posts = make(map[int64]model.Post)
	s.nextUserID = 1
	s.nextPostID = 1
}

// persistLocked rewrites the whole snapshot. Failures are logged and
// swallowed: the in-memory state stands and the caller's mutation still
// succeeds, at the cost of a stale file.
func (s *Store) persistLocked(ctx context.Context) {
	log := logger.FromContext(ctx)

	data, err := encode(s.users, s.posts)
	if err != nil {
		log.Error("encoding snapshot failed", "error", err)
		return
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		log.Error("saving snapshot failed", "error", err)
		return
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		log.Error("saving snapshot failed", "error", err)
		return
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		log.Error("saving snapshot failed", "error", err)
		return
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		log.Error("saving snapshot failed", "error", err)
	}
}

func (s *Store) CreateUser(ctx context.Context, in service.CreateUserRequest) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	u := model.User{
		ID:        s.nextUserID,
		Email:     in.Email,
		Login:     in.Login,
		Password:  in.Password,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.users[u.ID] = u
	s.nextUserID++
	s.persistLocked(ctx)
	return u, nil
}

func (s *Store) GetUserByID(_ context.Context, userID int64) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if u, ok := s.users[userID]; ok {
		return u, nil
	}
	return model.User{}, service.ErrNotFound
}

func (s *Store) ListUsers(_ context.Context) ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) UpdateUser(ctx context.Context, userID int64, patch service.UserPatch) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return model.User{}, service.ErrNotFound
	}
	if patch.Email != nil {
		u.Email = patch.Email
	}
	if patch.Login != nil {
		u.Login = patch.Login
	}
	if patch.Password != nil {
		u.Password = patch.Password
	}
	u.UpdatedAt = time.Now().UTC()
	s.users[userID] = u
	s.persistLocked(ctx)
	return u, nil
}

// DeleteUser removes the user and, in the same critical section, every
// post whose authorId matches.
func (s *Store) DeleteUser(ctx context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		return service.ErrNotFound
	}
	delete(s.users, userID)
	for id, p := range s.posts {
		if p.AuthorID == userID {
			delete(s.posts, id)
		}
	}
	s.persistLocked(ctx)
	return nil
}

// EnsureUser returns the user if present, otherwise creates a placeholder
// record under the requested id. The counter is bumped past the id so a
// later CreateUser cannot collide with the placeholder.
func (s *Store) EnsureUser(ctx context.Context, userID int64) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u, ok := s.users[userID]; ok {
		return u, nil
	}

	email := fmt.Sprintf("user%d@example.com", userID)
	login := fmt.Sprintf("user%d", userID)
	password := "password"
	now := time.Now().UTC()
	u := model.User{
		ID:        userID,
		Email:     &email,
		Login:     &login,
		Password:  &password,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.users[userID] = u
	if userID >= s.nextUserID {
		s.nextUserID = userID + 1
	}
	s.persistLocked(ctx)
	return u, nil
}

func (s *Store) CountUsers(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users), nil
}

// CreatePost requires the author to exist already. On a missing author
// nothing is written and the post counter does not advance.
func (s *Store) CreatePost(ctx context.Context, in service.CreatePostRequest) (model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[in.AuthorID]; !ok {
		return model.Post{}, service.ErrAuthorNotFound
	}

	now := time.Now().UTC()
	p := model.Post{
		ID:        s.nextPostID,
		AuthorID:  in.AuthorID,
		Title:     in.Title,
		Content:   in.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.posts[p.ID] = p
	s.nextPostID++
	s.persistLocked(ctx)
	return p, nil
}

func (s *Store) GetPostByID(_ context.Context, postID int64) (model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if p, ok := s.posts[postID]; ok {
		return p, nil
	}
	return model.Post{}, service.ErrNotFound
}

func (s *Store) ListPosts(_ context.Context) ([]model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Post, 0, len(s.posts))
	for _, p := range s.posts {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// UpdatePost merges the patch. A changed authorId is accepted without
// checking that the user exists.
func (s *Store) UpdatePost(ctx context.Context, postID int64, patch service.PostPatch) (model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[postID]
	if !ok {
		return model.Post{}, service.ErrNotFound
	}
	if patch.AuthorID != nil {
		p.AuthorID = *patch.AuthorID
	}
	if patch.Title != nil {
		p.Title = patch.Title
	}
	if patch.Content != nil {
		p.Content = patch.Content
	}
	p.UpdatedAt = time.Now().UTC()
	s.posts[postID] = p
	s.persistLocked(ctx)
	return p, nil
}

func (s *Store) DeletePost(ctx context.Context, postID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[postID]; !ok {
		return service.ErrNotFound
	}
	delete(s.posts, postID)
	s.persistLocked(ctx)
	return nil
}

func (s *Store) CountPosts(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.posts), nil
}

func maxKey[V any](m map[int64]V) int64 {
	var max int64
	for id := range m {
		if id > max {
			max = id
		}
	}
	return max
}
