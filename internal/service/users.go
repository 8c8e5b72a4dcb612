package service

import (
	"context"

	"miniblog/internal/model"
)

//go:generate mockgen -source=users.go -destination=./user_storage_mock.go -package=service miniblog/internal/service UserStorage
type UserStorage interface {
	CreateUser(ctx context.Context, in CreateUserRequest) (model.User, error)
	GetUserByID(ctx context.Context, userID int64) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, userID int64, patch UserPatch) (model.User, error)
	DeleteUser(ctx context.Context, userID int64) error
	EnsureUser(ctx context.Context, userID int64) (model.User, error)
	CountUsers(ctx context.Context) (int, error)
}

type UserService struct {
	userStorage UserStorage
}

func NewUserService(userStorage UserStorage) *UserService {
	return &UserService{
		userStorage: userStorage,
	}
}

func (s *UserService) CreateUser(ctx context.Context, req CreateUserRequest) (model.User, error) {
	return s.userStorage.CreateUser(ctx, req)
}

func (s *UserService) GetUserByID(ctx context.Context, userID int64) (model.User, error) {
	return s.userStorage.GetUserByID(ctx, userID)
}

func (s *UserService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.userStorage.ListUsers(ctx)
}

func (s *UserService) UpdateUser(ctx context.Context, userID int64, patch UserPatch) (model.User, error) {
	return s.userStorage.UpdateUser(ctx, userID, patch)
}

// DeleteUser removes the user and every post they authored.
func (s *UserService) DeleteUser(ctx context.Context, userID int64) error {
	return s.userStorage.DeleteUser(ctx, userID)
}

func (s *UserService) Count(ctx context.Context) (int, error) {
	return s.userStorage.CountUsers(ctx)
}
