package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/coderpratik11/gamified-tracker/internal/models"
	"github.com/coderpratik11/gamified-tracker/internal/repository"
)

type UserService struct {
	repo       *repository.UserRepository
	bcryptCost int
	logger     *zap.Logger
}

func NewUserService(repo *repository.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{repo: repo, bcryptCost: bcrypt.DefaultCost, logger: logger}
}

// List returns all users without credential material.
func (s *UserService) List(ctx context.Context) ([]models.UserView, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]models.UserView, len(users))
	for i, user := range users {
		views[i] = user.View()
	}
	return views, nil
}

// Login verifies a username/password pair and returns the matching user.
// Unknown users and wrong passwords are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, req models.LoginRequest) (*models.UserView, error) {
	if req.Username == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrMissingField)
	}

	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, user := range users {
		if user.UserName != req.Username {
			continue
		}
		if user.PasswordHash == "" {
			break
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			break
		}
		view := user.View()
		s.logger.Info("User logged in", zap.String("user_id", user.UserID))
		return &view, nil
	}
	return nil, ErrInvalidCredential
}

// ChangePassword replaces a user's credential after verifying the old one.
func (s *UserService) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error {
	if req.UserID == "" || req.OldPassword == "" || req.NewPassword == "" {
		return fmt.Errorf("%w: userId, oldPassword and newPassword are required", ErrMissingField)
	}

	err := s.repo.Mutate(ctx, func(users []models.User) ([]models.User, error) {
		i := findUser(users, req.UserID)
		if i == -1 {
			return nil, ErrUserNotFound
		}
		user := users[i]

		if user.PasswordHash == "" {
			return nil, ErrInvalidCredential
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
			return nil, ErrInvalidCredential
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), s.bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = string(hash)
		users[i] = user
		return users, nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Password changed", zap.String("user_id", req.UserID))
	return nil
}

// UpdateGiphyLink sets or clears a user's profile gif.
func (s *UserService) UpdateGiphyLink(ctx context.Context, req models.UpdateGiphyRequest) (*models.UserView, error) {
	if req.UserID == "" || req.GiphyLink == nil {
		return nil, fmt.Errorf("%w: userId and giphyLink are required", ErrMissingField)
	}

	var view models.UserView
	err := s.repo.Mutate(ctx, func(users []models.User) ([]models.User, error) {
		i := findUser(users, req.UserID)
		if i == -1 {
			return nil, ErrUserNotFound
		}
		users[i].GiphyLink = *req.GiphyLink
		view = users[i].View()
		return users, nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func findUser(users []models.User, userID string) int {
	for i := range users {
		if users[i].UserID == userID {
			return i
		}
	}
	return -1
}
