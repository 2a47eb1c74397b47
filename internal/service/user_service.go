// Package service implements the domain rules: credential handling,
// ownership enforcement, budget uniqueness and dashboard aggregation.
// Services are stateless; persistence and hashing are injected capabilities.
package service

import (
	"fmt"
	"time"

	"github.com/8180e/personal-finance-dashboard/internal/apierr"
	"github.com/8180e/personal-finance-dashboard/internal/cqrs"
	"github.com/8180e/personal-finance-dashboard/internal/hashing"
	"github.com/8180e/personal-finance-dashboard/internal/models"
	"github.com/8180e/personal-finance-dashboard/internal/repository"
	"github.com/8180e/personal-finance-dashboard/internal/utils"
)

// UserService handles registration and authentication.
type UserService struct {
	repo   repository.UserRepository
	hasher hashing.Hasher
}

func NewUserService(repo repository.UserRepository, hasher hashing.Hasher) *UserService {
	return &UserService{repo: repo, hasher: hasher}
}

// Register hashes the password and persists the user. A duplicate email
// surfaces as Conflict from the repository boundary. The returned
// representation never includes the hash.
func (s *UserService) Register(cmd cqrs.RegisterUserCommand) (models.PublicUser, error) {
	hash, err := s.hasher.Hash(cmd.Password)
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("failed to hash password: %w", err)
	}
	user := &models.User{
		ID:           utils.GenerateID("usr"),
		Name:         cmd.Name,
		Email:        cmd.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(user); err != nil {
		return models.PublicUser{}, err
	}
	return user.Public(), nil
}

// Authenticate fails with NotFound for an unknown email and Unauthorized
// for a wrong password.
func (s *UserService) Authenticate(cmd cqrs.AuthenticateCommand) (models.PublicUser, error) {
	user, err := s.repo.FindByEmail(cmd.Email)
	if err != nil {
		return models.PublicUser{}, err
	}
	if !s.hasher.Compare(cmd.Password, user.PasswordHash) {
		return models.PublicUser{}, apierr.Unauthorizedf("Invalid password")
	}
	return user.Public(), nil
}
