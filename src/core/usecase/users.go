package usecase

import (
	"context"
	"log/slog"
	"strings"

	"economia/src/core/domain"
	"economia/src/core/ports"
)

// UserService handles user registration and listing.
type UserService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	log    *slog.Logger
}

func NewUserService(repo ports.UserRepository, hasher ports.PasswordHasher, log *slog.Logger) *UserService {
	return &UserService{repo: repo, hasher: hasher, log: log}
}

// CreateUserInput is the data needed to register a user.
type CreateUserInput struct {
	Nome     string
	Email    string
	Senha    string
	Telefone *string
}

// UserList is one page of active users.
type UserList struct {
	Usuarios []domain.User
	Total    int64
}

// List returns active users.
func (s *UserService) List(ctx context.Context, page domain.Page) (*UserList, error) {
	if err := validatePage(page.Limit, page.Offset); err != nil {
		return nil, err
	}
	rows, count, err := s.repo.List(ctx, page)
	if err != nil {
		s.log.Error("failed to list users", "error", err)
		return nil, err
	}
	return &UserList{Usuarios: rows, Total: count}, nil
}

// Create hashes the password and stores the user. The plaintext password is
// never persisted and the hash is never returned.
func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*domain.User, error) {
	if strings.TrimSpace(in.Nome) == "" || strings.TrimSpace(in.Email) == "" || in.Senha == "" {
		return nil, domain.NewValidationError("", "Nome, email e senha são obrigatórios")
	}

	hash, err := s.hasher.Hash(in.Senha)
	if err != nil {
		if !domain.IsValidationError(err) {
			s.log.Error("failed to hash password", "error", err)
		}
		return nil, err
	}

	telefone := in.Telefone
	if telefone != nil && *telefone == "" {
		telefone = nil
	}

	u, err := s.repo.Create(ctx, domain.NewUser{
		Nome:         in.Nome,
		Email:        in.Email,
		PasswordHash: hash,
		Telefone:     telefone,
	})
	if err != nil {
		if !domain.IsConflict(err) {
			s.log.Error("failed to create user", "error", err)
		}
		return nil, err
	}
	u.PasswordHash = ""

	s.log.Info("user created", "id", u.ID)
	return u, nil
}

// Deactivate marks the user inactive. Users are never deleted.
func (s *UserService) Deactivate(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.NewValidationError("id", "id inválido")
	}
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return err
	}
	s.log.Info("user deactivated", "id", id)
	return nil
}
