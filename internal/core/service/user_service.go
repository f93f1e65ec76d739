package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/beyond-platform/content-api/internal/core/domain"
	"github.com/beyond-platform/content-api/internal/core/ports"
)

// UserService implements account and role-catalog administration.
type UserService struct {
	users  ports.UserRepository
	roles  ports.RoleRepository
	hasher *PasswordHasher
	log    zerolog.Logger
}

func NewUserService(users ports.UserRepository, roles ports.RoleRepository, hasher *PasswordHasher, log zerolog.Logger) *UserService {
	return &UserService{users: users, roles: roles, hasher: hasher, log: log}
}

func (s *UserService) CreateUser(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	if in.Username == "" || in.Password == "" || in.Role == "" {
		return nil, fmt.Errorf("%w: username, password and role are required", domain.ErrValidation)
	}
	if _, err := s.roles.FindByName(ctx, in.Role); err != nil {
		return nil, err
	}

	salt, digest, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     in.Username,
		Salt:         salt,
		PasswordHash: digest,
		Role:         in.Role,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", created.Username).Str("role", created.Role).Msg("user created")
	return created, nil
}

func (s *UserService) UpdateUser(ctx context.Context, in ports.UpdateUserInput) (*domain.User, error) {
	if in.Username == "" || in.Role == "" {
		return nil, fmt.Errorf("%w: username and role are required", domain.ErrValidation)
	}

	user, err := s.users.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if _, err := s.roles.FindByName(ctx, in.Role); err != nil {
		return nil, err
	}

	user.Username = in.Username
	user.Role = in.Role
	if in.Password != "" {
		salt, digest, err := s.hasher.Hash(in.Password)
		if err != nil {
			return nil, err
		}
		user.Salt = salt
		user.PasswordHash = digest
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Uint("user_id", user.ID).Str("username", user.Username).Msg("user updated")
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, actorID, id uint) error {
	if id == actorID {
		return domain.ErrSelfDeletion
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Uint("user_id", id).Uint("actor_id", actorID).Msg("user deleted")
	return nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) ListRoles(ctx context.Context) ([]domain.Role, error) {
	return s.roles.List(ctx)
}

func (s *UserService) CreateRole(ctx context.Context, name string) (*domain.Role, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: role name is required", domain.ErrValidation)
	}
	role, err := s.roles.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("role", role.Name).Msg("role created")
	return role, nil
}

func (s *UserService) RenameRole(ctx context.Context, id uint, name string) error {
	if name == "" {
		return fmt.Errorf("%w: role name is required", domain.ErrValidation)
	}
	return s.roles.Rename(ctx, id, name)
}

func (s *UserService) DeleteRole(ctx context.Context, id uint) error {
	if err := s.roles.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Uint("role_id", id).Msg("role deleted")
	return nil
}
