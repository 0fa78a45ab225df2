package user

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

type Repository interface {
	GetAll() ([]User, error)
	GetByID(id string) (*User, error)
	GetByEmail(email string) (*User, error)
	Create(u *User) error
	Update(u *User) error
	Delete(id string) error
}

// PasswordHasher abstracts the hash and verify steps so the auth service
// owns the bcrypt parameters.
type PasswordHasher interface {
	HashPassword(password string) (string, error)
	VerifyPassword(hash, password string) error
}

// PermissionRevoker removes a user's permission associations when the
// account is deleted.
type PermissionRevoker interface {
	RevokeAllForUser(userID string) error
}

type Service struct {
	repo    Repository
	hasher  PasswordHasher
	revoker PermissionRevoker
	logger  *slog.Logger
}

func NewService(repo Repository, hasher PasswordHasher, revoker PermissionRevoker, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		hasher:  hasher,
		revoker: revoker,
		logger:  logger,
	}
}

// List returns every account except the seed bootstrap user.
func (s *Service) List() ([]User, error) {
	users, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, err
	}

	visible := make([]User, 0, len(users))
	for _, u := range users {
		if u.Email == SeedAccountEmail {
			continue
		}
		visible = append(visible, u)
	}
	return visible, nil
}

func (s *Service) GetByID(id string) (*User, error) {
	return s.repo.GetByID(id)
}

// Create registers a new account. Email uniqueness is checked up front so
// the caller gets a domain error rather than a driver constraint failure.
func (s *Service) Create(dto CreateUserDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(dto.Email))
	if existing, err := s.repo.GetByEmail(email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := s.hasher.HashPassword(dto.Password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, err
	}

	u := &User{
		ID:           uuid.NewString(),
		Email:        email,
		FirstName:    strings.TrimSpace(dto.FirstName),
		LastName:     strings.TrimSpace(dto.LastName),
		PasswordHash: hash,
	}

	if err := s.repo.Create(u); err != nil {
		s.logger.Error("failed to create user", "error", err, "email", email)
		return nil, err
	}

	s.logger.Info("user created", "user_id", u.ID, "email", u.Email)
	return u, nil
}

// UpdateProfile changes the name fields on an existing account, and the
// password when the current one verifies.
func (s *Service) UpdateProfile(id string, dto UpdateProfileDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if firstName := strings.TrimSpace(dto.FirstName); firstName != "" {
		u.FirstName = firstName
	}
	if lastName := strings.TrimSpace(dto.LastName); lastName != "" {
		u.LastName = lastName
	}

	if dto.NewPassword != "" {
		if err := s.hasher.VerifyPassword(u.PasswordHash, dto.CurrentPassword); err != nil {
			return nil, ErrWrongPassword
		}
		hash, err := s.hasher.HashPassword(dto.NewPassword)
		if err != nil {
			s.logger.Error("failed to hash password", "error", err, "user_id", id)
			return nil, err
		}
		u.PasswordHash = hash
	}

	if err := s.repo.Update(u); err != nil {
		s.logger.Error("failed to update user", "error", err, "user_id", id)
		return nil, err
	}

	return u, nil
}

// Delete removes an account and its permission associations. The user row
// is loaded first; only a confirmed existing account is deleted, and its
// associations go before the row itself so a failure never leaves grants
// pointing at a missing user.
func (s *Service) Delete(id string) (*User, error) {
	u, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrNotFound
	}

	if err := s.revoker.RevokeAllForUser(u.ID); err != nil {
		s.logger.Error("failed to revoke permissions for user", "error", err, "user_id", id)
		return nil, err
	}

	if err := s.repo.Delete(u.ID); err != nil {
		s.logger.Error("failed to delete user", "error", err, "user_id", id)
		return nil, err
	}

	s.logger.Info("user deleted", "user_id", u.ID, "email", u.Email)
	return u, nil
}
