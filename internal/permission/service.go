package permission

import (
	"log/slog"

	"github.com/google/uuid"
)

// Repository defines the data access methods for the permission catalog and
// the user association table.
type Repository interface {
	GetAll() ([]Permission, error)
	GetByID(id int64) (*Permission, error)
	GetAssociationsForUser(userID string) ([]UserPermissionAssociation, error)
	GetAssociation(id string) (*UserPermissionAssociation, error)
	HasAssociation(userID string, permissionTypeID int64) (bool, error)
	CreateAssociation(assn *UserPermissionAssociation) error
	DeleteAssociation(id string) error
	DeleteAssociationsForUser(userID string) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Catalog returns every permission type. The list is small and stable; no
// pagination is applied.
func (s *Service) Catalog() ([]Permission, error) {
	permissions, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to load permission catalog", "error", err)
		return nil, err
	}
	return permissions, nil
}

// AssociationsForUser returns the raw join rows for one user. An unknown
// user yields an empty list, not an error: the evaluator treats both the
// same way.
func (s *Service) AssociationsForUser(userID string) ([]UserPermissionAssociation, error) {
	associations, err := s.repo.GetAssociationsForUser(userID)
	if err != nil {
		s.logger.Error("failed to load user permission associations", "error", err, "user_id", userID)
		return nil, err
	}
	return associations, nil
}

// Grant associates a catalog permission with a user. Granting the same
// permission twice is rejected.
func (s *Service) Grant(userID string, permissionTypeID int64) (*UserPermissionAssociation, error) {
	if _, err := s.repo.GetByID(permissionTypeID); err != nil {
		s.logger.Warn("grant refused: permission type does not exist",
			"permission_type_id", permissionTypeID, "user_id", userID)
		return nil, ErrPermissionNotFound
	}

	exists, err := s.repo.HasAssociation(userID, permissionTypeID)
	if err != nil {
		s.logger.Error("failed to check existing association", "error", err, "user_id", userID)
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyGranted
	}

	assn := &UserPermissionAssociation{
		ID:               uuid.NewString(),
		UserID:           userID,
		PermissionTypeID: permissionTypeID,
	}

	if err := s.repo.CreateAssociation(assn); err != nil {
		s.logger.Error("failed to create association", "error", err, "user_id", userID)
		return nil, err
	}

	s.logger.Info("permission granted",
		"user_id", userID,
		"permission_type_id", permissionTypeID,
		"association_id", assn.ID)

	return assn, nil
}

// Revoke removes one association by its id. The association is loaded first
// so a missing row surfaces as a domain not-found rather than a silent no-op.
func (s *Service) Revoke(id string) (*UserPermissionAssociation, error) {
	assn, err := s.repo.GetAssociation(id)
	if err != nil {
		return nil, ErrAssociationNotFound
	}

	if err := s.repo.DeleteAssociation(assn.ID); err != nil {
		s.logger.Error("failed to delete association", "error", err, "association_id", id)
		return nil, err
	}

	s.logger.Info("permission revoked",
		"user_id", assn.UserID,
		"permission_type_id", assn.PermissionTypeID,
		"association_id", assn.ID)

	return assn, nil
}

// RevokeAllForUser removes every association a user holds. Called when the
// user account itself is deleted.
func (s *Service) RevokeAllForUser(userID string) error {
	if err := s.repo.DeleteAssociationsForUser(userID); err != nil {
		s.logger.Error("failed to delete associations for user", "error", err, "user_id", userID)
		return err
	}
	return nil
}
