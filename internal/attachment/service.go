package attachment

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/grantify/grant-management/internal/grant"
)

// Repository defines the data access methods for attachments.
type Repository interface {
	GetByGrant(grantID string) ([]Attachment, error)
	Create(a *Attachment) error
}

// GrantGetter verifies the owning grant exists before anything is stored.
type GrantGetter interface {
	GetByID(id string) (*grant.Grant, error)
}

type Service struct {
	repo   Repository
	grants GrantGetter
	logger *slog.Logger
}

func NewService(repo Repository, grants GrantGetter, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		grants: grants,
		logger: logger,
	}
}

// ListByGrant returns a grant's attachments, oldest first.
func (s *Service) ListByGrant(grantID string) ([]Attachment, error) {
	if _, err := s.grants.GetByID(grantID); err != nil {
		return nil, grant.ErrGrantNotFound
	}

	attachments, err := s.repo.GetByGrant(grantID)
	if err != nil {
		s.logger.Error("failed to load attachments", "error", err, "grant_id", grantID)
		return nil, err
	}

	if attachments == nil {
		attachments = []Attachment{}
	}
	return attachments, nil
}

// Create stores a new attachment link for an existing grant.
func (s *Service) Create(grantID string, dto CreateAttachmentDTO) (*Attachment, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.grants.GetByID(grantID); err != nil {
		return nil, grant.ErrGrantNotFound
	}

	a := &Attachment{
		ID:      uuid.NewString(),
		GrantID: grantID,
		Name:    strings.TrimSpace(dto.Name),
		Link:    strings.TrimSpace(dto.Link),
	}

	if err := s.repo.Create(a); err != nil {
		s.logger.Error("failed to create attachment", "error", err, "grant_id", grantID)
		return nil, err
	}

	s.logger.Info("attachment created", "attachment_id", a.ID, "grant_id", grantID, "name", a.Name)
	return a, nil
}
