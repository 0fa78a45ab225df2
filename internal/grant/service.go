package grant

import (
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/grantify/grant-management/internal/view"
)

const DefaultPageSize = 5

// Repository defines the data access methods for grants. GetAll and Search
// return rows ordered by close date ascending.
type Repository interface {
	GetAll() ([]Grant, error)
	Search(name string) ([]Grant, error)
	GetByID(id string) (*Grant, error)
	Create(g *Grant) error
	Update(g *Grant) error
	Delete(id string) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// GrantPage is the paginated index envelope.
type GrantPage struct {
	Grants []GrantV1 `json:"grants"`
	Page   int       `json:"page"`
	Range  []int     `json:"range"`
}

// List returns one page of the grant index, optionally narrowed by a
// case-insensitive name search. Rows arrive sorted by close date; the page
// number self-corrects when a delete empties the requested page.
func (s *Service) List(params ListParams) (*GrantPage, error) {
	var (
		grants []Grant
		err    error
	)

	if name := strings.TrimSpace(params.Name); name != "" {
		grants, err = s.repo.Search(name)
	} else {
		grants, err = s.repo.GetAll()
	}
	if err != nil {
		s.logger.Error("failed to list grants", "error", err)
		return nil, err
	}

	pageSize := params.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	page := view.Paginate(grants, params.Page, pageSize)
	return &GrantPage{
		Grants: ToV1Slice(page.Slice),
		Page:   page.Number,
		Range:  page.Range,
	}, nil
}

// UpcomingDeadlines returns grants whose close date falls within dayRange
// days of now, evaluated against the wall clock at call time.
func (s *Service) UpcomingDeadlines(dayRange int) ([]GrantV1, error) {
	grants, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to load grants for deadline view", "error", err)
		return nil, err
	}

	now := s.now()
	upcoming := make([]Grant, 0)
	for _, g := range grants {
		if view.WithinDeadlineWindow(g.CloseDate, dayRange, now) {
			upcoming = append(upcoming, g)
		}
	}
	return ToV1Slice(upcoming), nil
}

func (s *Service) GetByID(id string) (*Grant, error) {
	g, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrGrantNotFound
	}
	return g, nil
}

func (s *Service) Create(dto CreateGrantDTO) (*Grant, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	g := &Grant{ID: uuid.NewString()}
	dto.apply(g)

	if err := s.repo.Create(g); err != nil {
		s.logger.Error("failed to create grant", "error", err, "grant_name", g.GrantName)
		return nil, err
	}

	s.logger.Info("grant created", "grant_id", g.ID, "grant_name", g.GrantName, "status", g.Status)
	return g, nil
}

func (s *Service) Update(id string, dto UpdateGrantDTO) (*Grant, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	g, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrGrantNotFound
	}

	dto.apply(g)

	if err := s.repo.Update(g); err != nil {
		s.logger.Error("failed to update grant", "error", err, "grant_id", id)
		return nil, err
	}

	s.logger.Info("grant updated", "grant_id", g.ID, "status", g.Status)
	return g, nil
}

// Delete removes a grant after confirming it exists. The response only
// reports success once storage has committed; expenses and attachments go
// with the grant via the schema's cascade.
func (s *Service) Delete(id string) (*Grant, error) {
	g, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrGrantNotFound
	}

	if err := s.repo.Delete(g.ID); err != nil {
		s.logger.Error("failed to delete grant", "error", err, "grant_id", id)
		return nil, err
	}

	s.logger.Info("grant deleted", "grant_id", g.ID, "grant_name", g.GrantName)
	return g, nil
}
