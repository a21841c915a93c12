package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/dmitrijs2005/minutesfolio/internal/common"
	"github.com/dmitrijs2005/minutesfolio/internal/dbx"
	"github.com/dmitrijs2005/minutesfolio/internal/server/config"
	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

type LinkService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *config.Config
}

func NewLinkService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *LinkService {
	return &LinkService{db: db, repomanager: m, config: cfg}
}

func (s *LinkService) ListByProject(ctx context.Context, projectID string) ([]models.ProjectLink, error) {
	return s.repomanager.Links(s.db).ListByProject(ctx, projectID)
}

// Sync replaces every link of the project with links, in order, as one
// atomic operation. An empty list removes all links.
func (s *LinkService) Sync(ctx context.Context, projectID string, links []models.ProjectLink) ([]models.ProjectLink, error) {
	for i, l := range links {
		if strings.TrimSpace(l.Label) == "" || strings.TrimSpace(l.URL) == "" {
			return nil, invalidf("link %d: label and url are required", i)
		}
	}

	var out []models.ProjectLink
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Projects(tx).GetByID(ctx, projectID); err != nil {
			return err
		}
		repo := s.repomanager.Links(tx)
		if _, err := repo.Replace(ctx, projectID, links); err != nil {
			return err
		}
		var err error
		out, err = repo.ListByProject(ctx, projectID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *LinkService) Create(ctx context.Context, l models.ProjectLink) (*models.ProjectLink, error) {
	if err := requireFields(field{"projectId", l.ProjectID}, field{"label", l.Label}, field{"url", l.URL}); err != nil {
		return nil, err
	}
	l.ID = uuid.NewString()
	out, err := s.repomanager.Links(s.db).Create(ctx, &l)
	if errors.Is(err, common.ErrorInvalidReference) {
		return nil, invalidf("project %s does not exist", l.ProjectID)
	}
	return out, err
}

func (s *LinkService) Update(ctx context.Context, id string, p models.ProjectLinkPatch) (*models.ProjectLink, error) {
	if (p.Label != nil && *p.Label == "") || (p.URL != nil && *p.URL == "") {
		return nil, invalidf("label and url cannot be empty")
	}

	var out *models.ProjectLink
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Links(tx)
		l, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		apply(&l.Label, p.Label)
		apply(&l.URL, p.URL)
		apply(&l.Position, p.Position)
		out, err = repo.Update(ctx, l)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *LinkService) Delete(ctx context.Context, id string) error {
	return s.repomanager.Links(s.db).Delete(ctx, id)
}
