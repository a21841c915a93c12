package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/minutesfolio/internal/dbx"
	"github.com/dmitrijs2005/minutesfolio/internal/server/config"
	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

type SectionService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *config.Config
}

func NewSectionService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *SectionService {
	return &SectionService{db: db, repomanager: m, config: cfg}
}

// ListByProject returns the sections in display order with their media.
func (s *SectionService) ListByProject(ctx context.Context, projectID string) ([]models.ProjectSection, error) {
	secs, err := s.repomanager.Sections(s.db).ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if err := attachSectionMedia(ctx, s.repomanager, s.db, secs); err != nil {
		return nil, err
	}
	return secs, nil
}

func (s *SectionService) Create(ctx context.Context, sec models.ProjectSection) (*models.ProjectSection, error) {
	if err := requireFields(field{"projectId", sec.ProjectID}, field{"title", sec.Title}); err != nil {
		return nil, err
	}
	sec.ID = uuid.NewString()
	return s.repomanager.Sections(s.db).Create(ctx, &sec)
}

func (s *SectionService) Update(ctx context.Context, id string, p models.ProjectSectionPatch) (*models.ProjectSection, error) {
	if p.Title != nil && *p.Title == "" {
		return nil, invalidf("title cannot be empty")
	}

	var out *models.ProjectSection
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Sections(tx)
		sec, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		apply(&sec.Title, p.Title)
		apply(&sec.Body, p.Body)
		if p.MediaID != nil {
			sec.MediaID = nilIfEmpty(*p.MediaID)
		}
		apply(&sec.Order, p.Order)
		out, err = repo.Update(ctx, sec)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Reorder applies every position in one transaction. An unknown section id
// aborts the whole reorder.
func (s *SectionService) Reorder(ctx context.Context, items []models.SectionOrder) error {
	for i, it := range items {
		if it.ID == "" {
			return invalidf("item %d: id is required", i)
		}
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Sections(tx)
		for _, it := range items {
			if err := repo.SetOrder(ctx, it.ID, it.Order); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SectionService) Delete(ctx context.Context, id string) error {
	return s.repomanager.Sections(s.db).Delete(ctx, id)
}
