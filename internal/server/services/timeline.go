package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/dmitrijs2005/minutesfolio/internal/dbx"
	"github.com/dmitrijs2005/minutesfolio/internal/server/config"
	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

var timelineNow = time.Now

type TimelineService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *config.Config
}

func NewTimelineService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *TimelineService {
	return &TimelineService{db: db, repomanager: m, config: cfg}
}

func (s *TimelineService) ListByProject(ctx context.Context, projectID string) ([]models.TimelineEntry, error) {
	return s.repomanager.Timeline(s.db).ListByProject(ctx, projectID)
}

// Create adds an entry. A zero date means now.
func (s *TimelineService) Create(ctx context.Context, e models.TimelineEntry) (*models.TimelineEntry, error) {
	if err := requireFields(field{"projectId", e.ProjectID}, field{"title", e.Title}); err != nil {
		return nil, err
	}
	if e.Date.IsZero() {
		e.Date = timelineNow().UTC()
	}
	e.ID = uuid.NewString()
	return s.repomanager.Timeline(s.db).Create(ctx, &e)
}

func (s *TimelineService) Update(ctx context.Context, id string, p models.TimelineEntryPatch) (*models.TimelineEntry, error) {
	if p.Title != nil && *p.Title == "" {
		return nil, invalidf("title cannot be empty")
	}

	var out *models.TimelineEntry
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Timeline(tx)
		e, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		apply(&e.Title, p.Title)
		apply(&e.Description, p.Description)
		apply(&e.Date, p.Date)
		out, err = repo.Update(ctx, e)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *TimelineService) Delete(ctx context.Context, id string) error {
	return s.repomanager.Timeline(s.db).Delete(ctx, id)
}
