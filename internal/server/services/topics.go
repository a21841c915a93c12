package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/minutesfolio/internal/dbx"
	"github.com/dmitrijs2005/minutesfolio/internal/server/config"
	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/repomanager"
)

type TopicService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *config.Config
}

func NewTopicService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *TopicService {
	return &TopicService{db: db, repomanager: m, config: cfg}
}

func (s *TopicService) List(ctx context.Context, meetingID *int64) ([]models.Topic, error) {
	return s.repomanager.Topics(s.db).List(ctx, meetingID)
}

func (s *TopicService) Get(ctx context.Context, id int64) (*models.Topic, error) {
	return s.repomanager.Topics(s.db).GetByID(ctx, id)
}

func (s *TopicService) Create(ctx context.Context, t models.Topic) (*models.Topic, error) {
	if t.MeetingID <= 0 {
		return nil, invalidf("missing required fields: meetingId")
	}
	if err := requireFields(field{"subject", t.Subject}); err != nil {
		return nil, err
	}
	return s.repomanager.Topics(s.db).Create(ctx, &t)
}

func (s *TopicService) Update(ctx context.Context, id int64, p models.TopicPatch) (*models.Topic, error) {
	if p.Subject != nil && *p.Subject == "" {
		return nil, invalidf("subject cannot be empty")
	}

	var out *models.Topic
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Topics(tx)
		t, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		apply(&t.Subject, p.Subject)
		apply(&t.Notes, p.Notes)
		apply(&t.Decisions, p.Decisions)
		apply(&t.Actions, p.Actions)
		out, err = repo.Update(ctx, t)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *TopicService) Delete(ctx context.Context, id int64) error {
	return s.repomanager.Topics(s.db).Delete(ctx, id)
}
