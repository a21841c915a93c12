package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/minutesfolio/internal/dbx"
	"github.com/dmitrijs2005/minutesfolio/internal/server/config"
	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/repomanager"
)

type MeetingService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *config.Config
}

func NewMeetingService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *MeetingService {
	return &MeetingService{db: db, repomanager: m, config: cfg}
}

func (s *MeetingService) List(ctx context.Context) ([]models.Meeting, error) {
	return s.repomanager.Meetings(s.db).List(ctx)
}

func (s *MeetingService) Get(ctx context.Context, id int64) (*models.Meeting, error) {
	return s.repomanager.Meetings(s.db).GetByID(ctx, id)
}

// Minutes returns the meeting with its attendees, topics and signatures,
// read from one snapshot.
func (s *MeetingService) Minutes(ctx context.Context, id int64) (*models.MeetingMinutes, error) {
	var out models.MeetingMinutes
	err := dbx.WithTx(ctx, s.db, &sql.TxOptions{ReadOnly: true, Isolation: sql.LevelRepeatableRead}, func(ctx context.Context, tx dbx.DBTX) error {
		m, err := s.repomanager.Meetings(tx).GetByID(ctx, id)
		if err != nil {
			return err
		}
		out.Meeting = *m

		if out.Attendees, err = s.repomanager.Attendees(tx).List(ctx, &id); err != nil {
			return err
		}
		if out.Topics, err = s.repomanager.Topics(tx).List(ctx, &id); err != nil {
			return err
		}
		out.Signatures, err = s.repomanager.Signatures(tx).List(ctx, &id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Create stores a meeting. CreatedBy defaults to callerID.
func (s *MeetingService) Create(ctx context.Context, m models.Meeting, callerID int64) (*models.Meeting, error) {
	if err := requireFields(field{"title", m.Title}); err != nil {
		return nil, err
	}
	if m.Date.IsZero() {
		return nil, invalidf("missing required fields: date")
	}
	if m.CreatedBy == 0 {
		m.CreatedBy = callerID
	}
	return s.repomanager.Meetings(s.db).Create(ctx, &m)
}

func (s *MeetingService) Update(ctx context.Context, id int64, p models.MeetingPatch) (*models.Meeting, error) {
	if p.Title != nil && *p.Title == "" {
		return nil, invalidf("title cannot be empty")
	}
	if p.Date != nil && p.Date.IsZero() {
		return nil, invalidf("date cannot be empty")
	}

	var out *models.Meeting
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Meetings(tx)
		m, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		apply(&m.Title, p.Title)
		apply(&m.Date, p.Date)
		out, err = repo.Update(ctx, m)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes the meeting and, by cascade, everything recorded on it.
func (s *MeetingService) Delete(ctx context.Context, id int64) error {
	return s.repomanager.Meetings(s.db).Delete(ctx, id)
}
