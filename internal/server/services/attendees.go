package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/minutesfolio/internal/dbx"
	"github.com/dmitrijs2005/minutesfolio/internal/server/config"
	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/repomanager"
)

type AttendeeService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *config.Config
}

func NewAttendeeService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AttendeeService {
	return &AttendeeService{db: db, repomanager: m, config: cfg}
}

func (s *AttendeeService) List(ctx context.Context, meetingID *int64) ([]models.Attendee, error) {
	return s.repomanager.Attendees(s.db).List(ctx, meetingID)
}

func (s *AttendeeService) Get(ctx context.Context, id int64) (*models.Attendee, error) {
	return s.repomanager.Attendees(s.db).GetByID(ctx, id)
}

// Create adds an attendee. An empty status means present.
func (s *AttendeeService) Create(ctx context.Context, a models.Attendee) (*models.Attendee, error) {
	if a.MeetingID <= 0 {
		return nil, invalidf("missing required fields: meetingId")
	}
	if err := requireFields(field{"name", a.Name}); err != nil {
		return nil, err
	}
	if a.Status == "" {
		a.Status = models.AttendancePresent
	}
	if err := checkStatus(a.Status); err != nil {
		return nil, err
	}
	return s.repomanager.Attendees(s.db).Create(ctx, &a)
}

func (s *AttendeeService) Update(ctx context.Context, id int64, p models.AttendeePatch) (*models.Attendee, error) {
	if p.Name != nil && *p.Name == "" {
		return nil, invalidf("name cannot be empty")
	}
	if p.Status != nil {
		if err := checkStatus(*p.Status); err != nil {
			return nil, err
		}
	}

	var out *models.Attendee
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Attendees(tx)
		a, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		apply(&a.Name, p.Name)
		if p.Email != nil {
			a.Email = p.Email
		}
		apply(&a.Status, p.Status)
		out, err = repo.Update(ctx, a)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *AttendeeService) UpdateStatus(ctx context.Context, id int64, status string) (*models.Attendee, error) {
	if err := checkStatus(status); err != nil {
		return nil, err
	}
	return s.repomanager.Attendees(s.db).UpdateStatus(ctx, id, status)
}

func (s *AttendeeService) Delete(ctx context.Context, id int64) error {
	return s.repomanager.Attendees(s.db).Delete(ctx, id)
}

func checkStatus(status string) error {
	if !models.IsAttendanceStatus(status) {
		return invalidf("status must be one of %s, %s, %s", models.AttendancePresent, models.AttendanceAbsent, models.AttendanceLate)
	}
	return nil
}
