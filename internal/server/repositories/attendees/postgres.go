package attendees

import (
	"context"

	"github.com/dmitrijs2005/minutesfolio/internal/dbx"
	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
)

const attendeeColumns = `id, meeting_id, name, email, status`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanAttendee(s dbx.RowScanner) (models.Attendee, error) {
	var a models.Attendee
	err := s.Scan(&a.ID, &a.MeetingID, &a.Name, &a.Email, &a.Status)
	return a, err
}

func (r *PostgresRepository) Create(ctx context.Context, a *models.Attendee) (*models.Attendee, error) {
	query :=
		`INSERT INTO meeting_attendees (meeting_id, name, email, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING ` + attendeeColumns

	return dbx.QueryOne(ctx, r.db, scanAttendee, query, a.MeetingID, a.Name, a.Email, a.Status)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Attendee, error) {
	return dbx.QueryOne(ctx, r.db, scanAttendee, `SELECT `+attendeeColumns+` FROM meeting_attendees WHERE id = $1`, id)
}

func (r *PostgresRepository) List(ctx context.Context, meetingID *int64) ([]models.Attendee, error) {
	query :=
		`SELECT ` + attendeeColumns + ` FROM meeting_attendees
		 WHERE ($1::bigint IS NULL OR meeting_id = $1)
		 ORDER BY id`

	return dbx.Query(ctx, r.db, scanAttendee, query, meetingID)
}

func (r *PostgresRepository) Update(ctx context.Context, a *models.Attendee) (*models.Attendee, error) {
	query :=
		`UPDATE meeting_attendees SET name = $2, email = $3, status = $4
		 WHERE id = $1
		 RETURNING ` + attendeeColumns

	return dbx.QueryOne(ctx, r.db, scanAttendee, query, a.ID, a.Name, a.Email, a.Status)
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id int64, status string) (*models.Attendee, error) {
	query :=
		`UPDATE meeting_attendees SET status = $2
		 WHERE id = $1
		 RETURNING ` + attendeeColumns

	return dbx.QueryOne(ctx, r.db, scanAttendee, query, id, status)
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	return dbx.ExecOne(ctx, r.db, `DELETE FROM meeting_attendees WHERE id = $1`, id)
}
