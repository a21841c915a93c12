package meetings

import (
	"context"

	"github.com/dmitrijs2005/minutesfolio/internal/dbx"
	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
)

const meetingColumns = `id, title, date, created_by, created_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanMeeting(s dbx.RowScanner) (models.Meeting, error) {
	var m models.Meeting
	err := s.Scan(&m.ID, &m.Title, &m.Date, &m.CreatedBy, &m.CreatedAt)
	return m, err
}

func (r *PostgresRepository) Create(ctx context.Context, m *models.Meeting) (*models.Meeting, error) {
	query :=
		`INSERT INTO meetings (title, date, created_by)
		 VALUES ($1, $2, $3)
		 RETURNING ` + meetingColumns

	return dbx.QueryOne(ctx, r.db, scanMeeting, query, m.Title, m.Date, m.CreatedBy)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Meeting, error) {
	return dbx.QueryOne(ctx, r.db, scanMeeting, `SELECT `+meetingColumns+` FROM meetings WHERE id = $1`, id)
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Meeting, error) {
	return dbx.Query(ctx, r.db, scanMeeting, `SELECT `+meetingColumns+` FROM meetings ORDER BY date DESC, id DESC`)
}

func (r *PostgresRepository) Update(ctx context.Context, m *models.Meeting) (*models.Meeting, error) {
	query :=
		`UPDATE meetings SET title = $2, date = $3
		 WHERE id = $1
		 RETURNING ` + meetingColumns

	return dbx.QueryOne(ctx, r.db, scanMeeting, query, m.ID, m.Title, m.Date)
}

// Delete removes the meeting; attendees, topics and signatures go with it
// through ON DELETE CASCADE.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	return dbx.ExecOne(ctx, r.db, `DELETE FROM meetings WHERE id = $1`, id)
}
