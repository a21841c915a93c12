package topics

import (
	"context"

	"github.com/dmitrijs2005/minutesfolio/internal/dbx"
	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
)

const topicColumns = `id, meeting_id, subject, notes, decisions, actions`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanTopic(s dbx.RowScanner) (models.Topic, error) {
	var t models.Topic
	err := s.Scan(&t.ID, &t.MeetingID, &t.Subject, &t.Notes, &t.Decisions, &t.Actions)
	return t, err
}

func (r *PostgresRepository) Create(ctx context.Context, t *models.Topic) (*models.Topic, error) {
	query :=
		`INSERT INTO topics (meeting_id, subject, notes, decisions, actions)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING ` + topicColumns

	return dbx.QueryOne(ctx, r.db, scanTopic, query, t.MeetingID, t.Subject, t.Notes, t.Decisions, t.Actions)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Topic, error) {
	return dbx.QueryOne(ctx, r.db, scanTopic, `SELECT `+topicColumns+` FROM topics WHERE id = $1`, id)
}

func (r *PostgresRepository) List(ctx context.Context, meetingID *int64) ([]models.Topic, error) {
	query :=
		`SELECT ` + topicColumns + ` FROM topics
		 WHERE ($1::bigint IS NULL OR meeting_id = $1)
		 ORDER BY id`

	return dbx.Query(ctx, r.db, scanTopic, query, meetingID)
}

func (r *PostgresRepository) Update(ctx context.Context, t *models.Topic) (*models.Topic, error) {
	query :=
		`UPDATE topics SET subject = $2, notes = $3, decisions = $4, actions = $5
		 WHERE id = $1
		 RETURNING ` + topicColumns

	return dbx.QueryOne(ctx, r.db, scanTopic, query, t.ID, t.Subject, t.Notes, t.Decisions, t.Actions)
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	return dbx.ExecOne(ctx, r.db, `DELETE FROM topics WHERE id = $1`, id)
}
