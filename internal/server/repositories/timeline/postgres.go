package timeline

import (
	"context"

	"github.com/dmitrijs2005/minutesfolio/internal/dbx"
	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
)

const entryColumns = `id, project_id, title, description, occurred_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanEntry(s dbx.RowScanner) (models.TimelineEntry, error) {
	var e models.TimelineEntry
	err := s.Scan(&e.ID, &e.ProjectID, &e.Title, &e.Description, &e.Date)
	return e, err
}

func (r *PostgresRepository) Create(ctx context.Context, e *models.TimelineEntry) (*models.TimelineEntry, error) {
	query :=
		`INSERT INTO project_timeline (id, project_id, title, description, occurred_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING ` + entryColumns

	return dbx.QueryOne(ctx, r.db, scanEntry, query, e.ID, e.ProjectID, e.Title, e.Description, e.Date)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.TimelineEntry, error) {
	return dbx.QueryOne(ctx, r.db, scanEntry, `SELECT `+entryColumns+` FROM project_timeline WHERE id = $1`, id)
}

func (r *PostgresRepository) ListByProject(ctx context.Context, projectID string) ([]models.TimelineEntry, error) {
	query :=
		`SELECT ` + entryColumns + ` FROM project_timeline
		 WHERE project_id = $1
		 ORDER BY occurred_at DESC, id`

	return dbx.Query(ctx, r.db, scanEntry, query, projectID)
}

func (r *PostgresRepository) Update(ctx context.Context, e *models.TimelineEntry) (*models.TimelineEntry, error) {
	query :=
		`UPDATE project_timeline SET title = $2, description = $3, occurred_at = $4
		 WHERE id = $1
		 RETURNING ` + entryColumns

	return dbx.QueryOne(ctx, r.db, scanEntry, query, e.ID, e.Title, e.Description, e.Date)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	return dbx.ExecOne(ctx, r.db, `DELETE FROM project_timeline WHERE id = $1`, id)
}
