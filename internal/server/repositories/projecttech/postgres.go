package projecttech

import (
	"context"

	"github.com/dmitrijs2005/minutesfolio/internal/dbx"
	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/technologies"
)

var techSet = dbx.ChildSet[string]{
	Table:        "project_technologies",
	ParentColumn: "project_id",
	Columns:      []string{"technology_id"},
	Values: func(_ int, id string) []any {
		return []any{id}
	},
}

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByProject(ctx context.Context, projectID string) ([]models.Technology, error) {
	query := technologies.SelectTechnology + `
	JOIN project_technologies pt ON pt.technology_id = t.id
	WHERE pt.project_id = $1
	ORDER BY t.name`

	return dbx.Query(ctx, r.db, technologies.ScanTechnology, query, projectID)
}

func (r *PostgresRepository) Add(ctx context.Context, projectID string, technologyIDs []string) (int, error) {
	return dbx.InsertChildren(ctx, r.db, techSet, projectID, technologyIDs)
}

func (r *PostgresRepository) Replace(ctx context.Context, projectID string, technologyIDs []string) (int, error) {
	return dbx.ReplaceChildren(ctx, r.db, techSet, projectID, technologyIDs)
}

func (r *PostgresRepository) Remove(ctx context.Context, projectID, technologyID string) error {
	return dbx.ExecOne(ctx, r.db,
		`DELETE FROM project_technologies WHERE project_id = $1 AND technology_id = $2`,
		projectID, technologyID)
}
