package links

import (
	"context"

	"github.com/dmitrijs2005/minutesfolio/internal/dbx"
	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
	"github.com/google/uuid"
)

const linkColumns = `id, project_id, label, url, position`

var linkSet = dbx.ChildSet[models.ProjectLink]{
	Table:        "project_links",
	ParentColumn: "project_id",
	Columns:      []string{"id", "label", "url", "position"},
	Values: func(i int, l models.ProjectLink) []any {
		return []any{uuid.NewString(), l.Label, l.URL, i}
	},
}

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanLink(s dbx.RowScanner) (models.ProjectLink, error) {
	var l models.ProjectLink
	err := s.Scan(&l.ID, &l.ProjectID, &l.Label, &l.URL, &l.Position)
	return l, err
}

func (r *PostgresRepository) Create(ctx context.Context, l *models.ProjectLink) (*models.ProjectLink, error) {
	query :=
		`INSERT INTO project_links (id, project_id, label, url, position)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING ` + linkColumns

	return dbx.QueryOne(ctx, r.db, scanLink, query, l.ID, l.ProjectID, l.Label, l.URL, l.Position)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.ProjectLink, error) {
	return dbx.QueryOne(ctx, r.db, scanLink, `SELECT `+linkColumns+` FROM project_links WHERE id = $1`, id)
}

func (r *PostgresRepository) ListByProject(ctx context.Context, projectID string) ([]models.ProjectLink, error) {
	query :=
		`SELECT ` + linkColumns + ` FROM project_links
		 WHERE project_id = $1
		 ORDER BY position, label`

	return dbx.Query(ctx, r.db, scanLink, query, projectID)
}

func (r *PostgresRepository) Update(ctx context.Context, l *models.ProjectLink) (*models.ProjectLink, error) {
	query :=
		`UPDATE project_links SET label = $2, url = $3, position = $4
		 WHERE id = $1
		 RETURNING ` + linkColumns

	return dbx.QueryOne(ctx, r.db, scanLink, query, l.ID, l.Label, l.URL, l.Position)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	return dbx.ExecOne(ctx, r.db, `DELETE FROM project_links WHERE id = $1`, id)
}

func (r *PostgresRepository) Replace(ctx context.Context, projectID string, links []models.ProjectLink) (int, error) {
	return dbx.ReplaceChildren(ctx, r.db, linkSet, projectID, links)
}
