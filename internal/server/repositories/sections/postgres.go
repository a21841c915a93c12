package sections

import (
	"context"

	"github.com/dmitrijs2005/minutesfolio/internal/dbx"
	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
)

const sectionColumns = `id, project_id, title, body, media_id, sort_order`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanSection(s dbx.RowScanner) (models.ProjectSection, error) {
	var ps models.ProjectSection
	err := s.Scan(&ps.ID, &ps.ProjectID, &ps.Title, &ps.Body, &ps.MediaID, &ps.Order)
	return ps, err
}

func (r *PostgresRepository) Create(ctx context.Context, s *models.ProjectSection) (*models.ProjectSection, error) {
	query :=
		`INSERT INTO project_sections (id, project_id, title, body, media_id, sort_order)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING ` + sectionColumns

	return dbx.QueryOne(ctx, r.db, scanSection, query, s.ID, s.ProjectID, s.Title, s.Body, s.MediaID, s.Order)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.ProjectSection, error) {
	return dbx.QueryOne(ctx, r.db, scanSection, `SELECT `+sectionColumns+` FROM project_sections WHERE id = $1`, id)
}

func (r *PostgresRepository) ListByProject(ctx context.Context, projectID string) ([]models.ProjectSection, error) {
	query :=
		`SELECT ` + sectionColumns + ` FROM project_sections
		 WHERE project_id = $1
		 ORDER BY sort_order, id`

	return dbx.Query(ctx, r.db, scanSection, query, projectID)
}

func (r *PostgresRepository) Update(ctx context.Context, s *models.ProjectSection) (*models.ProjectSection, error) {
	query :=
		`UPDATE project_sections SET title = $2, body = $3, media_id = $4, sort_order = $5
		 WHERE id = $1
		 RETURNING ` + sectionColumns

	return dbx.QueryOne(ctx, r.db, scanSection, query, s.ID, s.Title, s.Body, s.MediaID, s.Order)
}

func (r *PostgresRepository) SetOrder(ctx context.Context, id string, order int) error {
	return dbx.ExecOne(ctx, r.db, `UPDATE project_sections SET sort_order = $2 WHERE id = $1`, id, order)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	return dbx.ExecOne(ctx, r.db, `DELETE FROM project_sections WHERE id = $1`, id)
}
