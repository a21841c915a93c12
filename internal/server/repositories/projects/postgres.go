package projects

import (
	"context"

	"github.com/dmitrijs2005/minutesfolio/internal/dbx"
	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
)

const projectColumns = `id, title, slug, summary, description, main_thumbnail_id, view_count, is_featured, created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanProject(s dbx.RowScanner) (models.Project, error) {
	var p models.Project
	err := s.Scan(&p.ID, &p.Title, &p.Slug, &p.Summary, &p.Description, &p.MainThumbnailID,
		&p.ViewCount, &p.IsFeatured, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.Project) (*models.Project, error) {
	query :=
		`INSERT INTO projects (id, title, slug, summary, description, main_thumbnail_id, is_featured)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING ` + projectColumns

	return dbx.QueryOne(ctx, r.db, scanProject, query,
		p.ID, p.Title, p.Slug, p.Summary, p.Description, p.MainThumbnailID, p.IsFeatured)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	return dbx.QueryOne(ctx, r.db, scanProject, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Project, error) {
	return dbx.Query(ctx, r.db, scanProject, `SELECT `+projectColumns+` FROM projects ORDER BY created_at DESC`)
}

func (r *PostgresRepository) Update(ctx context.Context, p *models.Project) (*models.Project, error) {
	query :=
		`UPDATE projects
		 SET title = $2, slug = $3, summary = $4, description = $5,
		     main_thumbnail_id = $6, is_featured = $7, updated_at = NOW()
		 WHERE id = $1
		 RETURNING ` + projectColumns

	return dbx.QueryOne(ctx, r.db, scanProject, query,
		p.ID, p.Title, p.Slug, p.Summary, p.Description, p.MainThumbnailID, p.IsFeatured)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	return dbx.ExecOne(ctx, r.db, `DELETE FROM projects WHERE id = $1`, id)
}

func (r *PostgresRepository) IncrementViews(ctx context.Context, slug string) (*models.Project, error) {
	query :=
		`UPDATE projects SET view_count = view_count + 1
		 WHERE slug = $1
		 RETURNING ` + projectColumns

	return dbx.QueryOne(ctx, r.db, scanProject, query, slug)
}

func (r *PostgresRepository) FindByThumbnail(ctx context.Context, mediaID string) (*models.Project, error) {
	query :=
		`SELECT ` + projectColumns + ` FROM projects
		 WHERE main_thumbnail_id = $1
		 ORDER BY created_at
		 LIMIT 1`

	return dbx.QueryOne(ctx, r.db, scanProject, query, mediaID)
}
