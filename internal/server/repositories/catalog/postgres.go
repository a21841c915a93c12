package catalog

import (
	"context"

	"github.com/dmitrijs2005/minutesfolio/internal/dbx"
	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/technologies"
)

const serviceColumns = `id, title, slug, description, icon_id`

var stackSet = dbx.ChildSet[string]{
	Table:        "service_technologies",
	ParentColumn: "service_id",
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

func scanService(s dbx.RowScanner) (models.Service, error) {
	var svc models.Service
	err := s.Scan(&svc.ID, &svc.Title, &svc.Slug, &svc.Description, &svc.IconID)
	return svc, err
}

func (r *PostgresRepository) Create(ctx context.Context, s *models.Service) (*models.Service, error) {
	query :=
		`INSERT INTO services (id, title, slug, description, icon_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING ` + serviceColumns

	return dbx.QueryOne(ctx, r.db, scanService, query, s.ID, s.Title, s.Slug, s.Description, s.IconID)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Service, error) {
	return dbx.QueryOne(ctx, r.db, scanService, `SELECT `+serviceColumns+` FROM services WHERE id = $1`, id)
}

func (r *PostgresRepository) GetBySlug(ctx context.Context, slug string) (*models.Service, error) {
	return dbx.QueryOne(ctx, r.db, scanService, `SELECT `+serviceColumns+` FROM services WHERE slug = $1`, slug)
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Service, error) {
	return dbx.Query(ctx, r.db, scanService, `SELECT `+serviceColumns+` FROM services ORDER BY title DESC`)
}

func (r *PostgresRepository) Update(ctx context.Context, s *models.Service) (*models.Service, error) {
	query :=
		`UPDATE services SET title = $2, slug = $3, description = $4, icon_id = $5
		 WHERE id = $1
		 RETURNING ` + serviceColumns

	return dbx.QueryOne(ctx, r.db, scanService, query, s.ID, s.Title, s.Slug, s.Description, s.IconID)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	return dbx.ExecOne(ctx, r.db, `DELETE FROM services WHERE id = $1`, id)
}

func (r *PostgresRepository) ListTechnologies(ctx context.Context, serviceID string) ([]models.Technology, error) {
	query := technologies.SelectTechnology + `
	JOIN service_technologies st ON st.technology_id = t.id
	WHERE st.service_id = $1
	ORDER BY t.name`

	return dbx.Query(ctx, r.db, technologies.ScanTechnology, query, serviceID)
}

func (r *PostgresRepository) AddTechnologies(ctx context.Context, serviceID string, technologyIDs []string) (int, error) {
	return dbx.InsertChildren(ctx, r.db, stackSet, serviceID, technologyIDs)
}

func (r *PostgresRepository) ReplaceTechnologies(ctx context.Context, serviceID string, technologyIDs []string) (int, error) {
	return dbx.ReplaceChildren(ctx, r.db, stackSet, serviceID, technologyIDs)
}
