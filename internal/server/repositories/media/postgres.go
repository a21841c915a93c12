package media

import (
	"context"

	"github.com/dmitrijs2005/minutesfolio/internal/dbx"
	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
)

const mediaColumns = `id, storage_key, url, file_name, mime_type, alt_text, size_bytes, created_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanMedia(s dbx.RowScanner) (models.MediaAsset, error) {
	var m models.MediaAsset
	err := s.Scan(&m.ID, &m.StorageKey, &m.URL, &m.FileName, &m.MimeType, &m.AltText, &m.SizeBytes, &m.CreatedAt)
	return m, err
}

func (r *PostgresRepository) Create(ctx context.Context, m *models.MediaAsset) (*models.MediaAsset, error) {
	query :=
		`INSERT INTO media_assets (id, storage_key, url, file_name, mime_type, alt_text, size_bytes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING ` + mediaColumns

	return dbx.QueryOne(ctx, r.db, scanMedia, query, m.ID, m.StorageKey, m.URL, m.FileName, m.MimeType, m.AltText, m.SizeBytes)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.MediaAsset, error) {
	return dbx.QueryOne(ctx, r.db, scanMedia, `SELECT `+mediaColumns+` FROM media_assets WHERE id = $1`, id)
}

func (r *PostgresRepository) ListByIDs(ctx context.Context, ids []string) ([]models.MediaAsset, error) {
	if len(ids) == 0 {
		return []models.MediaAsset{}, nil
	}

	query :=
		`SELECT ` + mediaColumns + ` FROM media_assets
		 WHERE id = ANY($1::uuid[])
		 ORDER BY created_at DESC`

	return dbx.Query(ctx, r.db, scanMedia, query, ids)
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.MediaAsset, error) {
	return dbx.Query(ctx, r.db, scanMedia, `SELECT `+mediaColumns+` FROM media_assets ORDER BY created_at DESC`)
}

func (r *PostgresRepository) Update(ctx context.Context, m *models.MediaAsset) (*models.MediaAsset, error) {
	query :=
		`UPDATE media_assets
		 SET url = $2, file_name = $3, mime_type = $4, alt_text = $5, size_bytes = $6
		 WHERE id = $1
		 RETURNING ` + mediaColumns

	return dbx.QueryOne(ctx, r.db, scanMedia, query, m.ID, m.URL, m.FileName, m.MimeType, m.AltText, m.SizeBytes)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	return dbx.ExecOne(ctx, r.db, `DELETE FROM media_assets WHERE id = $1`, id)
}
