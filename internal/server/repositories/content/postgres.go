package content

import (
	"context"

	"github.com/dmitrijs2005/minutesfolio/internal/dbx"
	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
)

const contentColumns = `id, page, section, key, title, value, last_updated`

var gallerySet = dbx.ChildSet[string]{
	Table:        "page_content_media",
	ParentColumn: "content_id",
	Columns:      []string{"media_id", "display_order"},
	Values: func(i int, mediaID string) []any {
		return []any{mediaID, i}
	},
}

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanContent(s dbx.RowScanner) (models.PageContent, error) {
	var c models.PageContent
	err := s.Scan(&c.ID, &c.Page, &c.Section, &c.Key, &c.Title, &c.Value, &c.LastUpdated)
	return c, err
}

func scanImage(s dbx.RowScanner) (models.ContentImage, error) {
	var img models.ContentImage
	m := &img.Media
	err := s.Scan(&img.MediaID, &img.DisplayOrder,
		&m.ID, &m.StorageKey, &m.URL, &m.FileName, &m.MimeType, &m.AltText, &m.SizeBytes, &m.CreatedAt)
	return img, err
}

func (r *PostgresRepository) ListByPage(ctx context.Context, page string) ([]models.PageContent, error) {
	query :=
		`SELECT ` + contentColumns + ` FROM page_content
		 WHERE page = $1
		 ORDER BY section, key`

	return dbx.Query(ctx, r.db, scanContent, query, page)
}

func (r *PostgresRepository) GetByKey(ctx context.Context, key string) (*models.PageContent, error) {
	return dbx.QueryOne(ctx, r.db, scanContent, `SELECT `+contentColumns+` FROM page_content WHERE key = $1`, key)
}

func (r *PostgresRepository) Upsert(ctx context.Context, c *models.PageContent) (*models.PageContent, error) {
	query :=
		`INSERT INTO page_content (id, page, section, key, title, value)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (key) DO UPDATE
		 SET page = EXCLUDED.page, section = EXCLUDED.section,
		     title = EXCLUDED.title, value = EXCLUDED.value, last_updated = NOW()
		 RETURNING ` + contentColumns

	return dbx.QueryOne(ctx, r.db, scanContent, query, c.ID, c.Page, c.Section, c.Key, c.Title, c.Value)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	return dbx.ExecOne(ctx, r.db, `DELETE FROM page_content WHERE id = $1`, id)
}

func (r *PostgresRepository) Images(ctx context.Context, contentID string) ([]models.ContentImage, error) {
	query :=
		`SELECT pcm.media_id, pcm.display_order,
		        m.id, m.storage_key, m.url, m.file_name, m.mime_type, m.alt_text, m.size_bytes, m.created_at
		 FROM page_content_media pcm
		 JOIN media_assets m ON m.id = pcm.media_id
		 WHERE pcm.content_id = $1
		 ORDER BY pcm.display_order`

	return dbx.Query(ctx, r.db, scanImage, query, contentID)
}

func (r *PostgresRepository) ReplaceImages(ctx context.Context, contentID string, mediaIDs []string) (int, error) {
	return dbx.ReplaceChildren(ctx, r.db, gallerySet, contentID, mediaIDs)
}
