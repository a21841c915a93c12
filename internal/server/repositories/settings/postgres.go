package settings

import (
	"context"

	"github.com/dmitrijs2005/minutesfolio/internal/dbx"
	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
)

const settingColumns = `key, value, category, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanSetting(s dbx.RowScanner) (models.Setting, error) {
	var st models.Setting
	err := s.Scan(&st.Key, &st.Value, &st.Category, &st.UpdatedAt)
	return st, err
}

func (r *PostgresRepository) List(ctx context.Context, category *string) ([]models.Setting, error) {
	query :=
		`SELECT ` + settingColumns + ` FROM site_settings
		 WHERE ($1::text IS NULL OR category = $1)
		 ORDER BY category, key`

	return dbx.Query(ctx, r.db, scanSetting, query, category)
}

func (r *PostgresRepository) Get(ctx context.Context, key string) (*models.Setting, error) {
	return dbx.QueryOne(ctx, r.db, scanSetting, `SELECT `+settingColumns+` FROM site_settings WHERE key = $1`, key)
}

// Upsert writes the setting. An empty category keeps the stored one, or
// the column default for a new key.
func (r *PostgresRepository) Upsert(ctx context.Context, s *models.Setting) (*models.Setting, error) {
	query :=
		`INSERT INTO site_settings (key, value, category)
		 VALUES ($1, $2, COALESCE(NULLIF($3, ''), 'general'))
		 ON CONFLICT (key) DO UPDATE
		 SET value = EXCLUDED.value,
		     category = CASE WHEN $3 = '' THEN site_settings.category ELSE EXCLUDED.category END,
		     updated_at = NOW()
		 RETURNING ` + settingColumns

	return dbx.QueryOne(ctx, r.db, scanSetting, query, s.Key, s.Value, s.Category)
}

func (r *PostgresRepository) Delete(ctx context.Context, key string) error {
	return dbx.ExecOne(ctx, r.db, `DELETE FROM site_settings WHERE key = $1`, key)
}
