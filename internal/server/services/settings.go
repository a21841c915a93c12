package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/minutesfolio/internal/dbx"
	"github.com/dmitrijs2005/minutesfolio/internal/server/config"
	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/repomanager"
)

type SettingService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *config.Config
}

func NewSettingService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *SettingService {
	return &SettingService{db: db, repomanager: m, config: cfg}
}

func (s *SettingService) List(ctx context.Context, category *string) ([]models.Setting, error) {
	return s.repomanager.Settings(s.db).List(ctx, category)
}

func (s *SettingService) Get(ctx context.Context, key string) (*models.Setting, error) {
	return s.repomanager.Settings(s.db).Get(ctx, key)
}

func (s *SettingService) Upsert(ctx context.Context, st models.Setting) (*models.Setting, error) {
	if err := requireFields(field{"key", st.Key}); err != nil {
		return nil, err
	}
	return s.repomanager.Settings(s.db).Upsert(ctx, &st)
}

// BulkUpsert writes every setting or none of them.
func (s *SettingService) BulkUpsert(ctx context.Context, list []models.Setting) ([]models.Setting, error) {
	for i, st := range list {
		if st.Key == "" {
			return nil, invalidf("setting %d: key is required", i)
		}
	}

	out := make([]models.Setting, 0, len(list))
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Settings(tx)
		for _, st := range list {
			saved, err := repo.Upsert(ctx, &st)
			if err != nil {
				return fmt.Errorf("upsert %q: %w", st.Key, err)
			}
			out = append(out, *saved)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SettingService) Delete(ctx context.Context, key string) error {
	return s.repomanager.Settings(s.db).Delete(ctx, key)
}
