package settings

import (
	"context"

	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
)

// Repository stores site-wide key/value settings.
type Repository interface {
	List(ctx context.Context, category *string) ([]models.Setting, error)
	Get(ctx context.Context, key string) (*models.Setting, error)
	Upsert(ctx context.Context, s *models.Setting) (*models.Setting, error)
	Delete(ctx context.Context, key string) error
}
