package media

import (
	"context"

	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, m *models.MediaAsset) (*models.MediaAsset, error)
	GetByID(ctx context.Context, id string) (*models.MediaAsset, error)
	// ListByIDs returns the assets whose ids are in ids. Unknown ids are
	// skipped.
	ListByIDs(ctx context.Context, ids []string) ([]models.MediaAsset, error)
	List(ctx context.Context) ([]models.MediaAsset, error)
	Update(ctx context.Context, m *models.MediaAsset) (*models.MediaAsset, error)
	Delete(ctx context.Context, id string) error
}
