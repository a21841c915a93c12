package timeline

import (
	"context"

	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, e *models.TimelineEntry) (*models.TimelineEntry, error)
	GetByID(ctx context.Context, id string) (*models.TimelineEntry, error)
	// ListByProject returns the newest entries first.
	ListByProject(ctx context.Context, projectID string) ([]models.TimelineEntry, error)
	Update(ctx context.Context, e *models.TimelineEntry) (*models.TimelineEntry, error)
	Delete(ctx context.Context, id string) error
}
