package projects

import (
	"context"

	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, p *models.Project) (*models.Project, error)
	GetByID(ctx context.Context, id string) (*models.Project, error)
	List(ctx context.Context) ([]models.Project, error)
	Update(ctx context.Context, p *models.Project) (*models.Project, error)
	Delete(ctx context.Context, id string) error
	// IncrementViews bumps the view counter of the project with the given
	// slug and returns the project as it is after the increment.
	IncrementViews(ctx context.Context, slug string) (*models.Project, error)
	// FindByThumbnail returns a project using mediaID as its main
	// thumbnail, or common.ErrorNotFound when none does.
	FindByThumbnail(ctx context.Context, mediaID string) (*models.Project, error)
}
