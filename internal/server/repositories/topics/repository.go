package topics

import (
	"context"

	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, t *models.Topic) (*models.Topic, error)
	GetByID(ctx context.Context, id int64) (*models.Topic, error)
	List(ctx context.Context, meetingID *int64) ([]models.Topic, error)
	Update(ctx context.Context, t *models.Topic) (*models.Topic, error)
	Delete(ctx context.Context, id int64) error
}
