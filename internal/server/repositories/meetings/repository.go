package meetings

import (
	"context"

	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, m *models.Meeting) (*models.Meeting, error)
	GetByID(ctx context.Context, id int64) (*models.Meeting, error)
	List(ctx context.Context) ([]models.Meeting, error)
	Update(ctx context.Context, m *models.Meeting) (*models.Meeting, error)
	Delete(ctx context.Context, id int64) error
}
