package attendees

import (
	"context"

	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, a *models.Attendee) (*models.Attendee, error)
	GetByID(ctx context.Context, id int64) (*models.Attendee, error)
	// List returns attendees of one meeting, or of all meetings when
	// meetingID is nil.
	List(ctx context.Context, meetingID *int64) ([]models.Attendee, error)
	Update(ctx context.Context, a *models.Attendee) (*models.Attendee, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.Attendee, error)
	Delete(ctx context.Context, id int64) error
}
