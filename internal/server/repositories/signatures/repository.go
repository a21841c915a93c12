package signatures

import (
	"context"

	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
)

// Repository reads always join the signing user into Signature.Signer.
type Repository interface {
	Create(ctx context.Context, s *models.Signature) (*models.Signature, error)
	GetByID(ctx context.Context, id int64) (*models.Signature, error)
	List(ctx context.Context, meetingID *int64) ([]models.Signature, error)
	Exists(ctx context.Context, meetingID, userID int64, role string) (bool, error)
	UpdateRole(ctx context.Context, id int64, role string) (*models.Signature, error)
	Delete(ctx context.Context, id int64) error
}
