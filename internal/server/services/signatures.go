package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/minutesfolio/internal/common"
	"github.com/dmitrijs2005/minutesfolio/internal/server/config"
	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/repomanager"
)

type SignatureService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *config.Config
}

func NewSignatureService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *SignatureService {
	return &SignatureService{db: db, repomanager: m, config: cfg}
}

func (s *SignatureService) List(ctx context.Context, meetingID *int64) ([]models.Signature, error) {
	return s.repomanager.Signatures(s.db).List(ctx, meetingID)
}

func (s *SignatureService) Get(ctx context.Context, id int64) (*models.Signature, error) {
	return s.repomanager.Signatures(s.db).GetByID(ctx, id)
}

// Create records that a user signed a meeting in a signatory role. A user
// signs a meeting at most once per role.
func (s *SignatureService) Create(ctx context.Context, sig models.Signature) (*models.Signature, error) {
	var missing []string
	if sig.MeetingID <= 0 {
		missing = append(missing, "meetingId")
	}
	if sig.SignedBy <= 0 {
		missing = append(missing, "userId")
	}
	if sig.Role == "" {
		missing = append(missing, "role")
	}
	if len(missing) > 0 {
		return nil, invalidf("missing required fields: %s", strings.Join(missing, ", "))
	}
	if err := s.checkRole(sig.Role); err != nil {
		return nil, err
	}

	repo := s.repomanager.Signatures(s.db)

	exists, err := repo.Exists(ctx, sig.MeetingID, sig.SignedBy, sig.Role)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, alreadySigned(sig.Role)
	}

	out, err := repo.Create(ctx, &sig)
	if errors.Is(err, common.ErrorConflict) {
		return nil, alreadySigned(sig.Role)
	}
	return out, err
}

func (s *SignatureService) Update(ctx context.Context, id int64, p models.SignaturePatch) (*models.Signature, error) {
	repo := s.repomanager.Signatures(s.db)
	if p.Role == nil {
		return repo.GetByID(ctx, id)
	}
	if err := s.checkRole(*p.Role); err != nil {
		return nil, err
	}

	out, err := repo.UpdateRole(ctx, id, *p.Role)
	if errors.Is(err, common.ErrorConflict) {
		return nil, alreadySigned(*p.Role)
	}
	return out, err
}

func (s *SignatureService) Delete(ctx context.Context, id int64) error {
	return s.repomanager.Signatures(s.db).Delete(ctx, id)
}

func (s *SignatureService) checkRole(role string) error {
	if !s.config.IsSignatoryRole(role) {
		return invalidf("role must be one of: %s", strings.Join(s.config.SignatoryRoles, ", "))
	}
	return nil
}

func alreadySigned(role string) error {
	return fmt.Errorf("%w: This person has already signed as %s for this meeting.", common.ErrorConflict, role)
}
