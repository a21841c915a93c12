package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/minutesfolio/internal/common"
	"github.com/dmitrijs2005/minutesfolio/internal/dbx"
	"github.com/dmitrijs2005/minutesfolio/internal/server/auth"
	"github.com/dmitrijs2005/minutesfolio/internal/server/config"
	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/repomanager"
)

// UserService is the admin-facing user management.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *config.Config
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{db: db, repomanager: m, config: cfg}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.repomanager.Users(s.db).List(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, id)
}

// Create adds an active user with any configured role.
func (s *UserService) Create(ctx context.Context, in RegisterInput) (*models.User, error) {
	return createUser(ctx, s.repomanager.Users(s.db), s.config, in, true)
}

// Update applies p to the user. A new password is rehashed; the role must
// be one of the configured roles.
func (s *UserService) Update(ctx context.Context, id int64, p models.UserPatch) (*models.User, error) {
	if p.Role != nil && !s.config.HasRole(*p.Role) {
		return nil, invalidf("unknown role %q", *p.Role)
	}
	if p.FullName != nil && *p.FullName == "" {
		return nil, invalidf("fullName cannot be empty")
	}

	var hash *string
	if p.Password != nil {
		if *p.Password == "" {
			return nil, invalidf("password cannot be empty")
		}
		h, err := auth.HashPassword(*p.Password, s.config.BcryptCost)
		if err != nil {
			return nil, err
		}
		hash = &h
	}

	var out *models.User
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		u, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		apply(&u.FullName, p.FullName)
		apply(&u.PasswordHash, hash)
		apply(&u.Role, p.Role)
		apply(&u.IsActive, p.IsActive)

		out, err = repo.Update(ctx, u)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *UserService) ToggleStatus(ctx context.Context, id int64) (*models.User, error) {
	return s.repomanager.Users(s.db).ToggleActive(ctx, id)
}

// Delete refuses users that still own meetings or signatures.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	err := s.repomanager.Users(s.db).Delete(ctx, id)
	if errors.Is(err, common.ErrorInvalidReference) {
		return fmt.Errorf("%w: user is referenced by meetings or signatures", common.ErrorConflict)
	}
	return err
}
