package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"sync"

	"github.com/dmitrijs2005/minutesfolio/internal/common"
	"github.com/dmitrijs2005/minutesfolio/internal/server/auth"
	"github.com/dmitrijs2005/minutesfolio/internal/server/config"
	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
	"github.com/dmitrijs2005/minutesfolio/internal/server/repositories/repomanager"
	"github.com/gosimple/slug"
)

// RegisterInput is a self-registration or admin user-creation request.
type RegisterInput struct {
	FullName string
	Username string
	Email    string
	Password string
	Role     string
}

// LoginResult is a signed session token plus the public profile it was
// issued for.
type LoginResult struct {
	Token string
	User  models.User
}

// checkPassword is replaced in tests to observe the comparisons Login makes.
var checkPassword = auth.CheckPassword

// AuthService handles registration, login and the current-user lookup.
type AuthService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *config.Config

	dummyOnce sync.Once
	dummyHash string
}

func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AuthService {
	return &AuthService{db: db, repomanager: m, config: cfg}
}

// Register creates an active account with the default role. Any other role
// is granted by an admin through UserService.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if in.Role != "" && in.Role != s.config.DefaultRole {
		return nil, invalidf("role %q cannot be self-assigned", in.Role)
	}
	return createUser(ctx, s.repomanager.Users(s.db), s.config, in, true)
}

// Login accepts an email address or a username. Unknown accounts and wrong
// passwords are both reported as common.ErrorUnauthorized.
func (s *AuthService) Login(ctx context.Context, login, password string) (*LoginResult, error) {
	if err := requireFields(field{"email", login}, field{"password", password}); err != nil {
		return nil, err
	}

	repo := s.repomanager.Users(s.db)

	var (
		user *models.User
		err  error
	)
	if strings.Contains(login, "@") {
		user, err = repo.GetByEmail(ctx, strings.TrimSpace(login))
	} else {
		user, err = repo.GetByUsername(ctx, strings.TrimSpace(login))
	}
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// Unknown accounts pay the same bcrypt cost as wrong passwords.
			checkPassword(s.unknownAccountHash(), password)
			return nil, common.ErrorUnauthorized
		}
		return nil, err
	}

	if !checkPassword(user.PasswordHash, password) {
		return nil, common.ErrorUnauthorized
	}
	if !user.IsActive {
		return nil, common.ErrAccountDisabled
	}

	claims := auth.Claims{
		UserID:    user.ID,
		Username:  user.Username,
		FullName:  user.FullName,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
	token, err := auth.IssueToken(claims, []byte(s.config.SecretKey), s.config.AccessTokenValidityDuration)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, User: *user}, nil
}

func (s *AuthService) unknownAccountHash() string {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = auth.HashPassword("unknown-account", s.config.BcryptCost)
	})
	return s.dummyHash
}

// Me returns the stored account behind a verified token.
func (s *AuthService) Me(ctx context.Context, userID int64) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, userID)
}

type userCreator interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
}

func createUser(ctx context.Context, repo userCreator, cfg *config.Config, in RegisterInput, active bool) (*models.User, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.TrimSpace(in.Email)
	in.Username = strings.TrimSpace(in.Username)

	if err := requireFields(
		field{"fullName", in.FullName},
		field{"email", in.Email},
		field{"password", in.Password},
	); err != nil {
		return nil, err
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return nil, invalidf("email %q is not a valid address", in.Email)
	}

	if in.Role == "" {
		in.Role = cfg.DefaultRole
	}
	if !cfg.HasRole(in.Role) {
		return nil, invalidf("unknown role %q", in.Role)
	}

	if in.Username == "" {
		local, _, _ := strings.Cut(in.Email, "@")
		in.Username = slug.Make(local)
	}

	hash, err := auth.HashPassword(in.Password, cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	u, err := repo.Create(ctx, &models.User{
		FullName:     in.FullName,
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
		IsActive:     active,
	})
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return nil, fmt.Errorf("%w: email or username is already taken", common.ErrorConflict)
		}
		return nil, err
	}
	return u, nil
}
