package users

import (
	"context"

	"github.com/dmitrijs2005/minutesfolio/internal/dbx"
	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
)

const userColumns = `id, full_name, username, email, password_hash, role, is_active, created_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanUser(s dbx.RowScanner) (models.User, error) {
	var u models.User
	err := s.Scan(&u.ID, &u.FullName, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt)
	return u, err
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (full_name, username, email, password_hash, role, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING ` + userColumns

	return dbx.QueryOne(ctx, r.db, scanUser, query,
		user.FullName, user.Username, user.Email, user.PasswordHash, user.Role, user.IsActive)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return dbx.QueryOne(ctx, r.db, scanUser, query, id)
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1)`
	return dbx.QueryOne(ctx, r.db, scanUser, query, email)
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return dbx.QueryOne(ctx, r.db, scanUser, query, username)
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id DESC`
	return dbx.Query(ctx, r.db, scanUser, query)
}

func (r *PostgresRepository) Update(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`UPDATE users
		 SET full_name = $2, password_hash = $3, role = $4, is_active = $5
		 WHERE id = $1
		 RETURNING ` + userColumns

	return dbx.QueryOne(ctx, r.db, scanUser, query,
		user.ID, user.FullName, user.PasswordHash, user.Role, user.IsActive)
}

func (r *PostgresRepository) ToggleActive(ctx context.Context, id int64) (*models.User, error) {

	query :=
		`UPDATE users SET is_active = NOT is_active
		 WHERE id = $1
		 RETURNING ` + userColumns

	return dbx.QueryOne(ctx, r.db, scanUser, query, id)
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	return dbx.ExecOne(ctx, r.db, `DELETE FROM users WHERE id = $1`, id)
}
