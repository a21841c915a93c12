package signatures

import (
	"context"

	"github.com/dmitrijs2005/minutesfolio/internal/dbx"
	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
)

const selectSignature = `SELECT s.id, s.meeting_id, s.signed_by, s.role, s.signed_at,
		u.id, u.full_name, u.username, u.email, u.role
	FROM signatures s
	JOIN users u ON u.id = s.signed_by`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanSignature(s dbx.RowScanner) (models.Signature, error) {
	var sig models.Signature
	var u models.UserSummary
	err := s.Scan(&sig.ID, &sig.MeetingID, &sig.SignedBy, &sig.Role, &sig.SignedAt,
		&u.ID, &u.FullName, &u.Username, &u.Email, &u.Role)
	sig.Signer = &u
	return sig, err
}

func (r *PostgresRepository) Create(ctx context.Context, s *models.Signature) (*models.Signature, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO signatures (meeting_id, signed_by, role) VALUES ($1, $2, $3) RETURNING id`,
		s.MeetingID, s.SignedBy, s.Role).Scan(&id)
	if err != nil {
		return nil, dbx.ClassifyError(err)
	}
	return r.GetByID(ctx, id)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Signature, error) {
	return dbx.QueryOne(ctx, r.db, scanSignature, selectSignature+` WHERE s.id = $1`, id)
}

func (r *PostgresRepository) List(ctx context.Context, meetingID *int64) ([]models.Signature, error) {
	query := selectSignature + `
	WHERE ($1::bigint IS NULL OR s.meeting_id = $1)
	ORDER BY s.signed_at, s.id`

	return dbx.Query(ctx, r.db, scanSignature, query, meetingID)
}

func (r *PostgresRepository) Exists(ctx context.Context, meetingID, userID int64, role string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM signatures WHERE meeting_id = $1 AND signed_by = $2 AND role = $3)`,
		meetingID, userID, role).Scan(&exists)
	if err != nil {
		return false, dbx.ClassifyError(err)
	}
	return exists, nil
}

func (r *PostgresRepository) UpdateRole(ctx context.Context, id int64, role string) (*models.Signature, error) {
	if err := dbx.ExecOne(ctx, r.db, `UPDATE signatures SET role = $2 WHERE id = $1`, id, role); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	return dbx.ExecOne(ctx, r.db, `DELETE FROM signatures WHERE id = $1`, id)
}
