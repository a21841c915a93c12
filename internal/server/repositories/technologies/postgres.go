package technologies

import (
	"context"

	"github.com/dmitrijs2005/minutesfolio/internal/dbx"
	"github.com/dmitrijs2005/minutesfolio/internal/server/models"
)

// SelectTechnology reads technologies together with their skill row.
// Other repositories append their own joins and filters to it.
const SelectTechnology = `SELECT t.id, t.name, t.category, t.icon_id,
		sk.technology_id, sk.proficiency, sk.years_experience
	FROM technologies t
	LEFT JOIN skills sk ON sk.technology_id = t.id`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ScanTechnology scans a row produced by SelectTechnology.
func ScanTechnology(s dbx.RowScanner) (models.Technology, error) {
	var (
		t           models.Technology
		skillTechID *string
		proficiency *int
		years       *int
	)
	err := s.Scan(&t.ID, &t.Name, &t.Category, &t.IconID, &skillTechID, &proficiency, &years)
	if err != nil {
		return t, err
	}

	if skillTechID != nil {
		sk := models.Skill{TechnologyID: *skillTechID}
		if proficiency != nil {
			sk.Proficiency = *proficiency
		}
		if years != nil {
			sk.YearsExperience = *years
		}
		t.Skill = &sk
	}

	return t, nil
}

func scanSkill(s dbx.RowScanner) (models.Skill, error) {
	var sk models.Skill
	err := s.Scan(&sk.TechnologyID, &sk.Proficiency, &sk.YearsExperience)
	return sk, err
}

func (r *PostgresRepository) Create(ctx context.Context, t *models.Technology) (*models.Technology, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO technologies (id, name, category, icon_id) VALUES ($1, $2, $3, $4)`,
		t.ID, t.Name, t.Category, t.IconID)
	if err != nil {
		return nil, dbx.ClassifyError(err)
	}
	return r.GetByID(ctx, t.ID)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Technology, error) {
	return dbx.QueryOne(ctx, r.db, ScanTechnology, SelectTechnology+` WHERE t.id = $1`, id)
}

func (r *PostgresRepository) List(ctx context.Context, category *string) ([]models.Technology, error) {
	query := SelectTechnology + `
	WHERE ($1::text IS NULL OR t.category = $1)
	ORDER BY t.name DESC`

	return dbx.Query(ctx, r.db, ScanTechnology, query, category)
}

func (r *PostgresRepository) Update(ctx context.Context, t *models.Technology) (*models.Technology, error) {
	err := dbx.ExecOne(ctx, r.db,
		`UPDATE technologies SET name = $2, category = $3, icon_id = $4 WHERE id = $1`,
		t.ID, t.Name, t.Category, t.IconID)
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, t.ID)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	return dbx.ExecOne(ctx, r.db, `DELETE FROM technologies WHERE id = $1`, id)
}

func (r *PostgresRepository) UpsertSkill(ctx context.Context, s *models.Skill) (*models.Skill, error) {
	query :=
		`INSERT INTO skills (technology_id, proficiency, years_experience)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (technology_id) DO UPDATE
		 SET proficiency = EXCLUDED.proficiency, years_experience = EXCLUDED.years_experience
		 RETURNING technology_id, proficiency, years_experience`

	return dbx.QueryOne(ctx, r.db, scanSkill, query, s.TechnologyID, s.Proficiency, s.YearsExperience)
}
