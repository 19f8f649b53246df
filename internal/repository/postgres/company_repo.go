package postgres

import (
	"context"

	"go-jobboard-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type companyRepo struct {
	db *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) domain.CompanyRepository {
	return &companyRepo{db: db}
}

func (r *companyRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	query := `SELECT id, name, description, location, contact_information FROM company WHERE id = $1`
	var company domain.Company
	err := r.db.QueryRow(ctx, query, id).Scan(
		&company.ID, &company.Name, &company.Description, &company.Location, &company.ContactInformation,
	)
	if err != nil {
		return nil, mapError(err)
	}

	if err := r.hydrateJobPosts(ctx, &company); err != nil {
		return nil, mapError(err)
	}
	return &company, nil
}

// hydrateJobPosts loads the jobs posted by the company so the entity
// carries its side of the one-to-many.
func (r *companyRepo) hydrateJobPosts(ctx context.Context, company *domain.Company) error {
	query := `SELECT id, title, description, required_skills, experience FROM job WHERE company_id = $1`

	rows, err := r.db.Query(ctx, query, company.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(&job.ID, &job.Title, &job.Description, &job.RequiredSkills, &job.Experience); err != nil {
			return err
		}
		company.AddJobPost(&job)
	}
	return rows.Err()
}

func (r *companyRepo) Fetch(ctx context.Context) ([]domain.Company, error) {
	query := `SELECT id, name, description, location, contact_information FROM company`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var companies []domain.Company
	for rows.Next() {
		var company domain.Company
		if err := rows.Scan(&company.ID, &company.Name, &company.Description, &company.Location, &company.ContactInformation); err != nil {
			return nil, mapError(err)
		}
		companies = append(companies, company)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}

	for i := range companies {
		if err := r.hydrateJobPosts(ctx, &companies[i]); err != nil {
			return nil, mapError(err)
		}
	}
	return companies, nil
}

func (r *companyRepo) Save(ctx context.Context, company *domain.Company) error {
	if company.ID == uuid.Nil {
		company.ID = uuid.New()
		query := `INSERT INTO company (id, name, description, location, contact_information) VALUES ($1, $2, $3, $4, $5)`
		_, err := r.db.Exec(ctx, query, company.ID, company.Name, company.Description, company.Location, company.ContactInformation)
		return mapError(err)
	}

	query := `UPDATE company SET name = $2, description = $3, location = $4, contact_information = $5 WHERE id = $1`
	_, err := r.db.Exec(ctx, query, company.ID, company.Name, company.Description, company.Location, company.ContactInformation)
	return mapError(err)
}

func (r *companyRepo) Delete(ctx context.Context, company *domain.Company) error {
	_, err := r.db.Exec(ctx, `DELETE FROM company WHERE id = $1`, company.ID)
	return mapError(err)
}
