package postgres

import (
	"context"

	"go-jobboard-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicantRepo struct {
	db *pgxpool.Pool
}

func NewApplicantRepository(db *pgxpool.Pool) domain.ApplicantRepository {
	return &applicantRepo{db: db}
}

func (r *applicantRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Applicant, error) {
	query := `SELECT id, name, contact_information, job_preferences FROM applicant WHERE id = $1`
	var applicant domain.Applicant
	err := r.db.QueryRow(ctx, query, id).Scan(
		&applicant.ID, &applicant.Name, &applicant.ContactInformation, &applicant.JobPreferences,
	)
	if err != nil {
		return nil, mapError(err)
	}

	if err := r.hydrateJobsApplied(ctx, &applicant); err != nil {
		return nil, mapError(err)
	}
	return &applicant, nil
}

// hydrateJobsApplied loads the jobs linked through applicant_job so the
// entity carries its side of the relationship.
func (r *applicantRepo) hydrateJobsApplied(ctx context.Context, applicant *domain.Applicant) error {
	query := `
		SELECT j.id, j.title, j.description, j.required_skills, j.experience,
		       c.id, c.name, c.description, c.location, c.contact_information
		FROM applicant_job aj
		JOIN job j ON aj.job_id = j.id
		LEFT JOIN company c ON j.company_id = c.id
		WHERE aj.applicant_id = $1`

	rows, err := r.db.Query(ctx, query, applicant.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var job domain.Job
		var company domain.Company
		if err := rows.Scan(
			&job.ID, &job.Title, &job.Description, &job.RequiredSkills, &job.Experience,
			&company.ID, &company.Name, &company.Description, &company.Location, &company.ContactInformation,
		); err != nil {
			return err
		}
		job.Company = &company
		applicant.Apply(&job)
	}
	return rows.Err()
}

func (r *applicantRepo) Fetch(ctx context.Context) ([]domain.Applicant, error) {
	query := `SELECT id, name, contact_information, job_preferences FROM applicant`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var applicants []domain.Applicant
	for rows.Next() {
		var applicant domain.Applicant
		if err := rows.Scan(&applicant.ID, &applicant.Name, &applicant.ContactInformation, &applicant.JobPreferences); err != nil {
			return nil, mapError(err)
		}
		applicants = append(applicants, applicant)
	}
	return applicants, rows.Err()
}

// Save persists the applicant and its job links in one transaction. The
// store assigns the identifier on first save.
func (r *applicantRepo) Save(ctx context.Context, applicant *domain.Applicant) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return mapError(err)
	}
	defer tx.Rollback(ctx)

	if applicant.ID == uuid.Nil {
		applicant.ID = uuid.New()
		query := `INSERT INTO applicant (id, name, contact_information, job_preferences) VALUES ($1, $2, $3, $4)`
		if _, err := tx.Exec(ctx, query, applicant.ID, applicant.Name, applicant.ContactInformation, applicant.JobPreferences); err != nil {
			return mapError(err)
		}
	} else {
		query := `UPDATE applicant SET name = $2, contact_information = $3, job_preferences = $4 WHERE id = $1`
		if _, err := tx.Exec(ctx, query, applicant.ID, applicant.Name, applicant.ContactInformation, applicant.JobPreferences); err != nil {
			return mapError(err)
		}
	}

	// Owning-side write of the many-to-many. Links are only added here;
	// removal happens through entity deletion and the schema cascade.
	for _, job := range applicant.JobsApplied() {
		query := `INSERT INTO applicant_job (applicant_id, job_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`
		if _, err := tx.Exec(ctx, query, applicant.ID, job.ID); err != nil {
			return mapError(err)
		}
	}

	return mapError(tx.Commit(ctx))
}

func (r *applicantRepo) Delete(ctx context.Context, applicant *domain.Applicant) error {
	_, err := r.db.Exec(ctx, `DELETE FROM applicant WHERE id = $1`, applicant.ID)
	return mapError(err)
}
