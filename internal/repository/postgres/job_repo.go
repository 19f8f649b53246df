package postgres

import (
	"context"
	"fmt"
	"strings"

	"go-jobboard-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobSelect = `
	SELECT j.id, j.title, j.description, j.required_skills, j.experience,
	       c.id, c.name, c.description, c.location, c.contact_information
	FROM job j
	LEFT JOIN company c ON j.company_id = c.id`

func scanJob(row interface{ Scan(...any) error }) (domain.Job, error) {
	var job domain.Job
	var company domain.Company
	err := row.Scan(
		&job.ID, &job.Title, &job.Description, &job.RequiredSkills, &job.Experience,
		&company.ID, &company.Name, &company.Description, &company.Location, &company.ContactInformation,
	)
	if err != nil {
		return domain.Job{}, err
	}
	job.Company = &company
	return job, nil
}

func (r *jobRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	job, err := scanJob(r.db.QueryRow(ctx, jobSelect+` WHERE j.id = $1`, id))
	if err != nil {
		return nil, mapError(err)
	}
	return &job, nil
}

func (r *jobRepo) Fetch(ctx context.Context) ([]domain.Job, error) {
	return r.FetchFiltered(ctx, domain.JobFilter{})
}

// buildFilteredQuery appends a LIKE predicate per present filter, combined
// with AND. An empty string still filters; only nil means absent.
func buildFilteredQuery(filter domain.JobFilter) (string, []any) {
	query := jobSelect
	var conditions []string
	var args []any

	addLike := func(column string, value *string) {
		if value == nil {
			return
		}
		args = append(args, *value)
		conditions = append(conditions, fmt.Sprintf("%s LIKE '%%' || $%d || '%%'", column, len(args)))
	}

	addLike("j.title", filter.Title)
	addLike("c.name", filter.CompanyName)
	addLike("c.location", filter.CompanyLocation)

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	return query, args
}

func (r *jobRepo) FetchFiltered(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	query, args := buildFilteredQuery(filter)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, mapError(err)
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (r *jobRepo) Save(ctx context.Context, job *domain.Job) error {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
		query := `INSERT INTO job (id, company_id, title, description, required_skills, experience) VALUES ($1, $2, $3, $4, $5, $6)`
		_, err := r.db.Exec(ctx, query, job.ID, job.Company.ID, job.Title, job.Description, job.RequiredSkills, job.Experience)
		return mapError(err)
	}

	query := `UPDATE job SET company_id = $2, title = $3, description = $4, required_skills = $5, experience = $6 WHERE id = $1`
	_, err := r.db.Exec(ctx, query, job.ID, job.Company.ID, job.Title, job.Description, job.RequiredSkills, job.Experience)
	return mapError(err)
}

func (r *jobRepo) Delete(ctx context.Context, job *domain.Job) error {
	_, err := r.db.Exec(ctx, `DELETE FROM job WHERE id = $1`, job.ID)
	return mapError(err)
}
