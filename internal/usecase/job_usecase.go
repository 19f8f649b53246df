package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type jobUsecase struct {
	jobRepo     domain.JobRepository
	companyRepo domain.CompanyRepository
	validate    *validator.Validate
}

func NewJobUsecase(jobRepo domain.JobRepository, companyRepo domain.CompanyRepository, validate *validator.Validate) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:     jobRepo,
		companyRepo: companyRepo,
		validate:    validate,
	}
}

// Create resolves the posting company and persists the job. An unknown
// company leaves the reference unset so validation reports it as blank.
func (u *jobUsecase) Create(ctx context.Context, job *domain.Job, companyID uuid.UUID) error {
	company, err := u.companyRepo.GetByID(ctx, companyID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	job.Company = company

	if violations := validation.Violations(u.validate.Struct(job)); len(violations) > 0 {
		return apperror.Validation(violations)
	}

	return u.jobRepo.Save(ctx, job)
}

func (u *jobUsecase) GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	return u.jobRepo.GetByID(ctx, id)
}

func (u *jobUsecase) List(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	return u.jobRepo.FetchFiltered(ctx, filter)
}

func (u *jobUsecase) Update(ctx context.Context, id uuid.UUID, fields *domain.Job) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	job.Title = fields.Title
	job.Description = fields.Description
	job.RequiredSkills = fields.RequiredSkills
	job.Experience = fields.Experience

	if violations := validation.Violations(u.validate.Struct(job)); len(violations) > 0 {
		return nil, apperror.Validation(violations)
	}

	if err := u.jobRepo.Save(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (u *jobUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return u.jobRepo.Delete(ctx, job)
}
