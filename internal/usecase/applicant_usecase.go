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

type applicantUsecase struct {
	applicantRepo domain.ApplicantRepository
	jobRepo       domain.JobRepository
	validate      *validator.Validate
}

func NewApplicantUsecase(applicantRepo domain.ApplicantRepository, jobRepo domain.JobRepository, validate *validator.Validate) domain.ApplicantUsecase {
	return &applicantUsecase{
		applicantRepo: applicantRepo,
		jobRepo:       jobRepo,
		validate:      validate,
	}
}

// Create links the applicant to the job it applies for, validates and
// persists. The job reference is resolved here so the handler only deals
// in identifiers.
func (u *applicantUsecase) Create(ctx context.Context, applicant *domain.Applicant, jobApplied uuid.UUID) error {
	job, err := u.jobRepo.GetByID(ctx, jobApplied)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.BadRequest("Job applied to does not exist").
				WithData(map[string]string{"jobsApplied": jobApplied.String()})
		}
		return err
	}
	applicant.Apply(job)

	if violations := validation.Violations(u.validate.Struct(applicant)); len(violations) > 0 {
		return apperror.Validation(violations)
	}

	return u.applicantRepo.Save(ctx, applicant)
}

func (u *applicantUsecase) GetByID(ctx context.Context, id uuid.UUID) (*domain.Applicant, error) {
	return u.applicantRepo.GetByID(ctx, id)
}

// List requires the authenticated caller. A missing identity here is a
// broken request pipeline, not a client error.
func (u *applicantUsecase) List(ctx context.Context, callerEmail string) ([]domain.Applicant, error) {
	if callerEmail == "" {
		return nil, apperror.Internal(errors.New("no authenticated user in request scope"))
	}
	return u.applicantRepo.Fetch(ctx)
}

func (u *applicantUsecase) Update(ctx context.Context, id uuid.UUID, fields *domain.Applicant) (*domain.Applicant, error) {
	applicant, err := u.applicantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applicant.Name = fields.Name
	applicant.ContactInformation = fields.ContactInformation
	applicant.JobPreferences = fields.JobPreferences

	if violations := validation.Violations(u.validate.Struct(applicant)); len(violations) > 0 {
		return nil, apperror.Validation(violations)
	}

	if err := u.applicantRepo.Save(ctx, applicant); err != nil {
		return nil, err
	}
	return applicant, nil
}

func (u *applicantUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	applicant, err := u.applicantRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return u.applicantRepo.Delete(ctx, applicant)
}
