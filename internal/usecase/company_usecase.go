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

type companyUsecase struct {
	companyRepo domain.CompanyRepository
	validate    *validator.Validate
}

func NewCompanyUsecase(companyRepo domain.CompanyRepository, validate *validator.Validate) domain.CompanyUsecase {
	return &companyUsecase{
		companyRepo: companyRepo,
		validate:    validate,
	}
}

func (u *companyUsecase) Create(ctx context.Context, company *domain.Company) error {
	if violations := validation.Violations(u.validate.Struct(company)); len(violations) > 0 {
		return apperror.Validation(violations)
	}
	return u.companyRepo.Save(ctx, company)
}

func (u *companyUsecase) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	return u.companyRepo.GetByID(ctx, id)
}

func (u *companyUsecase) List(ctx context.Context, callerEmail string) ([]domain.Company, error) {
	if callerEmail == "" {
		return nil, apperror.Internal(errors.New("no authenticated user in request scope"))
	}
	return u.companyRepo.Fetch(ctx)
}

func (u *companyUsecase) Update(ctx context.Context, id uuid.UUID, fields *domain.Company) (*domain.Company, error) {
	company, err := u.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	company.Name = fields.Name
	company.Description = fields.Description
	company.Location = fields.Location
	company.ContactInformation = fields.ContactInformation

	if violations := validation.Violations(u.validate.Struct(company)); len(violations) > 0 {
		return nil, apperror.Validation(violations)
	}

	if err := u.companyRepo.Save(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

func (u *companyUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	company, err := u.companyRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return u.companyRepo.Delete(ctx, company)
}
