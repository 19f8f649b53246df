package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

const minPasswordLength = 10

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *auth.TokenManager
	validate *validator.Validate
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *auth.TokenManager, validate *validator.Validate) domain.AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
		validate: validate,
	}
}

// Register applies the password policy before field validation, then
// stores the user with a bcrypt hash. The plaintext never leaves this
// function.
func (u *authUsecase) Register(ctx context.Context, email, password string) (*domain.User, error) {
	if password == "" {
		return nil, apperror.BadRequest("Password cannot be empty").
			WithData(map[string]string{"password": password})
	}
	if len(password) < minPasswordLength {
		return nil, apperror.BadRequest("Password length needs to be at least 10 characters or longer").
			WithData(map[string]string{"password": password})
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.User{
		Email:    email,
		Username: email,
		Password: hash,
	}

	if violations := validation.Violations(u.validate.Struct(user)); len(violations) > 0 {
		return nil, apperror.Validation(violations)
	}

	if err := u.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) Login(ctx context.Context, username, password string) (string, error) {
	user, err := u.userRepo.GetByEmail(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", apperror.Unauthorized("Invalid credentials")
		}
		return "", err
	}

	if !auth.CheckPassword(user.Password, password) {
		return "", apperror.Unauthorized("Invalid credentials")
	}

	return u.tokens.Issue(user.ID.String(), user.Email)
}
