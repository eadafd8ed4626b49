package validator

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"app/internal/repository"
	"app/internal/usecase"
)

var (
	ErrNameRequired     = errors.New("name is required")
	ErrEmailRequired    = errors.New("email is required")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password too short")
	ErrDateRequired     = errors.New("email_verified_at is required")
)

var emailRegexp = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type userValidator struct {
	users repository.UserRepository
}

// Usecaseは interface を依存注入
func NewUserValidator(users repository.UserRepository) usecase.UserValidator {
	return &userValidator{users: users}
}

func (v *userValidator) ValidateCreate(ctx context.Context, in usecase.UserInput) error {
	if err := v.validateCommon(in); err != nil {
		return err
	}

	if strings.TrimSpace(in.Password) == "" {
		return ErrPasswordRequired
	}
	if len(in.Password) < 8 {
		return ErrPasswordTooShort
	}
	if strings.TrimSpace(in.EmailVerifiedAt) == "" {
		return ErrDateRequired
	}

	//email重複チェック
	existing, err := v.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return usecase.ErrEmailAlreadyUsed
	}

	return nil
}

func (v *userValidator) ValidateUpdate(ctx context.Context, userID int64, in usecase.UserInput) error {
	if err := v.validateCommon(in); err != nil {
		return err
	}

	//更新時はパスワード未入力なら変更しない
	if in.Password != "" && len(in.Password) < 8 {
		return ErrPasswordTooShort
	}

	//email重複チェック（自分自身は除く）
	existing, err := v.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != userID {
		return usecase.ErrEmailAlreadyUsed
	}

	return nil
}

func (v *userValidator) validateCommon(in usecase.UserInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrNameRequired
	}
	if strings.TrimSpace(in.Email) == "" {
		return ErrEmailRequired
	}
	if !emailRegexp.MatchString(in.Email) {
		return ErrInvalidEmail
	}
	return nil
}
