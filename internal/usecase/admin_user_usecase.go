package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// emailが既に使用済み（validatorが返し、ここで409に変換する）
var ErrEmailAlreadyUsed = errors.New("email already used")

// usecaseがUserValidatorに依存する約束
type UserValidator interface {
	ValidateCreate(ctx context.Context, in UserInput) error
	ValidateUpdate(ctx context.Context, userID int64, in UserInput) error
}

type AdminUserUsecase struct {
	users     repo.UserRepository
	auditRepo repo.AuditLogRepository
	validator UserValidator
}

func NewAdminUserUsecase(users repo.UserRepository, auditRepo repo.AuditLogRepository, validator UserValidator) *AdminUserUsecase {
	return &AdminUserUsecase{users: users, auditRepo: auditRepo, validator: validator}
}

type UserInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`

	//更新時は空なら変更しない
	Password string `json:"password"`

	//YYYY-MM-DD
	EmailVerifiedAt string `json:"email_verified_at"`
}

type UserOutput struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Role            string     `json:"role"`
	EmailVerifiedAt *time.Time `json:"email_verified_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type UserListOutput struct {
	Items []UserOutput `json:"items"`
	Total int64        `json:"total"`
	Page  int          `json:"page"`
	Limit int          `json:"limit"`
}

type UserOptionOutput struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u *AdminUserUsecase) List(ctx context.Context, f repo.AdminUserListFilter) (UserListOutput, error) {
	if f.Page < 1 {
		return UserListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if f.Limit < 1 || f.Limit > 100 {
		return UserListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	users, total, err := u.users.ListAdmin(ctx, f)
	if err != nil {
		return UserListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]UserOutput, 0, len(users))
	for _, us := range users {
		outs = append(outs, toUserOutput(&us))
	}

	return UserListOutput{Items: outs, Total: total, Page: f.Page, Limit: f.Limit}, nil
}

func (u *AdminUserUsecase) Get(ctx context.Context, userID int64) (UserOutput, error) {
	if userID <= 0 {
		return UserOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return UserOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if user == nil {
		return UserOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	return toUserOutput(user), nil
}

// 顧客セレクト用の選択肢
func (u *AdminUserUsecase) ListOptions(ctx context.Context, q string) ([]UserOptionOutput, error) {
	users, _, err := u.users.ListAdmin(ctx, repo.AdminUserListFilter{Page: 1, Limit: 20, Q: q})
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]UserOptionOutput, 0, len(users))
	for _, us := range users {
		outs = append(outs, UserOptionOutput{ID: us.ID, Name: us.Name, Email: us.Email})
	}
	return outs, nil
}

func (u *AdminUserUsecase) Create(ctx context.Context, in UserInput) (UserOutput, error) {
	if err := u.validator.ValidateCreate(ctx, in); err != nil {
		return UserOutput{}, mapUserValidationError(err)
	}

	verifiedAt, err := parseDate(in.EmailVerifiedAt)
	if err != nil {
		return UserOutput{}, NewHTTPError(http.StatusBadRequest, "invalid email_verified_at")
	}

	//パスワードは必ずハッシュ化して保存（平文保存しない）
	pwHash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	user := &model.User{
		Name:            in.Name,
		Email:           in.Email,
		PasswordHash:    string(pwHash),
		Role:            model.RoleUser,
		EmailVerifiedAt: verifiedAt,
	}

	if err := u.users.Create(ctx, user); err != nil {
		//unique index違反は競合として返す
		return UserOutput{}, NewHTTPError(http.StatusConflict, "email already used")
	}

	return toUserOutput(user), nil
}

func (u *AdminUserUsecase) Update(ctx context.Context, userID int64, in UserInput) (UserOutput, error) {
	if userID <= 0 {
		return UserOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := u.validator.ValidateUpdate(ctx, userID, in); err != nil {
		return UserOutput{}, mapUserValidationError(err)
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return UserOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if user == nil {
		return UserOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	user.Name = in.Name
	user.Email = in.Email

	if in.EmailVerifiedAt != "" {
		verifiedAt, err := parseDate(in.EmailVerifiedAt)
		if err != nil {
			return UserOutput{}, NewHTTPError(http.StatusBadRequest, "invalid email_verified_at")
		}
		user.EmailVerifiedAt = verifiedAt
	}

	//パスワードは入力があったときだけ更新
	if in.Password != "" {
		pwHash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return UserOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
		}
		user.PasswordHash = string(pwHash)
	}

	if err := u.users.Update(ctx, user); err != nil {
		return UserOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toUserOutput(user), nil
}

func (u *AdminUserUsecase) Delete(ctx context.Context, actorAdminUserID int64, userID int64) error {
	if actorAdminUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if userID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if user == nil {
		return NewHTTPError(http.StatusNotFound, "not found")
	}

	if err := u.users.Delete(ctx, userID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//監査ログ（DELETE_USER）
	beforeJSON := `{"email":"` + user.Email + `"}`
	if err := u.auditRepo.Create(ctx, model.AuditLog{
		ActorUserID:  actorAdminUserID,
		Action:       model.AuditActionDeleteUser,
		ResourceType: model.AuditResourceUser,
		ResourceID:   userID,
		BeforeJSON:   beforeJSON,
		AfterJSON:    "{}",
		CreatedAt:    time.Now(),
	}); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return nil
}

// validatorのエラーをHTTPに変換。email重複だけ409、他は400。
func mapUserValidationError(err error) error {
	if errors.Is(err, ErrEmailAlreadyUsed) {
		return NewHTTPError(http.StatusConflict, err.Error())
	}
	return NewHTTPError(http.StatusBadRequest, err.Error())
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func toUserOutput(u *model.User) UserOutput {
	return UserOutput{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		Role:            string(u.Role),
		EmailVerifiedAt: u.EmailVerifiedAt,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}
