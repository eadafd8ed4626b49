package repository

import (
	"app/internal/domain/model"
	"context"
)

type AdminUserListFilter struct {
	Page  int
	Limit int
	Q     string
}

// 保存・取得を約束
type UserRepository interface {
	//新規ユーザー作成
	Create(ctx context.Context, user *model.User) error
	// IDからユーザーを1件取得する。見つからなければ(nil, nil)。
	FindByID(ctx context.Context, userID int64) (*model.User, error)
	//メールからユーザーを一件取得する。見つからなければ(nil, nil)。
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	//ユーザー情報の更新
	Update(ctx context.Context, user *model.User) error
	//ユーザー削除
	Delete(ctx context.Context, userID int64) error
	//管理者用の一覧（name/emailの部分一致）
	ListAdmin(ctx context.Context, f AdminUserListFilter) ([]model.User, int64, error)
}
