package usecase

import (
	"context"
	"net/http"
	"time"

	"app/internal/currency"
	"app/internal/domain/model"
	"app/internal/pricing"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

// usecaseがOrderValidatorに依存する約束
type OrderValidator interface {
	ValidateSave(ctx context.Context, in OrderInput) error
}

type AdminOrderUsecase struct {
	tx        repo.TransactionManager
	auditRepo repo.AuditLogRepository
	validator OrderValidator
}

func NewAdminOrderUsecase(tx repo.TransactionManager, auditRepo repo.AuditLogRepository, validator OrderValidator) *AdminOrderUsecase {
	return &AdminOrderUsecase{tx: tx, auditRepo: auditRepo, validator: validator}
}

type OrderItemInput struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`

	//商品選択時点の価格。保存時に商品から引き直さない。
	UnitAmount decimal.Decimal `json:"unit_amount"`
}

type OrderInput struct {
	UserID         int64            `json:"user_id"`
	PaymentMethod  string           `json:"payment_method"`
	PaymentStatus  string           `json:"payment_status"`
	Status         string           `json:"status"`
	Currency       string           `json:"currency"`
	ShippingMethod string           `json:"shipping_method"`
	Notes          string           `json:"notes"`
	Items          []OrderItemInput `json:"items"`
}

type AdminUpdateOrderStatusInput struct {
	Status string
}

type OrderItemOutput struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product_id"`
	Quantity    int64           `json:"quantity"`
	UnitAmount  decimal.Decimal `json:"unit_amount"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type OrderOutput struct {
	ID             int64  `json:"id"`
	UserID         int64  `json:"user_id"`
	PaymentMethod  string `json:"payment_method"`
	PaymentStatus  string `json:"payment_status"`
	Status         string `json:"status"`
	Currency       string `json:"currency"`
	ShippingMethod string `json:"shipping_method"`
	Notes          string `json:"notes"`

	//保存済みのgrand_totalが正。表示もここから作る
	GrandTotal        decimal.Decimal `json:"grand_total"`
	GrandTotalDisplay string          `json:"grand_total_display"`

	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	Items     []OrderItemOutput `json:"items"`
}

type OrderListOutput struct {
	Items []OrderOutput `json:"items"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

// 注文一覧
func (u *AdminOrderUsecase) List(ctx context.Context, f repo.AdminOrderListFilter) (OrderListOutput, error) {
	// page/limitの最低限チェック
	if f.Page < 1 {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if f.Limit < 1 || f.Limit > 100 {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	var out OrderListOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, total, err := r.Orders().ListAdmin(ctx, f)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs := make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			outs = append(outs, toOrderOutput(o, items))
		}

		out = OrderListOutput{Items: outs, Total: total, Page: f.Page, Limit: f.Limit}
		return nil
	})

	if err != nil {
		return OrderListOutput{}, err
	}
	return out, nil
}

func (u *AdminOrderUsecase) Get(ctx context.Context, orderID int64) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = toOrderOutput(o, items)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// 注文作成。grand_totalは送信値を信用せず明細から再計算して保存する。
func (u *AdminOrderUsecase) Create(ctx context.Context, in OrderInput) (OrderOutput, error) {
	if err := u.validator.ValidateSave(ctx, in); err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := u.checkReferences(ctx, r, in); err != nil {
			return err
		}

		items, grandTotal := buildOrderItems(in.Items)

		now := time.Now()
		orderID, err := r.Orders().Create(ctx, model.Order{
			UserID:         in.UserID,
			PaymentMethod:  model.PaymentMethod(in.PaymentMethod),
			PaymentStatus:  model.PaymentStatus(in.PaymentStatus),
			Status:         model.OrderStatus(in.Status),
			Currency:       model.Currency(in.Currency),
			ShippingMethod: model.ShippingMethod(in.ShippingMethod),
			Notes:          in.Notes,
			GrandTotal:     grandTotal,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.OrderItems().ReplaceForOrder(ctx, orderID, items); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		created, err := r.Orders().FindByID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		saved, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = toOrderOutput(created, saved)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// 注文更新。明細は丸ごと入れ替えてgrand_totalを再計算する。
func (u *AdminOrderUsecase) Update(ctx context.Context, orderID int64, in OrderInput) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := u.validator.ValidateSave(ctx, in); err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		existing, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := u.checkReferences(ctx, r, in); err != nil {
			return err
		}

		items, grandTotal := buildOrderItems(in.Items)

		existing.UserID = in.UserID
		existing.PaymentMethod = model.PaymentMethod(in.PaymentMethod)
		existing.PaymentStatus = model.PaymentStatus(in.PaymentStatus)
		existing.Status = model.OrderStatus(in.Status)
		existing.Currency = model.Currency(in.Currency)
		existing.ShippingMethod = model.ShippingMethod(in.ShippingMethod)
		existing.Notes = in.Notes
		existing.GrandTotal = grandTotal

		if err := r.Orders().Update(ctx, existing); err != nil {
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusNotFound, "not found")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.OrderItems().ReplaceForOrder(ctx, orderID, items); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		updated, err := r.Orders().FindByID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		saved, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = toOrderOutput(updated, saved)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// 注文削除（明細も一緒に消える）
func (u *AdminOrderUsecase) Delete(ctx context.Context, actorAdminUserID int64, orderID int64) error {
	if actorAdminUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.Orders().Delete(ctx, orderID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//監査ログ（DELETE_ORDER）
		beforeJSON := `{"status":"` + string(o.Status) + `","grand_total":"` + o.GrandTotal.StringFixed(2) + `"}`
		if err := u.auditRepo.Create(ctx, model.AuditLog{
			ActorUserID:  actorAdminUserID,
			Action:       model.AuditActionDeleteOrder,
			ResourceType: model.AuditResourceOrder,
			ResourceID:   orderID,
			BeforeJSON:   beforeJSON,
			AfterJSON:    "{}",
			CreatedAt:    time.Now(),
		}); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		return nil
	})
}

// ステータス更新。遷移グラフは持たない（どの状態からどの状態へも変えられる）。
func (u *AdminOrderUsecase) UpdateStatus(ctx context.Context, actorAdminUserID int64, orderID int64, in AdminUpdateOrderStatusInput) error {
	if actorAdminUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	newStatus := in.Status
	switch model.OrderStatus(newStatus) {
	case model.OrderStatusNew, model.OrderStatusProcessing, model.OrderStatusShipped,
		model.OrderStatusDelivered, model.OrderStatusCanceled:
		// OK
	default:
		return NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		// すでに同じなら何もしない（200）
		if string(o.Status) == newStatus {
			return nil
		}

		beforeStatus := string(o.Status)
		if err := r.Orders().UpdateStatus(ctx, orderID, model.OrderStatus(newStatus)); err != nil {
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusNotFound, "not found")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//監査ログ（UPDATE_ORDER_STATUS）
		beforeJSON := `{"status":"` + beforeStatus + `"}`
		afterJSON := `{"status":"` + newStatus + `"}`
		if err := u.auditRepo.Create(ctx, model.AuditLog{
			ActorUserID:  actorAdminUserID,
			Action:       model.AuditActionUpdateOrderStatus,
			ResourceType: model.AuditResourceOrder,
			ResourceID:   orderID,
			BeforeJSON:   beforeJSON,
			AfterJSON:    afterJSON,
			CreatedAt:    time.Now(),
		}); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		return nil
	})
}

// 顧客と商品の存在チェック
func (u *AdminOrderUsecase) checkReferences(ctx context.Context, r repo.TxRepos, in OrderInput) error {
	user, err := r.Users().FindByID(ctx, in.UserID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if user == nil {
		return NewHTTPError(http.StatusBadRequest, "invalid user_id")
	}

	for _, it := range in.Items {
		_, err := r.Products().FindByID(ctx, it.ProductID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusBadRequest, "invalid product_id")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
	}
	return nil
}

// 入力明細からtotal_amountとgrand_totalを再計算する
func buildOrderItems(ins []OrderItemInput) ([]model.OrderItem, decimal.Decimal) {
	lines := make([]pricing.LineState, 0, len(ins))
	for _, it := range ins {
		line := pricing.OnHydrate(pricing.LineState{
			ProductID:  it.ProductID,
			Quantity:   it.Quantity,
			UnitAmount: it.UnitAmount,
		})
		lines = append(lines, line)
	}

	now := time.Now()
	items := make([]model.OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, model.OrderItem{
			ProductID:   l.ProductID,
			Quantity:    l.Quantity,
			UnitAmount:  l.UnitAmount,
			TotalAmount: l.TotalAmount,
			CreatedAt:   now,
		})
	}

	return items, pricing.ComputeGrandTotal(lines)
}

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			ID:          it.ID,
			ProductID:   it.ProductID,
			Quantity:    it.Quantity,
			UnitAmount:  it.UnitAmount,
			TotalAmount: it.TotalAmount,
		})
	}

	return OrderOutput{
		ID:                o.ID,
		UserID:            o.UserID,
		PaymentMethod:     string(o.PaymentMethod),
		PaymentStatus:     string(o.PaymentStatus),
		Status:            string(o.Status),
		Currency:          string(o.Currency),
		ShippingMethod:    string(o.ShippingMethod),
		Notes:             o.Notes,
		GrandTotal:        o.GrandTotal,
		GrandTotalDisplay: currency.Format(o.GrandTotal, o.Currency),
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
		Items:             outItems,
	}
}
