package usecase_test

import (
	"context"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newOrderUC(tx *TxManagerMock, audit *AuditRepoMock, v *OrderValidatorMock) *usecase.AdminOrderUsecase {
	return usecase.NewAdminOrderUsecase(tx, audit, v)
}

func validOrderInput() usecase.OrderInput {
	return usecase.OrderInput{
		UserID:        1,
		PaymentMethod: "credit_card",
		PaymentStatus: "pending",
		Status:        "new",
		Currency:      "USD",
		Items: []usecase.OrderItemInput{
			{ProductID: 7, Quantity: 3, UnitAmount: decimal.RequireFromString("19.99")},
		},
	}
}

// =====================
// List
// =====================

func TestAdminOrderUsecase_List_InvalidPage(t *testing.T) {
	uc := newOrderUC(new(TxManagerMock), new(AuditRepoMock), new(OrderValidatorMock))

	_, err := uc.List(context.Background(), repo.AdminOrderListFilter{Page: 0, Limit: 20})
	assertErrContains(t, err, "invalid page")
}

func TestAdminOrderUsecase_List_InvalidLimit(t *testing.T) {
	uc := newOrderUC(new(TxManagerMock), new(AuditRepoMock), new(OrderValidatorMock))

	_, err := uc.List(context.Background(), repo.AdminOrderListFilter{Page: 1, Limit: 0})
	assertErrContains(t, err, "invalid limit")
}

func TestAdminOrderUsecase_List_Success_CallsItemsPerOrder(t *testing.T) {
	ctx := context.Background()

	tx := new(TxManagerMock)
	ordersRepo := new(OrderRepoMock)
	itemsRepo := new(OrderItemRepoMock)

	tx.Repos = &TxReposMock{orders: ordersRepo, orderItems: itemsRepo}
	tx.On("WithinTx", mock.Anything).Return(nil)

	f := repo.AdminOrderListFilter{Page: 1, Limit: 20}

	orders := []model.Order{
		{ID: 10, Status: model.OrderStatusNew, Currency: model.CurrencyUSD},
		{ID: 11, Status: model.OrderStatusShipped, Currency: model.CurrencyUSD},
	}

	ordersRepo.On("ListAdmin", mock.Anything, f).Return(orders, int64(2), nil)
	itemsRepo.On("ListByOrderID", mock.Anything, int64(10)).Return([]model.OrderItem{}, nil)
	itemsRepo.On("ListByOrderID", mock.Anything, int64(11)).Return([]model.OrderItem{}, nil)

	uc := newOrderUC(tx, new(AuditRepoMock), new(OrderValidatorMock))

	out, err := uc.List(ctx, f)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(out.Items))
	assert.Equal(t, int64(2), out.Total)

	tx.AssertExpectations(t)
	ordersRepo.AssertExpectations(t)
	itemsRepo.AssertExpectations(t)
}

// =====================
// Create
// =====================

func TestAdminOrderUsecase_Create_ValidationError(t *testing.T) {
	v := new(OrderValidatorMock)
	in := usecase.OrderInput{}
	v.On("ValidateSave", mock.Anything, in).Return(assert.AnError)

	uc := newOrderUC(new(TxManagerMock), new(AuditRepoMock), v)

	_, err := uc.Create(context.Background(), in)
	assert.Error(t, err)
	v.AssertExpectations(t)
}

func TestAdminOrderUsecase_Create_UnknownUser(t *testing.T) {
	ctx := context.Background()
	in := validOrderInput()

	v := new(OrderValidatorMock)
	v.On("ValidateSave", mock.Anything, in).Return(nil)

	tx := new(TxManagerMock)
	usersRepo := new(UserRepoMock)
	tx.Repos = &TxReposMock{users: usersRepo}
	tx.On("WithinTx", mock.Anything).Return(nil)

	usersRepo.On("FindByID", mock.Anything, int64(1)).Return((*model.User)(nil), nil)

	uc := newOrderUC(tx, new(AuditRepoMock), v)

	_, err := uc.Create(ctx, in)
	assertErrContains(t, err, "invalid user_id")
}

func TestAdminOrderUsecase_Create_UnknownProduct(t *testing.T) {
	ctx := context.Background()
	in := validOrderInput()

	v := new(OrderValidatorMock)
	v.On("ValidateSave", mock.Anything, in).Return(nil)

	tx := new(TxManagerMock)
	usersRepo := new(UserRepoMock)
	productsRepo := new(ProductRepoMock)
	tx.Repos = &TxReposMock{users: usersRepo, products: productsRepo}
	tx.On("WithinTx", mock.Anything).Return(nil)

	usersRepo.On("FindByID", mock.Anything, int64(1)).Return(&model.User{ID: 1}, nil)
	productsRepo.On("FindByID", mock.Anything, int64(7)).Return(model.Product{}, repo.ErrNotFound)

	uc := newOrderUC(tx, new(AuditRepoMock), v)

	_, err := uc.Create(ctx, in)
	assertErrContains(t, err, "invalid product_id")
}

// grand_totalは送信値に関係なく明細から再計算されて保存される
func TestAdminOrderUsecase_Create_RecomputesGrandTotal(t *testing.T) {
	ctx := context.Background()
	in := validOrderInput()

	v := new(OrderValidatorMock)
	v.On("ValidateSave", mock.Anything, in).Return(nil)

	tx := new(TxManagerMock)
	usersRepo := new(UserRepoMock)
	productsRepo := new(ProductRepoMock)
	ordersRepo := new(OrderRepoMock)
	itemsRepo := new(OrderItemRepoMock)
	tx.Repos = &TxReposMock{orders: ordersRepo, orderItems: itemsRepo, products: productsRepo, users: usersRepo}
	tx.On("WithinTx", mock.Anything).Return(nil)

	usersRepo.On("FindByID", mock.Anything, int64(1)).Return(&model.User{ID: 1}, nil)
	productsRepo.On("FindByID", mock.Anything, int64(7)).Return(model.Product{ID: 7}, nil)

	want := decimal.RequireFromString("59.97")

	ordersRepo.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.GrandTotal.Equal(want)
	})).Return(int64(42), nil)
	itemsRepo.On("ReplaceForOrder", mock.Anything, int64(42), mock.MatchedBy(func(items []model.OrderItem) bool {
		return len(items) == 1 && items[0].TotalAmount.Equal(want)
	})).Return(nil)

	saved := model.Order{ID: 42, UserID: 1, Status: model.OrderStatusNew, Currency: model.CurrencyUSD, GrandTotal: want}
	ordersRepo.On("FindByID", mock.Anything, int64(42)).Return(saved, nil)
	itemsRepo.On("ListByOrderID", mock.Anything, int64(42)).Return([]model.OrderItem{
		{ID: 1, OrderID: 42, ProductID: 7, Quantity: 3, UnitAmount: decimal.RequireFromString("19.99"), TotalAmount: want},
	}, nil)

	uc := newOrderUC(tx, new(AuditRepoMock), v)

	out, err := uc.Create(ctx, in)
	assert.NoError(t, err)
	assert.True(t, out.GrandTotal.Equal(want))
	assert.Contains(t, out.GrandTotalDisplay, "59.97")

	ordersRepo.AssertExpectations(t)
	itemsRepo.AssertExpectations(t)
}

// =====================
// UpdateStatus
// =====================

func TestAdminOrderUsecase_UpdateStatus_UnauthorizedActor(t *testing.T) {
	uc := newOrderUC(new(TxManagerMock), new(AuditRepoMock), new(OrderValidatorMock))

	err := uc.UpdateStatus(context.Background(), 0, 1, usecase.AdminUpdateOrderStatusInput{Status: "shipped"})
	assertErrContains(t, err, "unauthorized")
}

func TestAdminOrderUsecase_UpdateStatus_InvalidStatus(t *testing.T) {
	uc := newOrderUC(new(TxManagerMock), new(AuditRepoMock), new(OrderValidatorMock))

	err := uc.UpdateStatus(context.Background(), 1, 1, usecase.AdminUpdateOrderStatusInput{Status: "XXX"})
	assertErrContains(t, err, "invalid status")
}

func TestAdminOrderUsecase_UpdateStatus_NotFound(t *testing.T) {
	tx := new(TxManagerMock)
	ordersRepo := new(OrderRepoMock)
	tx.Repos = &TxReposMock{orders: ordersRepo}
	tx.On("WithinTx", mock.Anything).Return(nil)

	ordersRepo.On("FindByID", mock.Anything, int64(99)).Return(model.Order{}, repo.ErrNotFound)

	uc := newOrderUC(tx, new(AuditRepoMock), new(OrderValidatorMock))

	err := uc.UpdateStatus(context.Background(), 1, 99, usecase.AdminUpdateOrderStatusInput{Status: "shipped"})
	assertErrContains(t, err, "not found")
	ordersRepo.AssertExpectations(t)
}

func TestAdminOrderUsecase_UpdateStatus_SameStatus_NoOp(t *testing.T) {
	tx := new(TxManagerMock)
	ordersRepo := new(OrderRepoMock)
	audit := new(AuditRepoMock)
	tx.Repos = &TxReposMock{orders: ordersRepo}
	tx.On("WithinTx", mock.Anything).Return(nil)

	ordersRepo.On("FindByID", mock.Anything, int64(5)).Return(model.Order{ID: 5, Status: model.OrderStatusShipped}, nil)

	uc := newOrderUC(tx, audit, new(OrderValidatorMock))

	err := uc.UpdateStatus(context.Background(), 1, 5, usecase.AdminUpdateOrderStatusInput{Status: "shipped"})
	assert.NoError(t, err)

	// UpdateStatusも監査ログも呼ばれない
	ordersRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	audit.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// 遷移グラフは持たない：delivered→new のような逆行も許す
func TestAdminOrderUsecase_UpdateStatus_AnyTransitionAllowed_Audits(t *testing.T) {
	tx := new(TxManagerMock)
	ordersRepo := new(OrderRepoMock)
	audit := new(AuditRepoMock)
	tx.Repos = &TxReposMock{orders: ordersRepo}
	tx.On("WithinTx", mock.Anything).Return(nil)

	ordersRepo.On("FindByID", mock.Anything, int64(5)).Return(model.Order{ID: 5, Status: model.OrderStatusDelivered}, nil)
	ordersRepo.On("UpdateStatus", mock.Anything, int64(5), model.OrderStatusNew).Return(nil)
	audit.On("Create", mock.Anything, mock.MatchedBy(func(l model.AuditLog) bool {
		return l.Action == model.AuditActionUpdateOrderStatus && l.ResourceID == 5
	})).Return(nil)

	uc := newOrderUC(tx, audit, new(OrderValidatorMock))

	err := uc.UpdateStatus(context.Background(), 1, 5, usecase.AdminUpdateOrderStatusInput{Status: "new"})
	assert.NoError(t, err)

	ordersRepo.AssertExpectations(t)
	audit.AssertExpectations(t)
}

// =====================
// Delete
// =====================

func TestAdminOrderUsecase_Delete_Success_Audits(t *testing.T) {
	tx := new(TxManagerMock)
	ordersRepo := new(OrderRepoMock)
	audit := new(AuditRepoMock)
	tx.Repos = &TxReposMock{orders: ordersRepo}
	tx.On("WithinTx", mock.Anything).Return(nil)

	o := model.Order{ID: 9, Status: model.OrderStatusNew, GrandTotal: decimal.RequireFromString("12.00")}
	ordersRepo.On("FindByID", mock.Anything, int64(9)).Return(o, nil)
	ordersRepo.On("Delete", mock.Anything, int64(9)).Return(nil)
	audit.On("Create", mock.Anything, mock.MatchedBy(func(l model.AuditLog) bool {
		return l.Action == model.AuditActionDeleteOrder && l.ResourceID == 9 && l.ActorUserID == 1
	})).Return(nil)

	uc := newOrderUC(tx, audit, new(OrderValidatorMock))

	err := uc.Delete(context.Background(), 1, 9)
	assert.NoError(t, err)

	ordersRepo.AssertExpectations(t)
	audit.AssertExpectations(t)
}

func TestAdminOrderUsecase_Delete_NotFound(t *testing.T) {
	tx := new(TxManagerMock)
	ordersRepo := new(OrderRepoMock)
	tx.Repos = &TxReposMock{orders: ordersRepo}
	tx.On("WithinTx", mock.Anything).Return(nil)

	ordersRepo.On("FindByID", mock.Anything, int64(9)).Return(model.Order{}, repo.ErrNotFound)

	uc := newOrderUC(tx, new(AuditRepoMock), new(OrderValidatorMock))

	err := uc.Delete(context.Background(), 1, 9)
	assertErrContains(t, err, "not found")
}
