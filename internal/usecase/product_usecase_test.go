package usecase_test

import (
	"context"
	"strings"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProductUsecase_ListOptions_Success(t *testing.T) {
	products := new(ProductRepoMock)
	products.On("ListOptions", mock.Anything, repo.ProductOptionQuery{Q: "shirt", Limit: 20}).Return([]model.Product{
		{ID: 1, Name: "Blue Shirt", Price: decimal.RequireFromString("19.99")},
		{ID: 2, Name: "Red Shirt", Price: decimal.RequireFromString("24.99")},
	}, nil)

	uc := usecase.NewProductUsecase(products)

	out, err := uc.ListOptions(context.Background(), "shirt", 20)
	assert.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, "Blue Shirt", out[0].Name)
	assert.True(t, out[0].Price.Equal(decimal.RequireFromString("19.99")))

	products.AssertExpectations(t)
}

func TestProductUsecase_ListOptions_QueryTooLong(t *testing.T) {
	uc := usecase.NewProductUsecase(new(ProductRepoMock))

	_, err := uc.ListOptions(context.Background(), strings.Repeat("a", 101), 20)
	assertErrContains(t, err, "invalid q")
}

func TestProductUsecase_ListOptions_DBError(t *testing.T) {
	products := new(ProductRepoMock)
	products.On("ListOptions", mock.Anything, mock.Anything).Return([]model.Product(nil), assert.AnError)

	uc := usecase.NewProductUsecase(products)

	_, err := uc.ListOptions(context.Background(), "", 20)
	assertErrContains(t, err, "db error")
}
