package usecases_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campus-market.backend/internal/domain/entities"
	domainerrors "campus-market.backend/internal/domain/errors"
	"campus-market.backend/internal/usecases"
)

func strPtr(s string) *string { return &s }

func requireAppError(t *testing.T, err error, status int, message string) {
	t.Helper()
	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, status, appErr.Status)
	if message != "" {
		assert.Equal(t, message, appErr.Message)
	}
}

func TestProductUsecase_Create(t *testing.T) {
	repo := new(MockProductRepository)
	uc := usecases.NewProductUsecase(repo)
	ctx := context.Background()
	owner := uuid.New()

	repo.On("Create", ctx, mock.MatchedBy(func(p *entities.Product) bool {
		return p.UserID == owner && p.Price == "45.00" && p.Status == entities.ProductStatusAvailable && !p.ImageURL.Valid
	})).Return(nil).Once()

	product, err := uc.Create(ctx, owner, &entities.CreateProductInput{
		Title:       "Introduction to Algorithms (4th Edition)",
		Description: "Barely used, no highlighting.",
		Price:       "45",
		Category:    "textbooks",
		Condition:   "like-new",
		Location:    "Stanford Campus",
		ImageURL:    strPtr("  "),
	})
	require.NoError(t, err)
	assert.Equal(t, "45.00", product.Price)
	repo.AssertExpectations(t)

	_, err = uc.Create(ctx, owner, &entities.CreateProductInput{Title: "x", Price: "-1", Category: "textbooks"})
	requireAppError(t, err, http.StatusBadRequest, "")

	_, err = uc.Create(ctx, owner, &entities.CreateProductInput{Title: "x", Price: "1", Category: "cars"})
	requireAppError(t, err, http.StatusBadRequest, "Invalid category")
}

func TestProductUsecase_Get(t *testing.T) {
	repo := new(MockProductRepository)
	uc := usecases.NewProductUsecase(repo)
	ctx := context.Background()
	id := uuid.New()

	repo.On("GetByID", ctx, id).Return(&entities.Product{ID: id, Status: entities.ProductStatusSold}, nil).Once()
	got, err := uc.Get(ctx, id.String())
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)

	missing := uuid.New()
	repo.On("GetByID", ctx, missing).Return(nil, domainerrors.ErrNotFound).Once()
	_, err = uc.Get(ctx, missing.String())
	requireAppError(t, err, http.StatusNotFound, "Product not found")

	_, err = uc.Get(ctx, "not-a-uuid")
	requireAppError(t, err, http.StatusNotFound, "Product not found")
}

func TestProductUsecase_ListFilters(t *testing.T) {
	repo := new(MockProductRepository)
	uc := usecases.NewProductUsecase(repo)
	ctx := context.Background()

	repo.On("List", ctx, entities.ProductFilter{}).Return([]*entities.Product{}, nil).Once()
	_, err := uc.List(ctx, "", "")
	require.NoError(t, err)

	category := entities.CategoryElectronics
	status := entities.ProductStatusSold
	repo.On("List", ctx, entities.ProductFilter{Category: &category, Status: &status}).Return([]*entities.Product{}, nil).Once()
	_, err = uc.List(ctx, "electronics", "sold")
	require.NoError(t, err)

	repo.On("List", ctx, entities.ProductFilter{AllStatuses: true}).Return([]*entities.Product{}, nil).Once()
	_, err = uc.AdminList(ctx, "", "")
	require.NoError(t, err)

	_, err = uc.List(ctx, "cars", "")
	requireAppError(t, err, http.StatusBadRequest, "Invalid category")
	_, err = uc.AdminList(ctx, "", "gone")
	requireAppError(t, err, http.StatusBadRequest, "Invalid status")
	repo.AssertExpectations(t)
}

func TestProductUsecase_ListByOwner(t *testing.T) {
	repo := new(MockProductRepository)
	uc := usecases.NewProductUsecase(repo)
	ctx := context.Background()
	owner := uuid.New()

	repo.On("ListByOwner", ctx, owner).Return([]*entities.Product{{ID: uuid.New()}}, nil).Once()
	got, err := uc.ListByOwner(ctx, owner.String())
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = uc.ListByOwner(ctx, "nope")
	requireAppError(t, err, http.StatusNotFound, "User not found")
}

func TestProductUsecase_Update(t *testing.T) {
	repo := new(MockProductRepository)
	uc := usecases.NewProductUsecase(repo)
	ctx := context.Background()
	owner := uuid.New()
	id := uuid.New()
	auth := &entities.AuthContext{UserID: owner}

	repo.On("GetByID", ctx, id).Return(&entities.Product{ID: id, UserID: owner, Title: "Old", Price: "10.00", Status: entities.ProductStatusAvailable}, nil).Once()
	repo.On("Update", ctx, mock.MatchedBy(func(p *entities.Product) bool {
		return p.Title == "New title" && p.Price == "12.50" && p.Status == entities.ProductStatusActive
	})).Return(nil).Once()

	got, err := uc.Update(ctx, auth, id.String(), &entities.UpdateProductInput{
		Title:  strPtr(" New title "),
		Price:  strPtr("12.5"),
		Status: strPtr("active"),
	})
	require.NoError(t, err)
	assert.Equal(t, "12.50", got.Price)
	repo.AssertExpectations(t)
}

func TestProductUsecase_Update_Rejections(t *testing.T) {
	repo := new(MockProductRepository)
	uc := usecases.NewProductUsecase(repo)
	ctx := context.Background()
	owner := uuid.New()
	id := uuid.New()
	available := &entities.Product{ID: id, UserID: owner, Status: entities.ProductStatusAvailable}

	repo.On("GetByID", ctx, id).Return(available, nil).Once()
	_, err := uc.Update(ctx, &entities.AuthContext{UserID: uuid.New()}, id.String(), &entities.UpdateProductInput{})
	requireAppError(t, err, http.StatusForbidden, "Not authorized")

	repo.On("GetByID", ctx, id).Return(&entities.Product{ID: id, UserID: owner, Status: entities.ProductStatusSold}, nil).Once()
	_, err = uc.Update(ctx, &entities.AuthContext{UserID: owner}, id.String(), &entities.UpdateProductInput{Title: strPtr("x y z")})
	requireAppError(t, err, http.StatusBadRequest, "Sold listings cannot be modified")

	repo.On("GetByID", ctx, id).Return(&entities.Product{ID: id, UserID: owner, Status: entities.ProductStatusAvailable}, nil).Once()
	_, err = uc.Update(ctx, &entities.AuthContext{UserID: owner}, id.String(), &entities.UpdateProductInput{Status: strPtr("sold")})
	requireAppError(t, err, http.StatusBadRequest, "")

	repo.On("GetByID", ctx, id).Return(&entities.Product{ID: id, UserID: owner, Status: entities.ProductStatusAvailable}, nil).Once()
	_, err = uc.Update(ctx, &entities.AuthContext{UserID: owner}, id.String(), &entities.UpdateProductInput{Price: strPtr("abc")})
	requireAppError(t, err, http.StatusBadRequest, "")

	// bought between the read and the write
	repo.On("GetByID", ctx, id).Return(&entities.Product{ID: id, UserID: owner, Status: entities.ProductStatusAvailable}, nil).Once()
	repo.On("Update", ctx, mock.Anything).Return(domainerrors.ErrNotFound).Once()
	_, err = uc.Update(ctx, &entities.AuthContext{UserID: owner}, id.String(), &entities.UpdateProductInput{})
	requireAppError(t, err, http.StatusBadRequest, "Sold listings cannot be modified")
}

func TestProductUsecase_Delete(t *testing.T) {
	repo := new(MockProductRepository)
	uc := usecases.NewProductUsecase(repo)
	ctx := context.Background()
	owner := uuid.New()
	id := uuid.New()

	repo.On("GetByID", ctx, id).Return(&entities.Product{ID: id, UserID: owner, Status: entities.ProductStatusActive}, nil).Once()
	repo.On("UpdateStatus", ctx, id, entities.ProductStatusRemoved).Return(nil).Once()
	require.NoError(t, uc.Delete(ctx, &entities.AuthContext{UserID: owner}, id.String()))

	repo.On("GetByID", ctx, id).Return(&entities.Product{ID: id, UserID: owner, Status: entities.ProductStatusSold}, nil).Once()
	err := uc.Delete(ctx, &entities.AuthContext{UserID: owner}, id.String())
	requireAppError(t, err, http.StatusBadRequest, "Sold listings cannot be modified")

	repo.On("GetByID", ctx, id).Return(&entities.Product{ID: id, UserID: owner, Status: entities.ProductStatusActive}, nil).Once()
	err = uc.Delete(ctx, nil, id.String())
	requireAppError(t, err, http.StatusForbidden, "Not authorized")
	repo.AssertExpectations(t)
}

func TestProductUsecase_Moderate(t *testing.T) {
	repo := new(MockProductRepository)
	uc := usecases.NewProductUsecase(repo)
	ctx := context.Background()
	id := uuid.New()

	repo.On("GetByID", ctx, id).Return(&entities.Product{ID: id, Status: entities.ProductStatusAvailable}, nil).Once()
	repo.On("UpdateStatus", ctx, id, entities.ProductStatusRemoved).Return(nil).Once()
	got, err := uc.Moderate(ctx, id.String(), "removed")
	require.NoError(t, err)
	assert.Equal(t, entities.ProductStatusRemoved, got.Status)

	_, err = uc.Moderate(ctx, id.String(), "sold")
	requireAppError(t, err, http.StatusBadRequest, "")

	repo.On("GetByID", ctx, id).Return(&entities.Product{ID: id, Status: entities.ProductStatusSold}, nil).Once()
	_, err = uc.Moderate(ctx, id.String(), "available")
	requireAppError(t, err, http.StatusBadRequest, "Sold listings cannot be modified")
	repo.AssertExpectations(t)
}
