package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"campus-market.backend/internal/domain/entities"
	domainerrors "campus-market.backend/internal/domain/errors"
	"campus-market.backend/internal/domain/repositories"
	"campus-market.backend/pkg/utils"
)

// ProductUsecase handles listing business logic
type ProductUsecase struct {
	productRepo repositories.ProductRepository
}

// NewProductUsecase creates a new product usecase
func NewProductUsecase(productRepo repositories.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

// Create lists a new item owned by the caller.
func (u *ProductUsecase) Create(ctx context.Context, ownerID uuid.UUID, input *entities.CreateProductInput) (*entities.Product, error) {
	price, err := utils.NormalizePrice(input.Price)
	if err != nil {
		return nil, domainerrors.BadRequest(err.Error())
	}
	category := entities.ProductCategory(input.Category)
	if !category.Valid() {
		return nil, domainerrors.BadRequest("Invalid category")
	}

	now := nowUTC()
	product := &entities.Product{
		ID:          newID(),
		UserID:      ownerID,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Price:       price,
		Category:    category,
		Condition:   entities.ProductCondition(input.Condition),
		Location:    strings.TrimSpace(input.Location),
		ImageURL:    null.StringFromPtr(trimmedPtr(input.ImageURL)),
		Status:      entities.ProductStatusAvailable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Get returns one listing regardless of status.
func (u *ProductUsecase) Get(ctx context.Context, rawID string) (*entities.Product, error) {
	id, err := parseID(rawID, MsgProductNotFound)
	if err != nil {
		return nil, err
	}
	return u.load(ctx, id)
}

// List returns the browse view. Without a status filter only listed
// (active/available) items are returned.
func (u *ProductUsecase) List(ctx context.Context, category, status string) ([]*entities.Product, error) {
	filter, err := buildProductFilter(category, status)
	if err != nil {
		return nil, err
	}
	return u.productRepo.List(ctx, filter)
}

// AdminList is List for moderators: every status unless filtered.
func (u *ProductUsecase) AdminList(ctx context.Context, category, status string) ([]*entities.Product, error) {
	filter, err := buildProductFilter(category, status)
	if err != nil {
		return nil, err
	}
	filter.AllStatuses = true
	return u.productRepo.List(ctx, filter)
}

// ListByOwner returns every listing of one user, newest first.
func (u *ProductUsecase) ListByOwner(ctx context.Context, rawOwnerID string) ([]*entities.Product, error) {
	ownerID, err := parseID(rawOwnerID, MsgUserNotFound)
	if err != nil {
		return nil, err
	}
	return u.productRepo.ListByOwner(ctx, ownerID)
}

// Update applies an owner's partial edit.
func (u *ProductUsecase) Update(ctx context.Context, auth *entities.AuthContext, rawID string, input *entities.UpdateProductInput) (*entities.Product, error) {
	product, err := u.ownedMutable(ctx, auth, rawID)
	if err != nil {
		return nil, err
	}

	if v := trimmedPtr(input.Title); v != nil {
		product.Title = *v
	}
	if v := trimmedPtr(input.Description); v != nil {
		product.Description = *v
	}
	if input.Price != nil {
		price, err := utils.NormalizePrice(*input.Price)
		if err != nil {
			return nil, domainerrors.BadRequest(err.Error())
		}
		product.Price = price
	}
	if input.Category != nil {
		category := entities.ProductCategory(*input.Category)
		if !category.Valid() {
			return nil, domainerrors.BadRequest("Invalid category")
		}
		product.Category = category
	}
	if input.Condition != nil {
		product.Condition = entities.ProductCondition(*input.Condition)
	}
	if v := trimmedPtr(input.Location); v != nil {
		product.Location = *v
	}
	if input.ImageURL != nil {
		product.ImageURL = null.StringFromPtr(trimmedPtr(input.ImageURL))
	}
	if input.Status != nil {
		status, err := settableStatus(*input.Status)
		if err != nil {
			return nil, err
		}
		product.Status = status
	}
	product.UpdatedAt = nowUTC()

	if err := u.productRepo.Update(ctx, product); err != nil {
		return nil, soldSinceLoad(err)
	}
	return product, nil
}

// Delete soft-deletes an owner's listing by marking it removed.
func (u *ProductUsecase) Delete(ctx context.Context, auth *entities.AuthContext, rawID string) error {
	product, err := u.ownedMutable(ctx, auth, rawID)
	if err != nil {
		return err
	}
	return soldSinceLoad(u.productRepo.UpdateStatus(ctx, product.ID, entities.ProductStatusRemoved))
}

// Moderate sets a listing's status on behalf of an administrator.
func (u *ProductUsecase) Moderate(ctx context.Context, rawID, rawStatus string) (*entities.Product, error) {
	status, err := settableStatus(rawStatus)
	if err != nil {
		return nil, err
	}
	id, err := parseID(rawID, MsgProductNotFound)
	if err != nil {
		return nil, err
	}
	product, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.Status == entities.ProductStatusSold {
		return nil, soldImmutable()
	}
	if err := u.productRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, soldSinceLoad(err)
	}
	product.Status = status
	product.UpdatedAt = nowUTC()
	return product, nil
}

func (u *ProductUsecase) load(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	product, err := u.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound(MsgProductNotFound)
		}
		return nil, err
	}
	return product, nil
}

// ownedMutable loads a listing the caller owns and may still change.
func (u *ProductUsecase) ownedMutable(ctx context.Context, auth *entities.AuthContext, rawID string) (*entities.Product, error) {
	id, err := parseID(rawID, MsgProductNotFound)
	if err != nil {
		return nil, err
	}
	product, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if auth == nil || product.UserID != auth.UserID {
		return nil, domainerrors.Forbidden(MsgNotAuthorized)
	}
	if product.Status == entities.ProductStatusSold {
		return nil, soldImmutable()
	}
	return product, nil
}

func buildProductFilter(category, status string) (entities.ProductFilter, error) {
	var filter entities.ProductFilter
	if category = strings.TrimSpace(category); category != "" {
		c := entities.ProductCategory(category)
		if !c.Valid() {
			return filter, domainerrors.BadRequest("Invalid category")
		}
		filter.Category = &c
	}
	if status = strings.TrimSpace(status); status != "" {
		s := entities.ProductStatus(status)
		if !s.Valid() {
			return filter, domainerrors.BadRequest("Invalid status")
		}
		filter.Status = &s
	}
	return filter, nil
}

// settableStatus accepts the statuses a person may set directly. Only the
// purchase flow marks a listing sold.
func settableStatus(raw string) (entities.ProductStatus, error) {
	s := entities.ProductStatus(strings.TrimSpace(raw))
	if s == entities.ProductStatusSold || !s.Valid() {
		return "", domainerrors.BadRequest("Status must be one of active, available, removed")
	}
	return s, nil
}

func soldImmutable() *domainerrors.AppError {
	return domainerrors.BusinessRule(domainerrors.CodeInvalidOperation, MsgSoldListingImmutable, domainerrors.ErrInvalidOperation)
}

// soldSinceLoad maps a write that matched no row after a successful read: the
// listing was bought in between.
func soldSinceLoad(err error) error {
	if errors.Is(err, domainerrors.ErrNotFound) {
		return soldImmutable()
	}
	return err
}
