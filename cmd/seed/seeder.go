package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"campus-market.backend/internal/domain/entities"
	domainerrors "campus-market.backend/internal/domain/errors"
	"campus-market.backend/pkg/utils"
)

type userStore interface {
	Create(ctx context.Context, user *entities.User) error
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
}

type productStore interface {
	Create(ctx context.Context, product *entities.Product) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Product, error)
}

type transactionStore interface {
	Create(ctx context.Context, txn *entities.Transaction) error
}

type seedSummary struct {
	Users        int
	Listings     int
	Transactions int
}

type seeder struct {
	users        userStore
	products     productStore
	transactions transactionStore
	passwordHash string
	now          func() time.Time
}

// run inserts whatever demo data is missing. Users are matched by email and
// listings by owner and title, so repeated runs add nothing.
func (s *seeder) run(ctx context.Context) (seedSummary, error) {
	var summary seedSummary

	ids := make(map[string]uuid.UUID, len(demoUsers))
	for _, u := range demoUsers {
		id, created, err := s.ensureUser(ctx, u)
		if err != nil {
			return summary, fmt.Errorf("seed user %s: %w", u.email, err)
		}
		ids[u.email] = id
		if created {
			summary.Users++
		}
	}

	existing := make(map[uuid.UUID]map[string]bool)
	for _, l := range demoListings {
		ownerID := ids[l.owner]
		titles, ok := existing[ownerID]
		if !ok {
			owned, err := s.products.ListByOwner(ctx, ownerID)
			if err != nil {
				return summary, fmt.Errorf("list listings of %s: %w", l.owner, err)
			}
			titles = make(map[string]bool, len(owned))
			for _, p := range owned {
				titles[p.Title] = true
			}
			existing[ownerID] = titles
		}
		if titles[l.title] {
			continue
		}

		product := s.listing(ownerID, l)
		if err := s.products.Create(ctx, product); err != nil {
			return summary, fmt.Errorf("seed listing %q: %w", l.title, err)
		}
		titles[l.title] = true
		summary.Listings++

		for _, sale := range l.sale {
			txn := &entities.Transaction{
				ID:        utils.GenerateUUIDv7(),
				BuyerID:   ids[sale.buyer],
				SellerID:  ownerID,
				ProductID: product.ID,
				Amount:    product.Price,
				Status:    sale.status,
				CreatedAt: s.now(),
			}
			if err := s.transactions.Create(ctx, txn); err != nil {
				return summary, fmt.Errorf("seed transaction for %q: %w", l.title, err)
			}
			summary.Transactions++
		}
	}
	return summary, nil
}

func (s *seeder) ensureUser(ctx context.Context, u demoUser) (uuid.UUID, bool, error) {
	found, err := s.users.GetByEmail(ctx, u.email)
	if err == nil {
		return found.ID, false, nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return uuid.Nil, false, err
	}

	now := s.now()
	user := &entities.User{
		ID:           utils.GenerateUUIDv7(),
		Email:        u.email,
		PasswordHash: s.passwordHash,
		FirstName:    u.firstName,
		LastName:     u.lastName,
		University:   null.StringFrom(u.university),
		Role:         u.role,
		IsVerified:   true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return uuid.Nil, false, err
	}
	return user.ID, true, nil
}

func (s *seeder) listing(ownerID uuid.UUID, l demoListing) *entities.Product {
	status := entities.ProductStatusAvailable
	if len(l.sale) > 0 {
		status = entities.ProductStatusSold
	}
	now := s.now()
	return &entities.Product{
		ID:          utils.GenerateUUIDv7(),
		UserID:      ownerID,
		Title:       l.title,
		Description: l.description,
		Price:       utils.FormatAmount(l.price),
		Category:    l.category,
		Condition:   l.condition,
		Location:    l.location,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
