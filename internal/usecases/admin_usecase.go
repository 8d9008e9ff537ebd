package usecases

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"campus-market.backend/internal/domain/entities"
	domainerrors "campus-market.backend/internal/domain/errors"
	"campus-market.backend/internal/domain/repositories"
)

// AdminUsecase backs the moderation dashboard
type AdminUsecase struct {
	userRepo    repositories.UserRepository
	productRepo repositories.ProductRepository
	reportRepo  repositories.ReportRepository
}

// NewAdminUsecase creates a new admin usecase
func NewAdminUsecase(
	userRepo repositories.UserRepository,
	productRepo repositories.ProductRepository,
	reportRepo repositories.ReportRepository,
) *AdminUsecase {
	return &AdminUsecase{
		userRepo:    userRepo,
		productRepo: productRepo,
		reportRepo:  reportRepo,
	}
}

// Stats recomputes the dashboard aggregates.
func (u *AdminUsecase) Stats(ctx context.Context) (*entities.AdminStats, error) {
	totalUsers, err := u.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	listed, value, err := u.productRepo.ListedSummary(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := u.reportRepo.CountByStatus(ctx, entities.ReportStatusPending)
	if err != nil {
		return nil, err
	}
	return &entities.AdminStats{
		TotalUsers:     totalUsers,
		ActiveListings: listed,
		PendingReports: pending,
		EstimatedValue: value,
	}, nil
}

// ListUsers returns every live account, newest first.
func (u *AdminUsecase) ListUsers(ctx context.Context) ([]*entities.User, error) {
	return u.userRepo.List(ctx)
}

// UpdateUser applies an administrator's partial edit to an account.
func (u *AdminUsecase) UpdateUser(ctx context.Context, rawID string, input *entities.AdminUpdateUserInput) (*entities.User, error) {
	user, err := loadUser(ctx, u.userRepo, rawID)
	if err != nil {
		return nil, err
	}

	if v := trimmedPtr(input.FirstName); v != nil {
		user.FirstName = *v
	}
	if v := trimmedPtr(input.LastName); v != nil {
		user.LastName = *v
	}
	if input.University != nil {
		user.University = null.StringFromPtr(trimmedPtr(input.University))
	}
	if input.CampusLocation != nil {
		user.CampusLocation = null.StringFromPtr(trimmedPtr(input.CampusLocation))
	}
	if input.Role != nil {
		role := entities.UserRole(strings.TrimSpace(*input.Role))
		if !role.Valid() {
			return nil, domainerrors.BadRequest("Invalid role")
		}
		user.Role = role
	}
	if input.IsVerified != nil {
		user.IsVerified = *input.IsVerified
	}
	user.UpdatedAt = nowUTC()

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, notFoundAs(err, MsgUserNotFound)
	}
	return user, nil
}

// DeleteUser soft-deletes an account. Administrators cannot delete themselves.
func (u *AdminUsecase) DeleteUser(ctx context.Context, actorID uuid.UUID, rawID string) error {
	id, err := parseID(rawID, MsgUserNotFound)
	if err != nil {
		return err
	}
	if id == actorID {
		return domainerrors.BusinessRule(domainerrors.CodeInvalidOperation, MsgCannotDeleteSelf, domainerrors.ErrInvalidOperation)
	}
	if _, err := u.userRepo.GetByID(ctx, id); err != nil {
		return notFoundAs(err, MsgUserNotFound)
	}
	return u.userRepo.SoftDelete(ctx, id)
}
