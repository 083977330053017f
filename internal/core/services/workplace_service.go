package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/fiscal_balance/internal/apperrors"
	"github.com/SscSPs/fiscal_balance/internal/core/domain"
	portsrepo "github.com/SscSPs/fiscal_balance/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fiscal_balance/internal/core/ports/services"
	"github.com/SscSPs/fiscal_balance/internal/dto"
	"github.com/google/uuid"
)

// workplaceService implements the WorkplaceSvcFacade interface
type workplaceService struct {
	BaseService
	workplaceRepo portsrepo.WorkplaceRepositoryFacade
	currencyRepo  portsrepo.CurrencyReader
	now           func() time.Time
}

// NewWorkplaceService creates a new workplace service with the provided dependencies
func NewWorkplaceService(
	workplaceRepo portsrepo.WorkplaceRepositoryFacade,
	currencyRepo portsrepo.CurrencyReader,
) portssvc.WorkplaceSvcFacade {
	return &workplaceService{
		workplaceRepo: workplaceRepo,
		currencyRepo:  currencyRepo,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Ensure workplaceService implements the WorkplaceSvcFacade interface
var _ portssvc.WorkplaceSvcFacade = (*workplaceService)(nil)

// FindWorkplaceByID retrieves a workplace the requesting user belongs to.
func (s *workplaceService) FindWorkplaceByID(ctx context.Context, workplaceID string, requestingUserID string) (*domain.Workplace, error) {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, workplaceID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	workplace, err := s.workplaceRepo.FindWorkplaceByID(ctx, workplaceID)
	if err != nil {
		s.logRepoError(ctx, err, "Failed to find workplace by ID",
			slog.String("workplace_id", workplaceID))
		return nil, err
	}

	s.LogDebug(ctx, "Workplace retrieved successfully",
		slog.String("workplace_id", workplace.WorkplaceID))
	return workplace, nil
}

// ListUserWorkplaces retrieves all workplaces a user belongs to
func (s *workplaceService) ListUserWorkplaces(ctx context.Context, userID string) ([]domain.Workplace, error) {
	workplaces, err := s.workplaceRepo.ListWorkplacesByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workplaces for user",
			slog.String("user_id", userID))
		return nil, err
	}

	if workplaces == nil {
		return []domain.Workplace{}, nil
	}

	s.LogDebug(ctx, "Workplaces listed successfully",
		slog.Int("count", len(workplaces)),
		slog.String("user_id", userID))
	return workplaces, nil
}

// ListWorkplaceUsers retrieves the members of a workplace.
func (s *workplaceService) ListWorkplaceUsers(ctx context.Context, workplaceID string, requestingUserID string) ([]domain.UserWorkplace, error) {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, workplaceID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	members, err := s.workplaceRepo.ListUsersByWorkplaceID(ctx, workplaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workplace users",
			slog.String("workplace_id", workplaceID))
		return nil, err
	}
	if members == nil {
		return []domain.UserWorkplace{}, nil
	}
	return members, nil
}

// CreateWorkplace creates a new workplace and makes the creator its admin.
func (s *workplaceService) CreateWorkplace(ctx context.Context, req dto.CreateWorkplaceRequest, creatorUserID string) (*domain.Workplace, error) {
	currencyCode := strings.ToUpper(strings.TrimSpace(req.DefaultCurrencyCode))
	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown default currency code %s", apperrors.ErrValidation, currencyCode)
		}
		s.LogError(ctx, err, "Failed to check default currency",
			slog.String("currency_code", currencyCode))
		return nil, err
	}

	now := s.now()
	workplace := domain.Workplace{
		WorkplaceID:         uuid.NewString(),
		Name:                strings.TrimSpace(req.Name),
		Description:         req.Description,
		DefaultCurrencyCode: currencyCode,
		IsActive:            true,
		AuditFields:         domain.NewAuditFields(creatorUserID, now),
	}
	owner := domain.UserWorkplace{
		UserID:      creatorUserID,
		WorkplaceID: workplace.WorkplaceID,
		Role:        domain.RoleAdmin,
		JoinedAt:    now,
	}

	if err := s.workplaceRepo.SaveWorkplace(ctx, workplace, owner); err != nil {
		s.logRepoError(ctx, err, "Failed to save workplace",
			slog.String("workplace_id", workplace.WorkplaceID))
		return nil, err
	}

	s.LogInfo(ctx, "Workplace created successfully",
		slog.String("workplace_id", workplace.WorkplaceID),
		slog.String("creator_id", creatorUserID))
	return &workplace, nil
}

// AddUserToWorkplace adds a user to a workplace with a specific role
func (s *workplaceService) AddUserToWorkplace(ctx context.Context, addingUserID, workplaceID string, req dto.AddUserToWorkplaceRequest) error {
	if err := s.AuthorizeUserAction(ctx, addingUserID, workplaceID, domain.RoleAdmin); err != nil {
		s.LogWarn(ctx, err, "User not authorized to add members to workplace",
			slog.String("adding_user_id", addingUserID),
			slog.String("workplace_id", workplaceID))
		return err
	}
	if !req.Role.IsValid() {
		return fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, req.Role)
	}

	membership := domain.UserWorkplace{
		UserID:      req.UserID,
		WorkplaceID: workplaceID,
		Role:        req.Role,
		JoinedAt:    s.now(),
	}
	if err := s.workplaceRepo.AddUserToWorkplace(ctx, membership); err != nil {
		s.logRepoError(ctx, err, "Failed to add user to workplace",
			slog.String("target_user_id", req.UserID),
			slog.String("workplace_id", workplaceID))
		return err
	}

	s.LogInfo(ctx, "User added to workplace",
		slog.String("target_user_id", req.UserID),
		slog.String("workplace_id", workplaceID),
		slog.String("role", string(req.Role)))
	return nil
}

// AuthorizeUserAction checks that userID is a member of workplaceID with at
// least requiredRole. A missing workplace is reported as not found, a missing
// membership or insufficient role as forbidden.
func (s *workplaceService) AuthorizeUserAction(ctx context.Context, userID, workplaceID string, requiredRole domain.UserWorkplaceRole) error {
	membership, err := s.workplaceRepo.FindUserWorkplaceRole(ctx, userID, workplaceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to look up workplace membership",
				slog.String("user_id", userID),
				slog.String("workplace_id", workplaceID))
			return err
		}
		if _, wpErr := s.workplaceRepo.FindWorkplaceByID(ctx, workplaceID); wpErr != nil {
			return wpErr
		}
		return fmt.Errorf("%w: user %s is not a member of workplace %s", apperrors.ErrForbidden, userID, workplaceID)
	}

	if !membership.Role.Satisfies(requiredRole) {
		return fmt.Errorf("%w: role %s does not allow %s actions", apperrors.ErrForbidden, membership.Role, requiredRole)
	}
	return nil
}
