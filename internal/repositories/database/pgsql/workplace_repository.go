package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/fiscal_balance/internal/apperrors"
	"github.com/SscSPs/fiscal_balance/internal/core/domain"
	portsrepo "github.com/SscSPs/fiscal_balance/internal/core/ports/repositories"
	"github.com/SscSPs/fiscal_balance/internal/models"
	"github.com/SscSPs/fiscal_balance/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxWorkplaceRepository struct {
	BaseRepository
}

// newPgxWorkplaceRepository creates a new repository for workplace data.
func newPgxWorkplaceRepository(pool *pgxpool.Pool) portsrepo.WorkplaceRepositoryFacade {
	return &PgxWorkplaceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxWorkplaceRepository implements portsrepo.WorkplaceRepositoryFacade
var _ portsrepo.WorkplaceRepositoryFacade = (*PgxWorkplaceRepository)(nil)

const workplaceSelect = `
	SELECT w.workplace_id, w.name, w.description, w.default_currency_code, w.is_active,
	       w.created_at, w.created_by, w.last_updated_at, w.last_updated_by
	FROM workplaces w
`

func (r *PgxWorkplaceRepository) getWorkplaces(ctx context.Context, filterQuery string, args ...any) ([]domain.Workplace, error) {
	rows, err := r.Pool.Query(ctx, workplaceSelect+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query workplaces", err)
	}
	defer rows.Close()

	modelWorkplaces, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Workplace, error) {
		var w models.Workplace
		err := row.Scan(
			&w.WorkplaceID,
			&w.Name,
			&w.Description,
			&w.DefaultCurrencyCode,
			&w.IsActive,
			&w.CreatedAt,
			&w.CreatedBy,
			&w.LastUpdatedAt,
			&w.LastUpdatedBy,
		)
		return w, err
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect workplace rows", err)
	}

	workplaces := make([]domain.Workplace, len(modelWorkplaces))
	for i, m := range modelWorkplaces {
		workplaces[i] = mapping.ToDomainWorkplace(m)
	}
	return workplaces, nil
}

// SaveWorkplace inserts the workplace and the owner's membership in one transaction.
func (r *PgxWorkplaceRepository) SaveWorkplace(ctx context.Context, workplace domain.Workplace, owner domain.UserWorkplace) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelWorkplace(workplace)
	_, err = tx.Exec(ctx, `
		INSERT INTO workplaces (
			workplace_id, name, description, default_currency_code, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
		m.WorkplaceID,
		m.Name,
		m.Description,
		m.DefaultCurrencyCode,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		switch code, _ := pgErrCode(err); code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: workplace ID %s already exists", apperrors.ErrDuplicate, m.WorkplaceID)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: currency code %s does not exist", apperrors.ErrValidation, m.DefaultCurrencyCode)
		}
		return apperrors.NewAppError(500, "failed to save workplace "+m.WorkplaceID, err)
	}

	if err := insertMembership(ctx, tx, owner); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func insertMembership(ctx context.Context, q execer, membership domain.UserWorkplace) error {
	_, err := q.Exec(ctx, `
		INSERT INTO user_workplaces (user_id, workplace_id, role, joined_at)
		VALUES ($1, $2, $3, $4);`,
		membership.UserID,
		membership.WorkplaceID,
		string(membership.Role),
		membership.JoinedAt,
	)
	if err != nil {
		switch code, _ := pgErrCode(err); code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: user %s is already a member of workplace %s",
				apperrors.ErrDuplicate, membership.UserID, membership.WorkplaceID)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: user %s or workplace %s",
				apperrors.ErrNotFound, membership.UserID, membership.WorkplaceID)
		}
		return apperrors.NewAppError(500, "failed to add user "+membership.UserID+" to workplace "+membership.WorkplaceID, err)
	}
	return nil
}

// FindWorkplaceByID retrieves a workplace by ID.
func (r *PgxWorkplaceRepository) FindWorkplaceByID(ctx context.Context, workplaceID string) (*domain.Workplace, error) {
	workplaces, err := r.getWorkplaces(ctx, `WHERE w.workplace_id = $1;`, workplaceID)
	if err != nil {
		return nil, err
	}
	if len(workplaces) == 0 {
		return nil, apperrors.NewNotFoundError("workplace " + workplaceID + " not found")
	}
	return &workplaces[0], nil
}

// ListWorkplacesByUserID retrieves the workplaces a user is a member of.
func (r *PgxWorkplaceRepository) ListWorkplacesByUserID(ctx context.Context, userID string) ([]domain.Workplace, error) {
	return r.getWorkplaces(ctx, `
		JOIN user_workplaces uw ON uw.workplace_id = w.workplace_id
		WHERE uw.user_id = $1
		ORDER BY w.name;`, userID)
}

// AddUserToWorkplace inserts a membership.
func (r *PgxWorkplaceRepository) AddUserToWorkplace(ctx context.Context, membership domain.UserWorkplace) error {
	return insertMembership(ctx, r.Pool, membership)
}

// FindUserWorkplaceRole retrieves the membership of a user in a workplace.
func (r *PgxWorkplaceRepository) FindUserWorkplaceRole(ctx context.Context, userID, workplaceID string) (*domain.UserWorkplace, error) {
	query := `
		SELECT uw.user_id, u.name, uw.workplace_id, uw.role, uw.joined_at
		FROM user_workplaces uw
		JOIN users u ON u.user_id = uw.user_id
		WHERE uw.user_id = $1 AND uw.workplace_id = $2;
	`
	var m models.UserWorkplace
	err := r.Pool.QueryRow(ctx, query, userID, workplaceID).Scan(&m.UserID, &m.UserName, &m.WorkplaceID, &m.Role, &m.JoinedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find role of user "+userID+" in workplace "+workplaceID, err)
	}
	membership := mapping.ToDomainUserWorkplace(m)
	return &membership, nil
}

// ListUsersByWorkplaceID retrieves all memberships of a workplace.
func (r *PgxWorkplaceRepository) ListUsersByWorkplaceID(ctx context.Context, workplaceID string) ([]domain.UserWorkplace, error) {
	query := `
		SELECT uw.user_id, u.name, uw.workplace_id, uw.role, uw.joined_at
		FROM user_workplaces uw
		JOIN users u ON u.user_id = uw.user_id
		WHERE uw.workplace_id = $1
		ORDER BY uw.joined_at, uw.user_id;
	`
	rows, err := r.Pool.Query(ctx, query, workplaceID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query users of workplace "+workplaceID, err)
	}
	defer rows.Close()

	modelMembers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.UserWorkplace, error) {
		var m models.UserWorkplace
		err := row.Scan(&m.UserID, &m.UserName, &m.WorkplaceID, &m.Role, &m.JoinedAt)
		return m, err
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan workplace users", err)
	}

	members := make([]domain.UserWorkplace, len(modelMembers))
	for i, m := range modelMembers {
		members[i] = mapping.ToDomainUserWorkplace(m)
	}
	return members, nil
}
