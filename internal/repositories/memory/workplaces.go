package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/fiscal_balance/internal/apperrors"
	"github.com/SscSPs/fiscal_balance/internal/core/domain"
)

func (s *Store) FindWorkplaceByID(_ context.Context, workplaceID string) (*domain.Workplace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.workplaces[workplaceID]
	if !ok {
		return nil, apperrors.NewNotFoundError("workplace " + workplaceID + " not found")
	}
	return &w, nil
}

func (s *Store) ListWorkplacesByUserID(_ context.Context, userID string) ([]domain.Workplace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Workplace{}
	for workplaceID, members := range s.members {
		if _, ok := members[userID]; ok {
			out = append(out, s.workplaces[workplaceID])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) SaveWorkplace(_ context.Context, workplace domain.Workplace, owner domain.UserWorkplace) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.workplaces[workplace.WorkplaceID]; ok {
		return fmt.Errorf("%w: workplace ID %s already exists", apperrors.ErrDuplicate, workplace.WorkplaceID)
	}
	if _, ok := s.currencies[workplace.DefaultCurrencyCode]; !ok {
		return fmt.Errorf("%w: currency code %s does not exist", apperrors.ErrValidation, workplace.DefaultCurrencyCode)
	}
	if _, ok := s.users[owner.UserID]; !ok {
		return fmt.Errorf("%w: user %s or workplace %s", apperrors.ErrNotFound, owner.UserID, workplace.WorkplaceID)
	}
	s.workplaces[workplace.WorkplaceID] = workplace
	s.members[workplace.WorkplaceID] = map[string]domain.UserWorkplace{owner.UserID: owner}
	return nil
}

func (s *Store) AddUserToWorkplace(_ context.Context, membership domain.UserWorkplace) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	members, ok := s.members[membership.WorkplaceID]
	if _, userOK := s.users[membership.UserID]; !ok || !userOK {
		return fmt.Errorf("%w: user %s or workplace %s", apperrors.ErrNotFound, membership.UserID, membership.WorkplaceID)
	}
	if _, exists := members[membership.UserID]; exists {
		return fmt.Errorf("%w: user %s is already a member of workplace %s",
			apperrors.ErrDuplicate, membership.UserID, membership.WorkplaceID)
	}
	members[membership.UserID] = membership
	return nil
}

func (s *Store) FindUserWorkplaceRole(_ context.Context, userID, workplaceID string) (*domain.UserWorkplace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.members[workplaceID][userID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	m.UserName = s.users[userID].Name
	return &m, nil
}

func (s *Store) ListUsersByWorkplaceID(_ context.Context, workplaceID string) ([]domain.UserWorkplace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.UserWorkplace, 0, len(s.members[workplaceID]))
	for userID, m := range s.members[workplaceID] {
		m.UserName = s.users[userID].Name
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].JoinedAt.Equal(out[j].JoinedAt) {
			return out[i].JoinedAt.Before(out[j].JoinedAt)
		}
		return out[i].UserID < out[j].UserID
	})
	return out, nil
}
