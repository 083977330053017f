package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/fiscal_balance/internal/apperrors"
	"github.com/SscSPs/fiscal_balance/internal/core/domain"
)

func (s *Store) FindAccountByID(_ context.Context, workplaceID, accountID string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[accountID]
	if !ok || a.WorkplaceID != workplaceID {
		return nil, apperrors.NewNotFoundError("account " + accountID + " not found")
	}
	return &a, nil
}

func (s *Store) FindAccountsByIDs(_ context.Context, workplaceID string, accountIDs []string) (map[string]domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]domain.Account, len(accountIDs))
	for _, id := range accountIDs {
		if a, ok := s.accounts[id]; ok && a.WorkplaceID == workplaceID {
			out[id] = a
		}
	}
	return out, nil
}

func (s *Store) ListAccounts(_ context.Context, workplaceID string, limit int, offset int) ([]domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := []domain.Account{}
	for _, a := range s.accounts {
		if a.WorkplaceID == workplaceID {
			all = append(all, a)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Name != all[j].Name {
			return all[i].Name < all[j].Name
		}
		return all[i].AccountID < all[j].AccountID
	})
	if offset >= len(all) {
		return []domain.Account{}, nil
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return all[offset:end], nil
}

func (s *Store) SaveAccount(_ context.Context, account domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[account.AccountID]; ok {
		return fmt.Errorf("%w: account with ID %s already exists", apperrors.ErrDuplicate, account.AccountID)
	}
	_, workplaceOK := s.workplaces[account.WorkplaceID]
	_, currencyOK := s.currencies[account.CurrencyCode]
	if !workplaceOK || !currencyOK {
		return fmt.Errorf("%w: workplace or currency of account %s does not exist", apperrors.ErrValidation, account.AccountID)
	}
	s.accounts[account.AccountID] = account
	return nil
}

func (s *Store) UpdateAccount(_ context.Context, account domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.accounts[account.AccountID]
	if !ok || current.WorkplaceID != account.WorkplaceID {
		return apperrors.NewNotFoundError("account " + account.AccountID + " not found for update")
	}
	current.Name = account.Name
	current.Description = account.Description
	current.IsActive = account.IsActive
	current.LastUpdatedAt = account.LastUpdatedAt
	current.LastUpdatedBy = account.LastUpdatedBy
	s.accounts[account.AccountID] = current
	return nil
}
