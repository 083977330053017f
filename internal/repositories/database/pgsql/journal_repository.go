package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/SscSPs/fiscal_balance/internal/apperrors"
	"github.com/SscSPs/fiscal_balance/internal/core/domain"
	portsrepo "github.com/SscSPs/fiscal_balance/internal/core/ports/repositories"
	"github.com/SscSPs/fiscal_balance/internal/models"
	"github.com/SscSPs/fiscal_balance/internal/utils/accounting"
	"github.com/SscSPs/fiscal_balance/internal/utils/mapping"
	"github.com/SscSPs/fiscal_balance/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal and transaction data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

const journalColumns = `
	journal_id, workplace_id, journal_date, description, currency_code, status,
	original_journal_id, reversing_journal_id, amount,
	created_at, created_by, last_updated_at, last_updated_by
`

const transactionColumns = `
	t.transaction_id, t.journal_id, t.account_id, t.amount, t.transaction_type, t.currency_code, t.notes,
	t.created_at, t.created_by, t.last_updated_at, t.last_updated_by,
	j.journal_date, j.description, j.status
`

func scanJournal(row pgx.Row) (models.Journal, error) {
	var m models.Journal
	err := row.Scan(
		&m.JournalID,
		&m.WorkplaceID,
		&m.JournalDate,
		&m.Description,
		&m.CurrencyCode,
		&m.Status,
		&m.OriginalJournalID,
		&m.ReversingJournalID,
		&m.Amount,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var t models.Transaction
	err := row.Scan(
		&t.TransactionID,
		&t.JournalID,
		&t.AccountID,
		&t.Amount,
		&t.TransactionType,
		&t.CurrencyCode,
		&t.Notes,
		&t.CreatedAt,
		&t.CreatedBy,
		&t.LastUpdatedAt,
		&t.LastUpdatedBy,
		&t.JournalDate,
		&t.JournalDescription,
		&t.JournalStatus,
	)
	return t, err
}

func insertJournal(ctx context.Context, tx pgx.Tx, journal domain.Journal) error {
	m := mapping.ToModelJournal(journal)
	query := `INSERT INTO journals (` + journalColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`
	_, err := tx.Exec(ctx, query,
		m.JournalID,
		m.WorkplaceID,
		m.JournalDate,
		m.Description,
		m.CurrencyCode,
		m.Status,
		m.OriginalJournalID,
		m.ReversingJournalID,
		m.Amount,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		switch code, constraint := pgErrCode(err); {
		case code == pgUniqueViolation && constraint == "journals_original_journal_id_key":
			return fmt.Errorf("%w: journal %s already has a reversal", apperrors.ErrConcurrencyConflict, *m.OriginalJournalID)
		case code == pgUniqueViolation:
			return fmt.Errorf("%w: journal %s already exists", apperrors.ErrDuplicate, m.JournalID)
		case code == pgForeignKeyViolation:
			return fmt.Errorf("%w: journal %s references a missing workplace, currency or journal", apperrors.ErrValidation, m.JournalID)
		}
		return apperrors.NewAppError(500, "failed to insert journal "+m.JournalID, err)
	}
	return nil
}

func insertTransactions(ctx context.Context, tx pgx.Tx, transactions []domain.Transaction) error {
	batch := &pgx.Batch{}
	query := `
		INSERT INTO transactions (transaction_id, journal_id, account_id, amount, transaction_type, currency_code, notes,
		                          created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	for _, txn := range transactions {
		m := mapping.ToModelTransaction(txn)
		batch.Queue(query,
			m.TransactionID,
			m.JournalID,
			m.AccountID,
			m.Amount,
			m.TransactionType,
			m.CurrencyCode,
			m.Notes,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	// Close reports the first failing command of the batch.
	if err := br.Close(); err != nil {
		switch code, _ := pgErrCode(err); code {
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: transaction references a missing account or currency", apperrors.ErrValidation)
		case pgCheckViolation, pgNumericOutOfRange:
			return fmt.Errorf("%w: transaction amount is outside the storable range", apperrors.ErrValidation)
		}
		return apperrors.NewAppError(500, "failed to execute transaction batch", err)
	}
	return nil
}

// lockJournal selects a journal row FOR UPDATE inside tx.
func lockJournal(ctx context.Context, tx pgx.Tx, workplaceID, journalID string) (models.Journal, error) {
	query := `SELECT ` + journalColumns + ` FROM journals WHERE workplace_id = $1 AND journal_id = $2 FOR UPDATE;`
	m, err := scanJournal(tx.QueryRow(ctx, query, workplaceID, journalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Journal{}, apperrors.NewNotFoundError("journal " + journalID + " not found")
		}
		return models.Journal{}, apperrors.NewAppError(500, "failed to lock journal "+journalID, err)
	}
	return m, nil
}

// SaveJournal inserts a journal and its transactions within a DB transaction.
func (r *PgxJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal, transactions []domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // no-op once committed

	if err := insertJournal(ctx, tx, journal); err != nil {
		return err
	}
	if err := insertTransactions(ctx, tx, transactions); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// ReplaceDraftJournal overwrites the header and legs of a draft.
func (r *PgxJournalRepository) ReplaceDraftJournal(ctx context.Context, journal domain.Journal, transactions []domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	current, err := lockJournal(ctx, tx, journal.WorkplaceID, journal.JournalID)
	if err != nil {
		return err
	}
	if domain.JournalStatus(current.Status) != domain.Draft {
		return fmt.Errorf("%w: journal %s is %s, only drafts can be edited", apperrors.ErrConflict, journal.JournalID, current.Status)
	}

	m := mapping.ToModelJournal(journal)
	_, err = tx.Exec(ctx, `
		UPDATE journals
		SET journal_date = $2, description = $3, currency_code = $4, amount = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE journal_id = $1;`,
		m.JournalID,
		m.JournalDate,
		m.Description,
		m.CurrencyCode,
		m.Amount,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update journal "+m.JournalID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM transactions WHERE journal_id = $1;`, m.JournalID); err != nil {
		return apperrors.NewAppError(500, "failed to delete transactions of journal "+m.JournalID, err)
	}
	if err := insertTransactions(ctx, tx, transactions); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// PostJournal moves a draft to POSTED.
func (r *PgxJournalRepository) PostJournal(ctx context.Context, workplaceID, journalID, userID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	current, err := lockJournal(ctx, tx, workplaceID, journalID)
	if err != nil {
		return err
	}
	if domain.JournalStatus(current.Status) != domain.Draft {
		return fmt.Errorf("%w: journal %s is already %s", apperrors.ErrConflict, journalID, current.Status)
	}

	_, err = tx.Exec(ctx, `
		UPDATE journals SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE journal_id = $1;`,
		journalID, string(domain.Posted), now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to post journal "+journalID, err)
	}
	return r.Commit(ctx, tx)
}

// SaveReversal inserts the reversal and links it with its original atomically.
// The original row is locked first so that two concurrent reversals serialize;
// the conditional update and the unique index on original_journal_id catch
// anything that slips past the lock.
func (r *PgxJournalRepository) SaveReversal(ctx context.Context, originalJournalID string, reversal domain.Journal, transactions []domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	locked, err := lockJournal(ctx, tx, reversal.WorkplaceID, originalJournalID)
	if err != nil {
		return err
	}
	if locked.ReversingJournalID != nil {
		return fmt.Errorf("%w: journal %s was reversed by %s", apperrors.ErrConcurrencyConflict, originalJournalID, *locked.ReversingJournalID)
	}

	if err := insertJournal(ctx, tx, reversal); err != nil {
		return err
	}
	if err := insertTransactions(ctx, tx, transactions); err != nil {
		return err
	}

	cmdTag, err := tx.Exec(ctx, `
		UPDATE journals
		SET status = $2, reversing_journal_id = $3, last_updated_at = $4, last_updated_by = $5
		WHERE journal_id = $1 AND reversing_journal_id IS NULL;`,
		originalJournalID,
		string(domain.Reversed),
		reversal.JournalID,
		reversal.CreatedAt,
		reversal.CreatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to link journal "+originalJournalID+" to its reversal", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: journal %s", apperrors.ErrConcurrencyConflict, originalJournalID)
	}

	original := mapping.ToDomainJournal(locked)
	original.Status = domain.Reversed
	original.ReversingJournalID = &reversal.JournalID
	if err := accounting.ValidateReversalLinks(original, reversal); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// FindJournalByID retrieves a journal of a workplace.
func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, workplaceID, journalID string) (*domain.Journal, error) {
	query := `SELECT ` + journalColumns + ` FROM journals WHERE workplace_id = $1 AND journal_id = $2;`
	m, err := scanJournal(r.Pool.QueryRow(ctx, query, workplaceID, journalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("journal " + journalID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find journal by ID "+journalID, err)
	}
	journal := mapping.ToDomainJournal(m)
	return &journal, nil
}

// ListJournalsByWorkplace retrieves journals newest first after the cursor.
func (r *PgxJournalRepository) ListJournalsByWorkplace(ctx context.Context, workplaceID string, limit int, after *pagination.Cursor, includeReversals bool) ([]domain.Journal, error) {
	query := `SELECT ` + journalColumns + ` FROM journals WHERE workplace_id = $1`
	args := []any{workplaceID}
	if !includeReversals {
		query += ` AND original_journal_id IS NULL`
	}
	if after != nil {
		// Tuple comparison matches the index order.
		query += ` AND (journal_date, created_at, journal_id) < ($2, $3, $4)`
		args = append(args, after.JournalDate, after.CreatedAt, after.ID)
	}
	query += ` ORDER BY journal_date DESC, created_at DESC, journal_id DESC LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, limit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journals for workplace "+workplaceID, err)
	}
	defer rows.Close()

	modelJournals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Journal, error) {
		return scanJournal(row)
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan journal rows for workplace "+workplaceID, err)
	}

	journals := make([]domain.Journal, len(modelJournals))
	for i, m := range modelJournals {
		journals[i] = mapping.ToDomainJournal(m)
	}
	return journals, nil
}

func (r *PgxJournalRepository) queryTransactions(ctx context.Context, query string, args ...any) ([]models.Transaction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions", err)
	}
	defer rows.Close()

	txns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		return scanTransaction(row)
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan transaction rows", err)
	}
	return txns, nil
}

// FindTransactionsByJournalID retrieves all transactions associated with a specific journal.
func (r *PgxJournalRepository) FindTransactionsByJournalID(ctx context.Context, journalID string) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions t
		JOIN journals j ON j.journal_id = t.journal_id
		WHERE t.journal_id = $1
		ORDER BY t.created_at, t.transaction_id;
	`
	txns, err := r.queryTransactions(ctx, query, journalID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainTransactionSlice(txns), nil
}

// FindTransactionsByJournalIDs retrieves the transactions of several journals, grouped by journal ID.
// Every requested journal has an entry, possibly empty.
func (r *PgxJournalRepository) FindTransactionsByJournalIDs(ctx context.Context, journalIDs []string) (map[string][]domain.Transaction, error) {
	grouped := make(map[string][]domain.Transaction, len(journalIDs))
	if len(journalIDs) == 0 {
		return grouped, nil
	}

	query := `
		SELECT ` + transactionColumns + `
		FROM transactions t
		JOIN journals j ON j.journal_id = t.journal_id
		WHERE t.journal_id = ANY($1)
		ORDER BY t.journal_id, t.created_at, t.transaction_id;
	`
	txns, err := r.queryTransactions(ctx, query, journalIDs)
	if err != nil {
		return nil, err
	}
	for _, m := range txns {
		grouped[m.JournalID] = append(grouped[m.JournalID], mapping.ToDomainTransaction(m))
	}
	for _, id := range journalIDs {
		if _, ok := grouped[id]; !ok {
			grouped[id] = []domain.Transaction{}
		}
	}
	return grouped, nil
}

// ListTransactionsByAccountID retrieves the committed legs of an account newest first after the cursor.
func (r *PgxJournalRepository) ListTransactionsByAccountID(ctx context.Context, workplaceID, accountID string, limit int, after *pagination.Cursor) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions t
		JOIN journals j ON j.journal_id = t.journal_id
		WHERE t.account_id = $1 AND j.workplace_id = $2 AND j.status IN ('POSTED', 'REVERSED')`
	args := []any{accountID, workplaceID}
	if after != nil {
		query += ` AND (j.journal_date, t.created_at, t.transaction_id) < ($3, $4, $5)`
		args = append(args, after.JournalDate, after.CreatedAt, after.ID)
	}
	query += ` ORDER BY j.journal_date DESC, t.created_at DESC, t.transaction_id DESC LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, limit)

	txns, err := r.queryTransactions(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainTransactionSlice(txns), nil
}

// ListLedgerEntries returns the committed legs of a workplace, optionally for one account and up to asOf.
func (r *PgxJournalRepository) ListLedgerEntries(ctx context.Context, workplaceID, accountID string, asOf time.Time) ([]domain.LedgerEntry, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions t
		JOIN journals j ON j.journal_id = t.journal_id
		WHERE j.workplace_id = $1 AND j.status IN ('POSTED', 'REVERSED')`
	args := []any{workplaceID}
	if accountID != "" {
		args = append(args, accountID)
		query += ` AND t.account_id = $` + strconv.Itoa(len(args))
	}
	if !asOf.IsZero() {
		args = append(args, accounting.TruncateToDate(asOf))
		query += ` AND j.journal_date <= $` + strconv.Itoa(len(args))
	}
	query += `;`

	txns, err := r.queryTransactions(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	entries := make([]domain.LedgerEntry, len(txns))
	for i, m := range txns {
		entries[i] = mapping.ToLedgerEntry(m)
	}
	return entries, nil
}
