package mapping

import (
	"github.com/SscSPs/fiscal_balance/internal/core/domain"
	"github.com/SscSPs/fiscal_balance/internal/models"
)

// ToModelJournal converts a journal header to its row. Legs are stored separately.
func ToModelJournal(d domain.Journal) models.Journal {
	return models.Journal{
		JournalID:          d.JournalID,
		WorkplaceID:        d.WorkplaceID,
		JournalDate:        d.JournalDate,
		Description:        d.Description,
		CurrencyCode:       d.CurrencyCode,
		Status:             models.JournalStatus(d.Status),
		OriginalJournalID:  d.OriginalJournalID,
		ReversingJournalID: d.ReversingJournalID,
		Amount:             d.Amount,
		AuditFields:        models.AuditFields(d.AuditFields),
	}
}

// ToDomainJournal converts a journal row without its legs.
func ToDomainJournal(m models.Journal) domain.Journal {
	return domain.Journal{
		JournalID:          m.JournalID,
		WorkplaceID:        m.WorkplaceID,
		JournalDate:        m.JournalDate,
		Description:        m.Description,
		CurrencyCode:       m.CurrencyCode,
		Status:             domain.JournalStatus(m.Status),
		OriginalJournalID:  m.OriginalJournalID,
		ReversingJournalID: m.ReversingJournalID,
		Amount:             m.Amount,
		AuditFields:        domain.AuditFields(m.AuditFields),
	}
}

// ToModelTransaction converts a leg to the columns written on insert. The
// journal context fields are read-only joins and stay empty.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		JournalID:       d.JournalID,
		AccountID:       d.AccountID,
		Amount:          d.Amount,
		TransactionType: models.TransactionType(d.TransactionType),
		CurrencyCode:    d.CurrencyCode,
		Notes:           d.Notes,
		AuditFields:     models.AuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a leg row, keeping the joined journal date,
// description and status when the query selected them.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	leg := domain.Transaction{
		TransactionID:   m.TransactionID,
		JournalID:       m.JournalID,
		AccountID:       m.AccountID,
		Amount:          m.Amount,
		TransactionType: domain.TransactionType(m.TransactionType),
		CurrencyCode:    m.CurrencyCode,
		Notes:           m.Notes,
		AuditFields:     domain.AuditFields(m.AuditFields),
	}
	leg.JournalDate = m.JournalDate
	leg.JournalDescription = m.JournalDescription
	leg.JournalStatus = domain.JournalStatus(m.JournalStatus)
	return leg
}

// ToDomainTransactionSlice converts leg rows in order.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	return convertAll(ms, ToDomainTransaction)
}

// ToLedgerEntry projects a joined leg row onto the fields the balance fold reads.
func ToLedgerEntry(m models.Transaction) domain.LedgerEntry {
	return domain.LedgerEntry{
		AccountID:       m.AccountID,
		Amount:          m.Amount,
		TransactionType: domain.TransactionType(m.TransactionType),
		JournalDate:     m.JournalDate,
		JournalStatus:   domain.JournalStatus(m.JournalStatus),
	}
}
