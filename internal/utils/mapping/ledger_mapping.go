package mapping

import (
	"github.com/bizease/bizease_backend/internal/core/domain"
	"github.com/bizease/bizease_backend/internal/models"
)

// ToDomainLedgerEntry converts a ledger entry model to its domain form.
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:         m.EntryID,
		Date:            m.Date,
		Type:            domain.LedgerEntryType(m.Type),
		ReferenceID:     m.ReferenceID,
		ReferenceNumber: m.ReferenceNumber,
		PartyID:         m.PartyID,
		PartyName:       m.PartyName,
		Description:     m.Description,
		PaymentMode:     domain.PaymentMode(m.PaymentMode),
		Debit:           m.Debit,
		Credit:          m.Credit,
		Balance:         m.Balance,
		AuditFields:     toDomainAuditFields(m.AuditFields),
	}
}

// ToModelLedgerEntry converts a domain ledger entry to its database model.
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:         d.EntryID,
		Date:            d.Date,
		Type:            string(d.Type),
		ReferenceID:     d.ReferenceID,
		ReferenceNumber: d.ReferenceNumber,
		PartyID:         d.PartyID,
		PartyName:       d.PartyName,
		Description:     d.Description,
		PaymentMode:     string(d.PaymentMode),
		Debit:           d.Debit,
		Credit:          d.Credit,
		Balance:         d.Balance,
		AuditFields:     toModelAuditFields(d.AuditFields),
	}
}
