package mapping

import (
	"github.com/bizease/bizease_backend/internal/core/domain"
	"github.com/bizease/bizease_backend/internal/models"
)

// ToDomainParty converts a party model to its domain form. OutstandingBalance
// is left at zero; callers enrich it from the document repository.
func ToDomainParty(m models.Party) domain.Party {
	return domain.Party{
		PartyID:     m.PartyID,
		Kind:        domain.PartyKind(m.Kind),
		Name:        m.Name,
		GSTIN:       m.GSTIN,
		Address:     m.Address,
		City:        m.City,
		State:       m.State,
		Pincode:     m.Pincode,
		Phone:       m.Phone,
		Email:       m.Email,
		CreditLimit: m.CreditLimit,
		IsActive:    m.IsActive,
		AuditFields: toDomainAuditFields(m.AuditFields),
	}
}

// ToModelParty converts a domain party to its database model.
func ToModelParty(d domain.Party) models.Party {
	return models.Party{
		PartyID:     d.PartyID,
		Kind:        string(d.Kind),
		Name:        d.Name,
		GSTIN:       d.GSTIN,
		Address:     d.Address,
		City:        d.City,
		State:       d.State,
		Pincode:     d.Pincode,
		Phone:       d.Phone,
		Email:       d.Email,
		CreditLimit: d.CreditLimit,
		IsActive:    d.IsActive,
		AuditFields: toModelAuditFields(d.AuditFields),
	}
}
