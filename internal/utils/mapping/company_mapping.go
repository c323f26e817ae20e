package mapping

import (
	"github.com/bizease/bizease_backend/internal/core/domain"
	"github.com/bizease/bizease_backend/internal/models"
)

// ToDomainCompanyProfile converts a company model to its domain form.
func ToDomainCompanyProfile(m models.CompanyProfile) domain.CompanyProfile {
	return domain.CompanyProfile{
		CompanyID:      m.CompanyID,
		Name:           m.Name,
		GSTIN:          m.GSTIN,
		Address:        m.Address,
		City:           m.City,
		State:          m.State,
		Pincode:        m.Pincode,
		Phone:          m.Phone,
		Email:          m.Email,
		BankName:       m.BankName,
		BankAccount:    m.BankAccount,
		IFSCCode:       m.IFSCCode,
		CurrencyCode:   m.CurrencyCode,
		DefaultGSTRate: m.DefaultGSTRate,
		AuditFields:    toDomainAuditFields(m.AuditFields),
	}
}

// ToModelCompanyProfile converts a domain company profile to its database model.
func ToModelCompanyProfile(d domain.CompanyProfile) models.CompanyProfile {
	return models.CompanyProfile{
		CompanyID:      d.CompanyID,
		Name:           d.Name,
		GSTIN:          d.GSTIN,
		Address:        d.Address,
		City:           d.City,
		State:          d.State,
		Pincode:        d.Pincode,
		Phone:          d.Phone,
		Email:          d.Email,
		BankName:       d.BankName,
		BankAccount:    d.BankAccount,
		IFSCCode:       d.IFSCCode,
		CurrencyCode:   d.CurrencyCode,
		DefaultGSTRate: d.DefaultGSTRate,
		AuditFields:    toModelAuditFields(d.AuditFields),
	}
}
