package domain

import "github.com/shopspring/decimal"

// CompanyProfile holds the single company's identity and invoice defaults.
type CompanyProfile struct {
	CompanyID      string          `json:"companyID"`
	Name           string          `json:"name"`
	GSTIN          string          `json:"gstin"`
	Address        string          `json:"address"`
	City           string          `json:"city"`
	State          string          `json:"state"`
	Pincode        string          `json:"pincode"`
	Phone          string          `json:"phone"`
	Email          string          `json:"email"`
	BankName       string          `json:"bankName"`
	BankAccount    string          `json:"bankAccount"`
	IFSCCode       string          `json:"ifscCode"`
	CurrencyCode   string          `json:"currencyCode"`
	DefaultGSTRate decimal.Decimal `json:"defaultGstRate"`
	AuditFields
}
