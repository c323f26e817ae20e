package models

import "github.com/shopspring/decimal"

// CompanyProfile is the database model for the single company row.
type CompanyProfile struct {
	CompanyID      string
	Name           string
	GSTIN          string
	Address        string
	City           string
	State          string
	Pincode        string
	Phone          string
	Email          string
	BankName       string
	BankAccount    string
	IFSCCode       string
	CurrencyCode   string
	DefaultGSTRate decimal.Decimal
	AuditFields
}
