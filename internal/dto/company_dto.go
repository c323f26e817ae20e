package dto

import (
	"github.com/shopspring/decimal"

	"github.com/bizease/bizease_backend/internal/core/domain"
)

// UpsertCompanyProfileRequest is the payload for creating or replacing the
// company profile.
type UpsertCompanyProfileRequest struct {
	Name           string          `json:"name" binding:"required,max=200"`
	GSTIN          string          `json:"gstin" binding:"omitempty,len=15"`
	Address        string          `json:"address" binding:"omitempty,max=500"`
	City           string          `json:"city" binding:"omitempty,max=100"`
	State          string          `json:"state" binding:"omitempty,max=100"`
	Pincode        string          `json:"pincode" binding:"omitempty,max=10"`
	Phone          string          `json:"phone" binding:"omitempty,max=20"`
	Email          string          `json:"email" binding:"omitempty,email"`
	BankName       string          `json:"bankName" binding:"omitempty,max=200"`
	BankAccount    string          `json:"bankAccount" binding:"omitempty,max=30"`
	IFSCCode       string          `json:"ifscCode" binding:"omitempty,max=11"`
	CurrencyCode   string          `json:"currencyCode" binding:"omitempty,len=3"`
	DefaultGSTRate decimal.Decimal `json:"defaultGstRate"`
}

// CompanyProfileResponse is the API representation of the company profile.
type CompanyProfileResponse struct {
	domain.CompanyProfile
}

// ToCompanyProfileResponse converts a domain profile to its response form.
func ToCompanyProfileResponse(c domain.CompanyProfile) CompanyProfileResponse {
	return CompanyProfileResponse{CompanyProfile: c}
}
