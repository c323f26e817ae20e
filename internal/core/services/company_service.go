package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bizease/bizease_backend/internal/core/domain"
	portsrepo "github.com/bizease/bizease_backend/internal/core/ports/repositories"
	portssvc "github.com/bizease/bizease_backend/internal/core/ports/services"
	"github.com/bizease/bizease_backend/internal/dto"
)

type companyService struct {
	BaseService
	companyRepo portsrepo.CompanyRepository
}

// NewCompanyService creates a new company profile service.
func NewCompanyService(companyRepo portsrepo.CompanyRepository) portssvc.CompanySvc {
	return &companyService{companyRepo: companyRepo}
}

var _ portssvc.CompanySvc = (*companyService)(nil)

func (s *companyService) GetCompanyProfile(ctx context.Context) (domain.CompanyProfile, error) {
	profile, err := s.companyRepo.GetCompanyProfile(ctx)
	if err != nil {
		return domain.CompanyProfile{}, fmt.Errorf("failed to get company profile: %w", err)
	}
	return profile, nil
}

func (s *companyService) UpsertCompanyProfile(ctx context.Context, userID string, req dto.UpsertCompanyProfileRequest) (domain.CompanyProfile, error) {
	now := time.Now()
	profile := domain.CompanyProfile{
		CompanyID:      uuid.NewString(),
		Name:           req.Name,
		GSTIN:          req.GSTIN,
		Address:        req.Address,
		City:           req.City,
		State:          req.State,
		Pincode:        req.Pincode,
		Phone:          req.Phone,
		Email:          req.Email,
		BankName:       req.BankName,
		BankAccount:    req.BankAccount,
		IFSCCode:       req.IFSCCode,
		CurrencyCode:   req.CurrencyCode,
		DefaultGSTRate: req.DefaultGSTRate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if profile.CurrencyCode == "" {
		profile.CurrencyCode = "INR"
	}

	stored, err := s.companyRepo.UpsertCompanyProfile(ctx, profile)
	if err != nil {
		s.LogError(ctx, err, "failed to upsert company profile")
		return domain.CompanyProfile{}, fmt.Errorf("failed to upsert company profile: %w", err)
	}
	return stored, nil
}
