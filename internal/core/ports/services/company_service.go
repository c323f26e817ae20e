package services

import (
	"context"

	"github.com/bizease/bizease_backend/internal/core/domain"
	"github.com/bizease/bizease_backend/internal/dto"
)

// CompanySvc manages the single company profile.
type CompanySvc interface {
	GetCompanyProfile(ctx context.Context) (domain.CompanyProfile, error)
	UpsertCompanyProfile(ctx context.Context, userID string, req dto.UpsertCompanyProfileRequest) (domain.CompanyProfile, error)
}
