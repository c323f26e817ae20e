package repositories

import (
	"context"

	"github.com/bizease/bizease_backend/internal/core/domain"
)

// CompanyRepository persists the single company profile row.
type CompanyRepository interface {
	GetCompanyProfile(ctx context.Context) (domain.CompanyProfile, error)
	UpsertCompanyProfile(ctx context.Context, profile domain.CompanyProfile) (domain.CompanyProfile, error)
}
