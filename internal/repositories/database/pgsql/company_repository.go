package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bizease/bizease_backend/internal/apperrors"
	"github.com/bizease/bizease_backend/internal/core/domain"
	portsrepo "github.com/bizease/bizease_backend/internal/core/ports/repositories"
	"github.com/bizease/bizease_backend/internal/models"
	"github.com/bizease/bizease_backend/internal/utils/mapping"
)

type PgxCompanyRepository struct {
	BaseRepository
}

// newPgxCompanyRepository creates a new repository for the company profile.
func newPgxCompanyRepository(pool *pgxpool.Pool) portsrepo.CompanyRepository {
	return &PgxCompanyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CompanyRepository = (*PgxCompanyRepository)(nil)

const companyColumns = `company_id, name, gstin, address, city, state, pincode, phone, email,
	bank_name, bank_account, ifsc_code, currency_code, default_gst_rate,
	created_at, created_by, last_updated_at, last_updated_by`

func scanCompany(row pgx.Row) (models.CompanyProfile, error) {
	var m models.CompanyProfile
	err := row.Scan(
		&m.CompanyID, &m.Name, &m.GSTIN, &m.Address, &m.City, &m.State, &m.Pincode, &m.Phone, &m.Email,
		&m.BankName, &m.BankAccount, &m.IFSCCode, &m.CurrencyCode, &m.DefaultGSTRate,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxCompanyRepository) GetCompanyProfile(ctx context.Context) (domain.CompanyProfile, error) {
	query := `SELECT ` + companyColumns + ` FROM company_profile LIMIT 1;`
	m, err := scanCompany(r.Pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.CompanyProfile{}, apperrors.NewNotFoundError("company profile not set up")
		}
		return domain.CompanyProfile{}, fmt.Errorf("failed to load company profile: %w", err)
	}
	return mapping.ToDomainCompanyProfile(m), nil
}

// UpsertCompanyProfile replaces the single profile row. The singleton_guard
// column keeps the table at one row.
func (r *PgxCompanyRepository) UpsertCompanyProfile(ctx context.Context, profile domain.CompanyProfile) (domain.CompanyProfile, error) {
	m := mapping.ToModelCompanyProfile(profile)
	query := `
		INSERT INTO company_profile (company_id, name, gstin, address, city, state, pincode, phone, email,
			bank_name, bank_account, ifsc_code, currency_code, default_gst_rate,
			created_at, created_by, last_updated_at, last_updated_by, singleton_guard)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, TRUE)
		ON CONFLICT (singleton_guard) DO UPDATE SET
			name = EXCLUDED.name,
			gstin = EXCLUDED.gstin,
			address = EXCLUDED.address,
			city = EXCLUDED.city,
			state = EXCLUDED.state,
			pincode = EXCLUDED.pincode,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			bank_name = EXCLUDED.bank_name,
			bank_account = EXCLUDED.bank_account,
			ifsc_code = EXCLUDED.ifsc_code,
			currency_code = EXCLUDED.currency_code,
			default_gst_rate = EXCLUDED.default_gst_rate,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by
		RETURNING ` + companyColumns + `;
	`
	stored, err := scanCompany(r.Pool.QueryRow(ctx, query,
		m.CompanyID, m.Name, m.GSTIN, m.Address, m.City, m.State, m.Pincode, m.Phone, m.Email,
		m.BankName, m.BankAccount, m.IFSCCode, m.CurrencyCode, m.DefaultGSTRate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	))
	if err != nil {
		return domain.CompanyProfile{}, fmt.Errorf("failed to upsert company profile: %w", err)
	}
	return mapping.ToDomainCompanyProfile(stored), nil
}
