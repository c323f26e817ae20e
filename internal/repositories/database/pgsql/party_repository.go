package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/bizease/bizease_backend/internal/apperrors"
	"github.com/bizease/bizease_backend/internal/core/domain"
	portsrepo "github.com/bizease/bizease_backend/internal/core/ports/repositories"
	"github.com/bizease/bizease_backend/internal/models"
	"github.com/bizease/bizease_backend/internal/utils/mapping"
)

type PgxPartyRepository struct {
	BaseRepository
}

// newPgxPartyRepository creates a new repository for customer and supplier data.
func newPgxPartyRepository(pool *pgxpool.Pool) portsrepo.PartyRepository {
	return &PgxPartyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PartyRepository = (*PgxPartyRepository)(nil)

// partySelect embeds the outstanding-balance subquery so every read carries
// the derived balance.
const partySelect = `
	SELECT p.party_id, p.kind, p.name, p.gstin, p.address, p.city, p.state, p.pincode,
		p.phone, p.email, p.credit_limit, p.is_active,
		p.created_at, p.created_by, p.last_updated_at, p.last_updated_by,
		COALESCE((
			SELECT SUM(d.grand_total - d.amount_paid)
			FROM documents d
			WHERE d.party_id = p.party_id AND d.status IN ('PENDING', 'PARTIAL')
		), 0) AS outstanding_balance
	FROM parties p
`

func scanParty(row pgx.Row) (domain.Party, error) {
	var m models.Party
	var outstanding decimal.Decimal
	err := row.Scan(
		&m.PartyID, &m.Kind, &m.Name, &m.GSTIN, &m.Address, &m.City, &m.State, &m.Pincode,
		&m.Phone, &m.Email, &m.CreditLimit, &m.IsActive,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		&outstanding,
	)
	if err != nil {
		return domain.Party{}, err
	}
	party := mapping.ToDomainParty(m)
	party.OutstandingBalance = outstanding
	return party, nil
}

func (r *PgxPartyRepository) CreateParty(ctx context.Context, party domain.Party) error {
	m := mapping.ToModelParty(party)
	query := `
		INSERT INTO parties (party_id, kind, name, gstin, address, city, state, pincode,
			phone, email, credit_limit, is_active,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PartyID, m.Kind, m.Name, m.GSTIN, m.Address, m.City, m.State, m.Pincode,
		m.Phone, m.Email, m.CreditLimit, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.NewAppError(409, "party already exists", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert party %s: %w", m.PartyID, err)
	}
	return nil
}

func (r *PgxPartyRepository) GetPartyByID(ctx context.Context, partyID string) (domain.Party, error) {
	query := partySelect + ` WHERE p.party_id = $1;`
	party, err := scanParty(r.Pool.QueryRow(ctx, query, partyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Party{}, apperrors.NewNotFoundError(fmt.Sprintf("party %s not found", partyID))
		}
		return domain.Party{}, fmt.Errorf("failed to find party %s: %w", partyID, err)
	}
	return party, nil
}

func (r *PgxPartyRepository) ListParties(ctx context.Context, params portsrepo.ListPartiesParams) ([]domain.Party, error) {
	query := partySelect + ` WHERE 1=1`
	args := []any{}
	if params.Kind != "" {
		args = append(args, string(params.Kind))
		query += fmt.Sprintf(" AND p.kind = $%d", len(args))
	}
	if params.Search != "" {
		args = append(args, "%"+params.Search+"%")
		query += fmt.Sprintf(" AND (p.name ILIKE $%d OR p.gstin ILIKE $%d OR p.phone ILIKE $%d)", len(args), len(args), len(args))
	}
	if !params.IncludeInactive {
		query += " AND p.is_active"
	}
	query += " ORDER BY p.name;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query parties: %w", err)
	}
	defer rows.Close()

	parties := []domain.Party{}
	for rows.Next() {
		party, err := scanParty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan party: %w", err)
		}
		parties = append(parties, party)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read parties: %w", err)
	}
	return parties, nil
}

func (r *PgxPartyRepository) UpdateParty(ctx context.Context, party domain.Party) error {
	m := mapping.ToModelParty(party)
	query := `
		UPDATE parties SET
			name = $2, gstin = $3, address = $4, city = $5, state = $6, pincode = $7,
			phone = $8, email = $9, credit_limit = $10, is_active = $11,
			last_updated_at = $12, last_updated_by = $13
		WHERE party_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.PartyID, m.Name, m.GSTIN, m.Address, m.City, m.State, m.Pincode,
		m.Phone, m.Email, m.CreditLimit, m.IsActive,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update party %s: %w", m.PartyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("party %s not found", m.PartyID))
	}
	return nil
}

func (r *PgxPartyRepository) DeleteParty(ctx context.Context, partyID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM parties WHERE party_id = $1;`, partyID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.NewAppError(409, fmt.Sprintf("party %s has documents and cannot be deleted", partyID), apperrors.ErrConflict)
		}
		return fmt.Errorf("failed to delete party %s: %w", partyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("party %s not found", partyID))
	}
	return nil
}

func (r *PgxPartyRepository) GetOutstandingBalance(ctx context.Context, partyID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(grand_total - amount_paid), 0)
		FROM documents
		WHERE party_id = $1 AND status IN ('PENDING', 'PARTIAL');
	`
	var outstanding decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, partyID).Scan(&outstanding); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum outstanding for party %s: %w", partyID, err)
	}
	return outstanding, nil
}
