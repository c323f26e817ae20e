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

type PgxInventoryRepository struct {
	BaseRepository
}

// newPgxInventoryRepository creates a new repository for stocked items.
func newPgxInventoryRepository(pool *pgxpool.Pool) portsrepo.InventoryRepository {
	return &PgxInventoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.InventoryRepository = (*PgxInventoryRepository)(nil)

const itemColumns = `item_id, name, hsn, sku, category, unit, purchase_price, selling_price,
	quantity, low_stock_threshold, gst_rate, last_purchase_date, last_sale_date,
	created_at, created_by, last_updated_at, last_updated_by`

func scanItem(row pgx.Row) (models.InventoryItem, error) {
	var m models.InventoryItem
	err := row.Scan(
		&m.ItemID, &m.Name, &m.HSN, &m.SKU, &m.Category, &m.Unit, &m.PurchasePrice, &m.SellingPrice,
		&m.Quantity, &m.LowStockThreshold, &m.GSTRate, &m.LastPurchaseDate, &m.LastSaleDate,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxInventoryRepository) CreateItem(ctx context.Context, item domain.InventoryItem) error {
	m := mapping.ToModelInventoryItem(item)
	query := `
		INSERT INTO inventory_items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ItemID, m.Name, m.HSN, m.SKU, m.Category, m.Unit, m.PurchasePrice, m.SellingPrice,
		m.Quantity, m.LowStockThreshold, m.GSTRate, m.LastPurchaseDate, m.LastSaleDate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.NewAppError(409, "inventory item already exists", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert inventory item %s: %w", m.ItemID, err)
	}
	return nil
}

func (r *PgxInventoryRepository) GetItemByID(ctx context.Context, itemID string) (domain.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE item_id = $1;`
	m, err := scanItem(r.Pool.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.InventoryItem{}, apperrors.NewNotFoundError(fmt.Sprintf("item %s not found", itemID))
		}
		return domain.InventoryItem{}, fmt.Errorf("failed to find item %s: %w", itemID, err)
	}
	return mapping.ToDomainInventoryItem(m), nil
}

func (r *PgxInventoryRepository) GetItemsByIDs(ctx context.Context, itemIDs []string) ([]domain.InventoryItem, error) {
	if len(itemIDs) == 0 {
		return []domain.InventoryItem{}, nil
	}
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE item_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query items by ids: %w", err)
	}
	defer rows.Close()

	items := []domain.InventoryItem{}
	for rows.Next() {
		m, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, mapping.ToDomainInventoryItem(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read items: %w", err)
	}
	return items, nil
}

func (r *PgxInventoryRepository) ListItems(ctx context.Context, params portsrepo.ListInventoryParams) ([]domain.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE 1=1`
	args := []any{}
	if params.Search != "" {
		args = append(args, "%"+params.Search+"%")
		query += fmt.Sprintf(" AND (name ILIKE $%d OR sku ILIKE $%d OR hsn ILIKE $%d)", len(args), len(args), len(args))
	}
	if params.Category != "" {
		args = append(args, params.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if params.LowStock {
		query += " AND quantity <= low_stock_threshold"
	}
	query += " ORDER BY name;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory items: %w", err)
	}
	defer rows.Close()

	items := []domain.InventoryItem{}
	for rows.Next() {
		m, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, mapping.ToDomainInventoryItem(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read inventory items: %w", err)
	}
	return items, nil
}

func (r *PgxInventoryRepository) UpdateItem(ctx context.Context, item domain.InventoryItem) error {
	m := mapping.ToModelInventoryItem(item)
	query := `
		UPDATE inventory_items SET
			name = $2, hsn = $3, sku = $4, category = $5, unit = $6,
			purchase_price = $7, selling_price = $8, low_stock_threshold = $9, gst_rate = $10,
			last_updated_at = $11, last_updated_by = $12
		WHERE item_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ItemID, m.Name, m.HSN, m.SKU, m.Category, m.Unit,
		m.PurchasePrice, m.SellingPrice, m.LowStockThreshold, m.GSTRate,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update item %s: %w", m.ItemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("item %s not found", m.ItemID))
	}
	return nil
}

func (r *PgxInventoryRepository) AdjustStock(ctx context.Context, itemID string, delta decimal.Decimal) (domain.InventoryItem, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return domain.InventoryItem{}, err
	}
	defer r.Rollback(ctx, tx)

	lockQuery := `SELECT ` + itemColumns + ` FROM inventory_items WHERE item_id = $1 FOR UPDATE;`
	m, err := scanItem(tx.QueryRow(ctx, lockQuery, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.InventoryItem{}, apperrors.NewNotFoundError(fmt.Sprintf("item %s not found", itemID))
		}
		return domain.InventoryItem{}, fmt.Errorf("failed to lock item %s: %w", itemID, err)
	}

	m.Quantity = m.Quantity.Add(delta)
	_, err = tx.Exec(ctx, `UPDATE inventory_items SET quantity = $2, last_updated_at = now() WHERE item_id = $1;`, itemID, m.Quantity)
	if err != nil {
		return domain.InventoryItem{}, fmt.Errorf("failed to adjust stock for item %s: %w", itemID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return domain.InventoryItem{}, err
	}
	return mapping.ToDomainInventoryItem(m), nil
}

func (r *PgxInventoryRepository) DeleteItem(ctx context.Context, itemID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM inventory_items WHERE item_id = $1;`, itemID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.NewAppError(409, fmt.Sprintf("item %s appears on documents and cannot be deleted", itemID), apperrors.ErrConflict)
		}
		return fmt.Errorf("failed to delete item %s: %w", itemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("item %s not found", itemID))
	}
	return nil
}
