package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bizease/bizease_backend/internal/apperrors"
	"github.com/bizease/bizease_backend/internal/core/domain"
	portsrepo "github.com/bizease/bizease_backend/internal/core/ports/repositories"
	"github.com/bizease/bizease_backend/internal/models"
	"github.com/bizease/bizease_backend/internal/utils/mapping"
)

type PgxAlertRepository struct {
	BaseRepository
}

// newPgxAlertRepository creates a new repository for dashboard alerts.
func newPgxAlertRepository(pool *pgxpool.Pool) portsrepo.AlertRepository {
	return &PgxAlertRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.AlertRepository = (*PgxAlertRepository)(nil)

const alertColumns = `alert_id, type, title, message, severity, is_read, related_id,
	created_at, created_by, last_updated_at, last_updated_by`

func scanAlert(row pgx.Row) (models.Alert, error) {
	var m models.Alert
	err := row.Scan(
		&m.AlertID, &m.Type, &m.Title, &m.Message, &m.Severity, &m.IsRead, &m.RelatedID,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxAlertRepository) CreateAlert(ctx context.Context, alert domain.Alert) error {
	m := mapping.ToModelAlert(alert)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO alerts (`+alertColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`,
		m.AlertID, m.Type, m.Title, m.Message, m.Severity, m.IsRead, m.RelatedID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert alert %s: %w", m.AlertID, err)
	}
	return nil
}

func (r *PgxAlertRepository) ListAlerts(ctx context.Context, unreadOnly bool) ([]domain.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts`
	if unreadOnly {
		query += ` WHERE NOT is_read`
	}
	query += ` ORDER BY created_at DESC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query alerts: %w", err)
	}
	defer rows.Close()

	alerts := []domain.Alert{}
	for rows.Next() {
		m, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert: %w", err)
		}
		alerts = append(alerts, mapping.ToDomainAlert(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read alerts: %w", err)
	}
	return alerts, nil
}

func (r *PgxAlertRepository) MarkAlertRead(ctx context.Context, alertID string) error {
	tag, err := r.Pool.Exec(ctx, `UPDATE alerts SET is_read = TRUE, last_updated_at = now() WHERE alert_id = $1;`, alertID)
	if err != nil {
		return fmt.Errorf("failed to mark alert %s read: %w", alertID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("alert %s not found", alertID))
	}
	return nil
}

func (r *PgxAlertRepository) MarkAllAlertsRead(ctx context.Context) error {
	if _, err := r.Pool.Exec(ctx, `UPDATE alerts SET is_read = TRUE, last_updated_at = now() WHERE NOT is_read;`); err != nil {
		return fmt.Errorf("failed to mark all alerts read: %w", err)
	}
	return nil
}

func (r *PgxAlertRepository) DeleteAlert(ctx context.Context, alertID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM alerts WHERE alert_id = $1;`, alertID)
	if err != nil {
		return fmt.Errorf("failed to delete alert %s: %w", alertID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("alert %s not found", alertID))
	}
	return nil
}

func (r *PgxAlertRepository) HasUnreadAlert(ctx context.Context, alertType domain.AlertType, relatedID string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM alerts WHERE type = $1 AND related_id = $2 AND NOT is_read
		);
	`, string(alertType), relatedID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check for unread alert: %w", err)
	}
	return exists, nil
}
