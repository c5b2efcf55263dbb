package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/PromoAdmin_Go/internal/audit"
)

type auditRepository struct {
	db *pgxpool.Pool
}

// NewAuditRepository creates a new PostgreSQL audit log repository
func NewAuditRepository(db *pgxpool.Pool) audit.Repository {
	return &auditRepository{db: db}
}

// Record stores an entry in the audit log
func (r *auditRepository) Record(ctx context.Context, e audit.Entry) error {
	query := `
		INSERT INTO admin_audit_log (action, actor, entity_type, entity_id, summary, request_id, created_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), COALESCE($7, NOW()))
	`
	var createdAt *time.Time
	if !e.CreatedAt.IsZero() {
		createdAt = &e.CreatedAt
	}

	_, err := r.db.Exec(ctx, query, e.Action, e.Actor, e.EntityType, e.EntityID, e.Summary, e.RequestID, createdAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRecordAudit, err)
	}
	return nil
}

// List retrieves entries matching the filter, newest first
func (r *auditRepository) List(ctx context.Context, filter audit.Filter) ([]audit.Entry, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, action, actor, entity_type, entity_id, summary, COALESCE(request_id, ''), created_at
		FROM admin_audit_log`)

	args := writeAuditWhere(&queryBuilder, filter)
	argNum := len(args) + 1

	queryBuilder.WriteString(" ORDER BY created_at DESC, id DESC")

	if filter.Limit > 0 {
		fmt.Fprintf(&queryBuilder, " LIMIT $%d", argNum)
		args = append(args, filter.Limit)
		argNum++
	}
	if filter.Offset > 0 {
		fmt.Fprintf(&queryBuilder, " OFFSET $%d", argNum)
		args = append(args, filter.Offset)
	}

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryAudit, err)
	}
	defer rows.Close()

	return scanAuditEntries(rows)
}

// Count returns the number of entries matching the filter
func (r *auditRepository) Count(ctx context.Context, filter audit.Filter) (int, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT COUNT(*) FROM admin_audit_log`)
	args := writeAuditWhere(&queryBuilder, filter)

	var n int
	if err := r.db.QueryRow(ctx, queryBuilder.String(), args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCountAudit, err)
	}
	return n, nil
}

// DeleteBefore removes entries created before cutoff
func (r *auditRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM admin_audit_log WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToDeleteAudit, err)
	}
	return result.RowsAffected(), nil
}

// writeAuditWhere appends the WHERE clause for filter and returns its arguments
func writeAuditWhere(qb *strings.Builder, filter audit.Filter) []interface{} {
	qb.WriteString(" WHERE 1=1")

	args := []interface{}{}
	argNum := 1

	if filter.Actor != "" {
		fmt.Fprintf(qb, " AND actor = $%d", argNum)
		args = append(args, filter.Actor)
		argNum++
	}
	if filter.Action != "" {
		fmt.Fprintf(qb, " AND action = $%d", argNum)
		args = append(args, filter.Action)
		argNum++
	}
	if filter.EntityType != "" {
		fmt.Fprintf(qb, " AND entity_type = $%d", argNum)
		args = append(args, filter.EntityType)
		argNum++
	}
	if filter.Since != nil {
		fmt.Fprintf(qb, " AND created_at >= $%d", argNum)
		args = append(args, *filter.Since)
		argNum++
	}
	if filter.Until != nil {
		fmt.Fprintf(qb, " AND created_at <= $%d", argNum)
		args = append(args, *filter.Until)
	}
	return args
}

func scanAuditEntries(rows pgx.Rows) ([]audit.Entry, error) {
	entries := []audit.Entry{}
	for rows.Next() {
		var e audit.Entry
		if err := rows.Scan(
			&e.ID,
			&e.Action,
			&e.Actor,
			&e.EntityType,
			&e.EntityID,
			&e.Summary,
			&e.RequestID,
			&e.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
