// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/adpilot/fb-campaign-api/infrastructure/database/postgres"
	"github.com/adpilot/fb-campaign-api/internal/domain"
)

const operationAuditTable = "operation_audit"

type OperationAuditRepository interface {
	Record(entry *domain.OperationAudit) error
	ListRecent(limit int) ([]*domain.OperationAudit, error)
	PruneOlderThan(before time.Time) (int64, error)
}

type operationAuditRepository struct {
	conn *postgres.Connection
}

func NewOperationAuditRepository(conn *postgres.Connection) OperationAuditRepository {
	return &operationAuditRepository{
		conn: conn,
	}
}

func (r *operationAuditRepository) Record(entry *domain.OperationAudit) error {
	query := squirrel.
		Insert(operationAuditTable).
		Columns("id", "operation", "target_id", "success", "error_message", "created_at").
		Values(entry.ID, entry.Operation, entry.TargetID, entry.Success, entry.ErrorMessage, entry.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao gravar auditoria: %w", err)
	}

	return nil
}

func (r *operationAuditRepository) ListRecent(limit int) ([]*domain.OperationAudit, error) {
	if limit <= 0 {
		limit = 50
	}

	query := squirrel.
		Select("id", "operation", "target_id", "success", "error_message", "created_at").
		From(operationAuditTable).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.OperationAudit, 0)
	for rows.Next() {
		entry := &domain.OperationAudit{}
		if err := rows.Scan(
			&entry.ID,
			&entry.Operation,
			&entry.TargetID,
			&entry.Success,
			&entry.ErrorMessage,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear registro de auditoria: %w", err)
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *operationAuditRepository) PruneOlderThan(before time.Time) (int64, error) {
	query := squirrel.
		Delete(operationAuditTable).
		Where(squirrel.Lt{"created_at": before}).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover registros antigos: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return removed, nil
}
