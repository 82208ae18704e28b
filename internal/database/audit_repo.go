package database

import (
	"fmt"
	"time"

	"github.com/diegoclair/athlete-weekly-bot/internal/domain/contract"
	"github.com/diegoclair/athlete-weekly-bot/internal/domain/entity"
)

type auditRepo struct {
	db dbConn
}

func newAuditRepo(db dbConn) contract.AuditRepo {
	return &auditRepo{db: db}
}

func (r *auditRepo) Create(entry *entity.AuditEntry) error {
	query := `
		INSERT INTO audit_log (action, detail, actor, created_at)
		VALUES (?, ?, ?, ?)
	`

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	result, err := r.db.Exec(query,
		entry.Action,
		entry.Detail,
		entry.Actor,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create audit entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	entry.ID = id
	return nil
}

func (r *auditRepo) ListRecent(limit int) ([]*entity.AuditEntry, error) {
	query := `
		SELECT id, action, detail, actor, created_at
		FROM audit_log
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	defer rows.Close()

	var entries []*entity.AuditEntry
	for rows.Next() {
		entry := &entity.AuditEntry{}
		err := rows.Scan(
			&entry.ID,
			&entry.Action,
			&entry.Detail,
			&entry.Actor,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
