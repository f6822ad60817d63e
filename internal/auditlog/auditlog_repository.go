package auditlog

import (
	"encoding/json"
	"fmt"

	"github.com/muhryhan/be-aset-dlh/internal/repository"
	"github.com/muhryhan/be-aset-dlh/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type AuditLogRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *AuditLogRepository {
	return &AuditLogRepository{repository: r}
}

func (r *AuditLogRepository) PersistLog(entry models.AuditLog, data interface{}) error {
	dataJSON, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal audit log data: %w", err)
	}

	query := r.repository.GoquDBWrapper.Insert("audit_log").
		Rows(goqu.Record{
			"resource_id":   entry.ResourceID,
			"resource_type": entry.ResourceType,
			"action":        entry.Action,
			"data":          dataJSON,
			"user_id":       entry.UserID,
		})

	if _, err = query.Executor().Exec(); err != nil {
		return fmt.Errorf("failed to insert audit log: %w", err)
	}

	return nil
}

func (r *AuditLogRepository) GetResourceLog(id int, resourceType string) ([]models.AuditLog, error) {
	query := r.repository.GoquDBWrapper.
		From(goqu.T("audit_log").As("a")).
		Select("a.id", "a.resource_id", "a.resource_type", "a.action", "a.data", "a.user_id", "a.created_at").
		Where(goqu.Ex{
			"a.resource_id":   id,
			"a.resource_type": resourceType,
		}).
		Order(goqu.I("a.created_at").Desc())

	rows, err := query.Executor().Query()
	if err != nil {
		return nil, fmt.Errorf("error executing SQL statement: %w", err)
	}
	defer rows.Close()

	var entries []models.AuditLog
	for rows.Next() {
		var entry models.AuditLog
		if err := rows.Scan(
			&entry.ID,
			&entry.ResourceID,
			&entry.ResourceType,
			&entry.Action,
			&entry.DataRaw,
			&entry.UserID,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning audit log row: %w", err)
		}
		entry.LoadFromDB()
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
