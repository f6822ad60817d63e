package auditlog

import (
	"github.com/muhryhan/be-aset-dlh/pkg/models"

	"go.uber.org/zap"
)

// Store persists audit entries; implemented by internal/auditlog.
type Store interface {
	PersistLog(entry models.AuditLog, data interface{}) error
}

type Auditable interface {
	CreateLogView() models.AuditLog
}

type Auditlog struct {
	store Store
	log   *zap.Logger
}

func NewAuditLog(store Store, log *zap.Logger) *Auditlog {
	return &Auditlog{store: store, log: log}
}

// Log records a mutation. Handlers call it in a goroutine after the write
// has been confirmed; a failed audit insert never fails the request. A nil
// userID leaves the user_id column NULL.
func (a *Auditlog) Log(action string, userID *int, data map[string]interface{}, item Auditable) {
	entry := item.CreateLogView()
	entry.Action = action
	entry.UserID = userID

	if err := a.store.PersistLog(entry, data); err != nil {
		a.log.Warn("unable to create audit log entry",
			zap.Int("resource_id", entry.ResourceID),
			zap.String("resource_type", entry.ResourceType),
			zap.Error(err),
		)
		return
	}

	a.log.Debug("audit log entry created",
		zap.Int("resource_id", entry.ResourceID),
		zap.String("action", action),
	)
}
