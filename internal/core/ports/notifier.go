package ports

import "hireboard/internal/core/domain/model/kernel"

// NotificationLevel classifies a board notification for display styling.
type NotificationLevel string

const (
	// NotificationSuccess acknowledges a completed operation.
	NotificationSuccess NotificationLevel = "success"
	// NotificationWarning reports a business rejection, e.g. a validation message.
	NotificationWarning NotificationLevel = "warning"
	// NotificationError reports a system failure, e.g. a persistence error.
	NotificationError NotificationLevel = "error"
)

// Notification is a transient user-facing acknowledgment of a board
// operation: moves succeeding, being rejected, or failing.
type Notification struct {
	Level   NotificationLevel
	JobID   kernel.UUID
	Message string
}

// Notifier delivers transient acknowledgments to whoever is watching the
// board. Implementations must be safe for concurrent use and must not
// block the caller for long; delivery is best-effort.
type Notifier interface {
	Publish(notification Notification)
}
