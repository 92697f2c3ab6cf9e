package sinkmock

import (
	"sync"

	"prestanet-backend/internal/domain/audit"
	"prestanet-backend/internal/domain/notification"
)

// Notifier records notifications in memory for assertions.
type Notifier struct {
	mu   sync.Mutex
	Sent []SentNotification
}

type SentNotification struct {
	BorrowerID string
	Kind       notification.Kind
	Message    string
}

var _ notification.Sink = (*Notifier)(nil)

func (n *Notifier) Notify(borrowerID string, kind notification.Kind, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Sent = append(n.Sent, SentNotification{BorrowerID: borrowerID, Kind: kind, Message: message})
}

func (n *Notifier) Count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.Sent)
}

// Auditor records audit entries in memory for assertions.
type Auditor struct {
	mu      sync.Mutex
	Entries []AuditEntry
}

type AuditEntry struct {
	Actor       string
	Table       string
	Operation   string
	Description string
}

var _ audit.Sink = (*Auditor)(nil)

func (a *Auditor) Record(actor, table, operation, description string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Entries = append(a.Entries, AuditEntry{Actor: actor, Table: table, Operation: operation, Description: description})
}

func (a *Auditor) Count() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.Entries)
}
