package audit

import "time"

type Entry struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	Actor       string    `gorm:"column:actor;size:64;not null;index:idx_audit_logs_actor" json:"actor"`
	Table       string    `gorm:"column:table_name;size:64;not null" json:"table"`
	Operation   string    `gorm:"column:operation;size:20;not null" json:"operation"`
	Description string    `gorm:"column:description;size:255" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Entry) TableName() string { return "audit_logs" }

// Sink records mutating operations for later inspection. Advisory only:
// implementations swallow failures and never block the caller.
type Sink interface {
	Record(actor, table, operation, description string)
}
