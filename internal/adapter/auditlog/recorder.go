package auditlog

import (
	"context"
	"log"

	"gorm.io/gorm"

	"prestanet-backend/internal/domain/audit"
)

// Recorder writes audit rows outside the business transaction. Advisory
// only: failures are logged, never surfaced.
type Recorder struct{ db *gorm.DB }

func NewRecorder(db *gorm.DB) *Recorder { return &Recorder{db: db} }

var _ audit.Sink = (*Recorder)(nil)

func (r *Recorder) Record(actor, table, operation, description string) {
	go func() {
		defer func() {
			if p := recover(); p != nil {
				log.Printf("auditlog: panic recovered: %v", p)
			}
		}()
		e := audit.Entry{
			Actor:       actor,
			Table:       table,
			Operation:   operation,
			Description: description,
		}
		if err := r.db.Create(&e).Error; err != nil {
			log.Printf("auditlog: dropping entry for %s.%s: %v", table, operation, err)
		}
	}()
}

// Filter narrows audit listings; zero values mean "any".
type Filter struct {
	Actor     string
	Table     string
	Operation string
	Limit     int
}

func (r *Recorder) List(ctx context.Context, f Filter) ([]audit.Entry, error) {
	q := r.db.WithContext(ctx).Model(&audit.Entry{})
	if f.Actor != "" {
		q = q.Where("actor = ?", f.Actor)
	}
	if f.Table != "" {
		q = q.Where("table_name = ?", f.Table)
	}
	if f.Operation != "" {
		q = q.Where("operation = ?", f.Operation)
	}
	limit := f.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var out []audit.Entry
	res := q.Order("id DESC").Limit(limit).Find(&out)
	return out, res.Error
}
