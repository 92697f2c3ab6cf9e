package notifier

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"prestanet-backend/internal/domain/notification"
)

// Recorder persists notifications to the notifications table. Delivery is
// fire-and-forget: the caller's transaction has already committed, so a
// failed insert is logged and dropped.
type Recorder struct{ db *gorm.DB }

func NewRecorder(db *gorm.DB) *Recorder { return &Recorder{db: db} }

var _ notification.Sink = (*Recorder)(nil)

func (r *Recorder) Notify(borrowerID string, kind notification.Kind, message string) {
	go func() {
		defer func() {
			if p := recover(); p != nil {
				log.Printf("notifier: panic recovered: %v", p)
			}
		}()
		n := notification.Notification{
			BorrowerID: borrowerID,
			Kind:       kind,
			Message:    message,
		}
		if err := r.db.Create(&n).Error; err != nil {
			log.Printf("notifier: dropping %s for %s: %v", kind, borrowerID, err)
		}
	}()
}

// ListPending returns notifications not yet delivered by the mail worker.
func (r *Recorder) ListPending(ctx context.Context) ([]notification.Notification, error) {
	var out []notification.Notification
	res := r.db.WithContext(ctx).
		Where("sent = ?", false).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

// MarkSent flags all undelivered notifications of one kind as sent.
func (r *Recorder) MarkSent(ctx context.Context, kind notification.Kind) (int64, error) {
	now := time.Now().UTC()
	res := r.db.WithContext(ctx).
		Model(&notification.Notification{}).
		Where("sent = ? AND kind = ?", false, kind).
		Updates(map[string]any{"sent": true, "sent_at": now})
	return res.RowsAffected, res.Error
}
