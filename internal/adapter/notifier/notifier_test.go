package notifier

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"prestanet-backend/internal/domain/notification"
	"prestanet-backend/pkg/id"
)

type notificationSQLite struct {
	ID         uint64     `gorm:"primaryKey;column:id"`
	BorrowerID string     `gorm:"size:32;column:borrower_id"`
	Kind       string     `gorm:"type:text;column:kind"`
	Message    string     `gorm:"type:text;column:message"`
	Sent       bool       `gorm:"column:sent"`
	SentAt     *time.Time `gorm:"column:sent_at"`
	CreatedAt  time.Time  `gorm:"column:created_at"`
}

func (notificationSQLite) TableName() string { return "notifications" }

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&notificationSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func seed(t *testing.T, db *gorm.DB, borrowerID string, kind notification.Kind, sent bool) {
	t.Helper()
	n := notification.Notification{BorrowerID: borrowerID, Kind: kind, Message: "m", Sent: sent}
	if err := db.Create(&n).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func TestListPending_SkipsDelivered(t *testing.T) {
	db := openTestDB(t)
	rec := NewRecorder(db)
	ctx := context.Background()

	borrowerID := id.NewID32()
	seed(t, db, borrowerID, notification.KindLoanApproved, false)
	seed(t, db, borrowerID, notification.KindPaymentReminder, false)
	seed(t, db, borrowerID, notification.KindLoanRejected, true)

	out, err := rec.ListPending(ctx)
	if err != nil {
		t.Fatalf("ListPending: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("pending = %d, want 2", len(out))
	}
	for _, n := range out {
		if n.Sent {
			t.Fatalf("delivered notification listed: %+v", n)
		}
	}
}

func TestMarkSent_ByKind(t *testing.T) {
	db := openTestDB(t)
	rec := NewRecorder(db)
	ctx := context.Background()

	borrowerID := id.NewID32()
	seed(t, db, borrowerID, notification.KindPaymentReminder, false)
	seed(t, db, borrowerID, notification.KindPaymentReminder, false)
	seed(t, db, borrowerID, notification.KindLoanApproved, false)

	n, err := rec.MarkSent(ctx, notification.KindPaymentReminder)
	if err != nil {
		t.Fatalf("MarkSent: %v", err)
	}
	if n != 2 {
		t.Fatalf("marked = %d, want 2", n)
	}

	left, err := rec.ListPending(ctx)
	if err != nil {
		t.Fatalf("ListPending: %v", err)
	}
	if len(left) != 1 || left[0].Kind != notification.KindLoanApproved {
		t.Fatalf("unexpected remainder: %+v", left)
	}
}
