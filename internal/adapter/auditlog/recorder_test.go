package auditlog

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"prestanet-backend/internal/domain/audit"
)

type auditSQLite struct {
	ID          uint64    `gorm:"primaryKey;column:id"`
	Actor       string    `gorm:"column:actor"`
	Table       string    `gorm:"column:table_name"`
	Operation   string    `gorm:"column:operation"`
	Description string    `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (auditSQLite) TableName() string { return "audit_logs" }

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&auditSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func TestList_Filters(t *testing.T) {
	db := openTestDB(t)
	rec := NewRecorder(db)
	ctx := context.Background()

	rows := []audit.Entry{
		{Actor: "emp-1", Table: "loan_requests", Operation: "UPDATE", Description: "accepted"},
		{Actor: "emp-1", Table: "loans", Operation: "INSERT", Description: "created"},
		{Actor: "emp-2", Table: "loan_requests", Operation: "UPDATE", Description: "rejected"},
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	all, err := rec.List(ctx, Filter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("all = %d, want 3", len(all))
	}

	byActor, err := rec.List(ctx, Filter{Actor: "emp-1"})
	if err != nil {
		t.Fatalf("List actor: %v", err)
	}
	if len(byActor) != 2 {
		t.Fatalf("actor rows = %d, want 2", len(byActor))
	}

	byTable, err := rec.List(ctx, Filter{Table: "loan_requests", Operation: "UPDATE"})
	if err != nil {
		t.Fatalf("List table: %v", err)
	}
	if len(byTable) != 2 {
		t.Fatalf("table rows = %d, want 2", len(byTable))
	}

	limited, err := rec.List(ctx, Filter{Limit: 1})
	if err != nil {
		t.Fatalf("List limit: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("limited rows = %d, want 1", len(limited))
	}
}
