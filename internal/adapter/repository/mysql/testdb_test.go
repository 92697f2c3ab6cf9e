package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly mirror schemas only for tests (no char/decimal column types) ---

type borrowerSQLite struct {
	ID         uint64         `gorm:"primaryKey;column:id"`
	BorrowerID string         `gorm:"size:32;column:borrower_id"`
	NationalID string         `gorm:"size:20;column:national_id"`
	FirstName  string         `gorm:"column:first_name"`
	LastName   string         `gorm:"column:last_name"`
	Address    string         `gorm:"column:address"`
	Email      string         `gorm:"column:email"`
	Phone      string         `gorm:"column:phone"`
	BirthDate  time.Time      `gorm:"column:birth_date"`
	Status     string         `gorm:"type:text;column:status"`
	CreatedAt  time.Time      `gorm:"column:created_at"`
	UpdatedAt  time.Time      `gorm:"column:updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (borrowerSQLite) TableName() string { return "borrowers" }

type loanSQLite struct {
	ID               uint64         `gorm:"primaryKey;column:id"`
	LoanID           string         `gorm:"size:32;column:loan_id"`
	BorrowerID       string         `gorm:"size:32;column:borrower_id"`
	RequestID        *uint64        `gorm:"column:request_id"`
	Principal        float64        `gorm:"column:principal"`
	Interest         float64        `gorm:"column:interest"`
	Total            float64        `gorm:"column:total"`
	Tier             string         `gorm:"type:text;column:tier"`
	InstallmentCount int            `gorm:"column:installment_count"`
	IssuedAt         time.Time      `gorm:"column:issued_at"`
	DueAt            time.Time      `gorm:"column:due_at"`
	State            string         `gorm:"type:text;column:state"`
	StateUpdatedAt   time.Time      `gorm:"column:state_updated_at"`
	CreatedAt        time.Time      `gorm:"column:created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (loanSQLite) TableName() string { return "loans" }

type installmentSQLite struct {
	ID            uint64         `gorm:"primaryKey;column:id"`
	InstallmentID string         `gorm:"size:32;column:installment_id"`
	LoanID        uint64         `gorm:"column:loan_id"`
	BorrowerID    string         `gorm:"size:32;column:borrower_id"`
	Seq           int            `gorm:"column:seq"`
	Amount        float64        `gorm:"column:amount"`
	DueDate       time.Time      `gorm:"column:due_date"`
	State         string         `gorm:"type:text;column:state"`
	PaidAt        *time.Time     `gorm:"column:paid_at"`
	CreatedAt     time.Time      `gorm:"column:created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (installmentSQLite) TableName() string { return "installments" }

type loanRequestSQLite struct {
	ID               uint64         `gorm:"primaryKey;column:id"`
	RequestID        string         `gorm:"size:32;column:request_id"`
	BorrowerID       string         `gorm:"size:32;column:borrower_id"`
	Amount           float64        `gorm:"column:amount"`
	InstallmentCount int            `gorm:"column:installment_count"`
	SubmittedBy      *string        `gorm:"column:submitted_by"`
	DecidedBy        *string        `gorm:"column:decided_by"`
	RejectReason     *string        `gorm:"column:reject_reason"`
	State            string         `gorm:"type:text;column:state"`
	SubmittedAt      time.Time      `gorm:"column:submitted_at"`
	DecidedAt        *time.Time     `gorm:"column:decided_at"`
	CreatedAt        time.Time      `gorm:"column:created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (loanRequestSQLite) TableName() string { return "loan_requests" }

type refinancingSQLite struct {
	ID               uint64         `gorm:"primaryKey;column:id"`
	RequestID        string         `gorm:"size:32;column:request_id"`
	LoanID           uint64         `gorm:"column:loan_id"`
	BorrowerID       string         `gorm:"size:32;column:borrower_id"`
	InstallmentCount int            `gorm:"column:installment_count"`
	State            string         `gorm:"type:text;column:state"`
	SubmittedAt      time.Time      `gorm:"column:submitted_at"`
	DecidedAt        *time.Time     `gorm:"column:decided_at"`
	CreatedAt        time.Time      `gorm:"column:created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (refinancingSQLite) TableName() string { return "refinancing_requests" }

// openTestDB creates an in-memory sqlite DB and migrates the sqlite-safe
// mirror schemas, NOT the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&borrowerSQLite{},
		&loanSQLite{},
		&installmentSQLite{},
		&loanRequestSQLite{},
		&refinancingSQLite{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
