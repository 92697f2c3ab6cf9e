package installment

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"prestanet-backend/pkg/id"
)

var (
	ErrNotFound    = errors.New("installment not found")
	ErrInvalidTerm = errors.New("installment count must be a positive integer")
	ErrAlreadyPaid = errors.New("installment already paid")
)

type State string

const (
	StatePending State = "PENDING"
	StateOverdue State = "OVERDUE"
	StatePaid    State = "PAID"
)

type Installment struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	InstallmentID string `gorm:"column:installment_id;type:char(32);not null;uniqueIndex:ux_installments_installment_id" json:"installment_id"`
	// Numeric FK to loans.id
	LoanID     uint64         `gorm:"column:loan_id;not null;index:idx_installments_loan" json:"-"`
	BorrowerID string         `gorm:"column:borrower_id;type:char(32);not null;index:idx_installments_borrower" json:"borrower_id"`
	Seq        int            `gorm:"column:seq;not null" json:"seq"`
	Amount     float64        `gorm:"column:amount;type:decimal(18,2);not null" json:"amount"`
	DueDate    time.Time      `gorm:"column:due_date;not null" json:"due_date"`
	State      State          `gorm:"column:state;size:20;default:'PENDING'" json:"state"`
	PaidAt     *time.Time     `gorm:"column:paid_at" json:"paid_at,omitempty"`
	CreatedAt  time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Installment) TableName() string { return "installments" }

type CadenceUnit string

const (
	// CadenceMonth is the production cadence: one calendar month between installments.
	CadenceMonth CadenceUnit = "month"
	// CadenceMinute compresses the schedule for development and testing.
	CadenceMinute CadenceUnit = "minute"
)

// Cadence is the spacing between consecutive installment due dates.
type Cadence struct {
	Unit CadenceUnit
	Step int
}

func DefaultCadence() Cadence { return Cadence{Unit: CadenceMonth, Step: 1} }

// Add returns t shifted forward by n cadence intervals.
func (c Cadence) Add(t time.Time, n int) time.Time {
	step := c.Step
	if step <= 0 {
		step = 1
	}
	if c.Unit == CadenceMinute {
		return t.Add(time.Duration(n*step) * time.Minute)
	}
	return t.AddDate(0, n*step, 0)
}

// BuildSchedule splits total across count installments of equal rounded amounts,
// due on a fixed cadence starting one interval after start. The per-installment
// amount is round2(total/count), so the schedule sum may differ from total by
// at most one cent per installment.
func BuildSchedule(loanID uint64, borrowerID string, total float64, count int, start time.Time, cad Cadence) ([]Installment, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTerm, count)
	}
	amount := decimal.NewFromFloat(total).
		Div(decimal.NewFromInt(int64(count))).
		Round(2).
		InexactFloat64()

	out := make([]Installment, 0, count)
	for i := 1; i <= count; i++ {
		out = append(out, Installment{
			InstallmentID: id.NewID32(),
			LoanID:        loanID,
			BorrowerID:    borrowerID,
			Seq:           i,
			Amount:        amount,
			DueDate:       cad.Add(start, i),
			State:         StatePending,
		})
	}
	return out, nil
}
