package loan

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNotFound      = errors.New("loan not found")
	ErrInvalidAmount = errors.New("amount must be positive")
	ErrInvalidState  = errors.New("invalid loan state transition")
	ErrNotActive     = errors.New("loan is not active")
	ErrLimitExceeded = errors.New("borrower already has the maximum number of active loans")
)

// MaxActiveLoans is the hard cap on simultaneously ACTIVE loans per borrower.
const MaxActiveLoans = 2

type State string

const (
	StateActive     State = "ACTIVE"
	StateCancelled  State = "CANCELLED"
	StateCompleted  State = "COMPLETED"
	StateRefinanced State = "REFINANCED"
)

type Tier string

const (
	TierLow    Tier = "LOW"
	TierMedium Tier = "MEDIUM"
	TierHigh   Tier = "HIGH"
)

// InferTier maps an installment count to a rate tier. Applied when a borrower
// self-submits a request; employees may pick the tier explicitly.
func InferTier(installmentCount int) Tier {
	switch {
	case installmentCount <= 12:
		return TierLow
	case installmentCount <= 24:
		return TierMedium
	default:
		return TierHigh
	}
}

// Rate returns the flat interest rate for the tier.
func (t Tier) Rate() decimal.Decimal {
	switch t {
	case TierLow:
		return decimal.NewFromFloat(0.05)
	case TierMedium:
		return decimal.NewFromFloat(0.10)
	default:
		return decimal.NewFromFloat(0.15)
	}
}

// InterestFor computes the tier's flat interest on principal, rounded to 2 places.
func InterestFor(principal float64, t Tier) float64 {
	return decimal.NewFromFloat(principal).Mul(t.Rate()).Round(2).InexactFloat64()
}

var transitions = map[State][]State{
	StateActive: {StateCancelled, StateCompleted, StateRefinanced},
}

// CanTransition reports whether from -> to is a permitted state change.
// Terminal states have no outgoing transitions.
func CanTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

type Loan struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	LoanID     string `gorm:"column:loan_id;type:char(32);not null;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	BorrowerID string `gorm:"column:borrower_id;type:char(32);not null;index:idx_loans_borrower" json:"borrower_id"`
	// Numeric FK to the originating loan request; nil for manually created loans.
	RequestID        *uint64        `gorm:"column:request_id;index" json:"-"`
	Principal        float64        `gorm:"column:principal;type:decimal(18,2);not null" json:"principal"`
	Interest         float64        `gorm:"column:interest;type:decimal(18,2);not null" json:"interest"`
	Total            float64        `gorm:"column:total;type:decimal(18,2);not null" json:"total"`
	Tier             Tier           `gorm:"column:tier;size:10;not null" json:"tier"`
	InstallmentCount int            `gorm:"column:installment_count;not null" json:"installment_count"`
	IssuedAt         time.Time      `gorm:"column:issued_at;not null" json:"issued_at"`
	DueAt            time.Time      `gorm:"column:due_at;not null" json:"due_at"`
	State            State          `gorm:"column:state;size:20;default:'ACTIVE'" json:"state"`
	StateUpdatedAt   time.Time      `gorm:"column:state_updated_at;autoCreateTime" json:"state_updated_at"`
	CreatedAt        time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Loan) TableName() string { return "loans" }
