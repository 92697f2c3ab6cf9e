package request

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("request not found")
	ErrInvalidTransition = errors.New("request is not pending")
	ErrNotOwner          = errors.New("loan does not belong to borrower")
)

type State string

const (
	StatePending  State = "PENDING"
	StateAccepted State = "ACCEPTED"
	StateRejected State = "REJECTED"
)

// LoanRequest is a borrower's application for a new loan, pending an
// employee decision. Terminal states are final.
type LoanRequest struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	RequestID        string `gorm:"column:request_id;type:char(32);not null;uniqueIndex:ux_loan_requests_request_id" json:"request_id"`
	BorrowerID       string `gorm:"column:borrower_id;type:char(32);not null;index:idx_loan_requests_borrower" json:"borrower_id"`
	Amount           float64 `gorm:"column:amount;type:decimal(18,2);not null" json:"amount"`
	InstallmentCount int     `gorm:"column:installment_count;not null" json:"installment_count"`
	// Employee that filed the request on the borrower's behalf, if any.
	SubmittedBy  *string        `gorm:"column:submitted_by;type:char(32)" json:"submitted_by,omitempty"`
	DecidedBy    *string        `gorm:"column:decided_by;type:char(32)" json:"decided_by,omitempty"`
	RejectReason *string        `gorm:"column:reject_reason;size:255" json:"reject_reason,omitempty"`
	State        State          `gorm:"column:state;size:20;default:'PENDING'" json:"state"`
	SubmittedAt  time.Time      `gorm:"column:submitted_at;not null" json:"submitted_at"`
	DecidedAt    *time.Time     `gorm:"column:decided_at" json:"decided_at,omitempty"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (LoanRequest) TableName() string { return "loan_requests" }

// RefinancingRequest asks to regenerate an ACTIVE loan's installment
// schedule with a new term.
type RefinancingRequest struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	RequestID string `gorm:"column:request_id;type:char(32);not null;uniqueIndex:ux_refinancing_requests_request_id" json:"request_id"`
	// Numeric FK to loans.id
	LoanID           uint64         `gorm:"column:loan_id;not null;index:idx_refinancing_requests_loan" json:"-"`
	BorrowerID       string         `gorm:"column:borrower_id;type:char(32);not null;index:idx_refinancing_requests_borrower" json:"borrower_id"`
	InstallmentCount int            `gorm:"column:installment_count;not null" json:"installment_count"`
	State            State          `gorm:"column:state;size:20;default:'PENDING'" json:"state"`
	SubmittedAt      time.Time      `gorm:"column:submitted_at;not null" json:"submitted_at"`
	DecidedAt        *time.Time     `gorm:"column:decided_at" json:"decided_at,omitempty"`
	CreatedAt        time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (RefinancingRequest) TableName() string { return "refinancing_requests" }
