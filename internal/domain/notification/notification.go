package notification

import (
	"time"
)

type Kind string

const (
	KindLoanApproved        Kind = "LOAN_APPROVED"
	KindLoanRejected        Kind = "LOAN_REJECTED"
	KindRefinancingApproved Kind = "REFINANCING_APPROVED"
	KindRefinancingRejected Kind = "REFINANCING_REJECTED"
	KindPaymentReminder     Kind = "PAYMENT_REMINDER"
)

type Notification struct {
	ID         uint64     `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	BorrowerID string     `gorm:"column:borrower_id;type:char(32);not null;index:idx_notifications_borrower" json:"borrower_id"`
	Kind       Kind       `gorm:"column:kind;size:40;not null" json:"kind"`
	Message    string     `gorm:"column:message;type:text" json:"message"`
	Sent       bool       `gorm:"column:sent;default:false" json:"sent"`
	SentAt     *time.Time `gorm:"column:sent_at" json:"sent_at,omitempty"`
	CreatedAt  time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }

// Sink receives business events after the owning transaction commits.
// Implementations must never block the caller or surface failures to it.
type Sink interface {
	Notify(borrowerID string, kind Kind, message string)
}
