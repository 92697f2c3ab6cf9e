package borrower

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound            = errors.New("borrower not found")
	ErrDuplicateNationalID = errors.New("national id already registered")
)

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

type Borrower struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	BorrowerID string         `gorm:"column:borrower_id;type:char(32);not null;uniqueIndex:ux_borrowers_borrower_id" json:"borrower_id"`
	NationalID string         `gorm:"column:national_id;size:20;not null;uniqueIndex:ux_borrowers_national_id" json:"national_id"`
	FirstName  string         `gorm:"column:first_name;size:100;not null" json:"first_name"`
	LastName   string         `gorm:"column:last_name;size:100;not null" json:"last_name"`
	Address    string         `gorm:"column:address;size:255" json:"address"`
	Email      string         `gorm:"column:email;size:255" json:"email"`
	Phone      string         `gorm:"column:phone;size:30" json:"phone"`
	BirthDate  time.Time      `gorm:"column:birth_date;type:date" json:"birth_date"`
	Status     Status         `gorm:"column:status;size:20;default:'ACTIVE'" json:"status"`
	CreatedAt  time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Borrower) TableName() string { return "borrowers" }
