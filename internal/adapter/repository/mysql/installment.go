package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	instDomain "prestanet-backend/internal/domain/installment"
)

type InstallmentRepository struct{ db *gorm.DB }

func NewInstallmentRepository(db *gorm.DB) *InstallmentRepository {
	return &InstallmentRepository{db: db}
}

func (r *InstallmentRepository) CreateBatch(ctx context.Context, items []instDomain.Installment) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *InstallmentRepository) GetByInstallmentID(ctx context.Context, installmentID string) (*instDomain.Installment, error) {
	var out instDomain.Installment
	res := r.db.WithContext(ctx).Where("installment_id = ?", installmentID).First(&out)
	return &out, res.Error
}

func (r *InstallmentRepository) GetByInstallmentIDForUpdate(ctx context.Context, installmentID string) (*instDomain.Installment, error) {
	var out instDomain.Installment
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("installment_id = ?", installmentID).
		First(&out)
	return &out, res.Error
}

func (r *InstallmentRepository) Save(ctx context.Context, i *instDomain.Installment) error {
	return r.db.WithContext(ctx).Save(i).Error
}

func (r *InstallmentRepository) DeleteByLoan(ctx context.Context, loanID uint64) error {
	// Hard delete: a regenerated schedule fully replaces the old one.
	return r.db.WithContext(ctx).
		Unscoped().
		Where("loan_id = ?", loanID).
		Delete(&instDomain.Installment{}).Error
}

func (r *InstallmentRepository) ListByLoan(ctx context.Context, loanID uint64) ([]instDomain.Installment, error) {
	var out []instDomain.Installment
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("seq ASC").
		Find(&out)
	return out, res.Error
}

func (r *InstallmentRepository) ListByBorrower(ctx context.Context, borrowerID string) ([]instDomain.Installment, error) {
	var out []instDomain.Installment
	res := r.db.WithContext(ctx).
		Where("borrower_id = ?", borrowerID).
		Order("loan_id ASC, seq ASC").
		Find(&out)
	return out, res.Error
}

func (r *InstallmentRepository) ListByState(ctx context.Context, state instDomain.State) ([]instDomain.Installment, error) {
	var out []instDomain.Installment
	res := r.db.WithContext(ctx).
		Where("state = ?", state).
		Order("due_date ASC").
		Find(&out)
	return out, res.Error
}

func (r *InstallmentRepository) List(ctx context.Context) ([]instDomain.Installment, error) {
	var out []instDomain.Installment
	res := r.db.WithContext(ctx).Order("loan_id ASC, seq ASC").Find(&out)
	return out, res.Error
}

func (r *InstallmentRepository) ListOverdueByBorrowerForUpdate(ctx context.Context, borrowerID string) ([]instDomain.Installment, error) {
	var out []instDomain.Installment
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("borrower_id = ? AND state = ?", borrowerID, instDomain.StateOverdue).
		Order("due_date ASC").
		Find(&out)
	return out, res.Error
}

func (r *InstallmentRepository) CountByBorrower(ctx context.Context, borrowerID string) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&instDomain.Installment{}).
		Where("borrower_id = ?", borrowerID).
		Count(&n)
	return n, res.Error
}

func (r *InstallmentRepository) CountOverdueByBorrower(ctx context.Context, borrowerID string) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&instDomain.Installment{}).
		Where("borrower_id = ? AND state = ?", borrowerID, instDomain.StateOverdue).
		Count(&n)
	return n, res.Error
}

func (r *InstallmentRepository) CountUnpaidByLoan(ctx context.Context, loanID uint64) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&instDomain.Installment{}).
		Where("loan_id = ? AND state <> ?", loanID, instDomain.StatePaid).
		Count(&n)
	return n, res.Error
}

func (r *InstallmentRepository) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&instDomain.Installment{}).
		Where("state = ? AND due_date < ?", instDomain.StatePending, now).
		Update("state", instDomain.StateOverdue)
	return res.RowsAffected, res.Error
}
