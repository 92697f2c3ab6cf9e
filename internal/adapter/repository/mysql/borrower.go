package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	borrowerDomain "prestanet-backend/internal/domain/borrower"
)

type BorrowerRepository struct{ db *gorm.DB }

func NewBorrowerRepository(db *gorm.DB) *BorrowerRepository { return &BorrowerRepository{db: db} }

func (r *BorrowerRepository) Create(ctx context.Context, b *borrowerDomain.Borrower) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BorrowerRepository) Save(ctx context.Context, b *borrowerDomain.Borrower) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BorrowerRepository) GetByBorrowerID(ctx context.Context, borrowerID string) (*borrowerDomain.Borrower, error) {
	var out borrowerDomain.Borrower
	res := r.db.WithContext(ctx).Where("borrower_id = ?", borrowerID).First(&out)
	return &out, res.Error
}

func (r *BorrowerRepository) GetByBorrowerIDForUpdate(ctx context.Context, borrowerID string) (*borrowerDomain.Borrower, error) {
	var out borrowerDomain.Borrower
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("borrower_id = ?", borrowerID).
		First(&out)
	return &out, res.Error
}

func (r *BorrowerRepository) GetByNationalID(ctx context.Context, nationalID string) (*borrowerDomain.Borrower, error) {
	var out borrowerDomain.Borrower
	res := r.db.WithContext(ctx).Where("national_id = ?", nationalID).First(&out)
	return &out, res.Error
}

func (r *BorrowerRepository) List(ctx context.Context) ([]borrowerDomain.Borrower, error) {
	var out []borrowerDomain.Borrower
	res := r.db.WithContext(ctx).Order("id DESC").Find(&out)
	return out, res.Error
}
