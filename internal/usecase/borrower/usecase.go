package borrower

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	borrowerDomain "prestanet-backend/internal/domain/borrower"
	"prestanet-backend/pkg/id"
)

type Usecase struct{ repo borrowerDomain.Repository }

func NewUsecase(r borrowerDomain.Repository) *Usecase { return &Usecase{repo: r} }

type RegisterInput struct {
	NationalID string    `json:"national_id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Address    string    `json:"address"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	BirthDate  time.Time `json:"birth_date"`
}

type ContactInput struct {
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

type BorrowerDTO struct {
	BorrowerID string    `json:"borrower_id"`
	NationalID string    `json:"national_id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Address    string    `json:"address"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*BorrowerDTO, error) {
	if in.NationalID == "" || in.FirstName == "" || in.LastName == "" {
		return nil, errors.New("national_id, first_name and last_name are required")
	}

	_, err := u.repo.GetByNationalID(ctx, in.NationalID)
	switch {
	case err == nil:
		return nil, borrowerDomain.ErrDuplicateNationalID
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	b := &borrowerDomain.Borrower{
		BorrowerID: id.NewID32(),
		NationalID: in.NationalID,
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Address:    in.Address,
		Email:      in.Email,
		Phone:      in.Phone,
		BirthDate:  in.BirthDate,
		Status:     borrowerDomain.StatusActive,
	}
	if err := u.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	dto := toDTO(*b)
	return &dto, nil
}

// UpdateContact mutates contact fields only; identity is immutable.
func (u *Usecase) UpdateContact(ctx context.Context, borrowerID string, in ContactInput) (*BorrowerDTO, error) {
	b, err := u.repo.GetByBorrowerID(ctx, borrowerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, borrowerDomain.ErrNotFound
		}
		return nil, err
	}
	if in.Address != "" {
		b.Address = in.Address
	}
	if in.Email != "" {
		b.Email = in.Email
	}
	if in.Phone != "" {
		b.Phone = in.Phone
	}
	if err := u.repo.Save(ctx, b); err != nil {
		return nil, err
	}
	dto := toDTO(*b)
	return &dto, nil
}

func (u *Usecase) Get(ctx context.Context, borrowerID string) (*BorrowerDTO, error) {
	b, err := u.repo.GetByBorrowerID(ctx, borrowerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, borrowerDomain.ErrNotFound
		}
		return nil, err
	}
	dto := toDTO(*b)
	return &dto, nil
}

func (u *Usecase) GetByNationalID(ctx context.Context, nationalID string) (*BorrowerDTO, error) {
	b, err := u.repo.GetByNationalID(ctx, nationalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, borrowerDomain.ErrNotFound
		}
		return nil, err
	}
	dto := toDTO(*b)
	return &dto, nil
}

func (u *Usecase) List(ctx context.Context) ([]BorrowerDTO, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]BorrowerDTO, 0, len(items))
	for _, b := range items {
		out = append(out, toDTO(b))
	}
	return out, nil
}

func toDTO(b borrowerDomain.Borrower) BorrowerDTO {
	return BorrowerDTO{
		BorrowerID: b.BorrowerID,
		NationalID: b.NationalID,
		FirstName:  b.FirstName,
		LastName:   b.LastName,
		Address:    b.Address,
		Email:      b.Email,
		Phone:      b.Phone,
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt,
	}
}
