package borrower

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gorm.io/gorm"

	borrowerDomain "prestanet-backend/internal/domain/borrower"
	"prestanet-backend/internal/testutil/borrowermock"
)

func TestRegister_Success(t *testing.T) {
	var created *borrowerDomain.Borrower
	repo := &borrowermock.Repo{
		GetByNationalIDFn: func(ctx context.Context, nationalID string) (*borrowerDomain.Borrower, error) {
			return nil, gorm.ErrRecordNotFound
		},
		CreateFn: func(ctx context.Context, b *borrowerDomain.Borrower) error {
			created = b
			return nil
		},
	}
	uc := NewUsecase(repo)

	dto, err := uc.Register(context.Background(), RegisterInput{
		NationalID: "19283746",
		FirstName:  "Maria",
		LastName:   "Lopez",
		Email:      "maria@example.com",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if len(dto.BorrowerID) != 32 {
		t.Fatalf("borrower id length = %d", len(dto.BorrowerID))
	}
	if dto.Status != string(borrowerDomain.StatusActive) {
		t.Fatalf("status = %s", dto.Status)
	}
	if created == nil || created.NationalID != "19283746" {
		t.Fatalf("borrower not persisted: %+v", created)
	}
}

func TestRegister_DuplicateNationalID(t *testing.T) {
	repo := &borrowermock.Repo{
		GetByNationalIDFn: func(ctx context.Context, nationalID string) (*borrowerDomain.Borrower, error) {
			return &borrowerDomain.Borrower{NationalID: nationalID}, nil
		},
		CreateFn: func(ctx context.Context, b *borrowerDomain.Borrower) error {
			t.Fatal("Create must not be called for a duplicate")
			return nil
		},
	}
	uc := NewUsecase(repo)

	_, err := uc.Register(context.Background(), RegisterInput{
		NationalID: "19283746",
		FirstName:  "Maria",
		LastName:   "Lopez",
	})
	if !errors.Is(err, borrowerDomain.ErrDuplicateNationalID) {
		t.Fatalf("err = %v, want ErrDuplicateNationalID", err)
	}
}

func TestRegister_RequiredFields(t *testing.T) {
	uc := NewUsecase(&borrowermock.Repo{})
	if _, err := uc.Register(context.Background(), RegisterInput{FirstName: "Maria"}); err == nil {
		t.Fatal("missing national_id should fail")
	}
}

func TestUpdateContact_MutatesContactOnly(t *testing.T) {
	borrowerID := strings.Repeat("b", 32)
	var saved *borrowerDomain.Borrower
	repo := &borrowermock.Repo{
		GetByBorrowerIDFn: func(ctx context.Context, id string) (*borrowerDomain.Borrower, error) {
			return &borrowerDomain.Borrower{
				BorrowerID: id,
				NationalID: "19283746",
				FirstName:  "Maria",
				LastName:   "Lopez",
				Email:      "old@example.com",
				Phone:      "111",
			}, nil
		},
		SaveFn: func(ctx context.Context, b *borrowerDomain.Borrower) error {
			saved = b
			return nil
		},
	}
	uc := NewUsecase(repo)

	dto, err := uc.UpdateContact(context.Background(), borrowerID, ContactInput{Email: "new@example.com"})
	if err != nil {
		t.Fatalf("UpdateContact: %v", err)
	}
	if dto.Email != "new@example.com" {
		t.Fatalf("email = %s", dto.Email)
	}
	// Unset fields keep their values; identity is untouched.
	if saved.Phone != "111" || saved.NationalID != "19283746" {
		t.Fatalf("unexpected mutation: %+v", saved)
	}
}

func TestGetByNationalID(t *testing.T) {
	repo := &borrowermock.Repo{
		GetByNationalIDFn: func(ctx context.Context, nationalID string) (*borrowerDomain.Borrower, error) {
			if nationalID != "19283746" {
				return nil, gorm.ErrRecordNotFound
			}
			return &borrowerDomain.Borrower{NationalID: nationalID, FirstName: "Maria"}, nil
		},
	}
	uc := NewUsecase(repo)

	dto, err := uc.GetByNationalID(context.Background(), "19283746")
	if err != nil {
		t.Fatalf("GetByNationalID: %v", err)
	}
	if dto.FirstName != "Maria" {
		t.Fatalf("first name = %s", dto.FirstName)
	}
	if _, err := uc.GetByNationalID(context.Background(), "00000000"); !errors.Is(err, borrowerDomain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdateContact_NotFound(t *testing.T) {
	repo := &borrowermock.Repo{
		GetByBorrowerIDFn: func(ctx context.Context, id string) (*borrowerDomain.Borrower, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := NewUsecase(repo)

	_, err := uc.UpdateContact(context.Background(), strings.Repeat("f", 32), ContactInput{Email: "x@example.com"})
	if !errors.Is(err, borrowerDomain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
