package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	loanDomain "prestanet-backend/internal/domain/loan"
	"prestanet-backend/internal/usecase/loan"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type createLoanReq struct {
	BorrowerID       string  `json:"borrower_id" validate:"required,hex32"`
	Principal        float64 `json:"principal" validate:"required,gt=0,dec2"`
	InstallmentCount int     `json:"installment_count" validate:"required,gt=0"`
	Tier             string  `json:"tier" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
}

func (h *LoanHandler) Create(c echo.Context) error {
	var req createLoanReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Create(c.Request().Context(), loan.CreateLoanInput{
		BorrowerID:       req.BorrowerID,
		Principal:        req.Principal,
		InstallmentCount: req.InstallmentCount,
		Tier:             loanDomain.Tier(req.Tier),
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) ListByBorrower(c echo.Context) error {
	dto, err := h.uc.ListByBorrower(c.Request().Context(), c.Param("borrower_id"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) Cancel(c echo.Context) error {
	dto, err := h.uc.Cancel(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type updateStateReq struct {
	State string `json:"state" validate:"required,oneof=ACTIVE CANCELLED COMPLETED REFINANCED"`
}

func (h *LoanHandler) UpdateState(c echo.Context) error {
	var req updateStateReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.UpdateState(c.Request().Context(), c.Param("loan_id"), loanDomain.State(req.State))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
