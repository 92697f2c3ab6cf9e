package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	requestDomain "prestanet-backend/internal/domain/request"
	"prestanet-backend/internal/usecase/request"
)

type RequestHandler struct{ uc *request.Usecase }

func NewRequestHandler(uc *request.Usecase) *RequestHandler { return &RequestHandler{uc: uc} }

type submitLoanReq struct {
	BorrowerID       string  `json:"borrower_id" validate:"required,hex32"`
	Amount           float64 `json:"amount" validate:"required,gt=0,dec2"`
	InstallmentCount int     `json:"installment_count" validate:"required,gt=0"`
	SubmittedBy      *string `json:"submitted_by"`
}

func (h *RequestHandler) Submit(c echo.Context) error {
	var req submitLoanReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.SubmitLoan(c.Request().Context(), request.SubmitLoanInput{
		BorrowerID:       req.BorrowerID,
		Amount:           req.Amount,
		InstallmentCount: req.InstallmentCount,
		SubmittedBy:      req.SubmittedBy,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type acceptLoanReq struct {
	EmployeeID string `json:"employee_id" validate:"required"`
}

func (h *RequestHandler) Accept(c echo.Context) error {
	var req acceptLoanReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.AcceptLoan(c.Request().Context(), c.Param("request_id"), req.EmployeeID)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type rejectLoanReq struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	Reason     string `json:"reason"`
}

func (h *RequestHandler) Reject(c echo.Context) error {
	var req rejectLoanReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.RejectLoan(c.Request().Context(), c.Param("request_id"), req.Reason, req.EmployeeID)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *RequestHandler) List(c echo.Context) error {
	out, err := h.uc.ListLoanRequests(c.Request().Context(), requestDomain.Filter{
		State:      requestDomain.State(c.QueryParam("state")),
		BorrowerID: c.QueryParam("borrower_id"),
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
