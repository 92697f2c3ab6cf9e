package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	requestDomain "prestanet-backend/internal/domain/request"
	"prestanet-backend/internal/usecase/request"
)

type RefinancingHandler struct{ uc *request.Usecase }

func NewRefinancingHandler(uc *request.Usecase) *RefinancingHandler {
	return &RefinancingHandler{uc: uc}
}

type submitRefinancingReq struct {
	LoanID           string `json:"loan_id" validate:"required,hex32"`
	BorrowerID       string `json:"borrower_id" validate:"required,hex32"`
	InstallmentCount int    `json:"installment_count" validate:"required,gt=0"`
}

func (h *RefinancingHandler) Submit(c echo.Context) error {
	var req submitRefinancingReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.SubmitRefinancing(c.Request().Context(), request.SubmitRefinancingInput(req))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *RefinancingHandler) Accept(c echo.Context) error {
	dto, err := h.uc.AcceptRefinancing(c.Request().Context(), c.Param("request_id"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *RefinancingHandler) Reject(c echo.Context) error {
	dto, err := h.uc.RejectRefinancing(c.Request().Context(), c.Param("request_id"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *RefinancingHandler) List(c echo.Context) error {
	out, err := h.uc.ListRefinancings(c.Request().Context(), requestDomain.Filter{
		State:      requestDomain.State(c.QueryParam("state")),
		BorrowerID: c.QueryParam("borrower_id"),
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
