package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"prestanet-backend/internal/domain/notification"
	"prestanet-backend/internal/usecase/installment"
)

type InstallmentHandler struct {
	uc       *installment.Usecase
	notifier notification.Sink
}

func NewInstallmentHandler(uc *installment.Usecase, notifier notification.Sink) *InstallmentHandler {
	return &InstallmentHandler{uc: uc, notifier: notifier}
}

type payReq struct {
	PaymentDate string `json:"payment_date"`
}

func (h *InstallmentHandler) Pay(c echo.Context) error {
	var req payReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	var when time.Time
	if req.PaymentDate != "" {
		t, err := time.Parse(time.RFC3339, req.PaymentDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "payment_date must be RFC3339"})
		}
		when = t
	}
	result, err := h.uc.RegisterPayment(c.Request().Context(), c.Param("installment_id"), when)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// SweepOverdue flips due PENDING rows to OVERDUE. Also exposed over HTTP so
// operators can force a sweep between ticker runs.
func (h *InstallmentHandler) SweepOverdue(c echo.Context) error {
	n, err := h.uc.MarkOverdue(c.Request().Context())
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int64{"marked_overdue": n})
}

func (h *InstallmentHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("installment_id"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *InstallmentHandler) List(c echo.Context) error {
	switch c.QueryParam("state") {
	case "":
		out, err := h.uc.All(c.Request().Context())
		if err != nil {
			return writeErr(c, err)
		}
		return c.JSON(http.StatusOK, out)
	case "PENDING":
		out, err := h.uc.Pending(c.Request().Context())
		if err != nil {
			return writeErr(c, err)
		}
		return c.JSON(http.StatusOK, out)
	case "OVERDUE":
		out, err := h.uc.Overdue(c.Request().Context())
		if err != nil {
			return writeErr(c, err)
		}
		return c.JSON(http.StatusOK, out)
	default:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "state must be PENDING or OVERDUE"})
	}
}

func (h *InstallmentHandler) ByLoan(c echo.Context) error {
	out, err := h.uc.ByLoan(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *InstallmentHandler) ByBorrower(c echo.Context) error {
	out, err := h.uc.Summary(c.Request().Context(), c.Param("borrower_id"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// Remind queues a PAYMENT_REMINDER for every borrower holding at least one
// overdue installment.
func (h *InstallmentHandler) Remind(c echo.Context) error {
	overdue, err := h.uc.Overdue(c.Request().Context())
	if err != nil {
		return writeErr(c, err)
	}
	counts := make(map[string]int)
	for _, it := range overdue {
		counts[it.BorrowerID]++
	}
	for borrowerID, n := range counts {
		h.notifier.Notify(borrowerID, notification.KindPaymentReminder,
			fmt.Sprintf("You have %d overdue installment(s). Please settle them to avoid penalties.", n))
	}
	return c.JSON(http.StatusOK, map[string]int{"reminded_borrowers": len(counts)})
}
