package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"prestanet-backend/internal/adapter/notifier"
	"prestanet-backend/internal/domain/notification"
)

type NotificationHandler struct{ rec *notifier.Recorder }

func NewNotificationHandler(rec *notifier.Recorder) *NotificationHandler {
	return &NotificationHandler{rec: rec}
}

func (h *NotificationHandler) ListPending(c echo.Context) error {
	out, err := h.rec.ListPending(c.Request().Context())
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type dispatchReq struct {
	Kind string `json:"kind" validate:"required,oneof=LOAN_APPROVED LOAN_REJECTED REFINANCING_APPROVED REFINANCING_REJECTED PAYMENT_REMINDER"`
}

// Dispatch marks all queued notifications of one kind as delivered. The
// actual channel (email, SMS) sits outside this service.
func (h *NotificationHandler) Dispatch(c echo.Context) error {
	var req dispatchReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	n, err := h.rec.MarkSent(c.Request().Context(), notification.Kind(req.Kind))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int64{"dispatched": n})
}
