package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"prestanet-backend/internal/adapter/auditlog"
)

type AuditHandler struct{ rec *auditlog.Recorder }

func NewAuditHandler(rec *auditlog.Recorder) *AuditHandler { return &AuditHandler{rec: rec} }

func (h *AuditHandler) List(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	out, err := h.rec.List(c.Request().Context(), auditlog.Filter{
		Actor:     c.QueryParam("actor"),
		Table:     c.QueryParam("table"),
		Operation: c.QueryParam("operation"),
		Limit:     limit,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
