package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"prestanet-backend/internal/usecase/delinquency"
)

type DelinquencyHandler struct{ uc *delinquency.Usecase }

func NewDelinquencyHandler(uc *delinquency.Usecase) *DelinquencyHandler {
	return &DelinquencyHandler{uc: uc}
}

func (h *DelinquencyHandler) Status(c echo.Context) error {
	dto, err := h.uc.Status(c.Request().Context(), c.Param("borrower_id"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *DelinquencyHandler) ApplyPenalty(c echo.Context) error {
	dto, err := h.uc.ApplyPenalty(c.Request().Context(), c.Param("borrower_id"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
