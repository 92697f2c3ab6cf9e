package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	borrowerDomain "prestanet-backend/internal/domain/borrower"
	instDomain "prestanet-backend/internal/domain/installment"
	loanDomain "prestanet-backend/internal/domain/loan"
	requestDomain "prestanet-backend/internal/domain/request"
)

// writeErr maps domain sentinel errors onto HTTP statuses: validation 400,
// not-found 404, state conflicts 409, business-rule rejections 422.
func writeErr(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, borrowerDomain.ErrNotFound),
		errors.Is(err, loanDomain.ErrNotFound),
		errors.Is(err, instDomain.ErrNotFound),
		errors.Is(err, requestDomain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, requestDomain.ErrInvalidTransition),
		errors.Is(err, loanDomain.ErrInvalidState),
		errors.Is(err, loanDomain.ErrNotActive),
		errors.Is(err, instDomain.ErrAlreadyPaid):
		status = http.StatusConflict
	case errors.Is(err, loanDomain.ErrLimitExceeded):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, requestDomain.ErrNotOwner):
		status = http.StatusForbidden
	case errors.Is(err, loanDomain.ErrInvalidAmount),
		errors.Is(err, instDomain.ErrInvalidTerm),
		errors.Is(err, borrowerDomain.ErrDuplicateNationalID):
		status = http.StatusBadRequest
	}
	return c.JSON(status, ErrorResponse{Error: err.Error()})
}

// bindAndValidate decodes and validates the request body. On failure the
// error response is already written and ok is false.
func bindAndValidate(c echo.Context, req any) (ok bool, err error) {
	if err := c.Bind(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	return true, nil
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
