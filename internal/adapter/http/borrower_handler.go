package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"prestanet-backend/internal/usecase/borrower"
)

type BorrowerHandler struct{ uc *borrower.Usecase }

func NewBorrowerHandler(uc *borrower.Usecase) *BorrowerHandler { return &BorrowerHandler{uc: uc} }

type registerBorrowerReq struct {
	NationalID string `json:"national_id" validate:"required"`
	FirstName  string `json:"first_name" validate:"required"`
	LastName   string `json:"last_name" validate:"required"`
	Address    string `json:"address"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone"`
	BirthDate  string `json:"birth_date"`
}

func (h *BorrowerHandler) Register(c echo.Context) error {
	var req registerBorrowerReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	var birth time.Time
	if req.BirthDate != "" {
		t, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "birth_date must be YYYY-MM-DD"})
		}
		birth = t
	}
	dto, err := h.uc.Register(c.Request().Context(), borrower.RegisterInput{
		NationalID: req.NationalID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Address:    req.Address,
		Email:      req.Email,
		Phone:      req.Phone,
		BirthDate:  birth,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type contactReq struct {
	Address string `json:"address"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone"`
}

func (h *BorrowerHandler) UpdateContact(c echo.Context) error {
	var req contactReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.UpdateContact(c.Request().Context(), c.Param("borrower_id"), borrower.ContactInput(req))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *BorrowerHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("borrower_id"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *BorrowerHandler) GetByNationalID(c echo.Context) error {
	dto, err := h.uc.GetByNationalID(c.Request().Context(), c.Param("national_id"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *BorrowerHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
