package handler

import (
	"net/http"

	"tourdesk/internal/delivery/http/response"
	"tourdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TourHandler holds dependencies for catalog handlers.
type TourHandler struct {
	uc usecase.TourUsecase
}

// NewTourHandler is the constructor for TourHandler, injected by Fx.
func NewTourHandler(uc usecase.TourUsecase) *TourHandler {
	return &TourHandler{uc: uc}
}

// Create handles the tour creation request.
func (h *TourHandler) Create(c echo.Context) error {
	var input usecase.CreateTourInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tour input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	tour, err := h.uc.Create(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, tour, "Tour created successfully")
}

// Get returns one catalog entry.
func (h *TourHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid tour id")
	}

	tour, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tour, "")
}

// List returns the whole catalog.
func (h *TourHandler) List(c echo.Context) error {
	tours, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tours, "")
}

// Search returns a filtered catalog listing. Absent filters are ignored.
func (h *TourHandler) Search(c echo.Context) error {
	var input usecase.SearchToursInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search parameters")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	tours, err := h.uc.Search(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tours, "")
}

// Update handles a partial tour update.
func (h *TourHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid tour id")
	}

	var input usecase.UpdateTourInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tour input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	tour, err := h.uc.Update(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tour, "Tour updated successfully")
}

// Delete removes a tour from the catalog.
func (h *TourHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid tour id")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Tour deleted successfully")
}
