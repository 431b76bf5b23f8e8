package handler

import (
	"net/http"

	"tourdesk/internal/delivery/http/middleware"
	"tourdesk/internal/delivery/http/response"
	"tourdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReservationHandler holds dependencies for booking handlers.
type ReservationHandler struct {
	uc usecase.ReservationUsecase
}

// NewReservationHandler is the constructor for ReservationHandler, injected by Fx.
func NewReservationHandler(uc usecase.ReservationUsecase) *ReservationHandler {
	return &ReservationHandler{uc: uc}
}

// Create books a tour for the calling customer, or for an explicit customer
// when the caller is an administrator.
func (h *ReservationHandler) Create(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing session")
	}

	var input usecase.CreateReservationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reservation input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	reservation, err := h.uc.Create(c.Request().Context(), actor, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, reservation, "Reservation created successfully")
}

// Get returns one reservation. Customers only see their own.
func (h *ReservationHandler) Get(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing session")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid reservation id")
	}

	reservation, err := h.uc.Get(c.Request().Context(), actor, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reservation, "")
}

// List returns every reservation. Admin-only.
func (h *ReservationHandler) List(c echo.Context) error {
	reservations, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reservations, "")
}

// ListMine returns the calling customer's reservations.
func (h *ReservationHandler) ListMine(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing session")
	}

	reservations, err := h.uc.ListMine(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reservations, "")
}

// Update handles a partial reservation update. Status is not reachable here.
func (h *ReservationHandler) Update(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing session")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid reservation id")
	}

	var input usecase.UpdateReservationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reservation input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	reservation, err := h.uc.Update(c.Request().Context(), actor, id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reservation, "Reservation updated successfully")
}

// UpdateStatus moves a reservation along its lifecycle. Admin-only.
func (h *ReservationHandler) UpdateStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid reservation id")
	}

	var input usecase.UpdateReservationStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	reservation, err := h.uc.UpdateStatus(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reservation, "Reservation status updated successfully")
}

// Delete removes a reservation permanently. Customers cancel their own
// bookings through this; admins can delete any.
func (h *ReservationHandler) Delete(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing session")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid reservation id")
	}

	if err := h.uc.Delete(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Reservation deleted successfully")
}
