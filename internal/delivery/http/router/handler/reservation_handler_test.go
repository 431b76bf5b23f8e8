package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tourdesk/internal/domain/entity"
	ucmocks "tourdesk/internal/mocks/usecase"
	"tourdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setActor(c echo.Context, actor usecase.Actor) {
	c.Set("actor", actor)
}

func TestReservationHandler_Create(t *testing.T) {
	uc := ucmocks.NewMockReservationUsecase(t)
	h := NewReservationHandler(uc)

	actor := usecase.Actor{AccountID: uuid.New(), Role: entity.RoleCustomer}
	tourID := uuid.New()

	body := `{"tourId":"` + tourID.String() + `","date":"2026-10-01T09:00:00Z","numberOfPeople":2}`

	uc.EXPECT().Create(mock.Anything, actor, mock.MatchedBy(func(input *usecase.CreateReservationInput) bool {
		return input.TourID == tourID && input.NumberOfPeople == 2
	})).Return(&entity.Reservation{ID: uuid.New(), Status: entity.ReservationStatusPending}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setActor(c, actor)

	err := h.Create(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "pending")
}

func TestReservationHandler_Create_MissingActor(t *testing.T) {
	uc := ucmocks.NewMockReservationUsecase(t)
	h := NewReservationHandler(uc)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	uc.AssertNotCalled(t, "Create")
}

func TestReservationHandler_UpdateStatus(t *testing.T) {
	uc := ucmocks.NewMockReservationUsecase(t)
	h := NewReservationHandler(uc)

	reservationID := uuid.New()

	uc.EXPECT().UpdateStatus(mock.Anything, reservationID, mock.MatchedBy(func(input *usecase.UpdateReservationStatusInput) bool {
		return input.Status == "confirmed"
	})).Return(&entity.Reservation{ID: reservationID, Status: entity.ReservationStatusConfirmed}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPatch, "/api/reservations/"+reservationID.String()+"/status", strings.NewReader(`{"status":"confirmed"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(reservationID.String())

	err := h.UpdateStatus(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "confirmed")
}

func TestReservationHandler_UpdateStatus_UnknownStatus(t *testing.T) {
	uc := ucmocks.NewMockReservationUsecase(t)
	h := NewReservationHandler(uc)

	reservationID := uuid.New()

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPatch, "/api/reservations/"+reservationID.String()+"/status", strings.NewReader(`{"status":"archived"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(reservationID.String())

	err := h.UpdateStatus(c)
	require.Error(t, err)
	uc.AssertNotCalled(t, "UpdateStatus")
}

func TestReservationHandler_ListMine(t *testing.T) {
	uc := ucmocks.NewMockReservationUsecase(t)
	h := NewReservationHandler(uc)

	actor := usecase.Actor{AccountID: uuid.New(), Role: entity.RoleCustomer}

	uc.EXPECT().ListMine(mock.Anything, actor).Return([]*entity.Reservation{
		{ID: uuid.New(), CustomerID: actor.AccountID},
	}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations/my", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setActor(c, actor)

	err := h.ListMine(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
}
