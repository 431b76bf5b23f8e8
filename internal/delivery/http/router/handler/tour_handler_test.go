package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tourdesk/internal/delivery/http/validator"
	"tourdesk/internal/domain/entity"
	ucmocks "tourdesk/internal/mocks/usecase"
	"tourdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func TestTourHandler_Create(t *testing.T) {
	uc := ucmocks.NewMockTourUsecase(t)
	h := NewTourHandler(uc)

	body := `{"name":"Inca Trail","description":"Four day trek to Machu Picchu","duration":4,"price":450,"destination":"Cusco","difficulty":"hard"}`

	uc.EXPECT().Create(mock.Anything, mock.MatchedBy(func(input *usecase.CreateTourInput) bool {
		return input.Name == "Inca Trail" && input.Difficulty == "hard"
	})).Return(&entity.Tour{ID: uuid.New(), Name: "Inca Trail"}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/tours", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Inca Trail")
}

func TestTourHandler_Create_ValidationFailure(t *testing.T) {
	uc := ucmocks.NewMockTourUsecase(t)
	h := NewTourHandler(uc)

	// price must be strictly positive
	body := `{"name":"Inca Trail","description":"desc","duration":4,"price":-1,"destination":"Cusco"}`

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/tours", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	require.Error(t, err)
	uc.AssertNotCalled(t, "Create")
}

func TestTourHandler_Get_InvalidID(t *testing.T) {
	uc := ucmocks.NewMockTourUsecase(t)
	h := NewTourHandler(uc)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/tours/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.Get(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Get")
}

func TestTourHandler_Search_MapsQueryParams(t *testing.T) {
	uc := ucmocks.NewMockTourUsecase(t)
	h := NewTourHandler(uc)

	uc.EXPECT().Search(mock.Anything, mock.MatchedBy(func(input *usecase.SearchToursInput) bool {
		return input.Destination == "Cusco" &&
			input.MinPrice != nil && *input.MinPrice == 100 &&
			input.Difficulty == "moderate"
	})).Return([]*entity.Tour{}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/tours/search?destination=Cusco&minPrice=100&difficulty=moderate", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Search(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
}
