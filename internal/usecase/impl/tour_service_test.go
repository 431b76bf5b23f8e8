package impl

import (
	"context"
	"testing"

	"tourdesk/internal/domain/entity"
	domainerrors "tourdesk/internal/domain/errors"
	"tourdesk/internal/domain/repository"
	mockRepo "tourdesk/internal/mocks/repository"
	"tourdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// tourServiceFixtures holds all test dependencies for tour service tests.
type tourServiceFixtures struct {
	service         usecase.TourUsecase
	tourRepo        *mockRepo.MockTourRepository
	reservationRepo *mockRepo.MockReservationRepository
}

func createTestTourService(t *testing.T, restrictTourDelete bool) tourServiceFixtures {
	tourRepo := mockRepo.NewMockTourRepository(t)
	reservationRepo := mockRepo.NewMockReservationRepository(t)

	service := NewTourService(TourServiceParams{
		TourRepo:        tourRepo,
		ReservationRepo: reservationRepo,
		Config:          newTestConfig(restrictTourDelete),
		Logger:          newDiscardLogger(),
	})

	return tourServiceFixtures{
		service:         service,
		tourRepo:        tourRepo,
		reservationRepo: reservationRepo,
	}
}

func TestTourService_Create_AppliesDefaults(t *testing.T) {
	fx := createTestTourService(t, false)

	ctx := context.Background()
	input := &usecase.CreateTourInput{
		Name:        "Inca Trail Trek",
		Description: "Four days to Machu Picchu",
		Duration:    4,
		Price:       890,
		Destination: "Peru",
	}

	fx.tourRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Tour")).
		Run(func(ctx context.Context, tour *entity.Tour) {
			tour.ID = uuid.New()
		}).
		Return(nil)

	tour, err := fx.service.Create(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.DefaultMaxCapacity, tour.MaxCapacity)
	assert.Equal(t, entity.DifficultyModerate, tour.Difficulty)
	assert.NotEqual(t, uuid.Nil, tour.ID)
}

func TestTourService_Get_NotFound(t *testing.T) {
	fx := createTestTourService(t, false)

	ctx := context.Background()
	id := uuid.New()

	fx.tourRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrTourNotFound)

	tour, err := fx.service.Get(ctx, id)

	require.Error(t, err)
	assert.Nil(t, tour)
	assert.True(t, errors.Is(err, domainerrors.ErrTourNotFound))
}

func TestTourService_Update_MergesOnlyProvidedFields(t *testing.T) {
	fx := createTestTourService(t, false)

	ctx := context.Background()
	existing := &entity.Tour{
		ID:          uuid.New(),
		Name:        "Inca Trail Trek",
		Description: "Four days to Machu Picchu",
		Duration:    4,
		Price:       890,
		MaxCapacity: 12,
		Destination: "Peru",
		Difficulty:  entity.DifficultyHard,
	}

	newPrice := 950.0
	input := &usecase.UpdateTourInput{Price: &newPrice}

	fx.tourRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	fx.tourRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Tour")).Return(nil)

	tour, err := fx.service.Update(ctx, existing.ID, input)

	require.NoError(t, err)
	assert.Equal(t, 950.0, tour.Price)
	assert.Equal(t, "Inca Trail Trek", tour.Name)
	assert.Equal(t, 12, tour.MaxCapacity)
}

func TestTourService_Search_MapsFilters(t *testing.T) {
	fx := createTestTourService(t, false)

	ctx := context.Background()
	minPrice := 100.0
	input := &usecase.SearchToursInput{
		Destination: "peru",
		MinPrice:    &minPrice,
		Difficulty:  "hard",
	}

	expected := []*entity.Tour{{ID: uuid.New(), Name: "Inca Trail Trek"}}

	fx.tourRepo.EXPECT().
		Search(ctx, repository.TourSearchFilter{
			Destination: "peru",
			MinPrice:    &minPrice,
			Difficulty:  entity.DifficultyHard,
		}).
		Return(expected, nil)

	tours, err := fx.service.Search(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, expected, tours)
}

func TestTourService_Delete_Unrestricted(t *testing.T) {
	fx := createTestTourService(t, false)

	ctx := context.Background()
	id := uuid.New()

	// No reservation count is consulted when the restriction flag is off.
	fx.tourRepo.EXPECT().Delete(ctx, id).Return(nil)

	require.NoError(t, fx.service.Delete(ctx, id))
}

func TestTourService_Delete_RestrictedWithReservations(t *testing.T) {
	fx := createTestTourService(t, true)

	ctx := context.Background()
	id := uuid.New()

	fx.reservationRepo.EXPECT().CountByTour(ctx, id).Return(int64(3), nil)

	err := fx.service.Delete(ctx, id)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTourHasReservations))
}

func TestTourService_Delete_RestrictedWithoutReservations(t *testing.T) {
	fx := createTestTourService(t, true)

	ctx := context.Background()
	id := uuid.New()

	fx.reservationRepo.EXPECT().CountByTour(ctx, id).Return(int64(0), nil)
	fx.tourRepo.EXPECT().Delete(ctx, id).Return(nil)

	require.NoError(t, fx.service.Delete(ctx, id))
}
