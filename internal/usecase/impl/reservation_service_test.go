package impl

import (
	"context"
	"testing"
	"time"

	"tourdesk/internal/domain/entity"
	domainerrors "tourdesk/internal/domain/errors"
	"tourdesk/internal/domain/repository"
	"tourdesk/internal/domain/service"
	mockRepo "tourdesk/internal/mocks/repository"
	mockSvc "tourdesk/internal/mocks/service"
	"tourdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reservationServiceFixtures holds all test dependencies for reservation service tests.
type reservationServiceFixtures struct {
	service         usecase.ReservationUsecase
	reservationRepo *mockRepo.MockReservationRepository
	tourRepo        *mockRepo.MockTourRepository
	accountRepo     *mockRepo.MockAccountRepository
	publisher       *mockSvc.MockEventPublisher
}

func createTestReservationService(t *testing.T) reservationServiceFixtures {
	reservationRepo := mockRepo.NewMockReservationRepository(t)
	tourRepo := mockRepo.NewMockTourRepository(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewReservationService(ReservationServiceParams{
		ReservationRepo: reservationRepo,
		TourRepo:        tourRepo,
		AccountRepo:     accountRepo,
		Publisher:       publisher,
		Logger:          newDiscardLogger(),
	})

	return reservationServiceFixtures{
		service:         service,
		reservationRepo: reservationRepo,
		tourRepo:        tourRepo,
		accountRepo:     accountRepo,
		publisher:       publisher,
	}
}

func customerActor(id uuid.UUID) usecase.Actor {
	return usecase.Actor{AccountID: id, Role: entity.RoleCustomer}
}

func adminActor(id uuid.UUID) usecase.Actor {
	return usecase.Actor{AccountID: id, Role: entity.RoleAdmin}
}

func TestReservationService_Create_SnapshotsTotalPrice(t *testing.T) {
	fx := createTestReservationService(t)

	ctx := context.Background()
	tour := &entity.Tour{ID: uuid.New(), Name: "Inca Trail Trek", Price: 890, Destination: "Peru"}
	customer := &entity.Account{ID: uuid.New(), Role: entity.RoleCustomer, FullName: "Ana Lopez", Phone: "+34 600 000 000"}

	input := &usecase.CreateReservationInput{
		TourID:         tour.ID,
		Date:           time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC),
		NumberOfPeople: 3,
	}

	fx.tourRepo.EXPECT().FindByID(ctx, tour.ID).Return(tour, nil)
	fx.accountRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)
	fx.reservationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Reservation")).
		Run(func(ctx context.Context, reservation *entity.Reservation) {
			reservation.ID = uuid.New()
		}).
		Return(nil)
	fx.publisher.EXPECT().
		PublishReservationEvent(ctx, mock.AnythingOfType("*service.ReservationEvent")).
		Return(nil)

	reservation, err := fx.service.Create(ctx, customerActor(customer.ID), input)

	require.NoError(t, err)
	assert.Equal(t, 890.0*3, reservation.TotalPrice)
	assert.Equal(t, entity.ReservationStatusPending, reservation.Status)
	assert.Equal(t, customer.ID, reservation.CustomerID)
	// Contact phone falls back to the customer's profile phone.
	assert.Equal(t, customer.Phone, reservation.ContactPhone)
	require.NotNil(t, reservation.Tour)
	assert.Equal(t, tour.Name, reservation.Tour.Name)
}

func TestReservationService_Create_IgnoresCustomerIDForNonAdmins(t *testing.T) {
	fx := createTestReservationService(t)

	ctx := context.Background()
	tour := &entity.Tour{ID: uuid.New(), Price: 100}
	actorID := uuid.New()
	someoneElse := uuid.New()
	actorAccount := &entity.Account{ID: actorID, Role: entity.RoleCustomer}

	input := &usecase.CreateReservationInput{
		TourID:         tour.ID,
		CustomerID:     &someoneElse,
		Date:           time.Now().Add(48 * time.Hour),
		NumberOfPeople: 1,
		ContactPhone:   "+1 555 0100",
	}

	fx.tourRepo.EXPECT().FindByID(ctx, tour.ID).Return(tour, nil)
	fx.accountRepo.EXPECT().FindByID(ctx, actorID).Return(actorAccount, nil)
	fx.reservationRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Reservation")).Return(nil)
	fx.publisher.EXPECT().PublishReservationEvent(ctx, mock.AnythingOfType("*service.ReservationEvent")).Return(nil)

	reservation, err := fx.service.Create(ctx, customerActor(actorID), input)

	require.NoError(t, err)
	assert.Equal(t, actorID, reservation.CustomerID)
}

func TestReservationService_Create_AdminBooksForCustomer(t *testing.T) {
	fx := createTestReservationService(t)

	ctx := context.Background()
	tour := &entity.Tour{ID: uuid.New(), Price: 100}
	adminID := uuid.New()
	customer := &entity.Account{ID: uuid.New(), Role: entity.RoleCustomer}

	input := &usecase.CreateReservationInput{
		TourID:         tour.ID,
		CustomerID:     &customer.ID,
		Date:           time.Now().Add(48 * time.Hour),
		NumberOfPeople: 2,
		ContactPhone:   "+1 555 0100",
	}

	fx.tourRepo.EXPECT().FindByID(ctx, tour.ID).Return(tour, nil)
	fx.accountRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)
	fx.reservationRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Reservation")).Return(nil)
	fx.publisher.EXPECT().PublishReservationEvent(ctx, mock.AnythingOfType("*service.ReservationEvent")).Return(nil)

	reservation, err := fx.service.Create(ctx, adminActor(adminID), input)

	require.NoError(t, err)
	assert.Equal(t, customer.ID, reservation.CustomerID)
}

func TestReservationService_Create_PublishFailureDoesNotFailBooking(t *testing.T) {
	fx := createTestReservationService(t)

	ctx := context.Background()
	tour := &entity.Tour{ID: uuid.New(), Price: 100}
	customer := &entity.Account{ID: uuid.New(), Role: entity.RoleCustomer}

	input := &usecase.CreateReservationInput{
		TourID:         tour.ID,
		Date:           time.Now().Add(48 * time.Hour),
		NumberOfPeople: 1,
		ContactPhone:   "+1 555 0100",
	}

	fx.tourRepo.EXPECT().FindByID(ctx, tour.ID).Return(tour, nil)
	fx.accountRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)
	fx.reservationRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Reservation")).Return(nil)
	fx.publisher.EXPECT().
		PublishReservationEvent(ctx, mock.AnythingOfType("*service.ReservationEvent")).
		Return(errors.New("broker unreachable"))

	reservation, err := fx.service.Create(ctx, customerActor(customer.ID), input)

	require.NoError(t, err)
	require.NotNil(t, reservation)
}

func TestReservationService_Create_TourNotFound(t *testing.T) {
	fx := createTestReservationService(t)

	ctx := context.Background()
	tourID := uuid.New()

	fx.tourRepo.EXPECT().FindByID(ctx, tourID).Return(nil, repository.ErrTourNotFound)

	reservation, err := fx.service.Create(ctx, customerActor(uuid.New()), &usecase.CreateReservationInput{
		TourID:         tourID,
		Date:           time.Now(),
		NumberOfPeople: 1,
	})

	require.Error(t, err)
	assert.Nil(t, reservation)
	assert.True(t, errors.Is(err, domainerrors.ErrTourNotFound))
}

func TestReservationService_Get_ForbiddenForOtherCustomer(t *testing.T) {
	fx := createTestReservationService(t)

	ctx := context.Background()
	reservation := &entity.Reservation{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		TourID:     uuid.New(),
	}

	fx.reservationRepo.EXPECT().FindByID(ctx, reservation.ID).Return(reservation, nil)

	got, err := fx.service.Get(ctx, customerActor(uuid.New()), reservation.ID)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestReservationService_Get_DanglingReferencesLeaveSummariesNil(t *testing.T) {
	fx := createTestReservationService(t)

	ctx := context.Background()
	reservation := &entity.Reservation{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		TourID:     uuid.New(),
		TotalPrice: 450,
	}

	fx.reservationRepo.EXPECT().FindByID(ctx, reservation.ID).Return(reservation, nil)
	fx.accountRepo.EXPECT().FindByID(ctx, reservation.CustomerID).Return(nil, repository.ErrAccountNotFound)
	fx.tourRepo.EXPECT().FindByID(ctx, reservation.TourID).Return(nil, repository.ErrTourNotFound)

	got, err := fx.service.Get(ctx, adminActor(uuid.New()), reservation.ID)

	require.NoError(t, err)
	assert.Nil(t, got.Customer)
	assert.Nil(t, got.Tour)
	// The snapshot survives the deleted references.
	assert.Equal(t, 450.0, got.TotalPrice)
}

func TestReservationService_Update_NeverRecomputesTotalPrice(t *testing.T) {
	fx := createTestReservationService(t)

	ctx := context.Background()
	reservation := &entity.Reservation{
		ID:             uuid.New(),
		CustomerID:     uuid.New(),
		TourID:         uuid.New(),
		NumberOfPeople: 2,
		TotalPrice:     1780,
		Status:         entity.ReservationStatusPending,
	}

	newPeople := 5
	input := &usecase.UpdateReservationInput{NumberOfPeople: &newPeople}

	fx.reservationRepo.EXPECT().FindByID(ctx, reservation.ID).Return(reservation, nil)
	fx.reservationRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Reservation")).Return(nil)
	fx.accountRepo.EXPECT().FindByID(ctx, reservation.CustomerID).Return(nil, repository.ErrAccountNotFound)
	fx.tourRepo.EXPECT().FindByID(ctx, reservation.TourID).Return(nil, repository.ErrTourNotFound)

	updated, err := fx.service.Update(ctx, customerActor(reservation.CustomerID), reservation.ID, input)

	require.NoError(t, err)
	assert.Equal(t, 5, updated.NumberOfPeople)
	assert.Equal(t, 1780.0, updated.TotalPrice)
}

func TestReservationService_UpdateStatus_LegalTransition(t *testing.T) {
	fx := createTestReservationService(t)

	ctx := context.Background()
	reservation := &entity.Reservation{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		TourID:     uuid.New(),
		Status:     entity.ReservationStatusPending,
	}

	fx.reservationRepo.EXPECT().FindByID(ctx, reservation.ID).Return(reservation, nil)
	fx.reservationRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Reservation")).Return(nil)
	fx.publisher.EXPECT().
		PublishReservationEvent(ctx, mock.MatchedBy(func(event *service.ReservationEvent) bool {
			return event.Event == service.EventReservationStatusChanged && event.Status == "confirmed"
		})).
		Return(nil)
	fx.accountRepo.EXPECT().FindByID(ctx, reservation.CustomerID).Return(nil, repository.ErrAccountNotFound)
	fx.tourRepo.EXPECT().FindByID(ctx, reservation.TourID).Return(nil, repository.ErrTourNotFound)

	updated, err := fx.service.UpdateStatus(ctx, reservation.ID, &usecase.UpdateReservationStatusInput{Status: "confirmed"})

	require.NoError(t, err)
	assert.Equal(t, entity.ReservationStatusConfirmed, updated.Status)
}

func TestReservationService_UpdateStatus_IllegalTransition(t *testing.T) {
	fx := createTestReservationService(t)

	ctx := context.Background()
	reservation := &entity.Reservation{
		ID:     uuid.New(),
		Status: entity.ReservationStatusCancelled,
	}

	fx.reservationRepo.EXPECT().FindByID(ctx, reservation.ID).Return(reservation, nil)

	updated, err := fx.service.UpdateStatus(ctx, reservation.ID, &usecase.UpdateReservationStatusInput{Status: "confirmed"})

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition))
}

func TestReservationService_UpdateStatus_PendingToCompletedRejected(t *testing.T) {
	fx := createTestReservationService(t)

	ctx := context.Background()
	reservation := &entity.Reservation{
		ID:     uuid.New(),
		Status: entity.ReservationStatusPending,
	}

	fx.reservationRepo.EXPECT().FindByID(ctx, reservation.ID).Return(reservation, nil)

	_, err := fx.service.UpdateStatus(ctx, reservation.ID, &usecase.UpdateReservationStatusInput{Status: "completed"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition))
}

func TestReservationService_ListMine_ScopedToActor(t *testing.T) {
	fx := createTestReservationService(t)

	ctx := context.Background()
	actorID := uuid.New()
	reservation := &entity.Reservation{
		ID:         uuid.New(),
		CustomerID: actorID,
		TourID:     uuid.New(),
	}

	fx.reservationRepo.EXPECT().FindByCustomer(ctx, actorID).Return([]*entity.Reservation{reservation}, nil)
	fx.accountRepo.EXPECT().FindByID(ctx, actorID).Return(nil, repository.ErrAccountNotFound)
	fx.tourRepo.EXPECT().FindByID(ctx, reservation.TourID).Return(nil, repository.ErrTourNotFound)

	reservations, err := fx.service.ListMine(ctx, customerActor(actorID))

	require.NoError(t, err)
	require.Len(t, reservations, 1)
	assert.Equal(t, reservation.ID, reservations[0].ID)
}

func TestReservationService_Delete_NotFound(t *testing.T) {
	fx := createTestReservationService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.reservationRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrReservationNotFound)

	err := fx.service.Delete(ctx, adminActor(uuid.New()), id)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrReservationNotFound))
	fx.reservationRepo.AssertNotCalled(t, "Delete")
}

func TestReservationService_Delete_CustomerCancelsOwnBooking(t *testing.T) {
	fx := createTestReservationService(t)

	ctx := context.Background()
	actorID := uuid.New()
	reservation := &entity.Reservation{ID: uuid.New(), CustomerID: actorID}

	fx.reservationRepo.EXPECT().FindByID(ctx, reservation.ID).Return(reservation, nil)
	fx.reservationRepo.EXPECT().Delete(ctx, reservation.ID).Return(nil)

	require.NoError(t, fx.service.Delete(ctx, customerActor(actorID), reservation.ID))
}

func TestReservationService_Delete_ForbiddenForOtherCustomer(t *testing.T) {
	fx := createTestReservationService(t)

	ctx := context.Background()
	reservation := &entity.Reservation{ID: uuid.New(), CustomerID: uuid.New()}

	fx.reservationRepo.EXPECT().FindByID(ctx, reservation.ID).Return(reservation, nil)

	err := fx.service.Delete(ctx, customerActor(uuid.New()), reservation.ID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	fx.reservationRepo.AssertNotCalled(t, "Delete")
}

func TestReservationService_Delete_AdminDeletesAnyBooking(t *testing.T) {
	fx := createTestReservationService(t)

	ctx := context.Background()
	reservation := &entity.Reservation{ID: uuid.New(), CustomerID: uuid.New()}

	fx.reservationRepo.EXPECT().FindByID(ctx, reservation.ID).Return(reservation, nil)
	fx.reservationRepo.EXPECT().Delete(ctx, reservation.ID).Return(nil)

	require.NoError(t, fx.service.Delete(ctx, adminActor(uuid.New()), reservation.ID))
}
