package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "tourdesk/internal/delivery/context"
	"tourdesk/internal/domain/entity"
	domainerrors "tourdesk/internal/domain/errors"
	"tourdesk/internal/domain/repository"
	"tourdesk/internal/domain/service"
	"tourdesk/internal/infra/metrics"
	"tourdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reservationService implements the ReservationUsecase interface.
type reservationService struct {
	reservationRepo repository.ReservationRepository
	tourRepo        repository.TourRepository
	accountRepo     repository.AccountRepository
	publisher       service.EventPublisher
	logger          *slog.Logger
}

// ReservationServiceParams holds dependencies for reservationService, injected by Fx.
type ReservationServiceParams struct {
	fx.In

	ReservationRepo repository.ReservationRepository
	TourRepo        repository.TourRepository
	AccountRepo     repository.AccountRepository
	Publisher       service.EventPublisher
	Logger          *slog.Logger
}

// NewReservationService is the constructor for reservationService.
func NewReservationService(params ReservationServiceParams) usecase.ReservationUsecase {
	return &reservationService{
		reservationRepo: params.ReservationRepo,
		tourRepo:        params.TourRepo,
		accountRepo:     params.AccountRepo,
		publisher:       params.Publisher,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *reservationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create books a tour. The total price is computed here from the tour's
// current per-person price and stored on the reservation; later price edits
// never reprice an existing booking. The tour read and the insert are two
// separate round trips, so a price edit landing between them is absorbed into
// whichever snapshot the read saw.
func (srv *reservationService) Create(ctx context.Context, actor usecase.Actor, input *usecase.CreateReservationInput) (*entity.Reservation, error) {
	srv.log(ctx).Info("Creating reservation", slog.Any("tourID", input.TourID), slog.Any("actorID", actor.AccountID))

	tour, err := srv.tourRepo.FindByID(ctx, input.TourID)
	if err != nil {
		if errors.Is(err, repository.ErrTourNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTourNotFound, "tour not found")
		}

		return nil, errors.Wrap(err, "failed to find tour for reservation")
	}

	customer, err := srv.resolveCustomer(ctx, actor, input.CustomerID)
	if err != nil {
		return nil, err
	}

	contactPhone := input.ContactPhone
	if contactPhone == "" {
		contactPhone = customer.Phone
	}

	newReservation := &entity.Reservation{
		CustomerID:      customer.ID,
		TourID:          tour.ID,
		Date:            input.Date,
		NumberOfPeople:  input.NumberOfPeople,
		TotalPrice:      tour.Price * float64(input.NumberOfPeople),
		Status:          entity.ReservationStatusPending,
		SpecialRequests: input.SpecialRequests,
		ContactPhone:    contactPhone,
		Emergency:       toEmergencyContact(input.Emergency),
	}

	if err := srv.reservationRepo.Create(ctx, newReservation); err != nil {
		srv.log(ctx).Error("Failed to create reservation", slog.Any("tourID", tour.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create reservation")
	}

	metrics.ObserveReservationCreated()
	srv.publishEvent(ctx, service.EventReservationCreated, newReservation, tour.Name)

	newReservation.Customer = customer.Summary()
	newReservation.Tour = tour.Summary()

	srv.log(ctx).Debug("Reservation created", slog.Any("reservationID", newReservation.ID))

	return newReservation, nil
}

// resolveCustomer decides whose booking this is. Administrators may book on
// behalf of any customer; everyone else books for themselves regardless of
// what the payload claims.
func (srv *reservationService) resolveCustomer(ctx context.Context, actor usecase.Actor, requested *uuid.UUID) (*entity.Account, error) {
	customerID := actor.AccountID
	if actor.IsAdmin() && requested != nil {
		customerID = *requested
	}

	account, err := srv.accountRepo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCustomerNotFound, "customer not found")
		}

		return nil, errors.Wrap(err, "failed to find customer for reservation")
	}

	if actor.IsAdmin() && requested != nil && account.Role != entity.RoleCustomer {
		return nil, errors.Wrap(domainerrors.ErrCustomerNotFound, "account is not a customer")
	}

	return account, nil
}

// Get retrieves one reservation. Customers can only see their own bookings.
func (srv *reservationService) Get(ctx context.Context, actor usecase.Actor, id uuid.UUID) (*entity.Reservation, error) {
	reservation, err := srv.findReservation(ctx, id)
	if err != nil {
		return nil, err
	}

	if !actor.IsAdmin() && reservation.CustomerID != actor.AccountID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "reservation belongs to another customer")
	}

	srv.attachSummaries(ctx, reservation)

	return reservation, nil
}

// List returns every reservation.
func (srv *reservationService) List(ctx context.Context) ([]*entity.Reservation, error) {
	reservations, err := srv.reservationRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list reservations", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list reservations")
	}

	for _, reservation := range reservations {
		srv.attachSummaries(ctx, reservation)
	}

	return reservations, nil
}

// ListMine returns the actor's own reservations.
func (srv *reservationService) ListMine(ctx context.Context, actor usecase.Actor) ([]*entity.Reservation, error) {
	reservations, err := srv.reservationRepo.FindByCustomer(ctx, actor.AccountID)
	if err != nil {
		srv.log(ctx).Error("Failed to list own reservations", slog.Any("actorID", actor.AccountID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list own reservations")
	}

	for _, reservation := range reservations {
		srv.attachSummaries(ctx, reservation)
	}

	return reservations, nil
}

// Update applies a partial update to a reservation. The total price is never
// recomputed here, not even when the party size changes; the price agreed at
// booking time stands. Status is unreachable from this path.
func (srv *reservationService) Update(ctx context.Context, actor usecase.Actor, id uuid.UUID, input *usecase.UpdateReservationInput) (*entity.Reservation, error) {
	srv.log(ctx).Info("Updating reservation", slog.Any("reservationID", id))

	reservation, err := srv.findReservation(ctx, id)
	if err != nil {
		return nil, err
	}

	if !actor.IsAdmin() && reservation.CustomerID != actor.AccountID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "reservation belongs to another customer")
	}

	if input.Date != nil {
		reservation.Date = *input.Date
	}
	if input.NumberOfPeople != nil {
		reservation.NumberOfPeople = *input.NumberOfPeople
	}
	if input.SpecialRequests != nil {
		reservation.SpecialRequests = *input.SpecialRequests
	}
	if input.ContactPhone != nil {
		reservation.ContactPhone = *input.ContactPhone
	}
	if input.Emergency != nil {
		reservation.Emergency = toEmergencyContact(input.Emergency)
	}

	if err := srv.reservationRepo.Update(ctx, reservation); err != nil {
		srv.log(ctx).Error("Failed to update reservation", slog.Any("reservationID", id), slog.Any("error", err))

		if errors.Is(err, repository.ErrReservationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrReservationNotFound, "reservation not found")
		}

		return nil, errors.Wrap(err, "failed to update reservation")
	}

	srv.attachSummaries(ctx, reservation)

	return reservation, nil
}

// UpdateStatus moves a reservation along its lifecycle. Illegal transitions
// are rejected; completed and cancelled are terminal.
func (srv *reservationService) UpdateStatus(ctx context.Context, id uuid.UUID, input *usecase.UpdateReservationStatusInput) (*entity.Reservation, error) {
	target := entity.ReservationStatus(input.Status)
	srv.log(ctx).Info("Updating reservation status", slog.Any("reservationID", id), slog.String("status", input.Status))

	reservation, err := srv.findReservation(ctx, id)
	if err != nil {
		return nil, err
	}

	if !reservation.Status.CanTransitionTo(target) {
		srv.log(ctx).Warn("Rejected status transition",
			slog.Any("reservationID", id),
			slog.String("from", string(reservation.Status)),
			slog.String("to", string(target)))

		return nil, errors.Wrap(domainerrors.ErrInvalidStatusTransition, "illegal status transition")
	}

	reservation.Status = target

	if err := srv.reservationRepo.Update(ctx, reservation); err != nil {
		srv.log(ctx).Error("Failed to update reservation status", slog.Any("reservationID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update reservation status")
	}

	metrics.ObserveStatusChange(string(target))
	srv.publishEvent(ctx, service.EventReservationStatusChanged, reservation, "")

	srv.attachSummaries(ctx, reservation)

	return reservation, nil
}

// Delete removes a reservation permanently. Customers may only delete their
// own bookings; this is how a customer cancels before any admin touches the
// lifecycle.
func (srv *reservationService) Delete(ctx context.Context, actor usecase.Actor, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting reservation", slog.Any("reservationID", id), slog.Any("actorID", actor.AccountID))

	reservation, err := srv.findReservation(ctx, id)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() && reservation.CustomerID != actor.AccountID {
		return errors.Wrap(domainerrors.ErrForbidden, "reservation belongs to another customer")
	}

	if err := srv.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return errors.Wrap(domainerrors.ErrReservationNotFound, "reservation not found")
		}

		return errors.Wrap(err, "failed to delete reservation")
	}

	return nil
}

func (srv *reservationService) findReservation(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	reservation, err := srv.reservationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrReservationNotFound, "reservation not found")
		}

		return nil, errors.Wrap(err, "failed to find reservation by id")
	}

	return reservation, nil
}

// attachSummaries fills in the customer and tour projections from whatever
// referenced rows still exist. Dangling references leave the projection nil.
func (srv *reservationService) attachSummaries(ctx context.Context, reservation *entity.Reservation) {
	if account, err := srv.accountRepo.FindByID(ctx, reservation.CustomerID); err == nil {
		reservation.Customer = account.Summary()
	} else if !errors.Is(err, repository.ErrAccountNotFound) {
		srv.log(ctx).Warn("Failed to load customer summary", slog.Any("customerID", reservation.CustomerID), slog.Any("error", err))
	}

	if tour, err := srv.tourRepo.FindByID(ctx, reservation.TourID); err == nil {
		reservation.Tour = tour.Summary()
	} else if !errors.Is(err, repository.ErrTourNotFound) {
		srv.log(ctx).Warn("Failed to load tour summary", slog.Any("tourID", reservation.TourID), slog.Any("error", err))
	}
}

// publishEvent emits a reservation lifecycle event. Publish failures are
// logged and swallowed; the booking itself already succeeded.
func (srv *reservationService) publishEvent(ctx context.Context, name string, reservation *entity.Reservation, tourName string) {
	event := &service.ReservationEvent{
		Event:          name,
		ReservationID:  reservation.ID,
		CustomerID:     reservation.CustomerID,
		TourID:         reservation.TourID,
		TourName:       tourName,
		NumberOfPeople: reservation.NumberOfPeople,
		TotalPrice:     reservation.TotalPrice,
		Status:         string(reservation.Status),
		OccurredAt:     time.Now().UTC(),
	}

	if err := srv.publisher.PublishReservationEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish reservation event", slog.String("event", name), slog.Any("reservationID", reservation.ID), slog.Any("error", err))
	}
}

func toEmergencyContact(input *usecase.EmergencyContactInput) *entity.EmergencyContact {
	if input == nil {
		return nil
	}

	return &entity.EmergencyContact{
		Name:  input.Name,
		Phone: input.Phone,
	}
}
