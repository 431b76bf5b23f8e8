package impl

import (
	"context"
	"log/slog"

	"tourdesk/config"
	deliverycontext "tourdesk/internal/delivery/context"
	"tourdesk/internal/domain/entity"
	domainerrors "tourdesk/internal/domain/errors"
	"tourdesk/internal/domain/repository"
	"tourdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// tourService implements the TourUsecase interface.
type tourService struct {
	tourRepo           repository.TourRepository
	reservationRepo    repository.ReservationRepository
	restrictTourDelete bool
	logger             *slog.Logger
}

// TourServiceParams holds dependencies for tourService, injected by Fx.
type TourServiceParams struct {
	fx.In

	TourRepo        repository.TourRepository
	ReservationRepo repository.ReservationRepository
	Config          *config.Config
	Logger          *slog.Logger
}

// NewTourService is the constructor for tourService.
func NewTourService(params TourServiceParams) usecase.TourUsecase {
	restrictTourDelete := false
	if params.Config != nil && params.Config.Booking != nil {
		restrictTourDelete = params.Config.Booking.RestrictTourDelete
	}

	return &tourService{
		tourRepo:           params.TourRepo,
		reservationRepo:    params.ReservationRepo,
		restrictTourDelete: restrictTourDelete,
		logger:             params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *tourService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create adds a new tour to the catalog.
func (srv *tourService) Create(ctx context.Context, input *usecase.CreateTourInput) (*entity.Tour, error) {
	srv.log(ctx).Info("Creating tour", slog.String("name", input.Name))

	maxCapacity := input.MaxCapacity
	if maxCapacity <= 0 {
		maxCapacity = entity.DefaultMaxCapacity
	}

	difficulty := entity.Difficulty(input.Difficulty)
	if difficulty == "" {
		difficulty = entity.DifficultyModerate
	}

	newTour := &entity.Tour{
		Name:           input.Name,
		Description:    input.Description,
		Duration:       input.Duration,
		Price:          input.Price,
		AvailableDates: input.AvailableDates,
		Image:          input.Image,
		MaxCapacity:    maxCapacity,
		Destination:    input.Destination,
		Includes:       input.Includes,
		Difficulty:     difficulty,
	}

	if err := srv.tourRepo.Create(ctx, newTour); err != nil {
		srv.log(ctx).Error("Failed to create tour", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create tour")
	}

	srv.log(ctx).Debug("Tour created", slog.Any("tourID", newTour.ID))

	return newTour, nil
}

// Get retrieves a single tour by ID.
func (srv *tourService) Get(ctx context.Context, id uuid.UUID) (*entity.Tour, error) {
	tour, err := srv.tourRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTourNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTourNotFound, "tour not found")
		}

		return nil, errors.Wrap(err, "failed to find tour by id")
	}

	return tour, nil
}

// List returns the whole catalog.
func (srv *tourService) List(ctx context.Context) ([]*entity.Tour, error) {
	tours, err := srv.tourRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list tours", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list tours")
	}

	return tours, nil
}

// Search returns the catalog entries matching the filters.
func (srv *tourService) Search(ctx context.Context, input *usecase.SearchToursInput) ([]*entity.Tour, error) {
	filter := repository.TourSearchFilter{
		Destination: input.Destination,
		MinPrice:    input.MinPrice,
		MaxPrice:    input.MaxPrice,
		Difficulty:  entity.Difficulty(input.Difficulty),
	}

	tours, err := srv.tourRepo.Search(ctx, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to search tours", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to search tours")
	}

	return tours, nil
}

// Update applies a partial update to a tour. Price changes never touch
// existing reservations; their total was snapshotted at booking time.
func (srv *tourService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateTourInput) (*entity.Tour, error) {
	srv.log(ctx).Info("Updating tour", slog.Any("tourID", id))

	tour, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	applyTourUpdate(tour, input)

	if err := srv.tourRepo.Update(ctx, tour); err != nil {
		srv.log(ctx).Error("Failed to update tour", slog.Any("tourID", id), slog.Any("error", err))

		if errors.Is(err, repository.ErrTourNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTourNotFound, "tour not found")
		}

		return nil, errors.Wrap(err, "failed to update tour")
	}

	return tour, nil
}

func applyTourUpdate(tour *entity.Tour, input *usecase.UpdateTourInput) {
	if input.Name != nil {
		tour.Name = *input.Name
	}
	if input.Description != nil {
		tour.Description = *input.Description
	}
	if input.Duration != nil {
		tour.Duration = *input.Duration
	}
	if input.Price != nil {
		tour.Price = *input.Price
	}
	if input.AvailableDates != nil {
		tour.AvailableDates = *input.AvailableDates
	}
	if input.Image != nil {
		tour.Image = *input.Image
	}
	if input.MaxCapacity != nil {
		tour.MaxCapacity = *input.MaxCapacity
	}
	if input.Destination != nil {
		tour.Destination = *input.Destination
	}
	if input.Includes != nil {
		tour.Includes = *input.Includes
	}
	if input.Difficulty != nil {
		tour.Difficulty = entity.Difficulty(*input.Difficulty)
	}
}

// Delete removes a tour from the catalog. Existing reservations keep their
// dangling tour reference. When the restrictTourDelete flag is set, deletion
// is refused while reservations still point at the tour.
func (srv *tourService) Delete(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting tour", slog.Any("tourID", id))

	if srv.restrictTourDelete {
		count, err := srv.reservationRepo.CountByTour(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to count reservations for tour")
		}
		if count > 0 {
			srv.log(ctx).Warn("Refusing to delete tour with reservations", slog.Any("tourID", id), slog.Int64("reservations", count))

			return errors.Wrap(domainerrors.ErrTourHasReservations, "tour still has reservations")
		}
	}

	if err := srv.tourRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTourNotFound) {
			return errors.Wrap(domainerrors.ErrTourNotFound, "tour not found")
		}

		return errors.Wrap(err, "failed to delete tour")
	}

	return nil
}
