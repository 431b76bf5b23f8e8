package postgres

import (
	"context"

	"tourdesk/internal/domain/entity"
	domainerrors "tourdesk/internal/domain/errors"
	"tourdesk/internal/domain/repository"
	"tourdesk/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reservationRepository implements the repository.ReservationRepository interface using GORM.
type reservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository is the constructor for reservationRepository.
func NewReservationRepository(db *gorm.DB) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

// FindByID retrieves a single reservation by its unique ID.
func (repo *reservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	var reservationM model.ReservationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reservationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReservationNotFound
		}

		return nil, errors.Wrap(err, "failed to find reservation by id")
	}

	return toReservationDomain(&reservationM), nil
}

// FindAll retrieves every reservation, oldest first.
func (repo *reservationRepository) FindAll(ctx context.Context) ([]*entity.Reservation, error) {
	var reservationModels []*model.ReservationModel

	if err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&reservationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reservations")
	}

	return toReservationDomainSlice(reservationModels), nil
}

// FindByCustomer retrieves the reservations belonging to one customer.
func (repo *reservationRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Reservation, error) {
	var reservationModels []*model.ReservationModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at ASC").
		Find(&reservationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reservations by customer")
	}

	return toReservationDomainSlice(reservationModels), nil
}

// CountByTour returns how many reservations reference the given tour.
func (repo *reservationRepository) CountByTour(ctx context.Context, tourID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ReservationModel{}).
		Where("tour_id = ?", tourID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count reservations by tour")
	}

	return count, nil
}

// Create persists a new reservation entity to the database.
func (repo *reservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	reservationM := fromReservationDomain(reservation)
	if reservationM.ID == uuid.Nil {
		reservationM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(reservationM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required reservation information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create reservation")
	}

	reservation.ID = reservationM.ID
	reservation.CreatedAt = reservationM.CreatedAt
	reservation.UpdatedAt = reservationM.UpdatedAt

	return nil
}

// Update modifies an existing reservation entity in the database.
// Writes are last-write-wins; there is no optimistic locking.
func (repo *reservationRepository) Update(ctx context.Context, reservation *entity.Reservation) error {
	reservationM := fromReservationDomain(reservation)

	if err := repo.db.WithContext(ctx).Save(reservationM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update reservation")
	}

	reservation.UpdatedAt = reservationM.UpdatedAt

	return nil
}

// Delete removes a reservation permanently.
func (repo *reservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ReservationModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete reservation")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReservationNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toReservationDomain converts a GORM ReservationModel to a domain Reservation entity.
func toReservationDomain(data *model.ReservationModel) *entity.Reservation {
	if data == nil {
		return nil
	}

	return &entity.Reservation{
		ID:              data.ID,
		CustomerID:      data.CustomerID,
		TourID:          data.TourID,
		Date:            data.Date,
		NumberOfPeople:  data.NumberOfPeople,
		TotalPrice:      data.TotalPrice,
		Status:          entity.ReservationStatus(data.Status),
		SpecialRequests: data.SpecialRequests,
		ContactPhone:    data.ContactPhone,
		Emergency:       data.Emergency,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toReservationDomainSlice(data []*model.ReservationModel) []*entity.Reservation {
	reservations := make([]*entity.Reservation, 0, len(data))
	for _, reservationM := range data {
		reservations = append(reservations, toReservationDomain(reservationM))
	}

	return reservations
}

// fromReservationDomain converts a domain Reservation entity to a GORM ReservationModel.
func fromReservationDomain(reservation *entity.Reservation) *model.ReservationModel {
	if reservation == nil {
		return nil
	}

	return &model.ReservationModel{
		ID:              reservation.ID,
		CustomerID:      reservation.CustomerID,
		TourID:          reservation.TourID,
		Date:            reservation.Date,
		NumberOfPeople:  reservation.NumberOfPeople,
		TotalPrice:      reservation.TotalPrice,
		Status:          string(reservation.Status),
		SpecialRequests: reservation.SpecialRequests,
		ContactPhone:    reservation.ContactPhone,
		Emergency:       reservation.Emergency,
		CreatedAt:       reservation.CreatedAt,
		UpdatedAt:       reservation.UpdatedAt,
	}
}
