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

// tourRepository implements the repository.TourRepository interface using GORM.
type tourRepository struct {
	db *gorm.DB
}

// NewTourRepository is the constructor for tourRepository.
func NewTourRepository(db *gorm.DB) repository.TourRepository {
	return &tourRepository{db: db}
}

// FindByID retrieves a single tour by its unique ID.
func (repo *tourRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tour, error) {
	var tourM model.TourModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&tourM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTourNotFound
		}

		return nil, errors.Wrap(err, "failed to find tour by id")
	}

	return toTourDomain(&tourM), nil
}

// FindAll retrieves the whole catalog, oldest first.
func (repo *tourRepository) FindAll(ctx context.Context) ([]*entity.Tour, error) {
	var tourModels []*model.TourModel

	if err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&tourModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find tours")
	}

	return toTourDomainSlice(tourModels), nil
}

// Search retrieves tours matching the filter. All provided filters apply
// conjunctively; absent filters are ignored.
func (repo *tourRepository) Search(ctx context.Context, filter repository.TourSearchFilter) ([]*entity.Tour, error) {
	query := repo.db.WithContext(ctx).Model(&model.TourModel{})

	if filter.Destination != "" {
		query = query.Where("destination ILIKE ?", "%"+filter.Destination+"%")
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", string(filter.Difficulty))
	}

	var tourModels []*model.TourModel
	if err := query.Order("created_at ASC").Find(&tourModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search tours")
	}

	return toTourDomainSlice(tourModels), nil
}

// Create persists a new tour entity to the database.
func (repo *tourRepository) Create(ctx context.Context, tour *entity.Tour) error {
	tourM := fromTourDomain(tour)
	if tourM.ID == uuid.Nil {
		tourM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(tourM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required tour information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create tour")
	}

	tour.ID = tourM.ID
	tour.CreatedAt = tourM.CreatedAt
	tour.UpdatedAt = tourM.UpdatedAt

	return nil
}

// Update modifies an existing tour entity in the database.
func (repo *tourRepository) Update(ctx context.Context, tour *entity.Tour) error {
	tourM := fromTourDomain(tour)

	if err := repo.db.WithContext(ctx).Save(tourM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update tour")
	}

	tour.UpdatedAt = tourM.UpdatedAt

	return nil
}

// Delete removes a tour. Reservations referencing it are left untouched.
func (repo *tourRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TourModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete tour")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTourNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toTourDomain converts a GORM TourModel to a domain Tour entity.
func toTourDomain(data *model.TourModel) *entity.Tour {
	if data == nil {
		return nil
	}

	return &entity.Tour{
		ID:             data.ID,
		Name:           data.Name,
		Description:    data.Description,
		Duration:       data.Duration,
		Price:          data.Price,
		AvailableDates: data.AvailableDates,
		Image:          data.Image,
		MaxCapacity:    data.MaxCapacity,
		Destination:    data.Destination,
		Includes:       data.Includes,
		Difficulty:     entity.Difficulty(data.Difficulty),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func toTourDomainSlice(data []*model.TourModel) []*entity.Tour {
	tours := make([]*entity.Tour, 0, len(data))
	for _, tourM := range data {
		tours = append(tours, toTourDomain(tourM))
	}

	return tours
}

// fromTourDomain converts a domain Tour entity to a GORM TourModel.
func fromTourDomain(tour *entity.Tour) *model.TourModel {
	if tour == nil {
		return nil
	}

	return &model.TourModel{
		ID:             tour.ID,
		Name:           tour.Name,
		Description:    tour.Description,
		Duration:       tour.Duration,
		Price:          tour.Price,
		AvailableDates: tour.AvailableDates,
		Image:          tour.Image,
		MaxCapacity:    tour.MaxCapacity,
		Destination:    tour.Destination,
		Includes:       tour.Includes,
		Difficulty:     string(tour.Difficulty),
		CreatedAt:      tour.CreatedAt,
		UpdatedAt:      tour.UpdatedAt,
	}
}
