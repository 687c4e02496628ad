package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kentgarcia/EnviroTrace-sub011/internal/model"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) Create(ctx context.Context, vehicle *model.Vehicle) error {
	return r.db.WithContext(ctx).Create(vehicle).Error
}

func (r *VehicleRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&vehicle).Error
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *VehicleRepository) GetByPlate(ctx context.Context, plate string) (*model.Vehicle, error) {
	if plate == "" {
		return nil, nil
	}
	var vehicle model.Vehicle
	err := r.db.WithContext(ctx).Where("plate_number = ?", plate).First(&vehicle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vehicle, nil
}

func (r *VehicleRepository) Update(ctx context.Context, vehicle *model.Vehicle) error {
	return r.db.WithContext(ctx).Save(vehicle).Error
}

// Delete soft-removes the vehicle; its tests stay for historical aggregates.
func (r *VehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Vehicle{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type VehicleListFilter struct {
	Search     *string
	OfficeName *string
	EngineType *model.EngineType
	Limit      int
}

func (r *VehicleRepository) List(ctx context.Context, filter VehicleListFilter) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	query := r.db.WithContext(ctx).Model(&model.Vehicle{})

	if filter.Search != nil {
		pattern := "%" + *filter.Search + "%"
		query = query.Where(
			"plate_number ILIKE ? OR driver_name ILIKE ? OR office_name ILIKE ?",
			pattern, pattern, pattern,
		)
	}
	if filter.OfficeName != nil {
		query = query.Where("office_name = ?", *filter.OfficeName)
	}
	if filter.EngineType != nil {
		query = query.Where("engine_type = ?", *filter.EngineType)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	if err := query.Order("created_at ASC").Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}
