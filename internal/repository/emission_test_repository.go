package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kentgarcia/EnviroTrace-sub011/internal/model"
)

type EmissionTestRepository struct {
	db *gorm.DB
}

func NewEmissionTestRepository(db *gorm.DB) *EmissionTestRepository {
	return &EmissionTestRepository{db: db}
}

func (r *EmissionTestRepository) Create(ctx context.Context, test *model.EmissionTest) error {
	return r.db.WithContext(ctx).Create(test).Error
}

func (r *EmissionTestRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.EmissionTest, error) {
	var test model.EmissionTest
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&test).Error
	if err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *EmissionTestRepository) Update(ctx context.Context, test *model.EmissionTest) error {
	return r.db.WithContext(ctx).Save(test).Error
}

func (r *EmissionTestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.EmissionTest{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type EmissionTestListFilter struct {
	Year      *int
	Quarter   *int
	VehicleID *uuid.UUID
}

func (r *EmissionTestRepository) List(ctx context.Context, filter EmissionTestListFilter) ([]model.EmissionTest, error) {
	var tests []model.EmissionTest
	query := r.db.WithContext(ctx).Model(&model.EmissionTest{})

	if filter.Year != nil {
		query = query.Where("year = ?", *filter.Year)
	}
	if filter.Quarter != nil {
		query = query.Where("quarter = ?", *filter.Quarter)
	}
	if filter.VehicleID != nil {
		query = query.Where("vehicle_id = ?", *filter.VehicleID)
	}

	if err := query.Order("test_date DESC").Find(&tests).Error; err != nil {
		return nil, err
	}
	return tests, nil
}

// LatestForVehicle returns the newest test for a vehicle, or nil when the
// vehicle has never been tested.
func (r *EmissionTestRepository) LatestForVehicle(ctx context.Context, vehicleID uuid.UUID) (*model.EmissionTest, error) {
	var test model.EmissionTest
	err := r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("test_date DESC").
		First(&test).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &test, nil
}
