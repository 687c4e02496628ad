package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kentgarcia/EnviroTrace-sub011/internal/model"
)

type ViolationRepository struct {
	db *gorm.DB
}

func NewViolationRepository(db *gorm.DB) *ViolationRepository {
	return &ViolationRepository{db: db}
}

func (r *ViolationRepository) Create(ctx context.Context, violation *model.AirQualityViolation) error {
	return r.db.WithContext(ctx).Create(violation).Error
}

func (r *ViolationRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.AirQualityViolation, error) {
	var violation model.AirQualityViolation
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&violation).Error
	if err != nil {
		return nil, err
	}
	return &violation, nil
}

func (r *ViolationRepository) Update(ctx context.Context, violation *model.AirQualityViolation) error {
	return r.db.WithContext(ctx).Save(violation).Error
}

func (r *ViolationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.AirQualityViolation{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type ViolationListFilter struct {
	PlateNumber *string
	Status      *model.ViolationStatus
}

func (r *ViolationRepository) List(ctx context.Context, filter ViolationListFilter) ([]model.AirQualityViolation, error) {
	var violations []model.AirQualityViolation
	query := r.db.WithContext(ctx).Model(&model.AirQualityViolation{})

	if filter.PlateNumber != nil {
		query = query.Where("plate_number = ?", *filter.PlateNumber)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	if err := query.Order("apprehended_at DESC").Find(&violations).Error; err != nil {
		return nil, err
	}
	return violations, nil
}
