package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kentgarcia/EnviroTrace-sub011/internal/model"
)

type PlantingRepository struct {
	db *gorm.DB
}

func NewPlantingRepository(db *gorm.DB) *PlantingRepository {
	return &PlantingRepository{db: db}
}

func (r *PlantingRepository) Create(ctx context.Context, record *model.PlantingRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *PlantingRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.PlantingRecord, error) {
	var record model.PlantingRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *PlantingRepository) Update(ctx context.Context, record *model.PlantingRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *PlantingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.PlantingRecord{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PlantingRepository) List(ctx context.Context, recordType *model.PlantingType) ([]model.PlantingRecord, error) {
	var records []model.PlantingRecord
	query := r.db.WithContext(ctx).Model(&model.PlantingRecord{})

	if recordType != nil {
		query = query.Where("record_type = ?", *recordType)
	}

	if err := query.Order("planted_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
