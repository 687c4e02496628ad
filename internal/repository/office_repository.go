package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kentgarcia/EnviroTrace-sub011/internal/model"
)

type OfficeRepository struct {
	db *gorm.DB
}

func NewOfficeRepository(db *gorm.DB) *OfficeRepository {
	return &OfficeRepository{db: db}
}

func (r *OfficeRepository) Create(ctx context.Context, office *model.Office) error {
	return r.db.WithContext(ctx).Create(office).Error
}

func (r *OfficeRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Office, error) {
	var office model.Office
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&office).Error
	if err != nil {
		return nil, err
	}
	return &office, nil
}

func (r *OfficeRepository) GetByName(ctx context.Context, name string) (*model.Office, error) {
	var office model.Office
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&office).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &office, nil
}

func (r *OfficeRepository) Update(ctx context.Context, office *model.Office) error {
	return r.db.WithContext(ctx).Save(office).Error
}

func (r *OfficeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Office{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *OfficeRepository) List(ctx context.Context) ([]model.Office, error) {
	var offices []model.Office
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&offices).Error; err != nil {
		return nil, err
	}
	return offices, nil
}
