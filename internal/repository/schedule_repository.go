package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kentgarcia/EnviroTrace-sub011/internal/model"
)

type ScheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

func (r *ScheduleRepository) Create(ctx context.Context, schedule *model.TestSchedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

func (r *ScheduleRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.TestSchedule, error) {
	var schedule model.TestSchedule
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&schedule).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *ScheduleRepository) Update(ctx context.Context, schedule *model.TestSchedule) error {
	return r.db.WithContext(ctx).Save(schedule).Error
}

func (r *ScheduleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.TestSchedule{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ScheduleRepository) List(ctx context.Context, year *int, quarter *int) ([]model.TestSchedule, error) {
	var schedules []model.TestSchedule
	query := r.db.WithContext(ctx).Model(&model.TestSchedule{})

	if year != nil {
		query = query.Where("year = ?", *year)
	}
	if quarter != nil {
		query = query.Where("quarter = ?", *quarter)
	}

	if err := query.Order("year DESC, quarter ASC").Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}
