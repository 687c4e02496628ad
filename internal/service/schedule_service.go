package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kentgarcia/EnviroTrace-sub011/internal/model"
	"github.com/kentgarcia/EnviroTrace-sub011/internal/repository"
)

type ScheduleService struct {
	scheduleRepo *repository.ScheduleRepository
}

func NewScheduleService(scheduleRepo *repository.ScheduleRepository) *ScheduleService {
	return &ScheduleService{scheduleRepo: scheduleRepo}
}

type ScheduleInput struct {
	Year              int
	Quarter           int
	AssignedPersonnel string
	Location          string
	ConductedOn       *string
}

func (s *ScheduleService) Create(ctx context.Context, principal model.Principal, input ScheduleInput) (*model.TestSchedule, error) {
	if !principal.HasCapability(model.CapEmissionWrite) {
		return nil, ErrPermissionDenied
	}
	if input.Quarter < 1 || input.Quarter > 4 || input.Year == 0 {
		return nil, ErrInvalidInput
	}
	if input.AssignedPersonnel == "" || input.Location == "" {
		return nil, ErrInvalidInput
	}

	schedule := &model.TestSchedule{
		Year:              input.Year,
		Quarter:           input.Quarter,
		AssignedPersonnel: input.AssignedPersonnel,
		Location:          input.Location,
	}

	if input.ConductedOn != nil {
		conducted, err := parseDate(*input.ConductedOn)
		if err != nil {
			return nil, ErrInvalidInput
		}
		schedule.ConductedOn = &conducted
	}

	if err := s.scheduleRepo.Create(ctx, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

func (s *ScheduleService) List(ctx context.Context, principal model.Principal, year *int, quarter *int) ([]model.TestSchedule, error) {
	if !principal.HasCapability(model.CapEmissionRead) {
		return nil, ErrPermissionDenied
	}
	return s.scheduleRepo.List(ctx, year, quarter)
}

func (s *ScheduleService) Update(ctx context.Context, principal model.Principal, id string, input ScheduleInput) (*model.TestSchedule, error) {
	if !principal.HasCapability(model.CapEmissionWrite) {
		return nil, ErrPermissionDenied
	}

	scheduleID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidInput
	}
	if input.Quarter < 1 || input.Quarter > 4 || input.Year == 0 {
		return nil, ErrInvalidInput
	}

	schedule, err := s.scheduleRepo.GetByID(ctx, scheduleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	schedule.Year = input.Year
	schedule.Quarter = input.Quarter
	if input.AssignedPersonnel != "" {
		schedule.AssignedPersonnel = input.AssignedPersonnel
	}
	if input.Location != "" {
		schedule.Location = input.Location
	}
	if input.ConductedOn != nil {
		conducted, err := parseDate(*input.ConductedOn)
		if err != nil {
			return nil, ErrInvalidInput
		}
		schedule.ConductedOn = &conducted
	}

	if err := s.scheduleRepo.Update(ctx, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

func (s *ScheduleService) Delete(ctx context.Context, principal model.Principal, id string) error {
	if !principal.HasCapability(model.CapEmissionWrite) {
		return ErrPermissionDenied
	}

	scheduleID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidInput
	}

	if err := s.scheduleRepo.Delete(ctx, scheduleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
