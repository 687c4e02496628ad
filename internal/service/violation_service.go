package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kentgarcia/EnviroTrace-sub011/internal/model"
	"github.com/kentgarcia/EnviroTrace-sub011/internal/repository"
	"github.com/kentgarcia/EnviroTrace-sub011/internal/utils"
)

type ViolationService struct {
	violationRepo *repository.ViolationRepository
}

func NewViolationService(violationRepo *repository.ViolationRepository) *ViolationService {
	return &ViolationService{violationRepo: violationRepo}
}

type ViolationInput struct {
	PlateNumber    string
	DriverName     *string
	OrdinanceLevel int
	SmokeBelching  bool
	ApprehendedAt  string
	Location       *string
	FineAmount     *float64
}

func (s *ViolationService) Create(ctx context.Context, principal model.Principal, input ViolationInput) (*model.AirQualityViolation, error) {
	if !principal.HasCapability(model.CapAirQualityWrite) {
		return nil, ErrPermissionDenied
	}
	if input.PlateNumber == "" {
		return nil, ErrInvalidInput
	}

	apprehendedAt, err := parseDate(input.ApprehendedAt)
	if err != nil {
		return nil, ErrInvalidInput
	}

	level := input.OrdinanceLevel
	if level < 1 {
		level = 1
	}

	violation := &model.AirQualityViolation{
		PlateNumber:    utils.NormalizePlate(input.PlateNumber),
		DriverName:     input.DriverName,
		OrdinanceLevel: level,
		SmokeBelching:  input.SmokeBelching,
		ApprehendedAt:  apprehendedAt,
		Location:       input.Location,
		Status:         model.ViolationStatusPending,
		FineAmount:     input.FineAmount,
		RecordedBy:     principal.UserID,
	}

	if err := s.violationRepo.Create(ctx, violation); err != nil {
		return nil, err
	}
	return violation, nil
}

func (s *ViolationService) List(ctx context.Context, principal model.Principal, filter repository.ViolationListFilter) ([]model.AirQualityViolation, error) {
	if !principal.HasCapability(model.CapAirQualityRead) {
		return nil, ErrPermissionDenied
	}
	if filter.PlateNumber != nil {
		normalized := utils.NormalizePlate(*filter.PlateNumber)
		filter.PlateNumber = &normalized
	}
	return s.violationRepo.List(ctx, filter)
}

func (s *ViolationService) SetStatus(ctx context.Context, principal model.Principal, id string, status model.ViolationStatus) (*model.AirQualityViolation, error) {
	if !principal.HasCapability(model.CapAirQualityWrite) {
		return nil, ErrPermissionDenied
	}

	violationID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidInput
	}

	switch status {
	case model.ViolationStatusPending, model.ViolationStatusPaid,
		model.ViolationStatusContested, model.ViolationStatusDismissed:
	default:
		return nil, ErrInvalidInput
	}

	violation, err := s.violationRepo.GetByID(ctx, violationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	violation.Status = status
	if status == model.ViolationStatusPaid && violation.PaidAt == nil {
		now := time.Now()
		violation.PaidAt = &now
	}

	if err := s.violationRepo.Update(ctx, violation); err != nil {
		return nil, err
	}
	return violation, nil
}

func (s *ViolationService) Delete(ctx context.Context, principal model.Principal, id string) error {
	if !principal.HasCapability(model.CapAirQualityWrite) {
		return ErrPermissionDenied
	}

	violationID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidInput
	}

	if err := s.violationRepo.Delete(ctx, violationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
