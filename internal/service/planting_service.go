package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kentgarcia/EnviroTrace-sub011/internal/model"
	"github.com/kentgarcia/EnviroTrace-sub011/internal/repository"
)

type PlantingService struct {
	plantingRepo *repository.PlantingRepository
}

func NewPlantingService(plantingRepo *repository.PlantingRepository) *PlantingService {
	return &PlantingService{plantingRepo: plantingRepo}
}

type PlantingInput struct {
	RecordType   string
	Species      string
	Quantity     int
	Location     string
	PlantedAt    string
	MaintainedBy *string
}

func (in PlantingInput) validate() error {
	switch model.PlantingType(in.RecordType) {
	case model.PlantingTypeTree, model.PlantingTypeOrnamental, model.PlantingTypeSeedling:
	default:
		return ErrInvalidInput
	}
	if in.Species == "" || in.Location == "" {
		return ErrInvalidInput
	}
	if in.Quantity < 1 {
		return ErrInvalidInput
	}
	return nil
}

func (s *PlantingService) Create(ctx context.Context, principal model.Principal, input PlantingInput) (*model.PlantingRecord, error) {
	if !principal.HasCapability(model.CapGreeningWrite) {
		return nil, ErrPermissionDenied
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	plantedAt, err := parseDate(input.PlantedAt)
	if err != nil {
		return nil, ErrInvalidInput
	}

	record := &model.PlantingRecord{
		RecordType:   model.PlantingType(input.RecordType),
		Species:      input.Species,
		Quantity:     input.Quantity,
		Location:     input.Location,
		PlantedAt:    plantedAt,
		MaintainedBy: input.MaintainedBy,
		RecordedBy:   principal.UserID,
	}

	if err := s.plantingRepo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *PlantingService) List(ctx context.Context, principal model.Principal, recordType *model.PlantingType) ([]model.PlantingRecord, error) {
	if !principal.HasCapability(model.CapGreeningRead) {
		return nil, ErrPermissionDenied
	}
	return s.plantingRepo.List(ctx, recordType)
}

func (s *PlantingService) Update(ctx context.Context, principal model.Principal, id string, input PlantingInput) (*model.PlantingRecord, error) {
	if !principal.HasCapability(model.CapGreeningWrite) {
		return nil, ErrPermissionDenied
	}

	recordID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidInput
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	record, err := s.plantingRepo.GetByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	plantedAt, err := parseDate(input.PlantedAt)
	if err != nil {
		return nil, ErrInvalidInput
	}

	record.RecordType = model.PlantingType(input.RecordType)
	record.Species = input.Species
	record.Quantity = input.Quantity
	record.Location = input.Location
	record.PlantedAt = plantedAt
	record.MaintainedBy = input.MaintainedBy

	if err := s.plantingRepo.Update(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *PlantingService) Delete(ctx context.Context, principal model.Principal, id string) error {
	if !principal.HasCapability(model.CapGreeningWrite) {
		return ErrPermissionDenied
	}

	recordID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidInput
	}

	if err := s.plantingRepo.Delete(ctx, recordID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
