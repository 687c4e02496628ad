package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kentgarcia/EnviroTrace-sub011/internal/model"
	"github.com/kentgarcia/EnviroTrace-sub011/internal/repository"
)

type OfficeService struct {
	officeRepo *repository.OfficeRepository
}

func NewOfficeService(officeRepo *repository.OfficeRepository) *OfficeService {
	return &OfficeService{officeRepo: officeRepo}
}

type OfficeInput struct {
	Name          string
	Address       *string
	ContactNumber *string
	Email         *string
}

func (s *OfficeService) Create(ctx context.Context, principal model.Principal, input OfficeInput) (*model.Office, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	if input.Name == "" {
		return nil, ErrInvalidInput
	}

	existing, err := s.officeRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrConflict
	}

	office := &model.Office{
		Name:          input.Name,
		Address:       input.Address,
		ContactNumber: input.ContactNumber,
		Email:         input.Email,
	}

	if err := s.officeRepo.Create(ctx, office); err != nil {
		return nil, err
	}
	return office, nil
}

func (s *OfficeService) List(ctx context.Context, principal model.Principal) ([]model.Office, error) {
	if !principal.HasCapability(model.CapEmissionRead) {
		return nil, ErrPermissionDenied
	}
	return s.officeRepo.List(ctx)
}

func (s *OfficeService) Update(ctx context.Context, principal model.Principal, id string, input OfficeInput) (*model.Office, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}

	officeID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidInput
	}

	office, err := s.officeRepo.GetByID(ctx, officeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if input.Name != "" && input.Name != office.Name {
		existing, err := s.officeRepo.GetByName(ctx, input.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrConflict
		}
		office.Name = input.Name
	}
	if input.Address != nil {
		office.Address = input.Address
	}
	if input.ContactNumber != nil {
		office.ContactNumber = input.ContactNumber
	}
	if input.Email != nil {
		office.Email = input.Email
	}

	if err := s.officeRepo.Update(ctx, office); err != nil {
		return nil, err
	}
	return office, nil
}

func (s *OfficeService) Delete(ctx context.Context, principal model.Principal, id string) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}

	officeID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidInput
	}

	if err := s.officeRepo.Delete(ctx, officeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
