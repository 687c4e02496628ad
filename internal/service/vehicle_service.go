package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kentgarcia/EnviroTrace-sub011/internal/model"
	"github.com/kentgarcia/EnviroTrace-sub011/internal/repository"
	"github.com/kentgarcia/EnviroTrace-sub011/internal/utils"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("not authorized")
	ErrInvalidInput     = errors.New("invalid input")
	ErrConflict         = errors.New("conflict")
)

const (
	MinWheels = 2
	MaxWheels = 18
)

type VehicleService struct {
	vehicleRepo *repository.VehicleRepository
	testRepo    *repository.EmissionTestRepository
}

func NewVehicleService(vehicleRepo *repository.VehicleRepository, testRepo *repository.EmissionTestRepository) *VehicleService {
	return &VehicleService{
		vehicleRepo: vehicleRepo,
		testRepo:    testRepo,
	}
}

type VehicleInput struct {
	PlateNumber        string
	ChassisNumber      *string
	RegistrationNumber *string
	DriverName         string
	OfficeName         string
	VehicleType        string
	EngineType         string
	Wheels             int
	ContactNumber      *string
	Remarks            *string
}

func (in VehicleInput) validate() error {
	// At least one identifying field; the plate is primary but chassis or
	// registration numbers can stand in for unregistered units.
	if in.PlateNumber == "" && in.ChassisNumber == nil && in.RegistrationNumber == nil {
		return ErrInvalidInput
	}
	if in.DriverName == "" || in.OfficeName == "" || in.VehicleType == "" {
		return ErrInvalidInput
	}
	if in.Wheels < MinWheels || in.Wheels > MaxWheels {
		return ErrInvalidInput
	}
	switch model.EngineType(in.EngineType) {
	case model.EngineTypeGasoline, model.EngineTypeDiesel:
	default:
		return ErrInvalidInput
	}
	return nil
}

func (s *VehicleService) Create(ctx context.Context, principal model.Principal, input VehicleInput) (*model.Vehicle, error) {
	if !principal.HasCapability(model.CapEmissionWrite) {
		return nil, ErrPermissionDenied
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	plate := utils.NormalizePlate(input.PlateNumber)
	existing, err := s.vehicleRepo.GetByPlate(ctx, plate)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrConflict
	}

	vehicle := &model.Vehicle{
		PlateNumber:        plate,
		ChassisNumber:      input.ChassisNumber,
		RegistrationNumber: input.RegistrationNumber,
		DriverName:         input.DriverName,
		OfficeName:         input.OfficeName,
		VehicleType:        input.VehicleType,
		EngineType:         model.EngineType(input.EngineType),
		Wheels:             input.Wheels,
		ContactNumber:      input.ContactNumber,
		Remarks:            input.Remarks,
	}

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

func (s *VehicleService) Get(ctx context.Context, principal model.Principal, id string) (*model.Vehicle, error) {
	if !principal.HasCapability(model.CapEmissionRead) {
		return nil, ErrPermissionDenied
	}

	vehicleID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidInput
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return vehicle, nil
}

func (s *VehicleService) List(ctx context.Context, principal model.Principal, filter repository.VehicleListFilter) ([]model.Vehicle, error) {
	if !principal.HasCapability(model.CapEmissionRead) {
		return nil, ErrPermissionDenied
	}
	return s.vehicleRepo.List(ctx, filter)
}

func (s *VehicleService) Update(ctx context.Context, principal model.Principal, id string, update model.VehicleUpdate) (*model.Vehicle, error) {
	if !principal.HasCapability(model.CapEmissionWrite) {
		return nil, ErrPermissionDenied
	}

	vehicleID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidInput
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if update.PlateNumber != nil {
		plate := utils.NormalizePlate(*update.PlateNumber)
		if plate != vehicle.PlateNumber {
			existing, err := s.vehicleRepo.GetByPlate(ctx, plate)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, ErrConflict
			}
		}
		update.PlateNumber = &plate
	}
	if update.Wheels != nil && (*update.Wheels < MinWheels || *update.Wheels > MaxWheels) {
		return nil, ErrInvalidInput
	}

	update.Apply(vehicle)

	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

func (s *VehicleService) Delete(ctx context.Context, principal model.Principal, id string) error {
	if !principal.HasCapability(model.CapEmissionWrite) {
		return ErrPermissionDenied
	}

	vehicleID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidInput
	}

	if err := s.vehicleRepo.Delete(ctx, vehicleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// RefreshLatestTest recomputes the denormalized latest-test fields after a
// test mutation.
func (s *VehicleService) RefreshLatestTest(ctx context.Context, vehicleID uuid.UUID) error {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	latest, err := s.testRepo.LatestForVehicle(ctx, vehicleID)
	if err != nil {
		return err
	}

	if latest == nil {
		vehicle.LatestTestDate = nil
		vehicle.LatestTestQuarter = nil
		vehicle.LatestTestYear = nil
		vehicle.LatestTestResult = nil
	} else {
		testDate := latest.TestDate
		quarter := latest.Quarter
		year := latest.Year
		result := latest.Result
		vehicle.LatestTestDate = &testDate
		vehicle.LatestTestQuarter = &quarter
		vehicle.LatestTestYear = &year
		vehicle.LatestTestResult = &result
	}

	return s.vehicleRepo.Update(ctx, vehicle)
}
