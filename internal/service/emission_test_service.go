package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kentgarcia/EnviroTrace-sub011/internal/model"
	"github.com/kentgarcia/EnviroTrace-sub011/internal/repository"
)

type EmissionTestService struct {
	testRepo       *repository.EmissionTestRepository
	vehicleRepo    *repository.VehicleRepository
	vehicleService *VehicleService
}

func NewEmissionTestService(
	testRepo *repository.EmissionTestRepository,
	vehicleRepo *repository.VehicleRepository,
	vehicleService *VehicleService,
) *EmissionTestService {
	return &EmissionTestService{
		testRepo:       testRepo,
		vehicleRepo:    vehicleRepo,
		vehicleService: vehicleService,
	}
}

type EmissionTestInput struct {
	VehicleID        string
	TestDate         string
	Quarter          int
	Year             int
	Result           bool
	COLevel          *float64
	HCLevel          *float64
	OpacimeterResult *float64
	Technician       *string
	TestingCenter    *string
}

func (s *EmissionTestService) Create(ctx context.Context, principal model.Principal, input EmissionTestInput) (*model.EmissionTest, error) {
	if !principal.HasCapability(model.CapEmissionWrite) {
		return nil, ErrPermissionDenied
	}

	vehicleID, err := uuid.Parse(input.VehicleID)
	if err != nil {
		return nil, ErrInvalidInput
	}
	if input.Quarter < 1 || input.Quarter > 4 {
		return nil, ErrInvalidInput
	}

	testDate, err := parseDate(input.TestDate)
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

	test := &model.EmissionTest{
		VehicleID:     vehicleID,
		TestDate:      testDate,
		Quarter:       input.Quarter,
		Year:          input.Year,
		Result:        input.Result,
		Technician:    input.Technician,
		TestingCenter: input.TestingCenter,
		CreatedBy:     principal.UserID,
	}

	// Technical readings are gated by engine type: CO/HC for gasoline,
	// opacimeter for diesel.
	switch vehicle.EngineType {
	case model.EngineTypeGasoline:
		test.COLevel = input.COLevel
		test.HCLevel = input.HCLevel
	case model.EngineTypeDiesel:
		test.OpacimeterResult = input.OpacimeterResult
	}

	if err := s.testRepo.Create(ctx, test); err != nil {
		return nil, err
	}

	if err := s.vehicleService.RefreshLatestTest(ctx, vehicleID); err != nil {
		return nil, err
	}
	return test, nil
}

func (s *EmissionTestService) List(ctx context.Context, principal model.Principal, filter repository.EmissionTestListFilter) ([]model.EmissionTest, error) {
	if !principal.HasCapability(model.CapEmissionRead) {
		return nil, ErrPermissionDenied
	}
	return s.testRepo.List(ctx, filter)
}

type EmissionTestUpdate struct {
	TestDate         *string
	Quarter          *int
	Year             *int
	Result           *bool
	COLevel          *float64
	HCLevel          *float64
	OpacimeterResult *float64
	Technician       *string
	TestingCenter    *string
}

// Update applies a partial edit. This backs both the fuller entry form and
// the grid's quick status cycle, which sends only Result.
func (s *EmissionTestService) Update(ctx context.Context, principal model.Principal, id string, update EmissionTestUpdate) (*model.EmissionTest, error) {
	if !principal.HasCapability(model.CapEmissionWrite) {
		return nil, ErrPermissionDenied
	}

	testID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidInput
	}

	test, err := s.testRepo.GetByID(ctx, testID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if update.TestDate != nil {
		testDate, err := parseDate(*update.TestDate)
		if err != nil {
			return nil, ErrInvalidInput
		}
		test.TestDate = testDate
	}
	if update.Quarter != nil {
		if *update.Quarter < 1 || *update.Quarter > 4 {
			return nil, ErrInvalidInput
		}
		test.Quarter = *update.Quarter
	}
	if update.Year != nil {
		test.Year = *update.Year
	}
	if update.Result != nil {
		test.Result = *update.Result
	}
	if update.COLevel != nil {
		test.COLevel = update.COLevel
	}
	if update.HCLevel != nil {
		test.HCLevel = update.HCLevel
	}
	if update.OpacimeterResult != nil {
		test.OpacimeterResult = update.OpacimeterResult
	}
	if update.Technician != nil {
		test.Technician = update.Technician
	}
	if update.TestingCenter != nil {
		test.TestingCenter = update.TestingCenter
	}

	if err := s.testRepo.Update(ctx, test); err != nil {
		return nil, err
	}

	if err := s.vehicleService.RefreshLatestTest(ctx, test.VehicleID); err != nil {
		return nil, err
	}
	return test, nil
}

func (s *EmissionTestService) Delete(ctx context.Context, principal model.Principal, id string) error {
	if !principal.HasCapability(model.CapEmissionWrite) {
		return ErrPermissionDenied
	}

	testID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidInput
	}

	test, err := s.testRepo.GetByID(ctx, testID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.testRepo.Delete(ctx, testID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.vehicleService.RefreshLatestTest(ctx, test.VehicleID)
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, errors.New("invalid date format")
}
