package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/kentgarcia/EnviroTrace-sub011/internal/model"
	"github.com/kentgarcia/EnviroTrace-sub011/internal/repository"
)

// GridService assembles the office-grouped quarterly testing grid payload:
// vehicles grouped by office, each pre-joined with its four quarter slots so
// the client renders one row per vehicle and one cell per quarter.
type GridService struct {
	vehicleRepo *repository.VehicleRepository
	testRepo    *repository.EmissionTestRepository
	officeRepo  *repository.OfficeRepository
}

func NewGridService(
	vehicleRepo *repository.VehicleRepository,
	testRepo *repository.EmissionTestRepository,
	officeRepo *repository.OfficeRepository,
) *GridService {
	return &GridService{
		vehicleRepo: vehicleRepo,
		testRepo:    testRepo,
		officeRepo:  officeRepo,
	}
}

type GridVehicle struct {
	Vehicle  model.Vehicle          `json:"vehicle"`
	Quarters [4]*model.EmissionTest `json:"quarters"`
	Statuses [4]model.TestStatus    `json:"statuses"`
}

type OfficeGroup struct {
	OfficeID   *uuid.UUID    `json:"office_id,omitempty"`
	OfficeName string        `json:"office_name"`
	Vehicles   []GridVehicle `json:"vehicles"`
}

func (s *GridService) TestingGrid(ctx context.Context, principal model.Principal, year int) ([]OfficeGroup, error) {
	if !principal.HasCapability(model.CapEmissionRead) {
		return nil, ErrPermissionDenied
	}

	vehicles, err := s.vehicleRepo.List(ctx, repository.VehicleListFilter{})
	if err != nil {
		return nil, err
	}

	tests, err := s.testRepo.List(ctx, repository.EmissionTestListFilter{Year: &year})
	if err != nil {
		return nil, err
	}

	groups := BuildOfficeGroups(vehicles, tests)

	offices, err := s.officeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]uuid.UUID, len(offices))
	for _, office := range offices {
		byName[office.Name] = office.ID
	}
	for i := range groups {
		if id, ok := byName[groups[i].OfficeName]; ok {
			officeID := id
			groups[i].OfficeID = &officeID
		}
	}

	return groups, nil
}

// BuildOfficeGroups flattens vehicles into office groups in first-seen order
// and fills the Q1..Q4 slots. When a quarter holds several tests the newest
// by test date wins the slot.
func BuildOfficeGroups(vehicles []model.Vehicle, tests []model.EmissionTest) []OfficeGroup {
	slots := make(map[uuid.UUID]*[4]*model.EmissionTest)
	for i := range tests {
		test := tests[i]
		if test.Quarter < 1 || test.Quarter > 4 {
			continue
		}
		q := slots[test.VehicleID]
		if q == nil {
			q = &[4]*model.EmissionTest{}
			slots[test.VehicleID] = q
		}
		current := q[test.Quarter-1]
		if current == nil || test.TestDate.After(current.TestDate) {
			q[test.Quarter-1] = &tests[i]
		}
	}

	index := make(map[string]int)
	var groups []OfficeGroup
	for _, vehicle := range vehicles {
		name := vehicle.OfficeName
		if name == "" {
			name = unknownLabel
		}
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, OfficeGroup{OfficeName: name})
		}

		row := GridVehicle{Vehicle: vehicle}
		if q := slots[vehicle.ID]; q != nil {
			row.Quarters = *q
		}
		for qi := 0; qi < 4; qi++ {
			row.Statuses[qi] = model.StatusForTest(row.Quarters[qi])
		}
		groups[i].Vehicles = append(groups[i].Vehicles, row)
	}

	return groups
}
