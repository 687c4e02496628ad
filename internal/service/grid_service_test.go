package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/kentgarcia/EnviroTrace-sub011/internal/model"
)

func TestBuildOfficeGroupsStatuses(t *testing.T) {
	vehicleID := uuid.New()
	vehicles := []model.Vehicle{{ID: vehicleID, OfficeName: "City Hall"}}
	day := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	tests := []model.EmissionTest{
		{VehicleID: vehicleID, Quarter: 2, TestDate: day, Result: true},
		{VehicleID: vehicleID, Quarter: 3, TestDate: day, Result: false},
	}

	groups := BuildOfficeGroups(vehicles, tests)

	if len(groups) != 1 || len(groups[0].Vehicles) != 1 {
		t.Fatalf("expected one group with one vehicle, got %+v", groups)
	}

	row := groups[0].Vehicles[0]
	expected := [4]model.TestStatus{
		model.TestStatusPending,
		model.TestStatusPass,
		model.TestStatusFail,
		model.TestStatusPending,
	}
	if row.Statuses != expected {
		t.Errorf("statuses = %v, expected %v", row.Statuses, expected)
	}
	if row.Quarters[0] != nil || row.Quarters[3] != nil {
		t.Error("untested quarters should have nil slots")
	}
}

func TestBuildOfficeGroupsNewestTestWinsSlot(t *testing.T) {
	vehicleID := uuid.New()
	vehicles := []model.Vehicle{{ID: vehicleID, OfficeName: "Motor Pool"}}
	tests := []model.EmissionTest{
		{VehicleID: vehicleID, Quarter: 1, TestDate: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), Result: false},
		{VehicleID: vehicleID, Quarter: 1, TestDate: time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC), Result: true},
	}

	groups := BuildOfficeGroups(vehicles, tests)

	row := groups[0].Vehicles[0]
	if row.Statuses[0] != model.TestStatusPass {
		t.Errorf("expected the newer passing test to win the slot, got %v", row.Statuses[0])
	}
}

func TestBuildOfficeGroupsOrderAndGrouping(t *testing.T) {
	vehicles := []model.Vehicle{
		{ID: uuid.New(), OfficeName: "Engineering"},
		{ID: uuid.New(), OfficeName: "City Hall"},
		{ID: uuid.New(), OfficeName: "Engineering"},
		{ID: uuid.New(), OfficeName: ""},
	}

	groups := BuildOfficeGroups(vehicles, nil)

	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	if groups[0].OfficeName != "Engineering" || groups[1].OfficeName != "City Hall" || groups[2].OfficeName != "Unknown" {
		t.Errorf("unexpected group order: %s, %s, %s", groups[0].OfficeName, groups[1].OfficeName, groups[2].OfficeName)
	}
	if len(groups[0].Vehicles) != 2 {
		t.Errorf("expected 2 Engineering vehicles, got %d", len(groups[0].Vehicles))
	}
}

func TestBuildOfficeGroupsIgnoresInvalidQuarter(t *testing.T) {
	vehicleID := uuid.New()
	vehicles := []model.Vehicle{{ID: vehicleID, OfficeName: "City Hall"}}
	tests := []model.EmissionTest{
		{VehicleID: vehicleID, Quarter: 0, TestDate: time.Now(), Result: true},
		{VehicleID: vehicleID, Quarter: 5, TestDate: time.Now(), Result: true},
	}

	groups := BuildOfficeGroups(vehicles, tests)

	for _, status := range groups[0].Vehicles[0].Statuses {
		if status != model.TestStatusPending {
			t.Errorf("expected all quarters pending, got %v", groups[0].Vehicles[0].Statuses)
		}
	}
}
