package service

import (
	"testing"

	"github.com/google/uuid"

	"github.com/kentgarcia/EnviroTrace-sub011/internal/model"
)

func TestMergeVehicleViewOverlaysUpdates(t *testing.T) {
	serverID := uuid.New()
	server := []model.Vehicle{{ID: serverID, PlateNumber: "ABC123", Wheels: 4}}

	wheels := 6
	updates := map[string]model.VehicleUpdate{
		serverID.String(): {Wheels: &wheels},
	}

	merged := MergeVehicleView(server, nil, updates, nil)

	if len(merged) != 1 {
		t.Fatalf("expected 1 vehicle, got %d", len(merged))
	}
	if merged[0].Wheels != 6 {
		t.Errorf("wheels = %d, expected the pending update to apply", merged[0].Wheels)
	}
	if merged[0].PlateNumber != "ABC123" {
		t.Errorf("plate = %q, fields without a pending edit must survive", merged[0].PlateNumber)
	}
}

func TestMergeVehicleViewFiltersDeletes(t *testing.T) {
	kept := uuid.New()
	removed := uuid.New()
	server := []model.Vehicle{
		{ID: kept, PlateNumber: "KEEP01"},
		{ID: removed, PlateNumber: "GONE01"},
	}

	deletes := map[string]struct{}{removed.String(): {}}

	merged := MergeVehicleView(server, nil, nil, deletes)

	if len(merged) != 1 {
		t.Fatalf("expected 1 vehicle after delete, got %d", len(merged))
	}
	if merged[0].ID != kept {
		t.Errorf("wrong vehicle survived the delete: %s", merged[0].PlateNumber)
	}
}

func TestMergeVehicleViewAppendsCreates(t *testing.T) {
	server := []model.Vehicle{
		{ID: uuid.New(), PlateNumber: "SRV001"},
		{ID: uuid.New(), PlateNumber: "SRV002"},
	}
	creates := []PendingVehicle{
		{ClientID: "pending-1700000000", Vehicle: model.Vehicle{PlateNumber: "NEW001"}},
	}

	merged := MergeVehicleView(server, creates, nil, nil)

	if len(merged) != 3 {
		t.Fatalf("expected 3 vehicles, got %d", len(merged))
	}
	// Server order is preserved, pending creates go to the end.
	if merged[0].PlateNumber != "SRV001" || merged[1].PlateNumber != "SRV002" || merged[2].PlateNumber != "NEW001" {
		t.Errorf("unexpected order: %s, %s, %s", merged[0].PlateNumber, merged[1].PlateNumber, merged[2].PlateNumber)
	}
}

func TestMergeVehicleViewPendingCreateThenEditThenDelete(t *testing.T) {
	driver := "Updated Driver"
	creates := []PendingVehicle{
		{ClientID: "pending-1", Vehicle: model.Vehicle{PlateNumber: "NEW001", DriverName: "Original"}},
		{ClientID: "pending-2", Vehicle: model.Vehicle{PlateNumber: "NEW002"}},
	}
	updates := map[string]model.VehicleUpdate{
		"pending-1": {DriverName: &driver},
	}
	deletes := map[string]struct{}{"pending-2": {}}

	merged := MergeVehicleView(nil, creates, updates, deletes)

	if len(merged) != 1 {
		t.Fatalf("expected only the surviving pending create, got %d", len(merged))
	}
	if merged[0].DriverName != "Updated Driver" {
		t.Errorf("driver = %q, expected the pending edit to overlay the pending create", merged[0].DriverName)
	}
}

func TestMergeVehicleViewEmptyQueue(t *testing.T) {
	server := []model.Vehicle{{ID: uuid.New(), PlateNumber: "SRV001"}}

	merged := MergeVehicleView(server, nil, nil, nil)

	if len(merged) != 1 || merged[0].PlateNumber != "SRV001" {
		t.Errorf("an empty queue must leave the server view unchanged, got %+v", merged)
	}
}

func TestPendingLookupPlate(t *testing.T) {
	raw := "abc-123"
	spaced := " nbc 4567 "
	blank := "  "

	tests := []struct {
		name   string
		update model.VehicleUpdate
		want   string
		ok     bool
	}{
		{"no plate", model.VehicleUpdate{}, "", false},
		{"lowercase with dash", model.VehicleUpdate{PlateNumber: &raw}, "ABC123", true},
		{"spaces stripped", model.VehicleUpdate{PlateNumber: &spaced}, "NBC4567", true},
		{"blank plate", model.VehicleUpdate{PlateNumber: &blank}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := pendingLookupPlate(tt.update)
			if ok != tt.ok {
				t.Fatalf("ok = %v, expected %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("plate = %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestPendingFromCreate(t *testing.T) {
	chassis := "CH-900"
	pending := pendingFromCreate(PendingCreate{
		ClientID: "pending-1700000000",
		Input: VehicleInput{
			PlateNumber:   "xyz 789",
			ChassisNumber: &chassis,
			DriverName:    "J. Cruz",
			OfficeName:    "City Engineering",
			VehicleType:   "truck",
			EngineType:    "diesel",
			Wheels:        6,
		},
	})

	if pending.ClientID != "pending-1700000000" {
		t.Errorf("client id = %q, expected the queued id to carry through", pending.ClientID)
	}
	if pending.Vehicle.PlateNumber != "XYZ789" {
		t.Errorf("plate = %q, expected the canonical form the push would store", pending.Vehicle.PlateNumber)
	}
	if pending.Vehicle.EngineType != model.EngineTypeDiesel {
		t.Errorf("engine type = %q, expected diesel", pending.Vehicle.EngineType)
	}
	if pending.Vehicle.DriverName != "J. Cruz" || pending.Vehicle.OfficeName != "City Engineering" || pending.Vehicle.Wheels != 6 {
		t.Errorf("vehicle fields not carried: %+v", pending.Vehicle)
	}
	if pending.Vehicle.ChassisNumber == nil || *pending.Vehicle.ChassisNumber != "CH-900" {
		t.Errorf("chassis number not carried: %v", pending.Vehicle.ChassisNumber)
	}
}
