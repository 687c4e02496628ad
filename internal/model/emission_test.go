package model

import "testing"

func TestStatusForTest(t *testing.T) {
	tests := []struct {
		name     string
		test     *EmissionTest
		expected TestStatus
	}{
		{"nil slot is pending", nil, TestStatusPending},
		{"passing test", &EmissionTest{Result: true}, TestStatusPass},
		{"failing test", &EmissionTest{Result: false}, TestStatusFail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusForTest(tt.test); got != tt.expected {
				t.Errorf("StatusForTest = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestVehicleLatestStatus(t *testing.T) {
	passed := true
	failed := false

	tests := []struct {
		name     string
		vehicle  Vehicle
		expected TestStatus
	}{
		{"never tested", Vehicle{}, TestStatusPending},
		{"latest passed", Vehicle{LatestTestResult: &passed}, TestStatusPass},
		{"latest failed", Vehicle{LatestTestResult: &failed}, TestStatusFail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.vehicle.LatestStatus(); got != tt.expected {
				t.Errorf("LatestStatus = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestVehicleUpdateApply(t *testing.T) {
	plate := "NEW123"
	wheels := 6

	vehicle := Vehicle{PlateNumber: "OLD123", DriverName: "Juan", Wheels: 4}
	update := VehicleUpdate{PlateNumber: &plate, Wheels: &wheels}
	update.Apply(&vehicle)

	if vehicle.PlateNumber != "NEW123" || vehicle.Wheels != 6 {
		t.Errorf("provided fields not applied: %+v", vehicle)
	}
	if vehicle.DriverName != "Juan" {
		t.Errorf("untouched field changed: %q", vehicle.DriverName)
	}
}
