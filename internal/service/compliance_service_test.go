package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/kentgarcia/EnviroTrace-sub011/internal/model"
)

func TestRatePercent(t *testing.T) {
	tests := []struct {
		name     string
		passed   int
		total    int
		expected int
	}{
		{"zero total yields zero", 5, 0, 0},
		{"zero passed", 0, 10, 0},
		{"all passed", 10, 10, 100},
		{"half", 5, 10, 50},
		{"rounds up", 2, 3, 67},
		{"rounds down", 1, 3, 33},
		{"rounds half away from zero", 1, 8, 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RatePercent(tt.passed, tt.total); got != tt.expected {
				t.Errorf("RatePercent(%d, %d) = %d, expected %d", tt.passed, tt.total, got, tt.expected)
			}
		})
	}
}

func TestCountByLabel(t *testing.T) {
	counts := CountByLabel([]string{"gasoline", "diesel", "gasoline", "", "diesel", "gasoline"})

	expected := []CategoryCount{
		{ID: "gasoline", Label: "gasoline", Value: 3},
		{ID: "diesel", Label: "diesel", Value: 2},
		{ID: "Unknown", Label: "Unknown", Value: 1},
	}

	if len(counts) != len(expected) {
		t.Fatalf("expected %d categories, got %d", len(expected), len(counts))
	}
	for i, want := range expected {
		if counts[i] != want {
			t.Errorf("counts[%d] = %+v, expected %+v", i, counts[i], want)
		}
	}
}

func TestCountByLabelEmpty(t *testing.T) {
	if counts := CountByLabel(nil); len(counts) != 0 {
		t.Errorf("expected no categories, got %v", counts)
	}
}

func TestSortByValueDesc(t *testing.T) {
	counts := []CategoryCount{
		{ID: "Sedan", Label: "Sedan", Value: 2},
		{ID: "Truck", Label: "Truck", Value: 5},
		{ID: "Van", Label: "Van", Value: 2},
	}

	sorted := SortByValueDesc(counts)

	if sorted[0].ID != "Truck" {
		t.Errorf("expected Truck first, got %s", sorted[0].ID)
	}
	// Stable sort keeps first-seen order among ties.
	if sorted[1].ID != "Sedan" || sorted[2].ID != "Van" {
		t.Errorf("expected tie order Sedan, Van; got %s, %s", sorted[1].ID, sorted[2].ID)
	}
	if counts[0].ID != "Sedan" {
		t.Error("input slice was reordered")
	}
}

func TestBuildQuarterBreakdown(t *testing.T) {
	tests := []model.EmissionTest{
		{Quarter: 1, Result: true},
		{Quarter: 1, Result: false},
		{Quarter: 3, Result: true},
		{Quarter: 0, Result: true},
		{Quarter: 5, Result: false},
	}

	breakdown := BuildQuarterBreakdown(tests)

	if len(breakdown) != 4 {
		t.Fatalf("expected 4 quarters, got %d", len(breakdown))
	}

	expected := []QuarterStat{
		{Quarter: 1, Passed: 1, Failed: 1},
		{Quarter: 2},
		{Quarter: 3, Passed: 1},
		{Quarter: 4},
	}
	for i, want := range expected {
		if breakdown[i] != want {
			t.Errorf("breakdown[%d] = %+v, expected %+v", i, breakdown[i], want)
		}
	}
}

func TestBuildQuarterBreakdownNoTests(t *testing.T) {
	breakdown := BuildQuarterBreakdown(nil)
	if len(breakdown) != 4 {
		t.Fatalf("expected 4 quarters, got %d", len(breakdown))
	}
	for i, stat := range breakdown {
		if stat.Quarter != i+1 || stat.Passed != 0 || stat.Failed != 0 {
			t.Errorf("breakdown[%d] = %+v, expected zero-filled quarter %d", i, stat, i+1)
		}
	}
}

func TestComputeOfficeCompliance(t *testing.T) {
	v1 := uuid.New()
	v2 := uuid.New()
	v3 := uuid.New()
	v4 := uuid.New()

	vehicles := []model.Vehicle{
		{ID: v1, OfficeName: "City Hall"},
		{ID: v2, OfficeName: "City Hall"},
		{ID: v3, OfficeName: "City Hall"},
		{ID: v4, OfficeName: "Engineering"},
	}
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	tests := []model.EmissionTest{
		{VehicleID: v1, TestDate: day, Result: true},
		{VehicleID: v2, TestDate: day, Result: false},
		{VehicleID: v4, TestDate: day, Result: true},
	}

	rows := ComputeOfficeCompliance(vehicles, tests)

	if len(rows) != 2 {
		t.Fatalf("expected 2 offices, got %d", len(rows))
	}

	cityHall := rows[0]
	if cityHall.OfficeName != "City Hall" {
		t.Fatalf("expected City Hall first, got %s", cityHall.OfficeName)
	}
	if cityHall.VehicleCount != 3 || cityHall.TestedCount != 2 || cityHall.PassedCount != 1 || cityHall.FailedCount != 1 {
		t.Errorf("unexpected City Hall counts: %+v", cityHall)
	}
	// The denominator is the full fleet, so the untested vehicle pulls the
	// rate down to round(1/3*100).
	if cityHall.ComplianceRate != 33 {
		t.Errorf("City Hall compliance rate = %d, expected 33", cityHall.ComplianceRate)
	}

	engineering := rows[1]
	if engineering.ComplianceRate != 100 {
		t.Errorf("Engineering compliance rate = %d, expected 100", engineering.ComplianceRate)
	}
}

func TestComputeOfficeComplianceUsesLatestTest(t *testing.T) {
	v1 := uuid.New()
	vehicles := []model.Vehicle{{ID: v1, OfficeName: "Motor Pool"}}
	tests := []model.EmissionTest{
		{VehicleID: v1, TestDate: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), Result: true},
		{VehicleID: v1, TestDate: time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC), Result: false},
	}

	rows := ComputeOfficeCompliance(vehicles, tests)

	if rows[0].PassedCount != 0 || rows[0].FailedCount != 1 {
		t.Errorf("expected the newer failing test to win, got %+v", rows[0])
	}
}

func TestBuildDashboardSummaryDenominators(t *testing.T) {
	v1 := uuid.New()
	v2 := uuid.New()
	v3 := uuid.New()
	v4 := uuid.New()

	vehicles := []model.Vehicle{
		{ID: v1, OfficeName: "City Hall", EngineType: model.EngineTypeGasoline, VehicleType: "Sedan", Wheels: 4},
		{ID: v2, OfficeName: "City Hall", EngineType: model.EngineTypeDiesel, VehicleType: "Truck", Wheels: 6},
		{ID: v3, OfficeName: "Engineering", EngineType: model.EngineTypeGasoline, VehicleType: "Sedan", Wheels: 4},
		{ID: v4, OfficeName: "Engineering", EngineType: model.EngineTypeGasoline, VehicleType: "Van", Wheels: 4},
	}
	day := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	tests := []model.EmissionTest{
		{VehicleID: v1, TestDate: day, Quarter: 1, Result: true},
		{VehicleID: v2, TestDate: day, Quarter: 1, Result: false},
	}

	summary := BuildDashboardSummary(vehicles, tests)

	if summary.TotalVehicles != 4 || summary.TestedVehicles != 2 || summary.PassedVehicles != 1 {
		t.Fatalf("unexpected totals: %+v", summary)
	}
	// Compliance divides by all vehicles, fail rate by tested vehicles only.
	if summary.ComplianceRate != 25 {
		t.Errorf("ComplianceRate = %d, expected 25", summary.ComplianceRate)
	}
	if summary.FailRate != 50 {
		t.Errorf("FailRate = %d, expected 50", summary.FailRate)
	}

	if len(summary.QuarterBreakdown) != 4 {
		t.Errorf("expected 4 quarter entries, got %d", len(summary.QuarterBreakdown))
	}
	if summary.ByVehicleType[0].ID != "Sedan" || summary.ByVehicleType[0].Value != 2 {
		t.Errorf("expected Sedan ranked first, got %+v", summary.ByVehicleType)
	}
}

func TestBuildDashboardSummaryEmpty(t *testing.T) {
	summary := BuildDashboardSummary(nil, nil)

	if summary.ComplianceRate != 0 || summary.FailRate != 0 {
		t.Errorf("expected zero rates for an empty fleet, got %+v", summary)
	}
	if len(summary.QuarterBreakdown) != 4 {
		t.Errorf("expected 4 zero-filled quarters, got %d", len(summary.QuarterBreakdown))
	}
}
