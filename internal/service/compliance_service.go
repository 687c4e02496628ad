package service

import (
	"context"
	"math"
	"sort"
	"strconv"

	"github.com/google/uuid"

	"github.com/kentgarcia/EnviroTrace-sub011/internal/model"
	"github.com/kentgarcia/EnviroTrace-sub011/internal/repository"
)

// unknownLabel is substituted for missing or empty categorical values in
// every frequency count.
const unknownLabel = "Unknown"

type ComplianceService struct {
	vehicleRepo *repository.VehicleRepository
	testRepo    *repository.EmissionTestRepository
	officeRepo  *repository.OfficeRepository
}

func NewComplianceService(
	vehicleRepo *repository.VehicleRepository,
	testRepo *repository.EmissionTestRepository,
	officeRepo *repository.OfficeRepository,
) *ComplianceService {
	return &ComplianceService{
		vehicleRepo: vehicleRepo,
		testRepo:    testRepo,
		officeRepo:  officeRepo,
	}
}

type CategoryCount struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value int    `json:"value"`
}

type QuarterStat struct {
	Quarter int `json:"quarter"`
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
}

type OfficeComplianceRow struct {
	OfficeID       *uuid.UUID `json:"office_id,omitempty"`
	OfficeName     string     `json:"office_name"`
	VehicleCount   int        `json:"vehicle_count"`
	TestedCount    int        `json:"tested_count"`
	PassedCount    int        `json:"passed_count"`
	FailedCount    int        `json:"failed_count"`
	ComplianceRate int        `json:"compliance_rate"`
}

type DashboardSummary struct {
	TotalVehicles    int             `json:"total_vehicles"`
	TestedVehicles   int             `json:"tested_vehicles"`
	PassedVehicles   int             `json:"passed_vehicles"`
	ComplianceRate   int             `json:"compliance_rate"`
	FailRate         int             `json:"fail_rate"`
	ByEngineType     []CategoryCount `json:"by_engine_type"`
	ByWheels         []CategoryCount `json:"by_wheels"`
	ByVehicleType    []CategoryCount `json:"by_vehicle_type"`
	ByOffice         []CategoryCount `json:"by_office"`
	QuarterBreakdown []QuarterStat   `json:"quarter_breakdown"`
}

// RatePercent is round(passed/total*100), defined as 0 when total is 0 so a
// division by zero never propagates as NaN.
func RatePercent(passed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(passed) / float64(total) * 100))
}

// CountByLabel tallies a categorical field, substituting "Unknown" for empty
// values. Result order is first-seen order; callers that need a ranking sort
// afterwards.
func CountByLabel(labels []string) []CategoryCount {
	index := make(map[string]int)
	var counts []CategoryCount
	for _, label := range labels {
		if label == "" {
			label = unknownLabel
		}
		if i, ok := index[label]; ok {
			counts[i].Value++
			continue
		}
		index[label] = len(counts)
		counts = append(counts, CategoryCount{ID: label, Label: label, Value: 1})
	}
	return counts
}

// SortByValueDesc ranks counts by value, descending. Used for vehicle types
// only; engine type and wheel counts stay in first-seen order.
func SortByValueDesc(counts []CategoryCount) []CategoryCount {
	sorted := make([]CategoryCount, len(counts))
	copy(sorted, counts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value > sorted[j].Value
	})
	return sorted
}

// ComputeOfficeCompliance groups vehicles by office name and rates each
// office on its full fleet: the denominator is every vehicle, not just the
// tested ones, so untested vehicles suppress the rate.
func ComputeOfficeCompliance(vehicles []model.Vehicle, tests []model.EmissionTest) []OfficeComplianceRow {
	latest := latestTestPerVehicle(tests)

	index := make(map[string]int)
	var rows []OfficeComplianceRow
	for _, vehicle := range vehicles {
		name := vehicle.OfficeName
		if name == "" {
			name = unknownLabel
		}
		i, ok := index[name]
		if !ok {
			i = len(rows)
			index[name] = i
			rows = append(rows, OfficeComplianceRow{OfficeName: name})
		}

		rows[i].VehicleCount++
		if test, tested := latest[vehicle.ID]; tested {
			rows[i].TestedCount++
			if test.Result {
				rows[i].PassedCount++
			} else {
				rows[i].FailedCount++
			}
		}
	}

	for i := range rows {
		rows[i].ComplianceRate = RatePercent(rows[i].PassedCount, rows[i].VehicleCount)
	}
	return rows
}

func latestTestPerVehicle(tests []model.EmissionTest) map[uuid.UUID]model.EmissionTest {
	latest := make(map[uuid.UUID]model.EmissionTest)
	for _, test := range tests {
		current, ok := latest[test.VehicleID]
		if !ok || test.TestDate.After(current.TestDate) {
			latest[test.VehicleID] = test
		}
	}
	return latest
}

func (s *ComplianceService) OfficeCompliance(ctx context.Context, principal model.Principal, year int, quarter *int) ([]OfficeComplianceRow, error) {
	if !principal.HasCapability(model.CapEmissionRead) {
		return nil, ErrPermissionDenied
	}

	vehicles, err := s.vehicleRepo.List(ctx, repository.VehicleListFilter{})
	if err != nil {
		return nil, err
	}

	tests, err := s.testRepo.List(ctx, repository.EmissionTestListFilter{Year: &year, Quarter: quarter})
	if err != nil {
		return nil, err
	}

	rows := ComputeOfficeCompliance(vehicles, tests)

	offices, err := s.officeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]uuid.UUID, len(offices))
	for _, office := range offices {
		byName[office.Name] = office.ID
	}
	for i := range rows {
		if id, ok := byName[rows[i].OfficeName]; ok {
			officeID := id
			rows[i].OfficeID = &officeID
		}
	}

	return rows, nil
}

func (s *ComplianceService) Dashboard(ctx context.Context, principal model.Principal, year int) (*DashboardSummary, error) {
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

	return BuildDashboardSummary(vehicles, tests), nil
}

// BuildDashboardSummary assembles the chart-ready aggregates. The compliance
// rate divides passed vehicles by the whole fleet; the fail rate divides
// failed vehicles by tested vehicles only. The two denominators are not
// interchangeable.
func BuildDashboardSummary(vehicles []model.Vehicle, tests []model.EmissionTest) *DashboardSummary {
	latest := latestTestPerVehicle(tests)

	engineLabels := make([]string, 0, len(vehicles))
	wheelLabels := make([]string, 0, len(vehicles))
	typeLabels := make([]string, 0, len(vehicles))
	officeLabels := make([]string, 0, len(vehicles))

	tested := 0
	passed := 0
	failed := 0
	for _, vehicle := range vehicles {
		engineLabels = append(engineLabels, string(vehicle.EngineType))
		wheelLabels = append(wheelLabels, wheelLabel(vehicle.Wheels))
		typeLabels = append(typeLabels, vehicle.VehicleType)
		officeLabels = append(officeLabels, vehicle.OfficeName)

		if test, ok := latest[vehicle.ID]; ok {
			tested++
			if test.Result {
				passed++
			} else {
				failed++
			}
		}
	}

	summary := &DashboardSummary{
		TotalVehicles:    len(vehicles),
		TestedVehicles:   tested,
		PassedVehicles:   passed,
		ComplianceRate:   RatePercent(passed, len(vehicles)),
		FailRate:         RatePercent(failed, tested),
		ByEngineType:     CountByLabel(engineLabels),
		ByWheels:         CountByLabel(wheelLabels),
		ByVehicleType:    SortByValueDesc(CountByLabel(typeLabels)),
		ByOffice:         CountByLabel(officeLabels),
		QuarterBreakdown: BuildQuarterBreakdown(tests),
	}
	return summary
}

// BuildQuarterBreakdown always yields four entries, zero-filled for quarters
// without data.
func BuildQuarterBreakdown(tests []model.EmissionTest) []QuarterStat {
	breakdown := make([]QuarterStat, 4)
	for i := range breakdown {
		breakdown[i].Quarter = i + 1
	}
	for _, test := range tests {
		if test.Quarter < 1 || test.Quarter > 4 {
			continue
		}
		if test.Result {
			breakdown[test.Quarter-1].Passed++
		} else {
			breakdown[test.Quarter-1].Failed++
		}
	}
	return breakdown
}

func wheelLabel(wheels int) string {
	if wheels == 0 {
		return ""
	}
	return strconv.Itoa(wheels)
}
