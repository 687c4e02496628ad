package export

import (
	"strings"
	"testing"
	"time"

	"github.com/kentgarcia/EnviroTrace-sub011/internal/model"
)

func TestConvertToCSVQuotesEveryField(t *testing.T) {
	out := ConvertToCSV([]string{"A", "B"}, [][]interface{}{
		{"plain", 42},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != `"A","B"` {
		t.Errorf("header = %s", lines[0])
	}
	if lines[1] != `"plain","42"` {
		t.Errorf("row = %s", lines[1])
	}
}

func TestConvertToCSVDoublesEmbeddedQuotes(t *testing.T) {
	out := ConvertToCSV([]string{"Remarks"}, [][]interface{}{
		{`said "urgent"`},
	})

	if !strings.Contains(out, `"said ""urgent"""`) {
		t.Errorf("embedded quotes not doubled: %s", out)
	}
}

func TestConvertToCSVFieldStringification(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		expected string
	}{
		{"nil becomes empty", nil, `""`},
		{"bool", true, `"true"`},
		{"int", 7, `"7"`},
		{"float", 2.5, `"2.5"`},
		{"string passthrough", "hello", `"hello"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ConvertToCSV([]string{"V"}, [][]interface{}{{tt.value}})
			lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
			if lines[1] != tt.expected {
				t.Errorf("field = %s, expected %s", lines[1], tt.expected)
			}
		})
	}
}

func TestVehiclesCSV(t *testing.T) {
	testDate := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	passed := true
	contact := "0917-555-0101"

	vehicles := []model.Vehicle{
		{
			PlateNumber:      "ABC123",
			OfficeName:       "City Hall",
			DriverName:       "Juan Dela Cruz",
			VehicleType:      "Sedan",
			EngineType:       model.EngineTypeGasoline,
			Wheels:           4,
			ContactNumber:    &contact,
			LatestTestDate:   &testDate,
			LatestTestResult: &passed,
		},
		{
			PlateNumber: "XYZ789",
			OfficeName:  "Engineering",
			DriverName:  "Maria Santos",
			VehicleType: "Truck",
			EngineType:  model.EngineTypeDiesel,
			Wheels:      6,
		},
	}

	out := VehiclesCSV(vehicles)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != `"Plate Number","Office","Driver","Vehicle Type","Engine Type","Wheels","Contact","Latest Test","Test Result"` {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if lines[1] != `"ABC123","City Hall","Juan Dela Cruz","Sedan","gasoline","4","0917-555-0101","2026-03-15","Passed"` {
		t.Errorf("unexpected tested row: %s", lines[1])
	}
	if lines[2] != `"XYZ789","Engineering","Maria Santos","Truck","diesel","6","","","Not Tested"` {
		t.Errorf("unexpected untested row: %s", lines[2])
	}
}
