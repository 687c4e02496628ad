// Package export turns aggregated report data into downloadable artifacts:
// CSV, Excel workbooks and Word documents. Exporters are pure transforms
// with no dependency on the HTTP or service layers.
package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kentgarcia/EnviroTrace-sub011/internal/model"
	"github.com/kentgarcia/EnviroTrace-sub011/internal/utils"
)

// VehicleCSVHeader is the fixed column order of the vehicle export.
var VehicleCSVHeader = []string{
	"Plate Number", "Office", "Driver", "Vehicle Type",
	"Engine Type", "Wheels", "Contact", "Latest Test", "Test Result",
}

// ConvertToCSV builds a CSV string where every field is quoted and embedded
// quotes are doubled. Numbers and booleans are stringified; anything else is
// JSON-encoded before quoting.
func ConvertToCSV(header []string, rows [][]interface{}) string {
	var b strings.Builder

	writeRow := func(fields []string) {
		for i, field := range fields {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(field, `"`, `""`))
			b.WriteByte('"')
		}
		b.WriteByte('\n')
	}

	writeRow(header)
	for _, row := range rows {
		fields := make([]string, len(row))
		for i, value := range row {
			fields[i] = stringifyField(value)
		}
		writeRow(fields)
	}

	return b.String()
}

func stringifyField(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return fmt.Sprintf("%t", v)
	case int, int32, int64, float32, float64:
		return fmt.Sprintf("%v", v)
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(encoded)
	}
}

// VehiclesCSV renders the vehicle roster with the contract header row, dates
// as yyyy-MM-dd and the tri-state result as Not Tested/Passed/Failed.
func VehiclesCSV(vehicles []model.Vehicle) string {
	rows := make([][]interface{}, 0, len(vehicles))
	for _, v := range vehicles {
		contact := ""
		if v.ContactNumber != nil {
			contact = *v.ContactNumber
		}
		latestTest := ""
		if v.LatestTestDate != nil {
			latestTest = utils.FormatDate(*v.LatestTestDate)
		}
		rows = append(rows, []interface{}{
			v.PlateNumber,
			v.OfficeName,
			v.DriverName,
			v.VehicleType,
			string(v.EngineType),
			v.Wheels,
			contact,
			latestTest,
			utils.FormatTestResult(v.LatestTestResult),
		})
	}
	return ConvertToCSV(VehicleCSVHeader, rows)
}
