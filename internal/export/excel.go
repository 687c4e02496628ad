package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/kentgarcia/EnviroTrace-sub011/internal/service"
)

// ComplianceWorkbook renders the office compliance rows into a styled Excel
// sheet and returns the file bytes ready for download.
func ComplianceWorkbook(rows []service.OfficeComplianceRow, year int) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	sheetName := "Office Compliance"

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
		Alignment: &excelize.Alignment{
			Horizontal: "left",
			Vertical:   "center",
		},
	})
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("Office Emission Compliance — %d", year))
	f.SetCellStyle(sheetName, "A1", "A1", titleStyle)
	f.SetRowHeight(sheetName, 1, 30)
	f.SetCellValue(sheetName, "A2", fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02 15:04:05")))

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#1F4E79"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})

	headers := []string{"Office", "Vehicles", "Tested", "Passed", "Failed", "Compliance Rate (%)"}
	for colIdx, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 4)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}
	f.SetColWidth(sheetName, "A", "A", 32)
	f.SetColWidth(sheetName, "B", "F", 18)

	for rowIdx, row := range rows {
		values := []interface{}{
			row.OfficeName,
			row.VehicleCount,
			row.TestedCount,
			row.PassedCount,
			row.FailedCount,
			row.ComplianceRate,
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+5)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	return f.WriteToBuffer()
}
