package report

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/report"
)

const sheetName = "main"

// writeWorkbook lays the report out as a workbook: merged title row, header
// row, then per position a merged position row followed by its employee
// rows. Only the row/column layout is load-bearing; the styling mirrors the
// tabular look the schedule has always had.
func writeWorkbook(rep report.Report, dir, fileName string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("%w: %v", report.ErrExportFailed, err)
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: "Arial", Size: 24, Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"1F3864"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("%w: %v", report.ErrExportFailed, err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: "Arial", Size: 12, Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("%w: %v", report.ErrExportFailed, err)
	}
	positionStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: "Arial", Size: 12, Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"2E75B6"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("%w: %v", report.ErrExportFailed, err)
	}
	cellStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: "Arial", Size: 12},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("%w: %v", report.ErrExportFailed, err)
	}

	// Row 1: merged title across all nine columns.
	if err := f.SetCellValue(sheetName, "A1", rep.Title); err != nil {
		return fmt.Errorf("%w: %v", report.ErrExportFailed, err)
	}
	if err := f.MergeCell(sheetName, "A1", "I1"); err != nil {
		return fmt.Errorf("%w: %v", report.ErrExportFailed, err)
	}
	if err := f.SetCellStyle(sheetName, "A1", "I1", titleStyle); err != nil {
		return fmt.Errorf("%w: %v", report.ErrExportFailed, err)
	}
	if err := f.SetRowHeight(sheetName, 1, 32); err != nil {
		return fmt.Errorf("%w: %v", report.ErrExportFailed, err)
	}

	// Row 2: column headers.
	for col, name := range rep.Columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 2)
		if err != nil {
			return fmt.Errorf("%w: %v", report.ErrExportFailed, err)
		}
		if err := f.SetCellValue(sheetName, cell, name); err != nil {
			return fmt.Errorf("%w: %v", report.ErrExportFailed, err)
		}
	}
	if err := f.SetCellStyle(sheetName, "A2", "I2", headerStyle); err != nil {
		return fmt.Errorf("%w: %v", report.ErrExportFailed, err)
	}

	rowNum := 3
	for _, section := range rep.Sections {
		posCell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return fmt.Errorf("%w: %v", report.ErrExportFailed, err)
		}
		lastCell, err := excelize.CoordinatesToCellName(len(rep.Columns), rowNum)
		if err != nil {
			return fmt.Errorf("%w: %v", report.ErrExportFailed, err)
		}
		if err := f.SetCellValue(sheetName, posCell, section.Position); err != nil {
			return fmt.Errorf("%w: %v", report.ErrExportFailed, err)
		}
		if err := f.MergeCell(sheetName, posCell, lastCell); err != nil {
			return fmt.Errorf("%w: %v", report.ErrExportFailed, err)
		}
		if err := f.SetCellStyle(sheetName, posCell, lastCell, positionStyle); err != nil {
			return fmt.Errorf("%w: %v", report.ErrExportFailed, err)
		}
		rowNum++

		for _, empRow := range section.Rows {
			values := make([]interface{}, 0, len(rep.Columns))
			values = append(values, empRow.DisplayName, empRow.Phone)
			for _, assigned := range empRow.Assigned {
				values = append(values, assigned)
			}
			for col, v := range values {
				cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
				if err != nil {
					return fmt.Errorf("%w: %v", report.ErrExportFailed, err)
				}
				if err := f.SetCellValue(sheetName, cell, v); err != nil {
					return fmt.Errorf("%w: %v", report.ErrExportFailed, err)
				}
			}
			first, _ := excelize.CoordinatesToCellName(1, rowNum)
			last, _ := excelize.CoordinatesToCellName(len(rep.Columns), rowNum)
			if err := f.SetCellStyle(sheetName, first, last, cellStyle); err != nil {
				return fmt.Errorf("%w: %v", report.ErrExportFailed, err)
			}
			rowNum++
		}
	}

	if err := f.SetColWidth(sheetName, "A", "A", 17); err != nil {
		return fmt.Errorf("%w: %v", report.ErrExportFailed, err)
	}
	if err := f.SetColWidth(sheetName, "B", "B", 18); err != nil {
		return fmt.Errorf("%w: %v", report.ErrExportFailed, err)
	}
	if err := f.SetColWidth(sheetName, "C", "I", 16); err != nil {
		return fmt.Errorf("%w: %v", report.ErrExportFailed, err)
	}

	if err := f.SaveAs(filepath.Join(dir, fileName)); err != nil {
		return fmt.Errorf("%w: %v", report.ErrExportFailed, err)
	}
	return nil
}
