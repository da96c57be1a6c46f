package report

import (
	"context"
	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/employee"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/report"
)

// unassignedHours is the placeholder for every per-day cell: no shift
// assignment algorithm exists yet, and none is guessed at here.
const unassignedHours = "xx:xx-xx:xx"

const exportDateFormat = "01-02-06"

type ReportServiceImpl struct {
	employeeService employee.Service
	exportDir       string
	now             func() time.Time
}

func NewReportService(employeeService employee.Service, exportDir string) report.Service {
	return &ReportServiceImpl{
		employeeService: employeeService,
		exportDir:       exportDir,
		now:             time.Now,
	}
}

// Build implements report.Service. Sections follow first-seen position
// order; employees within a section keep roster load order.
func (s *ReportServiceImpl) Build(ctx context.Context) (report.Report, error) {
	roster, positions, err := s.employeeService.Roster(ctx)
	if err != nil {
		return report.Report{}, err
	}

	rep := report.Report{
		Title:    "Weekly Work Schedule",
		Columns:  report.Columns,
		Sections: make([]report.Section, 0, len(positions)),
	}

	for _, position := range positions {
		section := report.Section{Position: position}
		for _, e := range roster {
			if e.Position != position {
				continue
			}
			row := report.Row{DisplayName: e.DisplayName, Phone: e.Phone}
			for day := range row.Assigned {
				row.Assigned[day] = unassignedHours
			}
			section.Rows = append(section.Rows, row)
		}
		rep.Sections = append(rep.Sections, section)
	}

	return rep, nil
}

// Export implements report.Service.
func (s *ReportServiceImpl) Export(ctx context.Context) (report.ExportResponse, error) {
	rep, err := s.Build(ctx)
	if err != nil {
		return report.ExportResponse{}, err
	}

	fileName := "schedule_" + s.now().Format(exportDateFormat) + ".xlsx"
	if err := writeWorkbook(rep, s.exportDir, fileName); err != nil {
		return report.ExportResponse{}, err
	}

	return report.ExportResponse{FileName: fileName}, nil
}
