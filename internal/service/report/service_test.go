package report

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/employee"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/storage"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/repository/flatfile"
	employeeService "github.com/shiftdesk/shiftdesk-backend-go/internal/service/employee"
	hoursService "github.com/shiftdesk/shiftdesk-backend-go/internal/service/hours"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEmployeeService(t *testing.T) employee.Service {
	t.Helper()
	ctx := context.Background()

	fs, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	hoursSvc, err := hoursService.NewHoursService(ctx, flatfile.NewHoursRepository(fs))
	require.NoError(t, err)

	svc, err := employeeService.NewEmployeeService(ctx, flatfile.NewEmployeeRepository(fs), hoursSvc)
	require.NoError(t, err)
	return svc
}

func createEmployee(t *testing.T, svc employee.Service, fullName, position, phone string) {
	t.Helper()
	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		FullName: fullName,
		Position: position,
		Phone:    phone,
	})
	require.NoError(t, err)
}

func TestReportService_Build(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	empSvc := newEmployeeService(t)
	createEmployee(t, empSvc, "John Smith", "Cashier", "555-111-1111")
	createEmployee(t, empSvc, "Bob Jones", "Cook", "555-222-2222")
	createEmployee(t, empSvc, "Jane Doe", "Cashier", "555-333-3333")

	svc := NewReportService(empSvc, t.TempDir())
	rep, err := svc.Build(ctx)
	require.NoError(t, err)

	assert.Equal(t, "Weekly Work Schedule", rep.Title)
	assert.Equal(t, "Phone #", rep.Columns[1])
	assert.Equal(t, "Sun", rep.Columns[8])

	// One section per position, in first-seen order.
	require.Len(t, rep.Sections, 2)
	assert.Equal(t, "Cashier", rep.Sections[0].Position)
	assert.Equal(t, "Cook", rep.Sections[1].Position)

	// Shared-position employees keep roster order.
	require.Len(t, rep.Sections[0].Rows, 2)
	assert.Equal(t, "J. Smith", rep.Sections[0].Rows[0].DisplayName)
	assert.Equal(t, "J. Doe", rep.Sections[0].Rows[1].DisplayName)

	// No assignment algorithm exists; every cell is the placeholder.
	for _, row := range rep.Sections[0].Rows {
		for _, cell := range row.Assigned {
			assert.Equal(t, "xx:xx-xx:xx", cell)
		}
	}
}

func TestReportService_Build_EmptyRoster(t *testing.T) {
	t.Parallel()

	svc := NewReportService(newEmployeeService(t), t.TempDir())
	rep, err := svc.Build(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rep.Sections)
}

func TestReportService_Export(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	empSvc := newEmployeeService(t)
	createEmployee(t, empSvc, "John Smith", "Cashier", "555-111-1111")

	exportDir := t.TempDir()
	svc := NewReportService(empSvc, exportDir)
	svc.(*ReportServiceImpl).now = func() time.Time {
		return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	}

	resp, err := svc.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, "schedule_08-31-26.xlsx", resp.FileName)

	path := filepath.Join(exportDir, resp.FileName)
	_, err = os.Stat(path)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("main", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Weekly Work Schedule", title)

	header, err := f.GetCellValue("main", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Phone #", header)

	// Row 3 is the merged position header, row 4 the employee.
	position, err := f.GetCellValue("main", "A3")
	require.NoError(t, err)
	assert.Equal(t, "Cashier", position)

	name, err := f.GetCellValue("main", "A4")
	require.NoError(t, err)
	assert.Equal(t, "J. Smith", name)

	monday, err := f.GetCellValue("main", "C4")
	require.NoError(t, err)
	assert.Equal(t, "xx:xx-xx:xx", monday)
}
