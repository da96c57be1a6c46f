package flatfile

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/availability"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/employee"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/storage"
)

const (
	employeeDir = "employees"
	recordExt   = ".dat"
)

// Employee records are line-oriented text, one file per employee named
// "<FileKey>.dat":
//
//	position
//	phone
//	minHours
//	maxHours
//	lastSubmission
//	comment
//	48 lines of 7 digits (0|1|2), one per weekday, no separators
//
// The file key itself is only the file name; names are recovered by
// splitting it on "_".
type employeeRepositoryImpl struct {
	fs storage.FileStorage
}

func NewEmployeeRepository(fs storage.FileStorage) employee.Repository {
	return &employeeRepositoryImpl{fs: fs}
}

func (r *employeeRepositoryImpl) LoadAll(ctx context.Context) ([]employee.Employee, error) {
	names, err := r.fs.List(ctx, employeeDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee records: %w", err)
	}

	var emps []employee.Employee
	for _, name := range names {
		data, err := r.fs.Read(ctx, recordPath(strings.TrimSuffix(name, recordExt)))
		if err != nil {
			return nil, fmt.Errorf("failed to read employee record %s: %w", name, err)
		}

		emp, err := parseRecord(strings.TrimSuffix(name, recordExt), data)
		if err != nil {
			return nil, fmt.Errorf("record %s: %w", name, err)
		}
		emps = append(emps, emp)
	}

	return emps, nil
}

func (r *employeeRepositoryImpl) Save(ctx context.Context, e employee.Employee) error {
	if err := r.fs.Write(ctx, recordPath(e.FileKey), marshalRecord(e)); err != nil {
		return fmt.Errorf("failed to save employee %s: %w", e.FileKey, err)
	}
	return nil
}

func (r *employeeRepositoryImpl) Delete(ctx context.Context, fileKey string) error {
	if err := r.fs.Delete(ctx, recordPath(fileKey)); err != nil {
		return fmt.Errorf("failed to delete employee %s: %w", fileKey, err)
	}
	return nil
}

func (r *employeeRepositoryImpl) Exists(ctx context.Context, fileKey string) (bool, error) {
	return r.fs.Exists(ctx, recordPath(fileKey))
}

func recordPath(fileKey string) string {
	return employeeDir + "/" + fileKey + recordExt
}

func marshalRecord(e employee.Employee) []byte {
	var b strings.Builder
	b.WriteString(e.Position + "\n")
	b.WriteString(e.Phone + "\n")
	b.WriteString(strconv.Itoa(e.MinHours) + "\n")
	b.WriteString(strconv.Itoa(e.MaxHours) + "\n")
	b.WriteString(e.LastSubmission + "\n")
	b.WriteString(e.Comment + "\n")

	for row := 0; row < availability.NumRows; row++ {
		for day := 0; day < availability.NumDays; day++ {
			b.WriteByte('0' + byte(e.Avail.At(row, day)))
		}
		b.WriteByte('\n')
	}

	return []byte(b.String())
}

func parseRecord(fileKey string, data []byte) (employee.Employee, error) {
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	if len(lines) < 6+availability.NumRows {
		return employee.Employee{}, fmt.Errorf("%w: expected %d lines, got %d",
			employee.ErrCorruptRecord, 6+availability.NumRows, len(lines))
	}

	position := lines[0]
	phone := lines[1]
	minHours, err := strconv.Atoi(lines[2])
	if err != nil {
		return employee.Employee{}, fmt.Errorf("%w: bad min hours %q", employee.ErrCorruptRecord, lines[2])
	}
	maxHours, err := strconv.Atoi(lines[3])
	if err != nil {
		return employee.Employee{}, fmt.Errorf("%w: bad max hours %q", employee.ErrCorruptRecord, lines[3])
	}
	lastSubmission := lines[4]
	comment := lines[5]

	var grid availability.Grid
	for row := 0; row < availability.NumRows; row++ {
		line := lines[6+row]
		if len(line) < availability.NumDays {
			return employee.Employee{}, fmt.Errorf("%w: grid row %d too short", employee.ErrCorruptRecord, row)
		}
		for day := 0; day < availability.NumDays; day++ {
			code, err := availability.ParseCode(int(line[day] - '0'))
			if err != nil {
				return employee.Employee{}, fmt.Errorf("%w: grid row %d: %v", employee.ErrCorruptRecord, row, err)
			}
			grid[row][day] = code
		}
	}

	emp, err := employee.FromKey(fileKey, position, phone, minHours, maxHours, lastSubmission, comment, grid)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("%w: %v", employee.ErrCorruptRecord, err)
	}
	return emp, nil
}
