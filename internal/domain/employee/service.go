package employee

import "context"

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, fileKey string) (EmployeeResponse, error)
	// GetByName scans the roster for a full-name match. Full names are
	// assumed unique; Create rejects a colliding file key outright.
	GetByName(ctx context.Context, fullName string) (EmployeeResponse, error)
	List(ctx context.Context) (ListEmployeesResponse, error)
	UpdateIdentity(ctx context.Context, fileKey string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	SubmitAvailability(ctx context.Context, fileKey string, req SubmitAvailabilityRequest) (EmployeeResponse, error)
	GetAvailability(ctx context.Context, fileKey string) (AvailabilityResponse, error)
	// Remove deletes each named employee's record and drops positions no
	// remaining employee holds.
	Remove(ctx context.Context, req RemoveEmployeesRequest) error
	// Roster returns value copies of every employee in load order plus the
	// first-seen position list, for read-only consumers like the report.
	Roster(ctx context.Context) ([]Employee, []string, error)
}
