package employee

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/availability"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/employee"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/hours"
)

// submissionDateFormat is the MM/dd/yy stamp written into LastSubmission.
const submissionDateFormat = "01/02/06"

type EmployeeServiceImpl struct {
	mu           sync.RWMutex
	repo         employee.Repository
	hoursService hours.Service

	// roster is the single in-memory collection, in load order. positions
	// holds the distinct position strings in first-seen order; an entry
	// stays only while at least one employee holds it.
	roster    []employee.Employee
	positions []string

	now func() time.Time
}

// NewEmployeeService loads every stored record up front. A single corrupt
// record fails construction outright; the roster is never half-loaded.
func NewEmployeeService(ctx context.Context, repo employee.Repository, hoursService hours.Service) (employee.Service, error) {
	emps, err := repo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load employee roster: %w", err)
	}

	s := &EmployeeServiceImpl{
		repo:         repo,
		hoursService: hoursService,
		roster:       emps,
		now:          time.Now,
	}
	for _, e := range emps {
		s.addPosition(e.Position)
	}

	return s, nil
}

// Create implements employee.Service. The record is written first and only
// then added to the roster, so a failed write leaves memory untouched.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := employee.New(req.FullName, req.Position, req.Phone)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Two distinct people can collide on First_Last; silently overwriting
	// the first one's file is worse than rejecting, so reject.
	exists, err := s.repo.Exists(ctx, emp.FileKey)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if exists || s.indexOf(emp.FileKey) >= 0 {
		return employee.EmployeeResponse{}, employee.ErrEmployeeExists
	}

	if err := s.repo.Save(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.roster = append(s.roster, emp)
	s.addPosition(emp.Position)

	return mapToResponse(emp), nil
}

// Get implements employee.Service.
func (s *EmployeeServiceImpl) Get(ctx context.Context, fileKey string) (employee.EmployeeResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(fileKey)
	if i < 0 {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}
	return mapToResponse(s.roster[i]), nil
}

// GetByName implements employee.Service.
func (s *EmployeeServiceImpl) GetByName(ctx context.Context, fullName string) (employee.EmployeeResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.roster {
		if e.FullName == fullName {
			return mapToResponse(e), nil
		}
	}
	return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
}

// List implements employee.Service.
func (s *EmployeeServiceImpl) List(ctx context.Context) (employee.ListEmployeesResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	resp := employee.ListEmployeesResponse{
		Employees: make([]employee.EmployeeResponse, 0, len(s.roster)),
		Positions: append([]string(nil), s.positions...),
	}
	for _, e := range s.roster {
		resp.Employees = append(resp.Employees, mapToResponse(e))
	}
	return resp, nil
}

// UpdateIdentity implements employee.Service. Empty fields in the request
// leave the corresponding field unchanged. The in-memory record is replaced
// only after the rewrite lands on disk.
func (s *EmployeeServiceImpl) UpdateIdentity(ctx context.Context, fileKey string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(fileKey)
	if i < 0 {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}

	updated := s.roster[i]
	previousPosition := updated.Position
	updated.EditIdentity(req.Position, req.Phone)

	if err := s.repo.Save(ctx, updated); err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.roster[i] = updated
	if updated.Position != previousPosition {
		s.addPosition(updated.Position)
		if !s.positionHeld(previousPosition) {
			s.dropPosition(previousPosition)
		}
	}

	return mapToResponse(updated), nil
}

// SubmitAvailability implements employee.Service. The hour bounds, comment,
// submission date, and the whole 336-cell grid are replaced together.
func (s *EmployeeServiceImpl) SubmitAvailability(ctx context.Context, fileKey string, req employee.SubmitAvailabilityRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	comment := req.Comment
	if comment == "" {
		comment = "None"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(fileKey)
	if i < 0 {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}

	updated := s.roster[i]
	updated.EditAvailability(req.MinHours, req.MaxHours, comment, s.now().Format(submissionDateFormat), req.ToGrid())

	if err := s.repo.Save(ctx, updated); err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.roster[i] = updated
	return mapToResponse(updated), nil
}

// GetAvailability implements employee.Service. Openness is derived from the
// business hours per cell; until hours are saved there is nothing to derive
// against and the first-run error propagates.
func (s *EmployeeServiceImpl) GetAvailability(ctx context.Context, fileKey string) (employee.AvailabilityResponse, error) {
	matrix, err := s.hoursService.Matrix(ctx)
	if err != nil {
		return employee.AvailabilityResponse{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(fileKey)
	if i < 0 {
		return employee.AvailabilityResponse{}, employee.ErrEmployeeNotFound
	}
	emp := s.roster[i]

	resp := employee.AvailabilityResponse{
		FileKey: emp.FileKey,
		Grid:    make([][]int, availability.NumRows),
		Open:    make([][]bool, availability.NumRows),
	}
	for row := 0; row < availability.NumRows; row++ {
		resp.Grid[row] = make([]int, availability.NumDays)
		resp.Open[row] = make([]bool, availability.NumDays)
		slot := availability.SlotTime(row)
		for day := 0; day < availability.NumDays; day++ {
			resp.Grid[row][day] = int(emp.Avail.At(row, day))
			resp.Open[row][day] = matrix.OpenAt(slot, day)
		}
	}

	return resp, nil
}

// Remove implements employee.Service.
func (s *EmployeeServiceImpl) Remove(ctx context.Context, req employee.RemoveEmployeesRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, fileKey := range req.FileKeys {
		i := s.indexOf(fileKey)
		if i < 0 {
			return employee.ErrEmployeeNotFound
		}

		if err := s.repo.Delete(ctx, fileKey); err != nil {
			return err
		}

		position := s.roster[i].Position
		s.roster = append(s.roster[:i], s.roster[i+1:]...)
		if !s.positionHeld(position) {
			s.dropPosition(position)
		}
	}

	return nil
}

// Roster implements employee.Service.
func (s *EmployeeServiceImpl) Roster(ctx context.Context) ([]employee.Employee, []string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]employee.Employee(nil), s.roster...),
		append([]string(nil), s.positions...),
		nil
}

func (s *EmployeeServiceImpl) indexOf(fileKey string) int {
	for i, e := range s.roster {
		if e.FileKey == fileKey {
			return i
		}
	}
	return -1
}

func (s *EmployeeServiceImpl) addPosition(position string) {
	for _, p := range s.positions {
		if p == position {
			return
		}
	}
	s.positions = append(s.positions, position)
}

func (s *EmployeeServiceImpl) positionHeld(position string) bool {
	for _, e := range s.roster {
		if e.Position == position {
			return true
		}
	}
	return false
}

func (s *EmployeeServiceImpl) dropPosition(position string) {
	for i, p := range s.positions {
		if p == position {
			s.positions = append(s.positions[:i], s.positions[i+1:]...)
			return
		}
	}
}

func mapToResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		FileKey:        e.FileKey,
		FullName:       e.FullName,
		DisplayName:    e.DisplayName,
		Position:       e.Position,
		Phone:          e.Phone,
		MinHours:       e.MinHours,
		MaxHours:       e.MaxHours,
		LastSubmission: e.LastSubmission,
		Comment:        e.Comment,
	}
}
