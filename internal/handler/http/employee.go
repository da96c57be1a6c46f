package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/employee"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	RemoveEmployees(w http.ResponseWriter, r *http.Request)
	GetAvailability(w http.ResponseWriter, r *http.Request)
	SubmitAvailability(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.Service
}

func NewEmployeeHandler(employeeService employee.Service) EmployeeHandler {
	return &employeeHandlerImpl{employeeService: employeeService}
}

// ListEmployees implements EmployeeHandler. With ?name= it looks up a single
// employee by full name instead.
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	if name := r.URL.Query().Get("name"); name != "" {
		result, err := h.employeeService.GetByName(r.Context(), name)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, result)
		return
	}

	result, err := h.employeeService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// GetEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	fileKey := chi.URLParam(r, "fileKey")
	if fileKey == "" {
		response.BadRequest(w, "Employee file key is required", nil)
		return
	}

	result, err := h.employeeService.Get(r.Context(), fileKey)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// CreateEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Employee created", result)
}

// UpdateEmployee implements EmployeeHandler. Empty fields mean "leave
// unchanged".
func (h *employeeHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	fileKey := chi.URLParam(r, "fileKey")
	if fileKey == "" {
		response.BadRequest(w, "Employee file key is required", nil)
		return
	}

	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.UpdateIdentity(r.Context(), fileKey, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee updated", result)
}

// RemoveEmployees implements EmployeeHandler - bulk removal by file key.
func (h *employeeHandlerImpl) RemoveEmployees(w http.ResponseWriter, r *http.Request) {
	var req employee.RemoveEmployeesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.employeeService.Remove(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employees removed", nil)
}

// GetAvailability implements EmployeeHandler
func (h *employeeHandlerImpl) GetAvailability(w http.ResponseWriter, r *http.Request) {
	fileKey := chi.URLParam(r, "fileKey")
	if fileKey == "" {
		response.BadRequest(w, "Employee file key is required", nil)
		return
	}

	result, err := h.employeeService.GetAvailability(r.Context(), fileKey)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// SubmitAvailability implements EmployeeHandler
func (h *employeeHandlerImpl) SubmitAvailability(w http.ResponseWriter, r *http.Request) {
	fileKey := chi.URLParam(r, "fileKey")
	if fileKey == "" {
		response.BadRequest(w, "Employee file key is required", nil)
		return
	}

	var req employee.SubmitAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.SubmitAvailability(r.Context(), fileKey, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Availability submitted", result)
}
