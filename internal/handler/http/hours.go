package http

import (
	"encoding/json"
	"net/http"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/hours"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/handler/http/response"
)

type HoursHandler interface {
	GetBusinessHours(w http.ResponseWriter, r *http.Request)
	SaveBusinessHours(w http.ResponseWriter, r *http.Request)
	GetTimeRange(w http.ResponseWriter, r *http.Request)
}

type hoursHandlerImpl struct {
	hoursService hours.Service
}

func NewHoursHandler(hoursService hours.Service) HoursHandler {
	return &hoursHandlerImpl{hoursService: hoursService}
}

// GetBusinessHours implements HoursHandler. A 404 here means first run:
// hours have never been saved.
func (h *hoursHandlerImpl) GetBusinessHours(w http.ResponseWriter, r *http.Request) {
	result, err := h.hoursService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// SaveBusinessHours implements HoursHandler
func (h *hoursHandlerImpl) SaveBusinessHours(w http.ResponseWriter, r *http.Request) {
	var req hours.SaveBusinessHoursRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.hoursService.Save(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Business hours saved", result)
}

// GetTimeRange implements HoursHandler - selectable half-hour marks for the
// availability editor, wrapping past midnight when end precedes start.
func (h *hoursHandlerImpl) GetTimeRange(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	if start == "" || end == "" {
		response.BadRequest(w, "Query parameters start and end are required", nil)
		return
	}

	result, err := h.hoursService.TimeRange(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
