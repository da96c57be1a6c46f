package http

import (
	"net/http"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/report"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	GetReport(w http.ResponseWriter, r *http.Request)
	ExportReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// GetReport implements ReportHandler
func (h *reportHandlerImpl) GetReport(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Build(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ExportReport implements ReportHandler - writes the schedule workbook and
// returns its file name.
func (h *reportHandlerImpl) ExportReport(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Export(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Schedule exported", result)
}
