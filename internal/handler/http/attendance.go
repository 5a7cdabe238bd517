package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-admin-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/export"
)

type AttendanceHandler interface {
	Report(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
	UpdateRemarks(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Report implements AttendanceHandler.
func (h *attendanceHandlerImpl) Report(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, ok := parsePage(w, query.Get("page"))
	if !ok {
		return
	}

	filter := attendance.ReportFilter{
		Date:   query.Get("date"),
		Search: query.Get("search"),
		Page:   page,
	}

	result, err := h.attendanceService.Report(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if result.Message != "" {
		response.SuccessWithMessage(w, result.Message, result)
		return
	}
	response.Success(w, result)
}

// Export implements AttendanceHandler.
func (h *attendanceHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := attendance.ExportRequest{
		Date:   query.Get("date"),
		Search: query.Get("search"),
		Format: export.Format(query.Get("format")),
	}

	file, err := h.attendanceService.Export(r.Context(), req)
	if err != nil {
		slog.Error("Attendance export error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Attachment(w, file)
}

// UpdateRemarks implements AttendanceHandler.
func (h *attendanceHandlerImpl) UpdateRemarks(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpdateRemarksRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateRemarks decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.UpdateRemarks(r.Context(), req)
	if err != nil {
		slog.Error("UpdateRemarks service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Remarks updated successfully", result)
}

// Import implements AttendanceHandler.
func (h *attendanceHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	var req attendance.ImportRequest

	// Device exports can be large
	r.Body = http.MaxBytesReader(w, r.Body, 10<<20)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Import decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.Import(r.Context(), req)
	if err != nil {
		slog.Error("Import service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance records imported successfully", result)
}
