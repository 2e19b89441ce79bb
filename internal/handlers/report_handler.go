package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"esrs-platform/internal/report"
	"esrs-platform/internal/service"
)

// ReportHandler handles report downloads
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Download renders and streams the sustainability report workbook
// @Summary Download report
// @Description Assemble the project's report workbook and return it as an attachment
// @Tags Reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string "Project not found"
// @Router /projects/{id}/report [get]
func (h *ReportHandler) Download(w http.ResponseWriter, r *http.Request) {
	projectID, ok := projectIDFromPath(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	data, err := h.reportService.BuildReport(r.Context(), projectID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Project not found")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to build report")
		return
	}

	workbook, err := report.Build(*data)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to render report")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Filename(data.GeneratedAt)))
	if err := workbook.Write(w); err != nil {
		slog.Error("Failed to stream report", "project_id", projectID, "error", err)
	}
}
