package api

import (
	"net/http"

	"balneario/internal/auth"
	apperrors "balneario/internal/errors"
	"balneario/internal/service"
)

type ReportHandler struct {
	Service *service.ReportService
}

func NewReportHandler(svc *service.ReportService) *ReportHandler {
	return &ReportHandler{Service: svc}
}

func (h *ReportHandler) Occupancy(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	serviceType := r.URL.Query().Get("service_type")
	if from == "" || to == "" {
		writeError(w, apperrors.ErrInvalidDate)
		return
	}

	report, err := h.Service.ComputeOccupancy(r.Context(), auth.EstablishmentID(r), from, to, serviceType)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
