package api

import (
	"encoding/json"
	"net/http"

	"balneario/internal/auth"
	"balneario/internal/service"
	"github.com/gorilla/mux"
)

type ServiceConfigHandler struct {
	Service *service.ConfigService
}

func NewServiceConfigHandler(svc *service.ConfigService) *ServiceConfigHandler {
	return &ServiceConfigHandler{Service: svc}
}

func (h *ServiceConfigHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.Service.ListServices(auth.EstablishmentID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, services)
}

func (h *ServiceConfigHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	serviceType := mux.Vars(r)["service_type"]
	var req UpdateServiceConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := h.Service.UpdateService(auth.EstablishmentID(r), serviceType, req.Offered, req.Capacity); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Service configuration updated"})
}
