package api

import (
	"encoding/json"
	"net/http"

	"balneario/internal/auth"
	"balneario/internal/entities"
	"balneario/internal/service"
	"github.com/gorilla/mux"
)

type ReservationHandler struct {
	Service *service.ReservationService
}

func NewReservationHandler(svc *service.ReservationService) *ReservationHandler {
	return &ReservationHandler{Service: svc}
}

func (h *ReservationHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	var req entities.AvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	resp, err := h.Service.CheckAvailability(auth.EstablishmentID(r), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ReservationHandler) CreateReservationGroup(w http.ResponseWriter, r *http.Request) {
	var req entities.ReservationGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	resp, err := h.Service.CreateReservationGroup(auth.EstablishmentID(r), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *ReservationHandler) GetReservationGroup(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	resp, err := h.Service.GetReservationGroup(auth.EstablishmentID(r), code)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ReservationHandler) ListReservationGroups(w http.ResponseWriter, r *http.Request) {
	serviceType := r.URL.Query().Get("service_type")
	status := r.URL.Query().Get("status")
	date := r.URL.Query().Get("date")
	resp, err := h.Service.ListReservationGroups(auth.EstablishmentID(r), serviceType, status, date)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ReservationHandler) UpdateReservationGroup(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	var req entities.ReservationGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	resp, err := h.Service.UpdateReservationGroup(auth.EstablishmentID(r), code, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ReservationHandler) CancelReservationGroup(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	if err := h.Service.CancelReservationGroup(auth.EstablishmentID(r), code); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Reservation group cancelled"})
}
