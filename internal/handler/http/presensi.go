package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/pemda-presensi/presensi-backend-go/internal/domain/presensi"
	"github.com/pemda-presensi/presensi-backend-go/internal/handler/http/response"
)

type PresensiHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	ListEselon(w http.ResponseWriter, r *http.Request)
	CheckIn(w http.ResponseWriter, r *http.Request)
}

type PresensiHandlerImpl struct {
	presensiService presensi.PresensiService
}

func NewPresensiHandler(presensiService presensi.PresensiService) PresensiHandler {
	return &PresensiHandlerImpl{presensiService: presensiService}
}

// List implements PresensiHandler.
func (h *PresensiHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	req := presensi.ListRequest{
		Date:      r.URL.Query().Get("date"),
		IDOpd:     queryInt64Ptr(r, "id_opd"),
		IDPegawai: queryInt64Ptr(r, "id_pegawai"),
		Page:      queryInt(r, "page", 1),
		Limit:     queryInt(r, "limit", 10),
		Search:    r.URL.Query().Get("search"),
	}

	result, err := h.presensiService.List(r.Context(), req)
	if err != nil {
		slog.Error("Presensi list error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ListEselon implements PresensiHandler.
func (h *PresensiHandlerImpl) ListEselon(w http.ResponseWriter, r *http.Request) {
	rows, err := h.presensiService.ListEselon(r.Context(), queryInt64Ptr(r, "id_opd"))
	if err != nil {
		slog.Error("Eselon list error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, rows)
}

// CheckIn implements PresensiHandler.
func (h *PresensiHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req presensi.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	row, err := h.presensiService.CheckIn(r.Context(), req)
	if err != nil {
		slog.Error("CheckIn error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Presensi recorded", row)
}
