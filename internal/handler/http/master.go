package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pemda-presensi/presensi-backend-go/internal/domain/harilibur"
	"github.com/pemda-presensi/presensi-backend-go/internal/domain/master/jabatan"
	"github.com/pemda-presensi/presensi-backend-go/internal/domain/pegawai"
	"github.com/pemda-presensi/presensi-backend-go/internal/handler/http/response"
	"github.com/pemda-presensi/presensi-backend-go/internal/service/master"
)

type MasterHandler interface {
	ListOpd(w http.ResponseWriter, r *http.Request)
	ListPangkat(w http.ResponseWriter, r *http.Request)
	ListPegawai(w http.ResponseWriter, r *http.Request)

	ListJabatan(w http.ResponseWriter, r *http.Request)
	GetJabatan(w http.ResponseWriter, r *http.Request)
	CreateJabatan(w http.ResponseWriter, r *http.Request)
	UpdateJabatan(w http.ResponseWriter, r *http.Request)
	DeleteJabatan(w http.ResponseWriter, r *http.Request)

	ListHariLibur(w http.ResponseWriter, r *http.Request)
	CreateHariLibur(w http.ResponseWriter, r *http.Request)
	DeleteHariLibur(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &MasterHandlerImpl{masterService: masterService}
}

func (h *MasterHandlerImpl) ListOpd(w http.ResponseWriter, r *http.Request) {
	rows, err := h.masterService.ListOpd(r.Context())
	if err != nil {
		slog.Error("Opd list error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, rows)
}

func (h *MasterHandlerImpl) ListPangkat(w http.ResponseWriter, r *http.Request) {
	rows, err := h.masterService.ListPangkat(r.Context())
	if err != nil {
		slog.Error("Pangkat list error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, rows)
}

func (h *MasterHandlerImpl) ListPegawai(w http.ResponseWriter, r *http.Request) {
	filter := pegawai.Filter{
		IDOpd:     queryInt64Ptr(r, "id_opd"),
		IDJabatan: queryInt64Ptr(r, "id_jabatan"),
		IDPangkat: queryInt64Ptr(r, "id_pangkat"),
	}

	rows, err := h.masterService.ListPegawai(r.Context(), filter)
	if err != nil {
		slog.Error("Pegawai list error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, rows)
}

// ==================== JABATAN ====================

func (h *MasterHandlerImpl) ListJabatan(w http.ResponseWriter, r *http.Request) {
	filter := jabatan.ListFilter{
		IDOpd:      queryInt64Ptr(r, "id_opd"),
		EselonOnly: r.URL.Query().Get("eselon_only") == "true",
	}

	rows, err := h.masterService.ListJabatan(r.Context(), filter)
	if err != nil {
		slog.Error("Jabatan list error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, rows)
}

func (h *MasterHandlerImpl) GetJabatan(w http.ResponseWriter, r *http.Request) {
	idJabatan, err := strconv.ParseInt(chi.URLParam(r, "id_jabatan"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid jabatan id", nil)
		return
	}

	row, err := h.masterService.GetJabatan(r.Context(), idJabatan)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, row)
}

func (h *MasterHandlerImpl) CreateJabatan(w http.ResponseWriter, r *http.Request) {
	var req jabatan.CreateJabatanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	row, err := h.masterService.CreateJabatan(r.Context(), req)
	if err != nil {
		slog.Error("Jabatan create error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Jabatan created", row)
}

func (h *MasterHandlerImpl) UpdateJabatan(w http.ResponseWriter, r *http.Request) {
	idJabatan, err := strconv.ParseInt(chi.URLParam(r, "id_jabatan"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid jabatan id", nil)
		return
	}

	var req jabatan.UpdateJabatanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.IDJabatan = idJabatan

	if err := h.masterService.UpdateJabatan(r.Context(), req); err != nil {
		slog.Error("Jabatan update error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Jabatan updated", nil)
}

func (h *MasterHandlerImpl) DeleteJabatan(w http.ResponseWriter, r *http.Request) {
	idJabatan, err := strconv.ParseInt(chi.URLParam(r, "id_jabatan"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid jabatan id", nil)
		return
	}

	if err := h.masterService.DeleteJabatan(r.Context(), idJabatan); err != nil {
		slog.Error("Jabatan delete error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Jabatan deleted", nil)
}

// ==================== HARI LIBUR ====================

func (h *MasterHandlerImpl) ListHariLibur(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")
	if startDate == "" || endDate == "" {
		response.BadRequest(w, "start_date and end_date are required", nil)
		return
	}

	rows, err := h.masterService.ListHariLibur(r.Context(), startDate, endDate)
	if err != nil {
		slog.Error("Hari libur list error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, rows)
}

func (h *MasterHandlerImpl) CreateHariLibur(w http.ResponseWriter, r *http.Request) {
	var req harilibur.CreateHariLiburRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	row, err := h.masterService.CreateHariLibur(r.Context(), req)
	if err != nil {
		slog.Error("Hari libur create error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Hari libur created", row)
}

func (h *MasterHandlerImpl) DeleteHariLibur(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid hari libur id", nil)
		return
	}

	if err := h.masterService.DeleteHariLibur(r.Context(), id); err != nil {
		slog.Error("Hari libur delete error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Hari libur deleted", nil)
}
