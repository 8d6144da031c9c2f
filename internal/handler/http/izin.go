package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pemda-presensi/presensi-backend-go/internal/domain/izin"
	"github.com/pemda-presensi/presensi-backend-go/internal/handler/http/response"
)

const maxIzinUploadSize = 10 << 20 // 10 MB

type IzinHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Verify(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type IzinHandlerImpl struct {
	izinService izin.IzinService
}

func NewIzinHandler(izinService izin.IzinService) IzinHandler {
	return &IzinHandlerImpl{izinService: izinService}
}

// List implements IzinHandler.
func (h *IzinHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	req := izin.ListRequest{
		IDOpd:     queryInt64Ptr(r, "id_opd"),
		IDPegawai: queryInt64Ptr(r, "id_pegawai"),
		Page:      queryInt(r, "page", 1),
		Limit:     queryInt(r, "limit", 10),
	}

	result, err := h.izinService.List(r.Context(), req)
	if err != nil {
		slog.Error("Izin list error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, result.Data, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// Create implements IzinHandler. The request is multipart so a proof photo
// can ride along.
func (h *IzinHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxIzinUploadSize); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	idPegawai, _ := strconv.ParseInt(r.FormValue("id_pegawai"), 10, 64)
	req := izin.CreateIzinRequest{
		IDPegawai:      idPegawai,
		JenisIzin:      r.FormValue("jenis_izin"),
		TanggalIzin:    r.FormValue("tanggal_izin"),
		TanggalSelesai: r.FormValue("tanggal_selesai"),
	}
	if ket := r.FormValue("keterangan"); ket != "" {
		req.Keterangan = &ket
	}

	if file, header, err := r.FormFile("bukti"); err == nil {
		defer file.Close()
		req.File = file
		req.Filename = header.Filename
	}

	resp, err := h.izinService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Izin create error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Izin created", resp)
}

// Verify implements IzinHandler.
func (h *IzinHandlerImpl) Verify(w http.ResponseWriter, r *http.Request) {
	idIzin, err := strconv.ParseInt(chi.URLParam(r, "id_izin"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid izin id", nil)
		return
	}

	resp, err := h.izinService.Verify(r.Context(), idIzin)
	if err != nil {
		slog.Error("Izin verify error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Izin verified", resp)
}

// Delete implements IzinHandler.
func (h *IzinHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	idIzin, err := strconv.ParseInt(chi.URLParam(r, "id_izin"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid izin id", nil)
		return
	}

	if err := h.izinService.Delete(r.Context(), idIzin); err != nil {
		slog.Error("Izin delete error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Izin deleted", nil)
}
