package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pemda-presensi/presensi-backend-go/internal/domain/kegiatan"
	"github.com/pemda-presensi/presensi-backend-go/internal/handler/http/response"
)

const maxKegiatanUploadSize = 10 << 20 // 10 MB

type KegiatanHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	ListOpd(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	Detail(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type KegiatanHandlerImpl struct {
	kegiatanService kegiatan.KegiatanService
}

func NewKegiatanHandler(kegiatanService kegiatan.KegiatanService) KegiatanHandler {
	return &KegiatanHandlerImpl{kegiatanService: kegiatanService}
}

func (h *KegiatanHandlerImpl) monthRequest(r *http.Request) kegiatan.MonthRequest {
	req := kegiatan.MonthRequest{
		Bulan:     queryInt(r, "bulan", 0),
		Tahun:     queryInt(r, "tahun", 0),
		IDPegawai: queryInt64Ptr(r, "id_pegawai"),
		IDOpd:     queryInt64Ptr(r, "id_opd"),
	}
	if v := r.URL.Query().Get("verifikasi"); v != "" {
		verified := v == "1" || v == "true"
		req.Verifikasi = &verified
	}
	return req
}

// List implements KegiatanHandler. One employee's month of activity reports.
func (h *KegiatanHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	req := h.monthRequest(r)
	req.IDOpd = nil

	rows, err := h.kegiatanService.ListMonth(r.Context(), req)
	if err != nil {
		slog.Error("Kegiatan list error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, rows)
}

// ListOpd implements KegiatanHandler. One OPD's month of activity reports.
func (h *KegiatanHandlerImpl) ListOpd(w http.ResponseWriter, r *http.Request) {
	rows, err := h.kegiatanService.ListMonth(r.Context(), h.monthRequest(r))
	if err != nil {
		slog.Error("Kegiatan OPD list error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, rows)
}

// Today implements KegiatanHandler.
func (h *KegiatanHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	idPegawai, err := strconv.ParseInt(chi.URLParam(r, "id_pegawai"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid pegawai id", nil)
		return
	}

	resp, err := h.kegiatanService.Today(r.Context(), idPegawai)
	if err != nil {
		slog.Error("Kegiatan today error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// Detail implements KegiatanHandler.
func (h *KegiatanHandlerImpl) Detail(w http.ResponseWriter, r *http.Request) {
	idKegiatan, err := strconv.ParseInt(chi.URLParam(r, "id_kegiatan"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid kegiatan id", nil)
		return
	}

	resp, err := h.kegiatanService.GetByID(r.Context(), idKegiatan)
	if err != nil {
		slog.Error("Kegiatan detail error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// Create implements KegiatanHandler. The request is multipart so a proof
// photo can ride along.
func (h *KegiatanHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxKegiatanUploadSize); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	idPegawai, _ := strconv.ParseInt(r.FormValue("id_pegawai"), 10, 64)
	req := kegiatan.CreateKegiatanRequest{
		IDPegawai:       idPegawai,
		Kegiatan:        r.FormValue("kegiatan"),
		TanggalKegiatan: r.FormValue("tanggal_kegiatan"),
	}
	if v := r.FormValue("id_presensi"); v != "" {
		if idPresensi, err := strconv.ParseInt(v, 10, 64); err == nil {
			req.IDPresensi = &idPresensi
		}
	}
	if catatan := r.FormValue("catatan"); catatan != "" {
		req.Catatan = &catatan
	}

	if file, header, err := r.FormFile("file"); err == nil {
		defer file.Close()
		req.File = file
		req.Filename = header.Filename
	}

	resp, err := h.kegiatanService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Kegiatan create error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Kegiatan created", resp)
}

// Update implements KegiatanHandler. Absent form fields keep their stored
// value.
func (h *KegiatanHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	idKegiatan, err := strconv.ParseInt(chi.URLParam(r, "id_kegiatan"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid kegiatan id", nil)
		return
	}
	if err := r.ParseMultipartForm(maxKegiatanUploadSize); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	var req kegiatan.UpdateKegiatanRequest
	if v := r.FormValue("id_presensi"); v != "" {
		if idPresensi, parseErr := strconv.ParseInt(v, 10, 64); parseErr == nil {
			req.IDPresensi = &idPresensi
		}
	}
	if v := r.FormValue("kegiatan"); v != "" {
		req.Kegiatan = &v
	}
	if v := r.FormValue("tanggal_kegiatan"); v != "" {
		req.TanggalKegiatan = &v
	}
	if v := r.FormValue("catatan"); v != "" {
		req.Catatan = &v
	}
	if v := r.FormValue("verifikasi"); v != "" {
		verified := v == "1" || v == "true"
		req.Verifikasi = &verified
	}
	if v := r.FormValue("edited_by"); v != "" {
		req.EditedBy = &v
	}

	if file, header, err := r.FormFile("file"); err == nil {
		defer file.Close()
		req.File = file
		req.Filename = header.Filename
	}

	resp, err := h.kegiatanService.Update(r.Context(), idKegiatan, req)
	if err != nil {
		slog.Error("Kegiatan update error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Kegiatan updated", resp)
}

// Delete implements KegiatanHandler.
func (h *KegiatanHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	idKegiatan, err := strconv.ParseInt(chi.URLParam(r, "id_kegiatan"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid kegiatan id", nil)
		return
	}

	if err := h.kegiatanService.Delete(r.Context(), idKegiatan); err != nil {
		slog.Error("Kegiatan delete error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Kegiatan deleted", nil)
}
