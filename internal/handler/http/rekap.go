package http

import (
	"log/slog"
	"net/http"

	"github.com/pemda-presensi/presensi-backend-go/internal/domain/rekap"
	"github.com/pemda-presensi/presensi-backend-go/internal/handler/http/response"
)

type RekapHandler interface {
	RekapPersentase(w http.ResponseWriter, r *http.Request)
	RekapTabel(w http.ResponseWriter, r *http.Request)
}

type RekapHandlerImpl struct {
	rekapService rekap.RekapService
}

func NewRekapHandler(rekapService rekap.RekapService) RekapHandler {
	return &RekapHandlerImpl{rekapService: rekapService}
}

// RekapPersentase implements RekapHandler.
func (h *RekapHandlerImpl) RekapPersentase(w http.ResponseWriter, r *http.Request) {
	req := rekap.RangeRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	rows, err := h.rekapService.RekapPersentase(r.Context(), req)
	if err != nil {
		slog.Error("RekapPersentase error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, rows)
}

// RekapTabel implements RekapHandler.
func (h *RekapHandlerImpl) RekapTabel(w http.ResponseWriter, r *http.Request) {
	req := rekap.TabelRequest{
		RangeRequest: rekap.RangeRequest{
			StartDate: r.URL.Query().Get("start_date"),
			EndDate:   r.URL.Query().Get("end_date"),
		},
		IDOpd:     queryInt64Ptr(r, "id_opd"),
		IDJabatan: queryInt64Ptr(r, "id_jabatan"),
		IDPangkat: queryInt64Ptr(r, "id_pangkat"),
	}

	result, err := h.rekapService.RekapTabel(r.Context(), req)
	if err != nil {
		slog.Error("RekapTabel error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
