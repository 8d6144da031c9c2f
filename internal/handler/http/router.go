package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/pemda-presensi/presensi-backend-go/internal/config"
	"github.com/pemda-presensi/presensi-backend-go/internal/handler/http/middleware"
	"github.com/pemda-presensi/presensi-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	rekapHandler RekapHandler,
	presensiHandler PresensiHandler,
	izinHandler IzinHandler,
	kegiatanHandler KegiatanHandler,
	masterHandler MasterHandler,
	streamHandler StreamHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "presensi-pemda"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	// Uploaded proof photos
	fileServer := http.StripPrefix("/files/", http.FileServer(http.Dir(cfg.Storage.BasePath)))
	r.Get("/files/*", fileServer.ServeHTTP)

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// EventSource cannot send an Authorization header, so the live
		// feed stays outside the auth group.
		r.Get("/stream/presensi", streamHandler.PresensiStream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/token-validation", authHandler.TokenValidation)

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/rekap-persentase", rekapHandler.RekapPersentase)
				r.Get("/rekap", rekapHandler.RekapTabel)
				r.Get("/presensi", presensiHandler.List)
				r.Get("/opd-list", masterHandler.ListOpd)
				r.Get("/pegawai-list", masterHandler.ListPegawai)
				r.Get("/jabatan-list", masterHandler.ListJabatan)
				r.Get("/pangkat-list", masterHandler.ListPangkat)
				r.Get("/izin-list", izinHandler.List)
			})

			r.Get("/eselon", presensiHandler.ListEselon)

			r.Route("/presensi", func(r chi.Router) {
				r.Post("/", presensiHandler.CheckIn)
			})

			r.Route("/jabatan", func(r chi.Router) {
				r.Get("/", masterHandler.ListJabatan)
				r.Post("/", masterHandler.CreateJabatan)
				r.Get("/{id_jabatan}", masterHandler.GetJabatan)
				r.Put("/{id_jabatan}", masterHandler.UpdateJabatan)
				r.Delete("/{id_jabatan}", masterHandler.DeleteJabatan)
			})

			r.Route("/izin", func(r chi.Router) {
				r.Get("/", izinHandler.List)
				r.Post("/", izinHandler.Create)
				r.Put("/{id_izin}/verifikasi", izinHandler.Verify)
				r.Delete("/{id_izin}", izinHandler.Delete)
			})

			r.Route("/kegiatan", func(r chi.Router) {
				r.Get("/", kegiatanHandler.List)
				r.Get("/opd", kegiatanHandler.ListOpd)
				r.Get("/today/{id_pegawai}", kegiatanHandler.Today)
				r.Get("/{id_kegiatan}", kegiatanHandler.Detail)
				r.Post("/", kegiatanHandler.Create)
				r.Put("/{id_kegiatan}", kegiatanHandler.Update)
				r.Delete("/{id_kegiatan}", kegiatanHandler.Delete)
			})

			r.Route("/hari-libur", func(r chi.Router) {
				r.Get("/", masterHandler.ListHariLibur)
				r.Post("/", masterHandler.CreateHariLibur)
				r.Delete("/{id}", masterHandler.DeleteHariLibur)
			})
		})
	})
	return r
}
