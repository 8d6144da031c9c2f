package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pemda-presensi/presensi-backend-go/internal/config"
	appHTTP "github.com/pemda-presensi/presensi-backend-go/internal/handler/http"
	"github.com/pemda-presensi/presensi-backend-go/internal/pkg/database"
	"github.com/pemda-presensi/presensi-backend-go/internal/pkg/jwt"
	"github.com/pemda-presensi/presensi-backend-go/internal/pkg/sse"
	"github.com/pemda-presensi/presensi-backend-go/internal/pkg/storage"
	"github.com/pemda-presensi/presensi-backend-go/internal/repository/postgresql"
	authService "github.com/pemda-presensi/presensi-backend-go/internal/service/auth"
	"github.com/pemda-presensi/presensi-backend-go/internal/service/file"
	izinService "github.com/pemda-presensi/presensi-backend-go/internal/service/izin"
	kegiatanService "github.com/pemda-presensi/presensi-backend-go/internal/service/kegiatan"
	"github.com/pemda-presensi/presensi-backend-go/internal/service/master"
	presensiService "github.com/pemda-presensi/presensi-backend-go/internal/service/presensi"
	rekapService "github.com/pemda-presensi/presensi-backend-go/internal/service/rekap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	pegawaiRepo := postgresql.NewPegawaiRepository(db)
	opdRepo := postgresql.NewOpdRepository(db)
	pangkatRepo := postgresql.NewPangkatRepository(db)
	jabatanRepo := postgresql.NewJabatanRepository(db)
	hariLiburRepo := postgresql.NewHariLiburRepository(db)
	presensiRepo := postgresql.NewPresensiRepository(db)
	izinRepo := postgresql.NewIzinRepository(db)
	kegiatanRepo := postgresql.NewKegiatanRepository(db)
	rekapRepo := postgresql.NewRekapRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	hub := sse.NewHub()

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileSvc := file.NewFileService(fileStorage)
	authSvc := authService.NewAuthService(pegawaiRepo, jwtSvc)
	rekapSvc := rekapService.NewRekapService(rekapRepo, cfg.Attendance)
	presensiSvc := presensiService.NewPresensiService(presensiRepo, hariLiburRepo, hub, cfg.Attendance)
	izinSvc := izinService.NewIzinService(izinRepo, fileSvc)
	kegiatanSvc := kegiatanService.NewKegiatanService(kegiatanRepo, fileSvc, cfg.Attendance)
	masterSvc := master.NewMasterService(opdRepo, pangkatRepo, pegawaiRepo, jabatanRepo, hariLiburRepo)

	authHandler := appHTTP.NewAuthHandler(jwtSvc, authSvc)
	rekapHandler := appHTTP.NewRekapHandler(rekapSvc)
	presensiHandler := appHTTP.NewPresensiHandler(presensiSvc)
	izinHandler := appHTTP.NewIzinHandler(izinSvc)
	kegiatanHandler := appHTTP.NewKegiatanHandler(kegiatanSvc)
	masterHandler := appHTTP.NewMasterHandler(masterSvc)
	streamHandler := appHTTP.NewStreamHandler(hub)

	router := appHTTP.NewRouter(
		cfg,
		jwtSvc,
		authHandler,
		rekapHandler,
		presensiHandler,
		izinHandler,
		kegiatanHandler,
		masterHandler,
		streamHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server running on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error:", err)
	}
}
