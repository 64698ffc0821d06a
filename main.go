package main

import (
	"flag"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"Sistem-Absensi-Karyawan/config"
	"Sistem-Absensi-Karyawan/pkg/paseto"
	"Sistem-Absensi-Karyawan/repository"
	"Sistem-Absensi-Karyawan/router"
	"Sistem-Absensi-Karyawan/seeder"
)

// @title Sistem Absensi Karyawan API
// @version 1.0
// @description Backend absensi karyawan: check-in/check-out, pengajuan cuti, dan klaim lembur dengan alur persetujuan.
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:3000
// @BasePath /api/v1
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Ketik "Bearer" diikuti spasi dan token PASETO.
//
// @tag.name Auth
// @tag.description Endpoint autentikasi
//
// @tag.name Attendance
// @tag.description Absensi check-in/check-out
//
// @tag.name Leave Request
// @tag.description Pengajuan cuti
//
// @tag.name Overtime
// @tag.description Klaim lembur
func main() {
	seed := flag.Bool("seed", false, "isi database dengan user admin dan contoh karyawan lalu keluar")
	flag.Parse()

	cfg := config.LoadConfig()

	maker, err := paseto.NewMaker(cfg.PasetoSecret)
	if err != nil {
		log.Fatalf("Gagal inisialisasi token maker: %v", err)
	}

	config.MongoConnect(cfg.MongoString)
	config.InitDatabase()
	defer config.DisconnectDB()

	if *seed {
		seeder.SeedUsers(repository.NewUserRepository())
		return
	}

	app := fiber.New()

	config.SetupCORS(app)
	app.Use(logger.New())

	router.SetupRoutes(app, cfg, maker)

	log.Printf("Server running on port %s", cfg.Port)
	log.Printf("API Documentation: http://localhost:%s/docs/index.html", cfg.Port)
	log.Printf("CORS enabled for origins: %v", config.GetAllowedOrigins())
	log.Fatal(app.Listen(":" + cfg.Port))
}
