package router

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"Sistem-Absensi-Karyawan/config"
	"Sistem-Absensi-Karyawan/config/middleware"
	_ "Sistem-Absensi-Karyawan/docs"
	"Sistem-Absensi-Karyawan/handlers"
	"Sistem-Absensi-Karyawan/pkg/paseto"
	"Sistem-Absensi-Karyawan/repository"
)

func SetupRoutes(app *fiber.App, cfg *config.AppConfig, maker *paseto.Maker) {
	userRepo := repository.NewUserRepository()
	attendanceRepo := repository.NewAttendanceRepository()
	leaveRepo := repository.NewLeaveRequestRepository()
	overtimeRepo := repository.NewOvertimeRepository()

	authHandler := handlers.NewAuthHandler(userRepo, maker)
	userHandler := handlers.NewUserHandler(userRepo, attendanceRepo, leaveRepo, overtimeRepo)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceRepo, userRepo, cfg.WorkdayRule)
	leaveHandler := handlers.NewLeaveRequestHandler(leaveRepo, userRepo)
	overtimeHandler := handlers.NewOvertimeHandler(overtimeRepo, userRepo)

	// Health check & docs
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"msg":    "Sistem Absensi Karyawan API",
			"status": "running",
			"docs":   "/docs/index.html",
		})
	})
	app.Get("/docs/*", swagger.HandlerDefault)

	api := app.Group("/api/v1")

	auth := middleware.AuthMiddleware(maker)
	admin := middleware.AdminMiddleware()

	// Auth
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", auth, admin, authHandler.Register)
	authGroup.Post("/logout", auth, authHandler.Logout)

	// Users
	userGroup := api.Group("/users", auth)
	userGroup.Get("/me", authHandler.Me)
	userGroup.Post("/change-password", authHandler.ChangePassword)
	adminUserGroup := api.Group("/admin", auth, admin)
	adminUserGroup.Get("/users", userHandler.GetAllUsers)
	adminUserGroup.Get("/users/:id", userHandler.GetUserByUUID)
	adminUserGroup.Put("/users/:id", userHandler.UpdateUser)
	adminUserGroup.Delete("/users/:id", userHandler.DeleteUser)
	adminUserGroup.Get("/dashboard-stats", userHandler.GetDashboardStats)

	// Absensi
	attendanceGroup := api.Group("/attendance", auth)
	attendanceGroup.Post("/check", attendanceHandler.Check)
	attendanceGroup.Get("/my-history", attendanceHandler.GetMyAttendance)

	adminAttendanceGroup := attendanceGroup.Group("/", admin)
	adminAttendanceGroup.Get("/", attendanceHandler.GetAllAttendance)
	adminAttendanceGroup.Get("/absent-today", attendanceHandler.GetAbsentToday)
	adminAttendanceGroup.Get("/generate-qr", attendanceHandler.GenerateQRCode)
	adminAttendanceGroup.Get("/:id", attendanceHandler.GetAttendanceByUUID)
	adminAttendanceGroup.Put("/:id", attendanceHandler.UpdateAttendance)
	adminAttendanceGroup.Delete("/:id", attendanceHandler.DeleteAttendance)

	// Pengajuan cuti
	leaveGroup := api.Group("/leave-requests", auth)
	leaveGroup.Post("/", leaveHandler.CreateLeaveRequest)
	leaveGroup.Get("/my-pending", leaveHandler.GetMyPendingLeaveRequests)
	leaveGroup.Get("/my-history", leaveHandler.GetMyLeaveRequests)

	adminLeaveGroup := leaveGroup.Group("/", admin)
	adminLeaveGroup.Get("/", leaveHandler.GetAllLeaveRequests)
	adminLeaveGroup.Get("/:id", leaveHandler.GetLeaveRequestByUUID)
	adminLeaveGroup.Post("/:requestId/approve", leaveHandler.ApproveLeaveRequest)
	adminLeaveGroup.Post("/:requestId/reject", leaveHandler.RejectLeaveRequest)
	adminLeaveGroup.Put("/:id", leaveHandler.UpdateLeaveRequest)
	adminLeaveGroup.Delete("/:id", leaveHandler.DeleteLeaveRequest)

	// Lembur
	overtimeGroup := api.Group("/overtime", auth)
	overtimeGroup.Post("/", overtimeHandler.CreateOvertime)
	overtimeGroup.Get("/my-history", overtimeHandler.GetMyOvertime)

	adminOvertimeGroup := overtimeGroup.Group("/", admin)
	adminOvertimeGroup.Get("/", overtimeHandler.GetAllOvertime)
	adminOvertimeGroup.Get("/pending", overtimeHandler.GetPendingOvertime)
	adminOvertimeGroup.Get("/:id", overtimeHandler.GetOvertimeByUUID)
	adminOvertimeGroup.Post("/:id/approve", overtimeHandler.ApproveOvertime)
	adminOvertimeGroup.Post("/:id/reject", overtimeHandler.RejectOvertime)
	adminOvertimeGroup.Put("/:id", overtimeHandler.UpdateOvertime)
	adminOvertimeGroup.Delete("/:id", overtimeHandler.DeleteOvertime)

	log.Println("Semua rute aplikasi berhasil didaftarkan.")
}
