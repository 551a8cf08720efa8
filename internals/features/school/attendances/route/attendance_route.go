package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pengajianku_backend/internals/constants"
	attendanceController "pengajianku_backend/internals/features/school/attendances/controller"
	authMiddleware "pengajianku_backend/internals/middlewares/auth"
)

func AttendanceRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := attendanceController.NewAttendanceController(db)

	attendance := api.Group("/attendance")
	// rute statis didaftarkan sebelum /:id supaya tidak ketangkap param
	attendance.Get("/recap", ctrl.Recap)
	attendance.Get("/export", ctrl.Export)
	attendance.Get("/", ctrl.FindAll)
	attendance.Get("/:id", ctrl.FindOne)

	staff := attendance.Group("",
		authMiddleware.OnlyRoles(constants.RoleErrorStaff("data absensi"), constants.AllRoles...))
	staff.Post("/", ctrl.Create)
	staff.Put("/:id/entries", ctrl.UpsertEntry)
	staff.Delete("/:id/entries", ctrl.RemoveEntry)

	admin := attendance.Group("",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("data absensi"), constants.AdminOnly...))
	admin.Delete("/:id", ctrl.Remove)
}
