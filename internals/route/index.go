package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	pacRoute "pengajianku_backend/internals/features/lembaga/pac/route"
	pcRoute "pengajianku_backend/internals/features/lembaga/pc/route"
	attendanceRoute "pengajianku_backend/internals/features/school/attendances/route"
	classRoute "pengajianku_backend/internals/features/school/classes/route"
	learningRoute "pengajianku_backend/internals/features/school/learnings/route"
	parentRoute "pengajianku_backend/internals/features/school/parents/route"
	studentRoute "pengajianku_backend/internals/features/school/students/route"
	teacherRoute "pengajianku_backend/internals/features/school/teachers/route"
	violationRoute "pengajianku_backend/internals/features/school/violations/route"
	authRoute "pengajianku_backend/internals/features/users/auth/route"
	authMiddleware "pengajianku_backend/internals/middlewares/auth"
)

// SetupRoutes merangkai semua rute. /api/auth punya limiter sendiri;
// sisanya di bawah /api dan wajib bertoken (pembatasan role diatur per
// fitur lewat OnlyRoles).
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	authRoute.AuthRoutes(app, db)

	api := app.Group("/api", authMiddleware.AuthMiddleware())

	teacherRoute.TeacherRoutes(api, db)
	learningRoute.LearningRoutes(api, db)
	classRoute.ClassRoutes(api, db)
	parentRoute.ParentRoutes(api, db)
	studentRoute.StudentRoutes(api, db)
	violationRoute.ViolationRoutes(api, db)
	attendanceRoute.AttendanceRoutes(api, db)

	pacRoute.PacRoutes(api, db)
	pcRoute.PcRoutes(api, db)
}
