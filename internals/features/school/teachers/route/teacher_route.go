package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pengajianku_backend/internals/constants"
	teacherController "pengajianku_backend/internals/features/school/teachers/controller"
	authMiddleware "pengajianku_backend/internals/middlewares/auth"
)

func TeacherRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := teacherController.NewTeacherController(db)

	teachers := api.Group("/teachers")
	teachers.Get("/", ctrl.FindAll)
	teachers.Get("/slug/:slug", ctrl.FindOneBySlug)
	teachers.Get("/:id", ctrl.FindOne)

	admin := teachers.Group("",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("data guru"), constants.AdminOnly...))
	admin.Post("/", ctrl.Create)
	admin.Put("/:id", ctrl.Update)
	admin.Delete("/:id", ctrl.Remove)
}
