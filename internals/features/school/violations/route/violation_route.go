package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pengajianku_backend/internals/constants"
	violationController "pengajianku_backend/internals/features/school/violations/controller"
	authMiddleware "pengajianku_backend/internals/middlewares/auth"
)

func ViolationRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := violationController.NewViolationController(db)

	violations := api.Group("/violations")
	violations.Get("/", ctrl.FindAll)
	violations.Get("/:id", ctrl.FindOne)

	staff := violations.Group("",
		authMiddleware.OnlyRoles(constants.RoleErrorStaff("data pelanggaran"), constants.AllRoles...))
	staff.Post("/", ctrl.Create)
	staff.Put("/:id", ctrl.Update)
	staff.Delete("/:id", ctrl.Remove)
}
