package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pengajianku_backend/internals/constants"
	studentController "pengajianku_backend/internals/features/school/students/controller"
	authMiddleware "pengajianku_backend/internals/middlewares/auth"
)

func StudentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := studentController.NewStudentController(db)

	students := api.Group("/students")
	students.Get("/", ctrl.FindAll)
	students.Get("/:id", ctrl.FindOne)

	staff := students.Group("",
		authMiddleware.OnlyRoles(constants.RoleErrorStaff("data santri"), constants.AllRoles...))
	staff.Post("/", ctrl.Create)
	staff.Put("/:id", ctrl.Update)
	staff.Delete("/:id", ctrl.Remove)
}
