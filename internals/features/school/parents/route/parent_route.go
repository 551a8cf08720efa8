package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pengajianku_backend/internals/constants"
	parentController "pengajianku_backend/internals/features/school/parents/controller"
	authMiddleware "pengajianku_backend/internals/middlewares/auth"
)

func ParentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := parentController.NewParentController(db)

	parents := api.Group("/parents")
	parents.Get("/", ctrl.FindAll)
	parents.Get("/:id", ctrl.FindOne)

	staff := parents.Group("",
		authMiddleware.OnlyRoles(constants.RoleErrorStaff("data orang tua"), constants.AllRoles...))
	staff.Post("/", ctrl.Create)
	staff.Put("/:id", ctrl.Update)
	staff.Delete("/:id", ctrl.Remove)
}
