package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pengajianku_backend/internals/constants"
	learningController "pengajianku_backend/internals/features/school/learnings/controller"
	authMiddleware "pengajianku_backend/internals/middlewares/auth"
)

func LearningRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := learningController.NewLearningController(db)

	learnings := api.Group("/learnings")
	learnings.Get("/", ctrl.FindAll)
	learnings.Get("/:id", ctrl.FindOne)

	admin := learnings.Group("",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("materi pembelajaran"), constants.AdminOnly...))
	admin.Post("/", ctrl.Create)
	admin.Put("/:id", ctrl.Update)
	admin.Delete("/:id", ctrl.Remove)
}
