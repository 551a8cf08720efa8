package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pengajianku_backend/internals/constants"
	classController "pengajianku_backend/internals/features/school/classes/controller"
	authMiddleware "pengajianku_backend/internals/middlewares/auth"
)

func ClassRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := classController.NewClassController(db)

	classes := api.Group("/classes")
	classes.Get("/", ctrl.FindAll)
	classes.Get("/slug/:slug", ctrl.FindOneBySlug)
	classes.Get("/:id", ctrl.FindOne)

	admin := classes.Group("",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("data kelas"), constants.AdminOnly...))
	admin.Post("/", ctrl.Create)
	admin.Put("/:id", ctrl.Update)
	admin.Delete("/:id", ctrl.Remove)
}
