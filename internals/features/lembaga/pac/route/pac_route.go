package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pengajianku_backend/internals/constants"
	pacController "pengajianku_backend/internals/features/lembaga/pac/controller"
	authMiddleware "pengajianku_backend/internals/middlewares/auth"
)

func PacRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := pacController.NewPacController(db)

	pac := api.Group("/pac")
	pac.Get("/", ctrl.FindAll)
	pac.Get("/slug/:slug", ctrl.FindOneBySlug)
	pac.Get("/:id", ctrl.FindOne)

	admin := pac.Group("",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("data PAC"), constants.AdminOnly...))
	admin.Post("/", ctrl.Create)
	admin.Put("/:id", ctrl.Update)
	admin.Delete("/:id", ctrl.Remove)
}
