package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pengajianku_backend/internals/constants"
	pcController "pengajianku_backend/internals/features/lembaga/pc/controller"
	authMiddleware "pengajianku_backend/internals/middlewares/auth"
)

func PcRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := pcController.NewPcController(db)

	pc := api.Group("/pc")
	pc.Get("/", ctrl.FindAll)
	pc.Get("/slug/:slug", ctrl.FindOneBySlug)
	pc.Get("/:id", ctrl.FindOne)

	admin := pc.Group("",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("data PC"), constants.AdminOnly...))
	admin.Post("/", ctrl.Create)
	admin.Put("/:id", ctrl.Update)
	admin.Delete("/:id", ctrl.Remove)
	admin.Put("/:id/pac", ctrl.UpsertPacItem)
	admin.Delete("/:id/pac", ctrl.RemovePacItem)
}
