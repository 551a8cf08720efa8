package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "pengajianku_backend/internals/features/users/auth/controller"
	"pengajianku_backend/internals/middlewares"
	authMiddleware "pengajianku_backend/internals/middlewares/auth"
)

// AuthRoutes: register/login/activation publik (dengan limiter), me butuh token.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/activation", ctrl.Activation)
	auth.Get("/me", authMiddleware.AuthMiddleware(), ctrl.Me)
}
