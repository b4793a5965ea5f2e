package routes

import (
	"Backend-CampusEvents/src/controllers"
	"Backend-CampusEvents/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// authRoutes กำหนด route สำหรับ auth (login/refresh/logout)
func authRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	auth.Post("/login", controllers.Login)     // 🔐 login
	auth.Post("/refresh", controllers.Refresh) // ต่ออายุ access token
	auth.Post("/logout", middleware.AuthJWT, controllers.Logout)
}
