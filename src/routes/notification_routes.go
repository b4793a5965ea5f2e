package routes

import (
	"Backend-CampusEvents/src/controllers"
	"Backend-CampusEvents/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// notificationRoutes กำหนดเส้นทางสำหรับ Notification API
func notificationRoutes(app *fiber.App) {
	notificationGroup := app.Group("/notifications")
	notificationGroup.Use(middleware.AuthJWT)

	notificationGroup.Get("/", controllers.GetNotifications)
	notificationGroup.Post("/", controllers.CreateNotification)
	notificationGroup.Delete("/:id", controllers.DeleteNotification)
}
