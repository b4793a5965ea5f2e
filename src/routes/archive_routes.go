package routes

import (
	"Backend-CampusEvents/src/controllers"
	"Backend-CampusEvents/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// archiveRoutes กำหนดเส้นทางสำหรับ archived event bundles
func archiveRoutes(app *fiber.App) {
	archiveGroup := app.Group("/archived-events")
	archiveGroup.Use(middleware.AuthJWT)

	archiveGroup.Get("/", controllers.GetArchivedEvents)
	archiveGroup.Get("/:id/feedbacks", controllers.GetArchivedEventFeedbacks)
	archiveGroup.Post("/:id/restore", controllers.RestoreEvent)
	archiveGroup.Delete("/:id", controllers.DeleteArchivedEvent) // ลบถาวร
}
