package routes

import (
	"Backend-CampusEvents/src/controllers"
	"Backend-CampusEvents/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// feedbackRoutes กำหนดเส้นทางสำหรับ Feedback API
func feedbackRoutes(app *fiber.App) {
	feedbackGroup := app.Group("/feedbacks")

	// นักศึกษาส่ง feedback โดยไม่ต้อง login
	feedbackGroup.Post("/", controllers.CreateFeedback)

	feedbackGroup.Get("/:id", middleware.AuthJWT, controllers.GetFeedbackByID)
	feedbackGroup.Delete("/:id", middleware.AuthJWT, controllers.DeleteFeedback)
	feedbackGroup.Post("/:id/archive", middleware.AuthJWT, controllers.ArchiveFeedback)
	feedbackGroup.Post("/:id/restore", middleware.AuthJWT, controllers.RestoreFeedback)
}
