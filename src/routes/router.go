package routes

import (
	"github.com/gofiber/fiber/v2"
)

func InitRoutes(app *fiber.App) {
	// รวม route จากแต่ละ module
	authRoutes(app)
	eventRoutes(app)
	feedbackRoutes(app)
	archiveRoutes(app)
	attendanceRoutes(app)
	notificationRoutes(app)
	userRoutes(app)

	// Route เช็คว่า API ทำงานอยู่
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
