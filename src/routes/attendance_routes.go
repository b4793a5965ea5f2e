package routes

import (
	"Backend-CampusEvents/src/controllers"
	"Backend-CampusEvents/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// attendanceRoutes กำหนดเส้นทางสำหรับ Attendance API
func attendanceRoutes(app *fiber.App) {
	attendanceGroup := app.Group("/attendance")

	// เช็คชื่อจากฝั่ง client ไม่ต้อง login
	attendanceGroup.Post("/", controllers.CreateAttendanceLog)

	attendanceGroup.Delete("/:id", middleware.AuthJWT, controllers.DeleteAttendanceLog)
}
