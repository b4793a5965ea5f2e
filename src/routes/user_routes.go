package routes

import (
	"Backend-CampusEvents/src/controllers"
	"Backend-CampusEvents/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// userRoutes กำหนดเส้นทางสำหรับ User API
func userRoutes(app *fiber.App) {
	userGroup := app.Group("/users")
	userGroup.Use(middleware.AuthJWT)

	userGroup.Get("/", controllers.GetUsers)       // ดึงผู้ใช้ทั้งหมด
	userGroup.Get("/:id", controllers.GetUserByID) // ดึงข้อมูลผู้ใช้ตาม ID
}
