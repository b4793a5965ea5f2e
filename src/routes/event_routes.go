package routes

import (
	"Backend-CampusEvents/src/controllers"
	"Backend-CampusEvents/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// eventRoutes กำหนดเส้นทางสำหรับ Event API
func eventRoutes(app *fiber.App) {
	eventGroup := app.Group("/events")
	eventGroup.Use(middleware.AuthJWT)

	eventGroup.Get("/", controllers.GetEvents)              // ดึง event ทั้งหมด
	eventGroup.Post("/", controllers.CreateEvent)           // สร้าง event ใหม่
	eventGroup.Get("/current", controllers.GetCurrentEvent) // ต้องมาก่อน /:id
	eventGroup.Get("/:id", controllers.GetEventByID)
	eventGroup.Put("/:id", controllers.UpdateEvent)
	eventGroup.Delete("/:id", controllers.DeleteEvent)
	eventGroup.Put("/:id/current", controllers.SetCurrentEvent) // ตั้งเป็น current event
	eventGroup.Post("/:id/archive", controllers.ArchiveEvent)   // จัดเก็บเข้า archive

	// ชุดคำถามของ event
	eventGroup.Get("/:id/questions", controllers.GetEventQuestions)
	eventGroup.Put("/:id/questions", controllers.UpsertEventQuestions)
	eventGroup.Delete("/:id/questions", controllers.DeleteEventQuestions)

	// feedback ของ event (enriched + filter + live watcher)
	eventGroup.Get("/:id/feedbacks", controllers.GetEventFeedbacks)
	eventGroup.Get("/:id/feedbacks/counts", controllers.GetEventSentimentCounts)
	eventGroup.Post("/:id/feedbacks/watch", controllers.WatchEventFeedbacks)
	eventGroup.Delete("/:id/feedbacks/watch", controllers.UnwatchEventFeedbacks)

	// log การเช็คชื่อของ event
	eventGroup.Get("/:id/attendance", controllers.GetEventAttendanceLogs)
}
