package controllers

import (
	"Backend-CampusEvents/src/models"
	"Backend-CampusEvents/src/services"

	"github.com/gofiber/fiber/v2"
)

// CreateNotification - สร้างประกาศใหม่ (broadcast ทำงานผ่าน task queue)
func CreateNotification(c *fiber.Ctx) error {
	var notification models.Notification
	if err := c.BodyParser(&notification); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if err := services.CreateNotification(&notification); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":      "Notification created successfully",
		"notification": notification,
	})
}

func GetNotifications(c *fiber.Ctx) error {
	notifications, err := services.GetAllNotifications()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error fetching notifications",
		})
	}

	return c.JSON(notifications)
}

func DeleteNotification(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := services.DeleteNotification(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error deleting notification",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Notification deleted successfully",
	})
}
