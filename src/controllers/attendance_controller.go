package controllers

import (
	"Backend-CampusEvents/src/models"
	"Backend-CampusEvents/src/services/attendance"
	"Backend-CampusEvents/src/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateAttendanceLog(c *fiber.Ctx) error {
	var entry models.AttendanceLog
	if err := c.BodyParser(&entry); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if entry.EventID.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "eventId is required",
		})
	}

	if err := attendance.CreateAttendanceLog(&entry); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error creating attendance log",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Attendance log created successfully",
		"log":     entry,
	})
}

// GetEventAttendanceLogs - log การเช็คชื่อของ event ใหม่สุดก่อน
func GetEventAttendanceLogs(c *fiber.Ctx) error {
	eventID := c.Params("id")

	logs, err := attendance.GetByEventID(eventID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching attendance logs")
	}

	return c.JSON(logs)
}

func DeleteAttendanceLog(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := attendance.DeleteAttendanceLog(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error deleting attendance log",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Attendance log deleted successfully",
	})
}
