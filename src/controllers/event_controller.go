package controllers

import (
	"Backend-CampusEvents/src/models"
	"Backend-CampusEvents/src/services/events"
	"Backend-CampusEvents/src/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateEvent godoc
// @Summary      Create a new event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        body body models.Event true "Event"
// @Success      201  {object}  models.Event
// @Failure      400  {object}  models.ErrorResponse
// @Router       /events [post]
func CreateEvent(c *fiber.Ctx) error {
	var event models.Event
	if err := c.BodyParser(&event); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if err := events.CreateEvent(&event); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Event created successfully",
		"event":   event,
	})
}

// GetEvents - ดึง event ทั้งหมดแบบแบ่งหน้า
func GetEvents(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid query parameters",
		})
	}

	result, err := events.GetAllEvents(params)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching events")
	}

	return c.JSON(result)
}

// GetCurrentEvent - event ที่ถูกตั้งเป็น current อยู่ตอนนี้
func GetCurrentEvent(c *fiber.Ctx) error {
	event, err := events.GetCurrentEvent()
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No current event set",
		})
	}

	return c.JSON(event)
}

func GetEventByID(c *fiber.Ctx) error {
	id := c.Params("id")
	event, err := events.GetEventByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Event not found",
		})
	}

	return c.JSON(event)
}

func UpdateEvent(c *fiber.Ctx) error {
	id := c.Params("id")
	var event models.Event

	if err := c.BodyParser(&event); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if err := events.UpdateEvent(id, &event); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error updating event",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Event updated successfully",
	})
}

// SetCurrentEvent - จุดเขียนเดียวของ current-event selection
func SetCurrentEvent(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := events.SetCurrentEvent(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error updating current event",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Current event updated successfully",
	})
}

func DeleteEvent(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := events.DeleteEvent(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error deleting event",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Event deleted successfully",
	})
}
