package controllers

import (
	"Backend-CampusEvents/src/services/events"
	"Backend-CampusEvents/src/utils"

	"github.com/gofiber/fiber/v2"
)

// ArchiveEvent godoc
// @Summary      Archive an event with all of its dependents
// @Description  Snapshots the event, its question set, all feedback and attendance logs into one archival bundle, then removes the originals. Runs in a single transaction - on failure nothing is changed and the request can be retried safely.
// @Tags         archive
// @Produce      json
// @Param        id path string true "Event ID"
// @Success      200
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /events/{id}/archive [post]
func ArchiveEvent(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := events.ArchiveEvent(id); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError,
			"Error archiving event - the archive was rolled back, please retry")
	}

	return c.JSON(fiber.Map{
		"message": "Event archived successfully",
	})
}

// GetArchivedEvents - ดึง bundle ทั้งหมด
func GetArchivedEvents(c *fiber.Ctx) error {
	archived, err := events.GetAllArchivedEvents()
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching archived events")
	}

	return c.JSON(archived)
}

// RestoreEvent - แตก bundle กลับ (event และ dependents ได้ ID ใหม่ทั้งชุด)
func RestoreEvent(c *fiber.Ctx) error {
	id := c.Params("id")

	newEventID, err := events.RestoreEvent(id)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError,
			"Error restoring event - the restore was rolled back, please retry")
	}

	return c.JSON(fiber.Map{
		"message": "Event restored successfully",
		"eventId": newEventID,
	})
}

// DeleteArchivedEvent - ลบ bundle ถาวร
func DeleteArchivedEvent(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := events.DeleteArchivedEvent(id); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error deleting archived event")
	}

	return c.JSON(fiber.Map{
		"message": "Archived event permanently deleted",
	})
}
