package controllers

import (
	"Backend-CampusEvents/src/models"
	"Backend-CampusEvents/src/services/enrichment"
	"Backend-CampusEvents/src/services/feedbacks"
	"Backend-CampusEvents/src/utils"

	"github.com/gofiber/fiber/v2"
)

// GetEventFeedbacks godoc
// @Summary      List enriched feedback for an event
// @Description  Returns enriched feedback with sentiment filter pills. Counts always cover the full set; the sentiment query param selects the visible subset and is safe to bookmark.
// @Tags         feedbacks
// @Produce      json
// @Param        id path string true "Event ID"
// @Param        sentiment query string false "all | positive | negative | spam"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /events/{id}/feedbacks [get]
func GetEventFeedbacks(c *fiber.Ctx) error {
	eventID := c.Params("id")
	active := c.Query("sentiment", enrichment.FilterAll)

	enriched, err := feedbacks.GetEnrichedByEvent(eventID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching feedbacks")
	}

	counts := enrichment.CountBySentiment(enriched)
	visible := enrichment.FilterBySentiment(enriched, active)

	return c.JSON(fiber.Map{
		"sentiment": active,
		"counts":    counts,
		"feedbacks": visible,
	})
}

// GetArchivedEventFeedbacks - ฝั่ง archive ใช้ sentiment ที่ cache มากับ record
func GetArchivedEventFeedbacks(c *fiber.Ctx) error {
	eventID := c.Params("id")
	active := c.Query("sentiment", enrichment.FilterAll)

	enriched, err := feedbacks.GetArchivedEnrichedByEvent(eventID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching archived feedbacks")
	}

	counts := enrichment.CountBySentiment(enriched)
	visible := enrichment.FilterBySentiment(enriched, active)

	return c.JSON(fiber.Map{
		"sentiment": active,
		"counts":    counts,
		"feedbacks": visible,
	})
}

// GetEventSentimentCounts - ยอดนับสำหรับ dashboard (ลอง cache ก่อน)
func GetEventSentimentCounts(c *fiber.Ctx) error {
	eventID := c.Params("id")

	if counts, ok := utils.GetCachedSentimentCounts(eventID); ok {
		return c.JSON(counts)
	}

	enriched, err := feedbacks.GetEnrichedByEvent(eventID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error computing sentiment counts")
	}

	counts := enrichment.CountBySentiment(enriched)
	utils.CacheSentimentCounts(eventID, counts)
	return c.JSON(counts)
}

// WatchEventFeedbacks เปิด live subscription ของ event แล้วคืน snapshot ล่าสุด
func WatchEventFeedbacks(c *fiber.Ctx) error {
	eventID := c.Params("id")

	w, err := feedbacks.EnsureWatcher(eventID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error starting feedback watcher")
	}

	return c.JSON(w.Snapshot())
}

// UnwatchEventFeedbacks ปิด live subscription - ไม่มี callback ยิงต่อ
func UnwatchEventFeedbacks(c *fiber.Ctx) error {
	feedbacks.StopWatcher(c.Params("id"))
	return c.JSON(fiber.Map{"message": "Feedback watcher stopped"})
}

func CreateFeedback(c *fiber.Ctx) error {
	var feedback models.Feedback
	if err := c.BodyParser(&feedback); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if feedback.EventID.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "eventId is required",
		})
	}

	err := feedbacks.CreateFeedback(&feedback)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error creating feedback",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Feedback created successfully",
		"feedback": feedback,
	})
}

func GetFeedbackByID(c *fiber.Ctx) error {
	id := c.Params("id")
	feedback, err := feedbacks.GetFeedbackByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Feedback not found",
		})
	}

	return c.JSON(feedback)
}

func DeleteFeedback(c *fiber.Ctx) error {
	id := c.Params("id")
	err := feedbacks.DeleteFeedback(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error deleting feedback",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Feedback deleted successfully",
	})
}

// ArchiveFeedback godoc
// @Summary      Move one feedback to the archive partition
// @Tags         feedbacks
// @Produce      json
// @Param        id path string true "Feedback ID"
// @Success      200
// @Failure      500  {object}  models.ErrorResponse
// @Router       /feedbacks/{id}/archive [post]
func ArchiveFeedback(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := feedbacks.ArchiveFeedback(id); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError,
			"Error archiving feedback - no changes were applied, please retry")
	}

	return c.JSON(fiber.Map{
		"message": "Feedback archived successfully",
	})
}

func RestoreFeedback(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := feedbacks.RestoreFeedback(id); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError,
			"Error restoring feedback - no changes were applied, please retry")
	}

	return c.JSON(fiber.Map{
		"message": "Feedback restored successfully",
	})
}
