package controllers

import (
	"Backend-CampusEvents/src/models"
	"Backend-CampusEvents/src/services/questions"

	"github.com/gofiber/fiber/v2"
)

// GetEventQuestions - ชุดคำถามของ event (ไม่เคยตั้ง = ชุดว่าง)
func GetEventQuestions(c *fiber.Ctx) error {
	eventID := c.Params("id")

	q, err := questions.GetByEventID(eventID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error fetching event questions",
		})
	}

	return c.JSON(q)
}

// UpsertEventQuestions godoc
// @Summary      Save the question set for an event
// @Description  Rated questions are capped at 10; requests over the cap are rejected before anything is written.
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        id path string true "Event ID"
// @Param        body body models.EventQuestions true "Question set"
// @Success      200
// @Failure      400  {object}  models.ErrorResponse
// @Router       /events/{id}/questions [put]
func UpsertEventQuestions(c *fiber.Ctx) error {
	eventID := c.Params("id")

	var q models.EventQuestions
	if err := c.BodyParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if err := questions.Upsert(eventID, &q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message":   "Questions saved successfully",
		"questions": q,
	})
}

func DeleteEventQuestions(c *fiber.Ctx) error {
	eventID := c.Params("id")

	if err := questions.DeleteByEventID(eventID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error deleting event questions",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Questions deleted successfully",
	})
}
