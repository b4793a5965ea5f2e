package controllers

import (
	"Backend-CampusEvents/src/services/users"

	"github.com/gofiber/fiber/v2"
)

// GetUsers - ดึงข้อมูลผู้ใช้ทั้งหมด
func GetUsers(c *fiber.Ctx) error {
	result, err := users.GetAllUsers()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error fetching users",
		})
	}

	return c.JSON(result)
}

// GetUserByID - ดึงข้อมูลผู้ใช้ตาม ID
func GetUserByID(c *fiber.Ctx) error {
	id := c.Params("id")

	user, err := users.GetUserByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	return c.JSON(user)
}
