// handlers/participants.go
package handlers

import (
	"dojoboard/services"

	"github.com/gofiber/fiber/v2"
)

// GetParticipants returns all participants ordered by name
// GET /api/participants
func GetParticipants(c *fiber.Ctx) error {
	participants, err := participantService.ListParticipants()
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"participants": participants,
	})
}

// CreateParticipant registers a new dojo member
// POST /api/admin/participants {"name": "...", "avatar_url": "..."}
func CreateParticipant(c *fiber.Ctx) error {
	var in services.CreateParticipantInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	participant, err := participantService.CreateParticipant(in)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"success":     true,
		"participant": participant,
	})
}

// DeleteParticipant removes a participant and all their submissions and
// scores across every season
// DELETE /api/admin/participants/:id
func DeleteParticipant(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := participantService.DeleteParticipant(id); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Participant deleted successfully",
	})
}
