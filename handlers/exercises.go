// handlers/exercises.go
package handlers

import (
	"dojoboard/services"

	"github.com/gofiber/fiber/v2"
)

// RecordExercise records a completed exercise for a participant
// POST /api/admin/exercises
// Omitting points_awarded applies the default for the difficulty.
func RecordExercise(c *fiber.Ctx) error {
	var in services.RecordExerciseInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	submission, err := scoringService.RecordExercise(in)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"success":    true,
		"submission": submission,
	})
}

// GetHistory returns recent submissions, optionally filtered
// GET /api/history?participant_id=&season_id=&difficulty=&search=
func GetHistory(c *fiber.Ctx) error {
	filters := services.HistoryFilters{
		ParticipantID: c.Query("participant_id"),
		SeasonID:      c.Query("season_id"),
		Difficulty:    c.Query("difficulty"),
		Search:        c.Query("search"),
	}

	history, err := leaderboardService.History(filters)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"history": history,
		"total":   len(history),
	})
}
