// handlers/leaderboard.go
package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// GetLeaderboard returns the ranked leaderboard for a season
// GET /api/leaderboard?season_id=<uuid>
// Without season_id the currently active season is used.
func GetLeaderboard(c *fiber.Ctx) error {
	seasonID := c.Query("season_id")

	entries, err := leaderboardService.Leaderboard(seasonID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"entries": entries,
		"total":   len(entries),
	})
}
