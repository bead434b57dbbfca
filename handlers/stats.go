// handlers/stats.go
package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// GetStats returns the admin dashboard summary
// GET /api/stats
func GetStats(c *fiber.Ctx) error {
	stats, err := leaderboardService.Stats()
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"stats":   stats,
	})
}
