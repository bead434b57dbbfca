// handlers/seasons.go
package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// GetSeasons returns all seasons, newest first
// GET /api/seasons
func GetSeasons(c *fiber.Ctx) error {
	seasons, err := seasonService.ListSeasons()
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"seasons": seasons,
	})
}

// GetActiveSeason returns the season currently open for submissions
// GET /api/seasons/active
func GetActiveSeason(c *fiber.Ctx) error {
	season, err := seasonService.ActiveSeason()
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"season":  season,
	})
}

// CreateSeason rolls the dojo over to a new season
// POST /api/admin/seasons {"name": "..."}
func CreateSeason(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	season, err := seasonService.StartSeason(req.Name)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"season":  season,
	})
}
