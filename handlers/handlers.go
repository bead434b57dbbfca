// handlers/handlers.go - service wiring and shared helpers
package handlers

import (
	"errors"

	"dojoboard/realtime"
	"dojoboard/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var (
	scoringService     *services.ScoringService
	seasonService      *services.SeasonService
	leaderboardService *services.LeaderboardService
	participantService *services.ParticipantService
	hub                *realtime.Hub
)

// Init wires the handler package to its services. Must be called before any
// route is served.
func Init(db *gorm.DB, h *realtime.Hub) {
	hub = h
	scoringService = services.NewScoringService(db, h)
	seasonService = services.NewSeasonService(db, h)
	leaderboardService = services.NewLeaderboardService(db)
	participantService = services.NewParticipantService(db, h)
}

// serviceError translates service errors into JSON responses. Validation and
// precondition failures carry their human-readable reason; anything else is
// a store error surfaced as a 500.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case services.IsValidation(err):
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	case errors.Is(err, services.ErrNoActiveSeason):
		return c.Status(409).JSON(fiber.Map{
			"success": false,
			"error":   "No active season. Start a season before recording exercises.",
		})
	case errors.Is(err, services.ErrNameTaken):
		return c.Status(409).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	case errors.Is(err, services.ErrSeasonNotFound),
		errors.Is(err, services.ErrParticipantNotFound):
		return c.Status(404).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	default:
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}
}
