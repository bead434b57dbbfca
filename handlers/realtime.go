// handlers/realtime.go - websocket change-notification channel
package handlers

import (
	"time"

	"dojoboard/models"

	"github.com/gofiber/websocket/v2"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPingPeriod = 15 * time.Second
)

// changeEvent is the frame pushed to subscribers. It carries no data: the
// client is expected to refetch the leaderboard on receipt.
type changeEvent struct {
	Type  string `json:"type"`
	Table string `json:"table"`
}

// LeaderboardSocket streams change signals for the score aggregate table.
// GET /ws/leaderboard (websocket upgrade)
//
// The server never pushes leaderboard data over this channel; a frame only
// tells the client its cached ranking is stale. A refetch that races the
// write and still sees old data is fine: the next signal converges it.
func LeaderboardSocket(c *websocket.Conn) {
	ch, unsubscribe := hub.Subscribe(models.SeasonScore{}.TableName())
	defer unsubscribe()
	defer c.Close()

	// Read pump: we expect no client frames, but reading is the only way to
	// notice a closed connection.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(wsPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ch:
			_ = c.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := c.WriteJSON(changeEvent{
				Type:  "change",
				Table: models.SeasonScore{}.TableName(),
			}); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := c.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
