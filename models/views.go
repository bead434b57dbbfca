// models/views.go - read projections, not persisted
package models

import "time"

// LeaderboardEntry is one ranked row of a season's leaderboard. Position is
// the 1-based ordinal under the ordering total_points DESC, updated_at ASC,
// participant name ASC.
type LeaderboardEntry struct {
	Position           int       `json:"position"`
	ParticipantID      string    `json:"participant_id"`
	ParticipantName    string    `json:"participant_name"`
	AvatarURL          *string   `json:"avatar_url,omitempty"`
	TotalPoints        int       `json:"total_points"`
	ExercisesCompleted int       `json:"exercises_completed"`
	LastActivity       time.Time `json:"last_activity"`
	SeasonID           string    `json:"season_id"`
	SeasonName         string    `json:"season_name"`
}

// ExerciseHistory is a denormalized submission row for the admin history view
type ExerciseHistory struct {
	ID              string    `json:"id"`
	ParticipantName string    `json:"participant_name"`
	SeasonName      string    `json:"season_name"`
	ExerciseName    string    `json:"exercise_name"`
	Difficulty      string    `json:"difficulty"`
	PointsAwarded   int       `json:"points_awarded"`
	Notes           *string   `json:"notes,omitempty"`
	CompletedAt     time.Time `json:"completed_at"`
}

// AdminStats is the admin dashboard summary
type AdminStats struct {
	TotalParticipants     int64   `json:"total_participants"`
	TotalExercises        int64   `json:"total_exercises"`
	ActiveSeasonName      *string `json:"active_season_name"`
	TotalPointsThisSeason int     `json:"total_points_this_season"`
}
