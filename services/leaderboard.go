// services/leaderboard.go - ranked views, history and dashboard stats
package services

import (
	"errors"

	"dojoboard/models"

	"gorm.io/gorm"
)

type LeaderboardService struct {
	db *gorm.DB
}

func NewLeaderboardService(db *gorm.DB) *LeaderboardService {
	return &LeaderboardService{db: db}
}

// HistoryFilters narrows the exercise history query. Zero values are ignored.
type HistoryFilters struct {
	ParticipantID string
	SeasonID      string
	Difficulty    string
	Search        string
}

// historyLimit caps the history view; older entries stay queryable by season.
const historyLimit = 100

// Leaderboard returns the ranked entries for a season. An empty seasonID
// means the currently active season; with no active season the board is
// empty. Ordering is total_points DESC, then updated_at ASC (whoever reached
// the score first ranks higher), then participant name ASC — a total order,
// so repeated queries return identical positions.
func (s *LeaderboardService) Leaderboard(seasonID string) ([]models.LeaderboardEntry, error) {
	if seasonID == "" {
		var season models.Season
		if err := s.db.Where("is_active = ?", true).First(&season).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return []models.LeaderboardEntry{}, nil
			}
			return nil, err
		}
		seasonID = season.ID
	} else {
		var count int64
		s.db.Model(&models.Season{}).Where("id = ?", seasonID).Count(&count)
		if count == 0 {
			return nil, ErrSeasonNotFound
		}
	}

	var entries []models.LeaderboardEntry
	err := s.db.Table("season_scores").
		Select(`season_scores.participant_id,
			participants.name AS participant_name,
			participants.avatar_url,
			season_scores.total_points,
			season_scores.exercises_completed,
			season_scores.updated_at AS last_activity,
			season_scores.season_id,
			seasons.name AS season_name`).
		Joins("JOIN participants ON participants.id = season_scores.participant_id").
		Joins("JOIN seasons ON seasons.id = season_scores.season_id").
		Where("season_scores.season_id = ?", seasonID).
		Order("season_scores.total_points DESC, season_scores.updated_at ASC, participants.name ASC").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}

	// Positions are plain 1-based ordinals; the tie-break above makes them
	// deterministic.
	for i := range entries {
		entries[i].Position = i + 1
	}
	if entries == nil {
		entries = []models.LeaderboardEntry{}
	}
	return entries, nil
}

// History returns submissions matching the filters, newest first.
func (s *LeaderboardService) History(filters HistoryFilters) ([]models.ExerciseHistory, error) {
	query := s.db.Table("exercise_submissions").
		Select(`exercise_submissions.id,
			participants.name AS participant_name,
			seasons.name AS season_name,
			exercise_submissions.exercise_name,
			exercise_submissions.difficulty,
			exercise_submissions.points_awarded,
			exercise_submissions.notes,
			exercise_submissions.completed_at`).
		Joins("JOIN participants ON participants.id = exercise_submissions.participant_id").
		Joins("JOIN seasons ON seasons.id = exercise_submissions.season_id")

	if filters.ParticipantID != "" {
		query = query.Where("exercise_submissions.participant_id = ?", filters.ParticipantID)
	}
	if filters.SeasonID != "" {
		query = query.Where("exercise_submissions.season_id = ?", filters.SeasonID)
	}
	if filters.Difficulty != "" {
		query = query.Where("exercise_submissions.difficulty = ?", filters.Difficulty)
	}
	if filters.Search != "" {
		query = query.Where("LOWER(exercise_submissions.exercise_name) LIKE LOWER(?)", "%"+filters.Search+"%")
	}

	var history []models.ExerciseHistory
	err := query.Order("exercise_submissions.completed_at DESC").
		Limit(historyLimit).
		Scan(&history).Error
	if err != nil {
		return nil, err
	}
	if history == nil {
		history = []models.ExerciseHistory{}
	}
	return history, nil
}

// Stats returns the admin dashboard summary. Total points are scoped to the
// active season.
func (s *LeaderboardService) Stats() (*models.AdminStats, error) {
	stats := &models.AdminStats{}

	if err := s.db.Model(&models.Participant{}).Count(&stats.TotalParticipants).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.ExerciseSubmission{}).Count(&stats.TotalExercises).Error; err != nil {
		return nil, err
	}

	var season models.Season
	err := s.db.Where("is_active = ?", true).First(&season).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return stats, nil
		}
		return nil, err
	}
	stats.ActiveSeasonName = &season.Name

	var total int64
	err = s.db.Model(&models.SeasonScore{}).
		Where("season_id = ?", season.ID).
		Select("COALESCE(SUM(total_points), 0)").
		Scan(&total).Error
	if err != nil {
		return nil, err
	}
	stats.TotalPointsThisSeason = int(total)

	return stats, nil
}
