// services/scoring.go - submission recording and score aggregation
package services

import (
	"errors"
	"time"

	"dojoboard/models"
	"dojoboard/realtime"
	"dojoboard/validation"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Default point values per difficulty tier. The difficulty_points table is
// seeded from these; admins may override points on individual submissions.
var defaultPoints = map[string]int{
	models.DifficultyEasy:   500,
	models.DifficultyMedium: 1000,
	models.DifficultyHard:   2000,
}

type ScoringService struct {
	db  *gorm.DB
	hub *realtime.Hub
}

func NewScoringService(db *gorm.DB, hub *realtime.Hub) *ScoringService {
	return &ScoringService{db: db, hub: hub}
}

// RecordExerciseInput is the payload for recording a completed exercise.
// PointsAwarded of zero means "use the default for the difficulty".
type RecordExerciseInput struct {
	ParticipantID string  `json:"participant_id" validate:"required,uuid"`
	ExerciseName  string  `json:"exercise_name" validate:"required,min=1,max=200"`
	Difficulty    string  `json:"difficulty" validate:"required,difficulty"`
	PointsAwarded int     `json:"points_awarded" validate:"omitempty,gt=0"`
	Notes         *string `json:"notes"`
}

// DefaultPoints returns the default point value for a difficulty tier. It
// prefers the seeded difficulty_points row so operators can tune values, and
// falls back to the fixed mapping.
func (s *ScoringService) DefaultPoints(difficulty string) (int, error) {
	if _, ok := defaultPoints[difficulty]; !ok {
		return 0, &ValidationError{Messages: []string{"difficulty must be one of Easy, Medium or Hard"}}
	}

	var dp models.DifficultyPoints
	if err := s.db.Where("difficulty = ?", difficulty).First(&dp).Error; err == nil {
		return dp.BasePoints, nil
	}
	return defaultPoints[difficulty], nil
}

// RecordExercise appends a submission for the currently active season and
// updates the participant's SeasonScore in the same transaction. The score
// update is an atomic upsert increment, so concurrent submissions for the
// same participant and season cannot lose updates.
func (s *ScoringService) RecordExercise(in RecordExerciseInput) (*models.ExerciseSubmission, error) {
	if msgs := validation.Check(in); msgs != nil {
		return nil, &ValidationError{Messages: msgs}
	}

	points := in.PointsAwarded
	if points == 0 {
		var err error
		if points, err = s.DefaultPoints(in.Difficulty); err != nil {
			return nil, err
		}
	}

	var participant models.Participant
	if err := s.db.Where("id = ?", in.ParticipantID).First(&participant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, err
	}

	var season models.Season
	if err := s.db.Where("is_active = ?", true).First(&season).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoActiveSeason
		}
		return nil, err
	}

	now := time.Now().UTC()
	submission := models.ExerciseSubmission{
		ParticipantID: in.ParticipantID,
		SeasonID:      season.ID,
		ExerciseName:  in.ExerciseName,
		Difficulty:    in.Difficulty,
		PointsAwarded: points,
		Notes:         in.Notes,
		CompletedAt:   now,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&submission).Error; err != nil {
			return err
		}

		// Atomic increment: insert the first score row, or add to the
		// existing one in place. Unqualified columns in DO UPDATE refer to
		// the stored row.
		score := models.SeasonScore{
			ParticipantID:      in.ParticipantID,
			SeasonID:           season.ID,
			TotalPoints:        points,
			ExercisesCompleted: 1,
			UpdatedAt:          now,
		}
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "participant_id"}, {Name: "season_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"total_points":        gorm.Expr("total_points + ?", points),
				"exercises_completed": gorm.Expr("exercises_completed + 1"),
				"updated_at":          now,
			}),
		}).Create(&score).Error
	})
	if err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.Notify(models.SeasonScore{}.TableName())
	}
	return &submission, nil
}
