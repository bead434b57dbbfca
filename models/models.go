// models/models.go - Core Models
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Difficulty tiers for exercises.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// Participant represents a dojo member shown on the leaderboard
type Participant struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null;size:100"`
	AvatarURL *string   `json:"avatar_url,omitempty" gorm:"size:500"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Submissions []ExerciseSubmission `json:"submissions,omitempty" gorm:"foreignKey:ParticipantID;constraint:OnDelete:CASCADE"`
	Scores      []SeasonScore        `json:"scores,omitempty" gorm:"foreignKey:ParticipantID;constraint:OnDelete:CASCADE"`
}

// Season represents a scoring period. Only one season is active at a time;
// closed seasons are immutable.
type Season struct {
	ID        string     `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string     `json:"name" gorm:"not null;size:100"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	IsActive  bool       `json:"is_active" gorm:"default:false;index"`
	CreatedAt time.Time  `json:"created_at"`
}

// ExerciseSubmission is the append-only record of a completed exercise.
// It is stamped with the season that was active when it was recorded and
// is never edited or deleted afterwards.
type ExerciseSubmission struct {
	ID            string    `json:"id" gorm:"type:uuid;primaryKey"`
	ParticipantID string    `json:"participant_id" gorm:"type:uuid;not null;index"`
	SeasonID      string    `json:"season_id" gorm:"type:uuid;not null;index"`
	ExerciseName  string    `json:"exercise_name" gorm:"not null;size:200"`
	Difficulty    string    `json:"difficulty" gorm:"not null;size:20;index"`
	PointsAwarded int       `json:"points_awarded" gorm:"not null"`
	Notes         *string   `json:"notes,omitempty" gorm:"type:text"`
	CompletedAt   time.Time `json:"completed_at" gorm:"index"`

	// Relationships
	Participant *Participant `json:"participant,omitempty" gorm:"foreignKey:ParticipantID"`
	Season      *Season      `json:"season,omitempty" gorm:"foreignKey:SeasonID"`
}

// SeasonScore is the materialized per-participant, per-season aggregate:
// total_points = sum of points_awarded and exercises_completed = count over
// the participant's submissions in that season. Updated in the same
// transaction as each submission insert, never written independently.
type SeasonScore struct {
	ID                 string    `json:"id" gorm:"type:uuid;primaryKey"`
	ParticipantID      string    `json:"participant_id" gorm:"type:uuid;not null;uniqueIndex:idx_season_scores_participant_season"`
	SeasonID           string    `json:"season_id" gorm:"type:uuid;not null;uniqueIndex:idx_season_scores_participant_season"`
	TotalPoints        int       `json:"total_points" gorm:"default:0"`
	ExercisesCompleted int       `json:"exercises_completed" gorm:"default:0"`
	UpdatedAt          time.Time `json:"updated_at"`

	// Relationships
	Participant *Participant `json:"participant,omitempty" gorm:"foreignKey:ParticipantID"`
	Season      *Season      `json:"season,omitempty" gorm:"foreignKey:SeasonID"`
}

// DifficultyPoints is seeded reference data for the default point values.
// Admins may override the points on individual submissions.
type DifficultyPoints struct {
	Difficulty  string `json:"difficulty" gorm:"primaryKey;size:20"`
	BasePoints  int    `json:"base_points" gorm:"not null"`
	Description string `json:"description" gorm:"size:200"`
}

// BeforeCreate hooks assign uuid primary keys.

func (p *Participant) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

func (s *Season) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

func (e *ExerciseSubmission) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}

func (s *SeasonScore) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

// TableName methods for custom table names
func (Participant) TableName() string {
	return "participants"
}

func (Season) TableName() string {
	return "seasons"
}

func (ExerciseSubmission) TableName() string {
	return "exercise_submissions"
}

func (SeasonScore) TableName() string {
	return "season_scores"
}

func (DifficultyPoints) TableName() string {
	return "difficulty_points"
}
