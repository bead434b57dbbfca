// services/seasons.go - season lifecycle
package services

import (
	"errors"
	"strings"
	"time"

	"dojoboard/models"
	"dojoboard/realtime"

	"gorm.io/gorm"
)

type SeasonService struct {
	db  *gorm.DB
	hub *realtime.Hub
}

func NewSeasonService(db *gorm.DB, hub *realtime.Hub) *SeasonService {
	return &SeasonService{db: db, hub: hub}
}

// StartSeason closes the currently active season (if any) and opens a new
// one, atomically. Scores are season-scoped, so participants start the new
// season at zero simply because no SeasonScore rows exist for it yet; prior
// seasons keep their submissions and scores untouched.
func (s *SeasonService) StartSeason(name string) (*models.Season, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Messages: []string{"season name is required"}}
	}

	now := time.Now().UTC()
	season := models.Season{
		Name:      name,
		StartDate: now,
		IsActive:  true,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Season{}).
			Where("is_active = ?", true).
			Updates(map[string]interface{}{
				"is_active": false,
				"end_date":  now,
			}).Error; err != nil {
			return err
		}

		return tx.Create(&season).Error
	})
	if err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.Notify(models.Season{}.TableName())
	}
	return &season, nil
}

// ActiveSeason returns the season currently open for submissions.
func (s *SeasonService) ActiveSeason() (*models.Season, error) {
	var season models.Season
	if err := s.db.Where("is_active = ?", true).First(&season).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoActiveSeason
		}
		return nil, err
	}
	return &season, nil
}

// GetSeason returns a season by id.
func (s *SeasonService) GetSeason(id string) (*models.Season, error) {
	var season models.Season
	if err := s.db.Where("id = ?", id).First(&season).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSeasonNotFound
		}
		return nil, err
	}
	return &season, nil
}

// ListSeasons returns all seasons, newest first.
func (s *SeasonService) ListSeasons() ([]models.Season, error) {
	var seasons []models.Season
	err := s.db.Order("start_date DESC").Find(&seasons).Error
	return seasons, err
}
