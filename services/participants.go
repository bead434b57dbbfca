// services/participants.go - participant lifecycle
package services

import (
	"errors"

	"dojoboard/models"
	"dojoboard/realtime"
	"dojoboard/validation"

	"gorm.io/gorm"
)

type ParticipantService struct {
	db  *gorm.DB
	hub *realtime.Hub
}

func NewParticipantService(db *gorm.DB, hub *realtime.Hub) *ParticipantService {
	return &ParticipantService{db: db, hub: hub}
}

type CreateParticipantInput struct {
	Name      string  `json:"name" validate:"required,min=2,max=100"`
	AvatarURL *string `json:"avatar_url" validate:"omitempty,url"`
}

// CreateParticipant registers a new dojo member.
func (s *ParticipantService) CreateParticipant(in CreateParticipantInput) (*models.Participant, error) {
	if msgs := validation.Check(in); msgs != nil {
		return nil, &ValidationError{Messages: msgs}
	}

	var count int64
	s.db.Model(&models.Participant{}).Where("name = ?", in.Name).Count(&count)
	if count > 0 {
		return nil, ErrNameTaken
	}

	participant := models.Participant{
		Name:      in.Name,
		AvatarURL: in.AvatarURL,
	}
	if err := s.db.Create(&participant).Error; err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.Notify(models.Participant{}.TableName())
	}
	return &participant, nil
}

// DeleteParticipant removes a participant together with every submission and
// score row they own, across all seasons. Destructive and irreversible.
func (s *ParticipantService) DeleteParticipant(id string) error {
	var participant models.Participant
	if err := s.db.Where("id = ?", id).First(&participant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrParticipantNotFound
		}
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("participant_id = ?", id).
			Delete(&models.ExerciseSubmission{}).Error; err != nil {
			return err
		}
		if err := tx.Where("participant_id = ?", id).
			Delete(&models.SeasonScore{}).Error; err != nil {
			return err
		}
		return tx.Delete(&participant).Error
	})
	if err != nil {
		return err
	}

	if s.hub != nil {
		s.hub.Notify(models.Participant{}.TableName())
		s.hub.Notify(models.SeasonScore{}.TableName())
	}
	return nil
}

// GetParticipant returns a participant by id.
func (s *ParticipantService) GetParticipant(id string) (*models.Participant, error) {
	var participant models.Participant
	if err := s.db.Where("id = ?", id).First(&participant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, err
	}
	return &participant, nil
}

// ListParticipants returns all participants ordered by name.
func (s *ParticipantService) ListParticipants() ([]models.Participant, error) {
	var participants []models.Participant
	err := s.db.Order("name ASC").Find(&participants).Error
	return participants, err
}
