package services

import (
	"testing"

	"dojoboard/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateParticipant(t *testing.T) {
	db := setupTestDB(t)
	participants := NewParticipantService(db, nil)

	t.Run("Valid", func(t *testing.T) {
		avatar := "https://example.com/ana.png"
		p, err := participants.CreateParticipant(CreateParticipantInput{
			Name:      "Ana",
			AvatarURL: &avatar,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, p.ID)
		assert.Equal(t, "Ana", p.Name)
		require.NotNil(t, p.AvatarURL)
		assert.Equal(t, avatar, *p.AvatarURL)
	})

	t.Run("NoAvatar", func(t *testing.T) {
		p, err := participants.CreateParticipant(CreateParticipantInput{Name: "Bruno"})
		require.NoError(t, err)
		assert.Nil(t, p.AvatarURL)
	})

	t.Run("NameTooShort", func(t *testing.T) {
		_, err := participants.CreateParticipant(CreateParticipantInput{Name: "A"})
		require.Error(t, err)
		assert.True(t, IsValidation(err))
	})

	t.Run("MalformedAvatarURL", func(t *testing.T) {
		bad := "not a url"
		_, err := participants.CreateParticipant(CreateParticipantInput{
			Name:      "Carla",
			AvatarURL: &bad,
		})
		require.Error(t, err)
		assert.True(t, IsValidation(err))
	})

	t.Run("DuplicateName", func(t *testing.T) {
		_, err := participants.CreateParticipant(CreateParticipantInput{Name: "Ana"})
		assert.ErrorIs(t, err, ErrNameTaken)
	})
}

func TestDeleteParticipant(t *testing.T) {
	db := setupTestDB(t)
	participants := NewParticipantService(db, nil)
	seasons := NewSeasonService(db, nil)
	scoring := NewScoringService(db, nil)
	leaderboard := NewLeaderboardService(db)

	_, err := seasons.StartSeason("S1")
	require.NoError(t, err)
	ana, err := participants.CreateParticipant(CreateParticipantInput{Name: "Ana"})
	require.NoError(t, err)
	bruno, err := participants.CreateParticipant(CreateParticipantInput{Name: "Bruno"})
	require.NoError(t, err)

	// Ana scores in two seasons
	_, err = scoring.RecordExercise(RecordExerciseInput{
		ParticipantID: ana.ID, ExerciseName: "FizzBuzz", Difficulty: models.DifficultyEasy,
	})
	require.NoError(t, err)
	_, err = seasons.StartSeason("S2")
	require.NoError(t, err)
	_, err = scoring.RecordExercise(RecordExerciseInput{
		ParticipantID: ana.ID, ExerciseName: "LRU Cache", Difficulty: models.DifficultyHard,
	})
	require.NoError(t, err)
	_, err = scoring.RecordExercise(RecordExerciseInput{
		ParticipantID: bruno.ID, ExerciseName: "Word Wrap", Difficulty: models.DifficultyEasy,
	})
	require.NoError(t, err)

	before, err := leaderboard.Stats()
	require.NoError(t, err)

	require.NoError(t, participants.DeleteParticipant(ana.ID))

	// all of Ana's rows are gone, in every season
	var subs, scores int64
	db.Model(&models.ExerciseSubmission{}).Where("participant_id = ?", ana.ID).Count(&subs)
	db.Model(&models.SeasonScore{}).Where("participant_id = ?", ana.ID).Count(&scores)
	assert.Zero(t, subs)
	assert.Zero(t, scores)

	// Bruno is untouched
	var brunoScores int64
	db.Model(&models.SeasonScore{}).Where("participant_id = ?", bruno.ID).Count(&brunoScores)
	assert.EqualValues(t, 1, brunoScores)

	after, err := leaderboard.Stats()
	require.NoError(t, err)
	assert.Equal(t, before.TotalParticipants-1, after.TotalParticipants)

	t.Run("Unknown", func(t *testing.T) {
		err := participants.DeleteParticipant("ffffffff-ffff-ffff-ffff-ffffffffffff")
		assert.ErrorIs(t, err, ErrParticipantNotFound)
	})
}

func TestListParticipants(t *testing.T) {
	db := setupTestDB(t)
	participants := NewParticipantService(db, nil)

	for _, name := range []string{"Carla", "Ana", "Bruno"} {
		_, err := participants.CreateParticipant(CreateParticipantInput{Name: name})
		require.NoError(t, err)
	}

	list, err := participants.ListParticipants()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Ana", list[0].Name)
	assert.Equal(t, "Bruno", list[1].Name)
	assert.Equal(t, "Carla", list[2].Name)
}
