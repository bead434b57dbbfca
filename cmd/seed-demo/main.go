// seed-demo fills the database with a demo season, a few participants and
// some submissions, going through the real services so the score aggregates
// are built the same way the API builds them.
package main

import (
	"log"

	"dojoboard/database"
	"dojoboard/models"
	"dojoboard/services"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	database.InitDB()
	defer database.CloseDB()
	db := database.GetDB()

	seasonSvc := services.NewSeasonService(db, nil)
	participantSvc := services.NewParticipantService(db, nil)
	scoringSvc := services.NewScoringService(db, nil)

	if _, err := seasonSvc.ActiveSeason(); err != nil {
		if _, err := seasonSvc.StartSeason("Season 1"); err != nil {
			log.Fatal("Failed to start season:", err)
		}
		log.Println("Started demo season")
	}

	type demoExercise struct {
		name       string
		difficulty string
	}

	demo := map[string][]demoExercise{
		"Ana":   {{"FizzBuzz", models.DifficultyEasy}, {"LRU Cache", models.DifficultyHard}},
		"Bruno": {{"Roman Numerals", models.DifficultyMedium}},
		"Carla": {{"Bowling Kata", models.DifficultyMedium}, {"Word Wrap", models.DifficultyEasy}},
	}

	for name, exercises := range demo {
		participant, err := participantSvc.CreateParticipant(services.CreateParticipantInput{Name: name})
		if err != nil {
			log.Printf("Skipping %s: %v", name, err)
			continue
		}

		for _, ex := range exercises {
			_, err := scoringSvc.RecordExercise(services.RecordExerciseInput{
				ParticipantID: participant.ID,
				ExerciseName:  ex.name,
				Difficulty:    ex.difficulty,
			})
			if err != nil {
				log.Printf("Failed to record %s for %s: %v", ex.name, name, err)
			}
		}
		log.Printf("Seeded %s with %d exercises", name, len(exercises))
	}

	log.Println("✅ Demo data seeded")
}
