// database/migrate.go - Database Migration Runner
package database

import (
	"log"
	"os"

	"dojoboard/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RunMigrations runs all database migrations
func RunMigrations() {
	db := GetDB()
	log.Println("🔄 Running database migrations...")

	if err := Migrate(db); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	log.Println("✅ All migrations completed successfully")
}

// Migrate applies the schema, indexes and seed data to the given database.
// Split out from RunMigrations so tests and side binaries can run it against
// their own connections.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Participant{},
		&models.Season{},
		&models.ExerciseSubmission{},
		&models.SeasonScore{},
		&models.DifficultyPoints{},
		&models.AdminUser{},
	); err != nil {
		return err
	}

	createIndexes(db)

	if err := seedDifficultyPoints(db); err != nil {
		return err
	}

	return bootstrapAdminUser(db)
}

// createIndexes creates supporting indexes. The unique composite index on
// season_scores(participant_id, season_id) comes from the model tags via
// AutoMigrate; these cover the hot read paths.
func createIndexes(db *gorm.DB) {
	db.Exec("CREATE INDEX IF NOT EXISTS idx_submissions_participant ON exercise_submissions(participant_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_submissions_season ON exercise_submissions(season_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_submissions_completed ON exercise_submissions(completed_at DESC)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_seasons_active ON seasons(is_active)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_season_scores_season ON season_scores(season_id)")
}

// seedDifficultyPoints inserts the default difficulty point values if absent.
// Existing rows are left untouched so operators can tune them.
func seedDifficultyPoints(db *gorm.DB) error {
	defaults := []models.DifficultyPoints{
		{Difficulty: models.DifficultyEasy, BasePoints: 500, Description: "Warm-up katas and basics"},
		{Difficulty: models.DifficultyMedium, BasePoints: 1000, Description: "Standard dojo exercises"},
		{Difficulty: models.DifficultyHard, BasePoints: 2000, Description: "Advanced challenges"},
	}

	for _, dp := range defaults {
		var count int64
		db.Model(&models.DifficultyPoints{}).Where("difficulty = ?", dp.Difficulty).Count(&count)
		if count == 0 {
			if err := db.Create(&dp).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// bootstrapAdminUser creates the first admin account from ADMIN_USERNAME and
// ADMIN_PASSWORD when no admin exists yet. Further accounts are managed with
// the create-admin tool.
func bootstrapAdminUser(db *gorm.DB) error {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		return nil
	}

	var count int64
	db.Model(&models.AdminUser{}).Count(&count)
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.AdminUser{
		Username: username,
		Password: string(hashed),
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Bootstrapped admin user %q", username)
	return nil
}
