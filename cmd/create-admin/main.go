// create-admin creates or resets an admin dashboard account.
//
// Usage:
//
//	create-admin -username staff -password s3cret
package main

import (
	"flag"
	"fmt"
	"log"

	"dojoboard/database"
	"dojoboard/models"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	username := flag.String("username", "", "admin username")
	password := flag.String("password", "", "admin password (min 8 characters)")
	flag.Parse()

	if *username == "" || *password == "" {
		log.Fatal("both -username and -password are required")
	}
	if len(*password) < 8 {
		log.Fatal("password must be at least 8 characters")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	database.InitDB()
	defer database.CloseDB()
	db := database.GetDB()

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	var admin models.AdminUser
	err = db.Where("username = ?", *username).First(&admin).Error
	if err == nil {
		admin.Password = string(hashed)
		if err := db.Save(&admin).Error; err != nil {
			log.Fatal("Failed to update admin:", err)
		}
		fmt.Printf("Password reset for admin %q\n", *username)
		return
	}

	admin = models.AdminUser{
		Username: *username,
		Password: string(hashed),
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("Failed to create admin:", err)
	}
	fmt.Printf("Created admin %q\n", *username)
}
