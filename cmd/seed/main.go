package main

import (
	"log"
	"os"

	"pawrescue-be/internal/model"
	"pawrescue-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("🐾 Seeding PawRescue development data")

	seedUsers(db)
	seedAnimals(db)

	color.Green("✅ Seeding complete")
}

func seedUsers(db *gorm.DB) {
	color.Yellow("\n[1/2] Users")

	users := []struct {
		Name     string
		Email    string
		Username string
		Password string
		Role     string
	}{
		{"Site Admin", "admin@pawrescue.local", "admin", "admin12345", "admin"},
		{"Dr. Maya Tan", "maya.vet@pawrescue.local", "drmaya", "vetvetvet", "vet"},
		{"Sam Porter", "sam@example.com", "sam", "password123", "user"},
	}

	for _, u := range users {
		var existing model.User
		err := db.Where("username = ?", u.Username).First(&existing).Error
		if err == nil {
			color.Yellow("  skip %s (exists)", u.Username)
			continue
		}

		hash, hashErr := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if hashErr != nil {
			color.Red("  failed to hash password for %s: %v", u.Username, hashErr)
			continue
		}

		row := model.User{
			Name:         u.Name,
			Email:        u.Email,
			Username:     u.Username,
			PasswordHash: string(hash),
			Role:         u.Role,
		}
		if err := db.Create(&row).Error; err != nil {
			color.Red("  failed to create %s: %v", u.Username, err)
			continue
		}
		color.Green("  created %s (%s)", u.Username, u.Role)
	}
}

func seedAnimals(db *gorm.DB) {
	color.Yellow("\n[2/2] Animals")

	var count int64
	db.Model(&model.Animal{}).Count(&count)
	if count > 0 {
		color.Yellow("  skip (animals table not empty)")
		return
	}

	animals := []model.Animal{
		{
			Name:        "Rex",
			Species:     "dog",
			Breed:       "German Shepherd",
			Age:         3,
			PhotoURL:    "https://images.pawrescue.local/rex.jpg",
			Description: "Energetic shepherd rescued from a construction site, great with kids.",
			Status:      "adoptable",
			Location:    "Central Shelter, Kennel 4",
		},
		{
			Name:        "Mochi",
			Species:     "cat",
			Breed:       "Domestic Shorthair",
			Age:         1,
			PhotoURL:    "https://images.pawrescue.local/mochi.jpg",
			Description: "Shy calico found near the riverside market, warming up quickly.",
			Status:      "available",
			Location:    "Central Shelter, Cat Room",
		},
		{
			Name:        "Biscuit",
			Species:     "rabbit",
			Breed:       "Holland Lop",
			Age:         2,
			PhotoURL:    "https://images.pawrescue.local/biscuit.jpg",
			Description: "Surrendered lop recovering from a leg injury, needs a calm home.",
			Status:      "recovering",
			Location:    "North Clinic, Ward B",
		},
	}

	for _, a := range animals {
		if err := db.Create(&a).Error; err != nil {
			color.Red("  failed to create %s: %v", a.Name, err)
			continue
		}
		color.Green("  created %s (%s, %s)", a.Name, a.Species, a.Status)
	}
}
