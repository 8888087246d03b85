// Command seed inserts demo creators with withdrawable balances for
// local development. Balances are normally written by the external
// ledger process; this stands in for it on a fresh database.
package main

import (
	"log"

	"patron/internal/config"
	"patron/internal/models"
	"patron/internal/repositories"
)

func main() {
	config.LoadEnv()

	if err := repositories.InitDB(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer func() {
		if repositories.DB != nil {
			sqlDB, err := repositories.DB.DB()
			if err != nil {
				log.Printf("Failed to get SQL DB instance: %v", err)
			} else if err := sqlDB.Close(); err != nil {
				log.Printf("Failed to close PostgreSQL connection: %v", err)
			}
		}
	}()

	creators := []models.Creator{
		{Email: "ada@example.com", DisplayName: "Ada", AvailableBalance: 250000, Status: models.CreatorStatusActive},
		{Email: "grace@example.com", DisplayName: "Grace", AvailableBalance: 4999, Status: models.CreatorStatusActive},
		{Email: "linus@example.com", DisplayName: "Linus", AvailableBalance: 1000000, Status: models.CreatorStatusSuspended},
	}

	for _, creator := range creators {
		var existing models.Creator
		if err := repositories.DB.Where("email = ?", creator.Email).First(&existing).Error; err == nil {
			log.Printf("Creator %s already exists", creator.Email)
			continue
		}

		if err := repositories.DB.Create(&creator).Error; err != nil {
			log.Fatal("Failed to create creator:", err)
		}
		log.Printf("Seeded creator %s (id=%d, balance=%d)", creator.Email, creator.ID, creator.AvailableBalance)
	}
}
