package migration

import (
	"UnityGrow-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Package{}); err != nil {
		log.Fatalf("Error migrating package database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Purchase{}); err != nil {
		log.Fatalf("Error migrating purchase database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.WithdrawalTransaction{}); err != nil {
		log.Fatalf("Error migrating withdrawal transaction database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
