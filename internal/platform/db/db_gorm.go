// Package db opens the relational database holding user accounts.
package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "estate_backend/internal/feature/auth/domain/entity"
	"estate_backend/internal/platform/config"
)

// OpenDB connects to the configured database and runs migrations.
// TranslateError is enabled so unique-violation errors surface as
// gorm.ErrDuplicatedKey regardless of the driver.
func OpenDB(cfg config.DB) *gorm.DB {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	default:
		dialector = sqlite.Open(cfg.DSN)
	}

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(dialector, &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if err := db.AutoMigrate(&authentity.User{}); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
