package database

import (
	"fmt"

	"jobportal/internal/models"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the configured relational engine and migrates the portal
// schema. Postgres is the deployment target; sqlite covers local runs.
func Connect(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	log.Info().Str("driver", driver).Msg("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return db, nil
}

// Migrate creates or updates one table per portal resource.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Employer{},
		&models.JobSeeker{},
		&models.JobListing{},
		&models.Category{},
		&models.Application{},
		&models.Skill{},
		&models.JobSeekerSkill{},
		&models.JobCategoryMapping{},
		&models.EmployersJobListing{},
		&models.Message{},
		&models.Notification{},
	)
}
