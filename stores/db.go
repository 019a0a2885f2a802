package stores

import (
	"context"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"restaurant-directory-api/models"
)

// Open connects to the SQLite database at path and migrates the schema.
// Use ":memory:" for a throwaway database in tests.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if path == ":memory:" {
		// Every pooled connection would otherwise get its own empty
		// in-memory database.
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.SetMaxOpenConns(1)
		}
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.City{},
		&models.Restaurant{},
		&models.Session{},
	); err != nil {
		return nil, err
	}

	return db, nil
}

// Seed registers the startup fixtures: the system admin account and the two
// default cities. Uniqueness violations on repeat startups are expected and
// swallowed.
func Seed(ctx context.Context, users UserStore, cities CityStore) {
	admin := models.User{
		Username: "admin",
		Email:    "admin@test.com",
		Role:     models.RoleAdmin,
		Image:    "https://test.com/test.png",
	}
	if err := users.Register(ctx, &admin, "admin"); err != nil {
		logger.Debug().Err(err).Msg("admin seed skipped")
	} else {
		logger.Info().Msg("System Admin registered")
	}

	for _, name := range []string{"Madinah", "Jeddah"} {
		city := models.City{Name: name, IsActive: 1}
		if err := cities.Create(ctx, &city); err != nil {
			logger.Debug().Err(err).Str("city", name).Msg("city seed skipped")
		}
	}
}
