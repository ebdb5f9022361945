// Seeds the development database with a demo course.
package main

import (
	"context"
	"flag"
	"log"

	"coursepulse/internal/config"
	"coursepulse/internal/database"
	"coursepulse/internal/logging"
	"coursepulse/internal/seeder"
)

func main() {
	courseID := flag.Int64("course", 1, "course id to seed")
	name := flag.String("name", "Introduction to Data Science", "course name")
	students := flag.Int("students", 40, "number of students")
	days := flag.Int("days", 90, "number of days of activity")
	flag.Parse()

	cfg := config.GetConfig()
	logger := logging.NewLogger(cfg)

	dbManager := database.NewDBManager(cfg, logger)
	if err := dbManager.Init(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	if err := dbManager.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	s := seeder.NewSeeder(dbManager.GetConnection(), logger, *students, *days)
	if err := s.SeedCourse(context.Background(), *courseID, *name); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
