package main

import (
	"context"
	"fmt"

	"prayernotebook/internal/db"
	"prayernotebook/internal/seed"
	"prayernotebook/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Seed the database with demo data",
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ctx := context.Background()

		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		logrus.Info("Connected to database")

		categoryRepo := store.NewCategoryRepository(pool)
		prayerRepo := store.NewPrayerRepository(pool)

		logrus.Info("Seeding demo notebook...")
		if err := seed.Run(ctx, categoryRepo, prayerRepo); err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}

		logrus.Info("Demo data seeded successfully")

		return nil
	},
}
