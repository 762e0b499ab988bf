package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"chefreel/catalog"
	"chefreel/config"
	"chefreel/db"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the demo corpus into MongoDB",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Storage.Driver != config.DriverMongo {
			return errors.New("seed needs storage.driver mongo")
		}
		client, err := db.Connect(cmd.Context(), cfg.Storage.MongoURI)
		if err != nil {
			return err
		}
		defer client.Disconnect(context.Background())

		n, err := catalog.SeedMongo(cmd.Context(), client.Database(cfg.Storage.MongoDB), catalog.Seed())
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		logger.Info("seeded catalog", zap.Int("records", n), zap.String("db", cfg.Storage.MongoDB))
		return nil
	},
}
