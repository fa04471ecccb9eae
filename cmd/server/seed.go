package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-armory/internal/seed"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load catalog items, class templates and modifiers into redis",
	Long:  `Seed validates a JSON seed file and writes its items, class templates and custom item modifiers through the repositories.`,
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedFile, "file", "", "Seed file path (required)")
	_ = seedCmd.MarkFlagRequired("file") // nolint:errcheck // safe to ignore in init
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	setupLogging(cfg.LogLevel)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open repositories: %w", err)
	}
	defer repos.Close()

	loader, err := seed.New(&seed.Config{
		CatalogRepo:  repos.catalog,
		ClassRepo:    repos.classes,
		ModifierRepo: repos.modifiers,
	})
	if err != nil {
		return fmt.Errorf("failed to create seed loader: %w", err)
	}

	result, err := loader.LoadFile(ctx, seedFile)
	if err != nil {
		return fmt.Errorf("failed to seed: %w", err)
	}

	log.Printf("Seeded %d items (catalog revision %d), %d classes, %d new modifiers",
		result.Items, result.Revision, result.Classes, result.Modifiers)

	return nil
}
