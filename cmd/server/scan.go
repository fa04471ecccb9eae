package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-armory/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-armory/internal/entities/hero"
	"github.com/KirkDiggler/rpg-armory/internal/redis"
)

const (
	heroKeyPattern  = "hero:*"
	heroOwnerPrefix = "hero:owner:"
	scanBatchSize   = 100
)

var deleteCorrupted bool

var scanHeroesCmd = &cobra.Command{
	Use:   "scan-heroes",
	Short: "Find hero records that no longer decode",
	Long:  `Scan every stored hero, report records with corrupted JSON or impossible equipment tiers, and optionally delete them.`,
	RunE:  runScanHeroes,
}

func init() {
	scanHeroesCmd.Flags().BoolVar(&deleteCorrupted, "delete", false, "Delete corrupted hero records")
}

func runScanHeroes(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx := context.Background()
	client, err := redis.Connect(ctx, cfg.RedisAddr, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	fmt.Println("Scanning for corrupted hero data...")

	corrupted, checked, err := scanHeroes(ctx, client, os.Stdout)
	if err != nil {
		return err
	}

	fmt.Printf("\nChecked %d keys, found %d corrupted entries\n", checked, len(corrupted))
	if len(corrupted) == 0 || !deleteCorrupted {
		return nil
	}

	for _, key := range corrupted {
		if err := client.Del(ctx, key).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
			continue
		}
		fmt.Printf("Deleted %s\n", key)
	}

	return nil
}

// scanHeroes returns the hero keys whose records cannot be used and how many keys it checked
func scanHeroes(ctx context.Context, client redis.Client, w io.Writer) ([]string, int, error) {
	iter := client.Scan(ctx, 0, heroKeyPattern, scanBatchSize).Iterator()

	var corrupted []string
	checked := 0

	for iter.Next(ctx) {
		key := iter.Val()
		if strings.HasPrefix(key, heroOwnerPrefix) {
			continue
		}
		checked++

		data, err := client.Get(ctx, key).Bytes()
		if err != nil {
			_, _ = fmt.Fprintf(w, "Error reading %s: %v\n", key, err)
			continue
		}

		if reason := heroProblem(data); reason != "" {
			_, _ = fmt.Fprintf(w, "Corrupted %s: %s\n", key, reason)
			corrupted = append(corrupted, key)
		}
	}

	if err := iter.Err(); err != nil {
		return nil, checked, fmt.Errorf("error during scan: %w", err)
	}

	return corrupted, checked, nil
}

func heroProblem(data []byte) string {
	var h hero.Hero
	if err := json.Unmarshal(data, &h); err != nil {
		return "invalid JSON"
	}
	if h.ID == "" {
		return "missing id"
	}
	if h.EquipmentTier < int(equipment.TierNone) || h.EquipmentTier > int(equipment.TierCustom) {
		return fmt.Sprintf("equipment tier %d out of range", h.EquipmentTier)
	}
	return ""
}
