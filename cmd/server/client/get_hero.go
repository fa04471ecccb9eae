package client

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-armory/internal/handlers/armory/v1alpha1"
)

var getHeroCmd = &cobra.Command{
	Use:   "get-hero",
	Short: "Get a hero by ID",
	Long:  `Retrieve a hero with its battle and civilian loadouts and its equipment tier.`,
	RunE:  runGetHero,
}

func init() {
	getHeroCmd.Flags().StringVar(&heroID, "hero-id", "", "Hero ID (required)")
	_ = getHeroCmd.MarkFlagRequired("hero-id") // nolint:errcheck // safe to ignore in init
}

func runGetHero(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createArmoryClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetHero(ctx, &v1alpha1.HeroRequest{HeroID: heroID})
	if err != nil {
		return fmt.Errorf("failed to get hero: %w", err)
	}

	tier, err := client.GetEquipmentTier(ctx, &v1alpha1.HeroRequest{HeroID: heroID})
	if err != nil {
		return fmt.Errorf("failed to get equipment tier: %w", err)
	}

	printHero(os.Stdout, resp.Hero)
	if tier.Derived {
		fmt.Printf("\nDerived tier from equipped items: %d\n", tier.Tier)
	}

	return nil
}
