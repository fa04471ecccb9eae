package client

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-armory/internal/handlers/armory/v1alpha1"
)

var (
	mode       string
	targetTier int
	keepBetter bool
)

var equipHeroCmd = &cobra.Command{
	Use:   "equip-hero",
	Short: "Upgrade or re-equip a hero",
	Long: `Run an equipment allocation for a hero. Upgrade mode targets the next tier and keeps
better items; reequip rerolls the loadout at the current tier.`,
	RunE: runEquipHero,
}

func init() {
	equipHeroCmd.Flags().StringVar(&heroID, "hero-id", "", "Hero ID (required)")
	equipHeroCmd.Flags().StringVar(&mode, "mode", "upgrade", "Equip mode (upgrade or reequip)")
	equipHeroCmd.Flags().IntVar(&targetTier, "target-tier", 0, "Explicit target tier, 0 to 5")
	equipHeroCmd.Flags().BoolVar(&keepBetter, "keep-better", false, "Keep items above the target tier")
	_ = equipHeroCmd.MarkFlagRequired("hero-id") // nolint:errcheck // safe to ignore in init
}

func runEquipHero(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createArmoryClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req := &v1alpha1.EquipHeroRequest{
		HeroID: heroID,
		Mode:   mode,
	}
	if cmd.Flags().Changed("target-tier") {
		req.TargetTier = &targetTier
	}
	if cmd.Flags().Changed("keep-better") {
		req.KeepBetter = &keepBetter
	}

	log.Printf("Equipping hero %s (%s)...", heroID, mode)

	resp, err := client.EquipHero(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to equip hero: %w", err)
	}

	fmt.Printf("Hero equipped at tier %d for %d gold (%s weapons)\n\n", resp.TargetTier, resp.Cost, resp.Selection)
	printHero(os.Stdout, resp.Hero)

	if len(resp.EmptySlots) > 0 {
		empty := make([]string, 0, len(resp.EmptySlots))
		for _, slot := range resp.EmptySlots {
			empty = append(empty, slot.String())
		}
		fmt.Printf("\nNo suitable item for: %s\n", strings.Join(empty, ", "))
	}

	return nil
}
