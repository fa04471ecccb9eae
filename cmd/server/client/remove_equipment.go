package client

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-armory/internal/handlers/armory/v1alpha1"
)

var removeEquipmentCmd = &cobra.Command{
	Use:   "remove-equipment",
	Short: "Strip a hero's battle and civilian loadouts",
	RunE:  runRemoveEquipment,
}

func init() {
	removeEquipmentCmd.Flags().StringVar(&heroID, "hero-id", "", "Hero ID (required)")
	_ = removeEquipmentCmd.MarkFlagRequired("hero-id") // nolint:errcheck // safe to ignore in init
}

func runRemoveEquipment(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createArmoryClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.RemoveEquipment(ctx, &v1alpha1.HeroRequest{HeroID: heroID})
	if err != nil {
		return fmt.Errorf("failed to remove equipment: %w", err)
	}

	fmt.Printf("Equipment removed.\n\n")
	printHero(os.Stdout, resp.Hero)

	return nil
}
