package client

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-armory/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-armory/internal/entities/hero"
	"github.com/KirkDiggler/rpg-armory/internal/handlers/armory/v1alpha1"
)

var (
	ownerID string
	name    string
	gender  string
	classID string
	gold    int64
	skills  map[string]int
	perks   []string
)

var createHeroCmd = &cobra.Command{
	Use:   "create-hero",
	Short: "Create a new hero",
	Long:  `Create a hero with skills, perks and an optional class template, ready to be equipped.`,
	RunE:  runCreateHero,
}

func init() {
	createHeroCmd.Flags().StringVar(&ownerID, "owner-id", "", "Owner ID (required)")
	createHeroCmd.Flags().StringVar(&name, "name", "", "Hero name (required)")
	createHeroCmd.Flags().StringVar(&gender, "gender", "male", "Hero gender (male or female)")
	createHeroCmd.Flags().StringVar(&classID, "class-id", "", "Class template ID (optional)")
	createHeroCmd.Flags().Int64Var(&gold, "gold", 0, "Starting gold")
	createHeroCmd.Flags().StringToIntVar(&skills, "skill", nil, "Skill values, e.g. --skill bow=120,riding=80")
	createHeroCmd.Flags().StringSliceVar(&perks, "perk", nil, "Perks, e.g. --perk horse_master")
	_ = createHeroCmd.MarkFlagRequired("owner-id") // nolint:errcheck // safe to ignore in init
	_ = createHeroCmd.MarkFlagRequired("name")     // nolint:errcheck // safe to ignore in init
}

func runCreateHero(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createArmoryClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Printf("Creating hero %s for owner %s...", name, ownerID)

	req := &v1alpha1.CreateHeroRequest{
		OwnerID: ownerID,
		Name:    name,
		Gender:  equipment.Gender(gender),
		ClassID: classID,
		Gold:    gold,
	}
	if len(skills) > 0 {
		req.Skills = make(map[equipment.Skill]int, len(skills))
		for skill, value := range skills {
			req.Skills[equipment.Skill(skill)] = value
		}
	}
	for _, perk := range perks {
		req.Perks = append(req.Perks, hero.Perk(perk))
	}

	resp, err := client.CreateHero(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to create hero: %w", err)
	}

	fmt.Printf("Hero created successfully!\n\n")
	printHero(os.Stdout, resp.Hero)
	fmt.Printf("\nNext: rpg-armory client equip-hero --hero-id %s\n", resp.Hero.ID)

	return nil
}
