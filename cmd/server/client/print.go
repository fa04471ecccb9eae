package client

import (
	"fmt"
	"io"

	"github.com/KirkDiggler/rpg-armory/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-armory/internal/entities/hero"
)

func printHero(w io.Writer, h *hero.Hero) {
	if h == nil {
		_, _ = fmt.Fprintln(w, "(no hero returned)")
		return
	}

	_, _ = fmt.Fprintf(w, "Hero ID: %s\n", h.ID)
	_, _ = fmt.Fprintf(w, "Name: %s\n", h.Name)
	_, _ = fmt.Fprintf(w, "Owner: %s\n", h.OwnerID)
	if h.ClassID != "" {
		_, _ = fmt.Fprintf(w, "Class: %s\n", h.ClassID)
	}
	_, _ = fmt.Fprintf(w, "Equipment Tier: %d\n", h.EquipmentTier)
	_, _ = fmt.Fprintf(w, "Gold: %d\n", h.Gold)

	_, _ = fmt.Fprintf(w, "\nBattle Equipment:\n")
	printLoadout(w, &h.BattleEquipment)
	_, _ = fmt.Fprintf(w, "\nCivilian Equipment:\n")
	printLoadout(w, &h.CivilianEquipment)
}

func printLoadout(w io.Writer, loadout *equipment.Loadout) {
	for i := 0; i < equipment.NumSlots; i++ {
		slot := equipment.Slot(i)
		item := loadout.Get(slot)
		if item == nil {
			_, _ = fmt.Fprintf(w, "  %-16s -\n", slot.String())
			continue
		}
		_, _ = fmt.Fprintf(w, "  %-16s %s (%s, tier %d)\n", slot.String(), item.Name, item.ID, item.Tier)
	}
}
