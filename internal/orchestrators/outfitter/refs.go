package outfitter

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-armory/internal/entities/equipment"
)

// entityRef renders an entity as type:id for logs
func entityRef(e core.Entity) string {
	return e.GetType() + ":" + e.GetID()
}

// loadoutRefs lists the filled slots of a loadout in slot order
func loadoutRefs(loadout *equipment.Loadout) []string {
	var refs []string
	for _, item := range loadout.Items() {
		refs = append(refs, entityRef(item))
	}
	return refs
}
