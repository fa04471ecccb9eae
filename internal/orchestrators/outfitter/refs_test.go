package outfitter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-armory/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-armory/internal/testutils"
)

func TestEntityRefs(t *testing.T) {
	assert.Equal(t, "hero:hero_1", entityRef(testutils.CreateTestHero("hero_1")))

	var loadout equipment.Loadout
	assert.Empty(t, loadoutRefs(&loadout))

	loadout.Set(equipment.SlotWeapon0, testutils.OneHandedSword("sword-2", 2))
	loadout.Set(equipment.SlotHead, testutils.Armor("helm-1", equipment.TypeHeadArmor, 1, false))
	assert.Equal(t, []string{"item:sword-2", "item:helm-1"}, loadoutRefs(&loadout))
}
