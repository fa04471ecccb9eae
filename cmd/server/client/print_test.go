package client

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-armory/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-armory/internal/testutils"
)

func TestPrintHero(t *testing.T) {
	h := testutils.CreateTestHero("hero_1")
	h.EquipmentTier = 2
	h.BattleEquipment.Set(equipment.SlotWeapon0, testutils.OneHandedSword("sword_t2", 2))

	var buf bytes.Buffer
	printHero(&buf, h)

	out := buf.String()
	assert.Contains(t, out, "Hero ID: hero_1")
	assert.Contains(t, out, "Equipment Tier: 2")
	assert.Contains(t, out, "Sword sword_t2 (sword_t2, tier 2)")
	assert.Contains(t, out, equipment.SlotHorse.String())

	buf.Reset()
	printHero(&buf, nil)
	assert.Contains(t, buf.String(), "no hero returned")
}
