package equipment

import (
	"encoding/json"
	"fmt"
)

// Slot is a position in a loadout
type Slot uint8

// Loadout slots in allocation order
const (
	SlotWeapon0 Slot = iota
	SlotWeapon1
	SlotWeapon2
	SlotWeapon3
	SlotHead
	SlotBody
	SlotLeg
	SlotHand
	SlotHorse
	SlotHorseHarness

	NumSlots = int(SlotHorseHarness) + 1
)

var slotNames = [NumSlots]string{
	"weapon0",
	"weapon1",
	"weapon2",
	"weapon3",
	"head",
	"body",
	"leg",
	"hand",
	"horse",
	"horse_harness",
}

// String returns the slot name
func (s Slot) String() string {
	if int(s) < NumSlots {
		return slotNames[s]
	}
	return fmt.Sprintf("slot(%d)", s)
}

// IsValid checks if the slot exists
func (s Slot) IsValid() bool {
	return int(s) < NumSlots
}

// IsWeapon reports whether the slot holds a weapon, ammunition or shield
func (s Slot) IsWeapon() bool {
	return s <= SlotWeapon3
}

// IsArmor reports whether the slot holds an armor piece
func (s Slot) IsArmor() bool {
	return s >= SlotHead && s <= SlotHand
}

// MarshalText implements encoding.TextMarshaler
func (s Slot) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("invalid slot %d", s)
	}
	return []byte(slotNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *Slot) UnmarshalText(text []byte) error {
	slot, ok := SlotFromString(string(text))
	if !ok {
		return fmt.Errorf("unknown slot %q", string(text))
	}
	*s = slot
	return nil
}

// SlotFromString converts a slot name to a Slot
func SlotFromString(name string) (Slot, bool) {
	for i, n := range slotNames {
		if n == name {
			return Slot(i), true
		}
	}
	return 0, false
}

// WeaponSlots returns the four weapon slots in order
func WeaponSlots() []Slot {
	return []Slot{SlotWeapon0, SlotWeapon1, SlotWeapon2, SlotWeapon3}
}

// ArmorSlot pairs an armor slot with the item type that fills it
type ArmorSlot struct {
	Slot Slot
	Type Type
}

// ArmorSlots returns the armor slots with their item types
func ArmorSlots() []ArmorSlot {
	return []ArmorSlot{
		{Slot: SlotHead, Type: TypeHeadArmor},
		{Slot: SlotBody, Type: TypeBodyArmor},
		{Slot: SlotLeg, Type: TypeLegArmor},
		{Slot: SlotHand, Type: TypeHandArmor},
	}
}

// Loadout holds at most one item per slot
type Loadout [NumSlots]*Item

// Get returns the item in a slot, nil when empty
func (l *Loadout) Get(s Slot) *Item {
	if !s.IsValid() {
		return nil
	}
	return l[s]
}

// Set places an item in a slot, nil clears it
func (l *Loadout) Set(s Slot, item *Item) {
	if s.IsValid() {
		l[s] = item
	}
}

// Clear empties a slot
func (l *Loadout) Clear(s Slot) {
	l.Set(s, nil)
}

// Items returns the non empty items in slot order
func (l *Loadout) Items() []*Item {
	var items []*Item
	for _, item := range l {
		if item != nil {
			items = append(items, item)
		}
	}
	return items
}

// Weapons returns the non empty weapon slot items in slot order
func (l *Loadout) Weapons() []*Item {
	var items []*Item
	for _, s := range WeaponSlots() {
		if item := l[s]; item != nil {
			items = append(items, item)
		}
	}
	return items
}

// FilledCount returns the number of occupied slots
func (l *Loadout) FilledCount() int {
	return len(l.Items())
}

// IsEmpty reports whether no slot is occupied
func (l *Loadout) IsEmpty() bool {
	return l.FilledCount() == 0
}

// MarshalJSON writes the loadout as an object keyed by slot name, empty slots omitted
func (l Loadout) MarshalJSON() ([]byte, error) {
	m := make(map[Slot]*Item, NumSlots)
	for i, item := range l {
		if item != nil {
			m[Slot(i)] = item
		}
	}
	return json.Marshal(m)
}

// UnmarshalJSON reads the object form written by MarshalJSON
func (l *Loadout) UnmarshalJSON(data []byte) error {
	var m map[Slot]*Item
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*l = Loadout{}
	for s, item := range m {
		l[s] = item
	}
	return nil
}
