package zone

import "math/rand"

// ColorSlots is the number of card color slots a Picker chooses from.
const ColorSlots = 5

// Picker supplies the random choices made when a card is created.
type Picker interface {
	// PickZone returns the zone name for a new entry.
	PickZone() string
	// PickColorSlot returns a color slot in [1, ColorSlots].
	PickColorSlot() int
}

// RandomPicker picks uniformly from a zone list.
type RandomPicker struct {
	Zones []string
}

// NewRandomPicker returns a picker over zones, or over Known() when zones is
// empty.
func NewRandomPicker(zones []string) RandomPicker {
	if len(zones) == 0 {
		zones = Known()
	}
	return RandomPicker{Zones: zones}
}

func (p RandomPicker) PickZone() string {
	if len(p.Zones) == 0 {
		return "UTC"
	}
	return p.Zones[rand.Intn(len(p.Zones))]
}

func (p RandomPicker) PickColorSlot() int {
	return rand.Intn(ColorSlots) + 1
}

// FixedPicker always returns the same choices.
type FixedPicker struct {
	Zone string
	Slot int
}

func (p FixedPicker) PickZone() string {
	if p.Zone == "" {
		return "UTC"
	}
	return p.Zone
}

func (p FixedPicker) PickColorSlot() int {
	if p.Slot < 1 || p.Slot > ColorSlots {
		return 1
	}
	return p.Slot
}
