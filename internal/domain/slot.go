package domain

import "fmt"

// Slot is one of the fixed, identically defined visit slots offered on every
// eligible date. The catalog never varies per date.
type Slot struct {
	ID          int
	Name        string // "Slot 7"
	Display     string // "SLOT 7"
	Description string // "Visit slot 7 for the day"
}

// BuildCatalog constructs the ordered catalog of count slots, ids 1..count.
func BuildCatalog(count int) []Slot {
	slots := make([]Slot, count)
	for i := 1; i <= count; i++ {
		slots[i-1] = Slot{
			ID:          i,
			Name:        fmt.Sprintf("Slot %d", i),
			Display:     fmt.Sprintf("SLOT %d", i),
			Description: fmt.Sprintf("Visit slot %d for the day", i),
		}
	}
	return slots
}

// DefaultCatalog is the standard 20-slot catalog. It is built once; callers
// must treat it as read-only.
var DefaultCatalog = BuildCatalog(DefaultSlotCount)

// IsValidSlotID reports whether id falls within the catalog of count slots.
func IsValidSlotID(id, count int) bool {
	return id >= 1 && id <= count
}
