package select_slot

// SelectSlotRequest HTTP request model
type SelectSlotRequest struct {
	SlotID int `json:"slotId"`
}
