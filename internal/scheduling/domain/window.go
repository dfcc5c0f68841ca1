package domain

import (
	"strings"
	"time"
)

// GetSlotForTime returns the first slot, in list order, whose window
// contains t. When day is non-nil, slots restricted to other weekdays are
// skipped.
func GetSlotForTime(t ClockTime, slots []Slot, day *time.Weekday) (Slot, bool) {
	for _, slot := range slots {
		if day != nil && !slot.ActiveOn(*day) {
			continue
		}
		if slot.Contains(t) {
			return slot, true
		}
	}
	return Slot{}, false
}

// GetNextAvailableSlot returns the next slot of category. Without now it is
// the first slot of that category; with now it is the first one starting
// strictly after now, or the first one overall when the day is over.
func GetNextAvailableSlot(category string, slots []Slot, now *ClockTime) (Slot, bool) {
	candidates := SlotsForCategory(category, slots)
	if len(candidates) == 0 {
		return Slot{}, false
	}
	if now == nil {
		return candidates[0], true
	}
	for _, slot := range candidates {
		if slot.start > *now {
			return slot, true
		}
	}
	// next occurrence is tomorrow
	return candidates[0], true
}

// SlotsForCategory returns the slots of category in list order.
// Categories compare case-insensitively.
func SlotsForCategory(category string, slots []Slot) []Slot {
	var out []Slot
	for _, slot := range slots {
		if strings.EqualFold(slot.category, category) {
			out = append(out, slot)
		}
	}
	return out
}

// Categories returns the distinct categories in first-seen order.
func Categories(slots []Slot) []string {
	seen := make(map[string]struct{}, len(slots))
	categories := make([]string, 0, len(slots))
	for _, slot := range slots {
		if _, ok := seen[slot.category]; ok {
			continue
		}
		seen[slot.category] = struct{}{}
		categories = append(categories, slot.category)
	}
	return categories
}
