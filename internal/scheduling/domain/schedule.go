package domain

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSlotIndexOutOfRange = errors.New("invalid slot index")
	ErrEmptyScheduleName   = errors.New("schedule name is required")
)

// DefaultScheduleName is used when a schedule is saved without a name.
const DefaultScheduleName = "Default Schedule"

// Schedule is a named daily template: an ordered list of slots plus the
// flags that control how tasks are placed into it.
type Schedule struct {
	id             uuid.UUID
	userID         uuid.UUID
	name           string
	isDefault      bool
	useLLMFallback bool
	slots          []Slot
	createdAt      time.Time
	updatedAt      time.Time
}

// NewSchedule creates a default schedule with LLM fallback enabled.
// An empty name becomes DefaultScheduleName.
func NewSchedule(userID uuid.UUID, name string, slots []Slot) *Schedule {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultScheduleName
	}
	now := time.Now().UTC()
	return &Schedule{
		id:             uuid.New(),
		userID:         userID,
		name:           name,
		isDefault:      true,
		useLLMFallback: true,
		slots:          slices.Clone(slots),
		createdAt:      now,
		updatedAt:      now,
	}
}

// RehydrateSchedule recreates a schedule from persisted state.
func RehydrateSchedule(
	id, userID uuid.UUID,
	name string,
	isDefault, useLLMFallback bool,
	slots []Slot,
	createdAt, updatedAt time.Time,
) *Schedule {
	return &Schedule{
		id:             id,
		userID:         userID,
		name:           name,
		isDefault:      isDefault,
		useLLMFallback: useLLMFallback,
		slots:          slices.Clone(slots),
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// Getters
func (s *Schedule) ID() uuid.UUID        { return s.id }
func (s *Schedule) UserID() uuid.UUID    { return s.userID }
func (s *Schedule) Name() string         { return s.name }
func (s *Schedule) IsDefault() bool      { return s.isDefault }
func (s *Schedule) UseLLMFallback() bool { return s.useLLMFallback }
func (s *Schedule) Slots() []Slot        { return slices.Clone(s.slots) }
func (s *Schedule) CreatedAt() time.Time { return s.createdAt }
func (s *Schedule) UpdatedAt() time.Time { return s.updatedAt }

// SlotCount returns the number of slots in the schedule.
func (s *Schedule) SlotCount() int { return len(s.slots) }

// Slot returns the slot at index.
func (s *Schedule) Slot(index int) (Slot, error) {
	if index < 0 || index >= len(s.slots) {
		return Slot{}, ErrSlotIndexOutOfRange
	}
	return s.slots[index], nil
}

// Rename changes the schedule name.
func (s *Schedule) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyScheduleName
	}
	s.name = name
	s.touch()
	return nil
}

// AddSlot appends a slot to the end of the schedule.
func (s *Schedule) AddSlot(slot Slot) {
	s.slots = append(s.slots, slot)
	s.touch()
}

// UpdateSlot merges patch over the slot at index.
func (s *Schedule) UpdateSlot(index int, patch SlotPatch) (Slot, error) {
	if index < 0 || index >= len(s.slots) {
		return Slot{}, ErrSlotIndexOutOfRange
	}
	updated, err := s.slots[index].Apply(patch)
	if err != nil {
		return Slot{}, err
	}
	s.slots[index] = updated
	s.touch()
	return updated, nil
}

// RemoveSlot deletes the slot at index, keeping the order of the rest.
func (s *Schedule) RemoveSlot(index int) error {
	if index < 0 || index >= len(s.slots) {
		return ErrSlotIndexOutOfRange
	}
	s.slots = slices.Delete(s.slots, index, index+1)
	s.touch()
	return nil
}

// ReplaceSlots swaps the whole slot list.
func (s *Schedule) ReplaceSlots(slots []Slot) {
	s.slots = slices.Clone(slots)
	s.touch()
}

func (s *Schedule) SetUseLLMFallback(enabled bool) {
	s.useLLMFallback = enabled
	s.touch()
}

// MarkDefault flags the schedule as the user's default. Clearing the flag
// on other schedules is the repository's job.
func (s *Schedule) MarkDefault() {
	s.isDefault = true
	s.touch()
}

func (s *Schedule) ClearDefault() {
	s.isDefault = false
	s.touch()
}

func (s *Schedule) touch() {
	s.updatedAt = time.Now().UTC()
}
