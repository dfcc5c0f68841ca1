package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

var (
	ErrEmptyCategory  = errors.New("slot category is required")
	ErrInvalidWeekday = errors.New("day of week must be between 0 (Sunday) and 6 (Saturday)")
)

// SlotValidationError reports which field of a slot definition is malformed.
type SlotValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *SlotValidationError) Error() string {
	return fmt.Sprintf("invalid slot %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *SlotValidationError) Unwrap() error {
	return e.Err
}

// SlotSpec is the raw, serializable form of a schedule slot as it is
// stored and edited. Turn it into a Slot with NewSlot.
type SlotSpec struct {
	Category    string   `json:"category" yaml:"category" toml:"category"`
	StartTime   string   `json:"startTime" yaml:"startTime" toml:"startTime"`
	EndTime     string   `json:"endTime" yaml:"endTime" toml:"endTime"`
	Keywords    []string `json:"keywords" yaml:"keywords" toml:"keywords"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Priority    int      `json:"priority" yaml:"priority" toml:"priority"`
	DaysOfWeek  []int    `json:"daysOfWeek" yaml:"daysOfWeek" toml:"daysOfWeek"`
	Color       string   `json:"color,omitempty" yaml:"color,omitempty" toml:"color,omitempty"`
}

// Slot is a validated, immutable window of the day reserved for one
// category of work.
type Slot struct {
	category    string
	start       ClockTime
	end         ClockTime
	keywords    []string
	description string
	priority    int
	days        []time.Weekday
	color       string
}

// NewSlot validates a slot definition. Times are parsed once here so that
// matching never has to deal with malformed input.
func NewSlot(spec SlotSpec) (Slot, error) {
	category := strings.TrimSpace(spec.Category)
	if category == "" {
		return Slot{}, &SlotValidationError{Field: "category", Value: spec.Category, Err: ErrEmptyCategory}
	}

	start, err := ParseClockTime(spec.StartTime)
	if err != nil {
		return Slot{}, &SlotValidationError{Field: "startTime", Value: spec.StartTime, Err: ErrInvalidClockTime}
	}
	end, err := ParseClockTime(spec.EndTime)
	if err != nil {
		return Slot{}, &SlotValidationError{Field: "endTime", Value: spec.EndTime, Err: ErrInvalidClockTime}
	}

	keywords := make([]string, 0, len(spec.Keywords))
	for _, kw := range spec.Keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		keywords = append(keywords, kw)
	}

	days := make([]time.Weekday, 0, len(spec.DaysOfWeek))
	for _, d := range spec.DaysOfWeek {
		if d < int(time.Sunday) || d > int(time.Saturday) {
			return Slot{}, &SlotValidationError{Field: "daysOfWeek", Value: fmt.Sprint(d), Err: ErrInvalidWeekday}
		}
		days = append(days, time.Weekday(d))
	}

	return Slot{
		category:    category,
		start:       start,
		end:         end,
		keywords:    keywords,
		description: spec.Description,
		priority:    spec.Priority,
		days:        days,
		color:       spec.Color,
	}, nil
}

// MustNewSlot is like NewSlot but panics on invalid input.
func MustNewSlot(spec SlotSpec) Slot {
	s, err := NewSlot(spec)
	if err != nil {
		panic(err)
	}
	return s
}

// NewSlots validates a list of slot definitions, keeping their order.
func NewSlots(specs []SlotSpec) ([]Slot, error) {
	slots := make([]Slot, 0, len(specs))
	for i, spec := range specs {
		s, err := NewSlot(spec)
		if err != nil {
			return nil, fmt.Errorf("slot %d: %w", i, err)
		}
		slots = append(slots, s)
	}
	return slots, nil
}

// Getters
func (s Slot) Category() string           { return s.category }
func (s Slot) StartTime() ClockTime       { return s.start }
func (s Slot) EndTime() ClockTime         { return s.end }
func (s Slot) Keywords() []string         { return slices.Clone(s.keywords) }
func (s Slot) Description() string        { return s.description }
func (s Slot) Priority() int              { return s.priority }
func (s Slot) DaysOfWeek() []time.Weekday { return slices.Clone(s.days) }
func (s Slot) Color() string              { return s.color }

// WrapsMidnight reports whether the window crosses midnight (e.g. 22:30-00:30).
func (s Slot) WrapsMidnight() bool {
	return s.end < s.start
}

// ActiveOn reports whether the slot applies on the given weekday.
// A slot without days applies every day.
func (s Slot) ActiveOn(day time.Weekday) bool {
	return len(s.days) == 0 || slices.Contains(s.days, day)
}

// Contains reports whether t falls inside the window. Start is inclusive,
// end is exclusive, so adjacent slots never share a boundary instant.
func (s Slot) Contains(t ClockTime) bool {
	if s.WrapsMidnight() {
		return t >= s.start || t < s.end
	}
	return t >= s.start && t < s.end
}

// Spec returns the serializable form of the slot.
func (s Slot) Spec() SlotSpec {
	days := make([]int, len(s.days))
	for i, d := range s.days {
		days[i] = int(d)
	}
	return SlotSpec{
		Category:    s.category,
		StartTime:   s.start.String(),
		EndTime:     s.end.String(),
		Keywords:    slices.Clone(s.keywords),
		Description: s.description,
		Priority:    s.priority,
		DaysOfWeek:  days,
		Color:       s.color,
	}
}

// SlotPatch describes a partial slot update. Nil fields keep the current value.
type SlotPatch struct {
	Category    *string
	StartTime   *string
	EndTime     *string
	Keywords    []string
	Description *string
	Priority    *int
	DaysOfWeek  []int
	Color       *string
}

// Apply returns a new slot with the patch merged over s.
func (s Slot) Apply(p SlotPatch) (Slot, error) {
	spec := s.Spec()
	if p.Category != nil {
		spec.Category = *p.Category
	}
	if p.StartTime != nil {
		spec.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		spec.EndTime = *p.EndTime
	}
	if p.Keywords != nil {
		spec.Keywords = p.Keywords
	}
	if p.Description != nil {
		spec.Description = *p.Description
	}
	if p.Priority != nil {
		spec.Priority = *p.Priority
	}
	if p.DaysOfWeek != nil {
		spec.DaysOfWeek = p.DaysOfWeek
	}
	if p.Color != nil {
		spec.Color = *p.Color
	}
	return NewSlot(spec)
}

// SlotSpecs converts slots back to their serializable form.
func SlotSpecs(slots []Slot) []SlotSpec {
	specs := make([]SlotSpec, len(slots))
	for i, s := range slots {
		specs[i] = s.Spec()
	}
	return specs
}
