package domain

import "github.com/google/uuid"

var marktizKeywords = []string{"marktiz", "startup", "product", "feature", "deploy", "backend", "frontend", "api"}

// defaultSlotSpecs is the built-in daily template used until a user
// stores a schedule of their own.
var defaultSlotSpecs = []SlotSpec{
	{
		Category:    "Marktiz",
		StartTime:   "10:00",
		EndTime:     "14:00",
		Keywords:    marktizKeywords,
		Description: "Main startup work",
		Priority:    10,
		Color:       "#6366f1",
	},
	{
		Category:    "Bug Bounty",
		StartTime:   "14:00",
		EndTime:     "16:00",
		Keywords:    []string{"bug bounty", "bounty", "security", "vulnerability", "pentest", "hack", "exploit", "xss", "sqli"},
		Description: "Bug bounty hunting",
		Priority:    8,
		Color:       "#ef4444",
	},
	{
		Category:    "Gymlingoo",
		StartTime:   "16:00",
		EndTime:     "18:00",
		Keywords:    []string{"gym", "workout", "exercise", "fitness", "content", "video", "youtube", "gymlingoo", "recording"},
		Description: "Gym + Content Creation",
		Priority:    7,
		Color:       "#22c55e",
	},
	{
		Category:    "Break",
		StartTime:   "18:00",
		EndTime:     "18:30",
		Keywords:    []string{"break", "rest", "food", "lunch", "dinner", "snack"},
		Description: "Food/Rest",
		Priority:    1,
		Color:       "#f59e0b",
	},
	{
		Category:    "Marktiz",
		StartTime:   "18:30",
		EndTime:     "22:30",
		Keywords:    marktizKeywords,
		Description: "Second session",
		Priority:    10,
		Color:       "#6366f1",
	},
	{
		Category:    "Gymlingoo",
		StartTime:   "22:30",
		EndTime:     "00:30",
		Keywords:    []string{"gymlingoo", "coding", "app", "mobile", "flutter", "react native"},
		Description: "Gymlingoo coding session",
		Priority:    7,
		Color:       "#22c55e",
	},
	{
		Category:    "Bug Bounty",
		StartTime:   "00:30",
		EndTime:     "02:30",
		Keywords:    []string{"bug bounty", "bounty", "security", "vulnerability", "pentest", "hack"},
		Description: "Bug bounty second session",
		Priority:    8,
		Color:       "#ef4444",
	},
	{
		Category:    "Sleep",
		StartTime:   "02:30",
		EndTime:     "10:00",
		Keywords:    []string{"sleep", "rest", "nap"},
		Description: "Rest",
		Priority:    0,
		Color:       "#64748b",
	},
}

// DefaultSlotSpecs returns a copy of the built-in template in raw form.
func DefaultSlotSpecs() []SlotSpec {
	specs := make([]SlotSpec, len(defaultSlotSpecs))
	for i, spec := range defaultSlotSpecs {
		// fresh slices so callers can't mutate the package template
		specs[i] = MustNewSlot(spec).Spec()
	}
	return specs
}

// DefaultSlots returns the validated built-in template.
func DefaultSlots() []Slot {
	slots := make([]Slot, len(defaultSlotSpecs))
	for i, spec := range defaultSlotSpecs {
		slots[i] = MustNewSlot(spec)
	}
	return slots
}

// DefaultSchedule returns an unsaved schedule built from the template.
func DefaultSchedule(userID uuid.UUID) *Schedule {
	return NewSchedule(userID, DefaultScheduleName, DefaultSlots())
}
