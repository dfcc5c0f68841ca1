package persistence

import (
	"encoding/json"
	"fmt"

	"github.com/felixgeelhaar/slotwise/internal/scheduling/domain"
)

// marshalSlots encodes slots as the JSON array stored in the slots column.
func marshalSlots(slots []domain.Slot) ([]byte, error) {
	data, err := json.Marshal(domain.SlotSpecs(slots))
	if err != nil {
		return nil, fmt.Errorf("failed to encode slots: %w", err)
	}
	return data, nil
}

// unmarshalSlots decodes and validates a stored slots column.
func unmarshalSlots(data []byte) ([]domain.Slot, error) {
	if len(data) == 0 {
		return []domain.Slot{}, nil
	}
	var specs []domain.SlotSpec
	if err := json.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("failed to decode slots: %w", err)
	}
	return domain.NewSlots(specs)
}
