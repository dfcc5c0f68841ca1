package domain

// Confidence is a coarse quality label for a scheduling decision.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// MatchMethod records how a task ended up in a slot.
type MatchMethod string

const (
	MatchMethodKeyword MatchMethod = "keyword"
	MatchMethodLLM     MatchMethod = "llm"
	MatchMethodManual  MatchMethod = "manual"
)

// SmartScheduleResult is the placement chosen for a task.
type SmartScheduleResult struct {
	Category       string      `json:"category"`
	StartTime      string      `json:"startTime"`
	EndTime        string      `json:"endTime"`
	MatchMethod    MatchMethod `json:"matchMethod"`
	Confidence     Confidence  `json:"confidence"`
	MatchedKeyword string      `json:"matchedKeyword,omitempty"`
}

// NewSmartScheduleResult builds a result from the chosen slot.
func NewSmartScheduleResult(slot Slot, method MatchMethod, confidence Confidence, keyword string) *SmartScheduleResult {
	return &SmartScheduleResult{
		Category:       slot.Category(),
		StartTime:      slot.StartTime().String(),
		EndTime:        slot.EndTime().String(),
		MatchMethod:    method,
		Confidence:     confidence,
		MatchedKeyword: keyword,
	}
}
