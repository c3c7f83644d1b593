package amqp

import (
	"encoding/json"
	"time"
)

// Report event kinds carried on the broker.
const (
	EventReportGenerated     = "report_generated"
	EventReportStored        = "report_stored"
	EventAddressesConfigured = "addresses_configured"
)

// ReportEventMessage is the lightweight event the engine publishes on every
// report lifecycle transition. It carries identifiers only; consumers that
// need the report body fetch it from the store.
type ReportEventMessage struct {
	Kind       string    `json:"kind"`
	Owner      string    `json:"owner"`
	PeriodKey  uint64    `json:"period_key,omitempty"`
	OccurredAt uint64    `json:"occurred_at"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewReportEventMessage creates an event message stamped with the current
// wall clock.
func NewReportEventMessage(kind, owner string, periodKey, occurredAt uint64) *ReportEventMessage {
	return &ReportEventMessage{
		Kind:       kind,
		Owner:      owner,
		PeriodKey:  periodKey,
		OccurredAt: occurredAt,
		Timestamp:  time.Now(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *ReportEventMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ReportEventMessageFromJSON creates a message from JSON bytes.
func ReportEventMessageFromJSON(data []byte) (*ReportEventMessage, error) {
	var msg ReportEventMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
