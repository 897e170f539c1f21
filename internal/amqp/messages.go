package amqp

import (
	"encoding/json"
	"time"
)

// Record kinds carried in export messages.
const (
	KindRevenue     = "revenue"
	KindExpense     = "expense"
	KindAppointment = "appointment"
)

// RecordExportMessage asks the worker to export one ledger record. It
// carries only the kind and ID; the worker fetches the full record from
// storage.
type RecordExportMessage struct {
	Kind      string    `json:"kind"`
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

// NewRecordExportMessage creates an export message for the given record.
func NewRecordExportMessage(kind, id string) *RecordExportMessage {
	return &RecordExportMessage{
		Kind:      kind,
		ID:        id,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *RecordExportMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// RecordExportMessageFromJSON parses a message from JSON bytes.
func RecordExportMessageFromJSON(data []byte) (*RecordExportMessage, error) {
	var msg RecordExportMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
