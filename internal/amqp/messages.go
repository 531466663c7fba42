package amqp

import (
	"encoding/json"
	"time"
)

// DatasetChangedMessage notifies other consumers that a stored dataset
// (budget or debts) was written. It carries only the dataset key and a
// monotonically increasing revision; consumers fetch the current value
// from the store themselves.
type DatasetChangedMessage struct {
	Dataset   string    `json:"dataset"`
	Revision  int64     `json:"revision"`
	Timestamp time.Time `json:"timestamp"`
}

func NewDatasetChangedMessage(dataset string, revision int64) *DatasetChangedMessage {
	return &DatasetChangedMessage{
		Dataset:   dataset,
		Revision:  revision,
		Timestamp: time.Now(),
	}
}

func (m *DatasetChangedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func DatasetChangedMessageFromJSON(data []byte) (*DatasetChangedMessage, error) {
	var msg DatasetChangedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
