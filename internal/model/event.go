package model

// EventEntry is one decoded contract event.
type EventEntry struct {
	BlockNumber     uint64                 `json:"block_number"`
	TransactionHash string                 `json:"transaction_hash"`
	Args            map[string]interface{} `json:"args"`
	Timestamp       string                 `json:"timestamp"`
}

// EventResult is the monitor_events success payload.
type EventResult struct {
	Chain       string       `json:"chain"`
	Contract    string       `json:"contract"`
	EventName   string       `json:"event_name"`
	FromBlock   uint64       `json:"from_block"`
	ToBlock     uint64       `json:"to_block"`
	EventsCount int          `json:"events_count"`
	Events      []EventEntry `json:"events"`
}
