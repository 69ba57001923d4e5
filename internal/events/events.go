package events

import "time"

// Event names published on the bus.
const (
	ProductAdded  = "product_added"
	ProductDelete = "product_delete"
	StocksAdded   = "stocks_added"
)

// Envelope is the wire shape of one bus event. Source and Bus come from
// process configuration; Detail is the serialized payload.
type Envelope struct {
	EventID    string    `json:"event_id"`
	Source     string    `json:"source"`
	DetailType string    `json:"detail_type"`
	Detail     string    `json:"detail"`
	Bus        string    `json:"event_bus_name"`
	Timestamp  time.Time `json:"timestamp"`
}
