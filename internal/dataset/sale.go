package dataset

import "time"

// TicketSale is one purchase transaction for an event. Sales exist only
// for events with a known attendance figure.
type TicketSale struct {
	ID              string    `json:"sale_id"`
	EventID         string    `json:"event_id"`
	Date            time.Time `json:"sale_date"`
	DaysBeforeEvent int       `json:"days_before_event"`
	Quantity        int       `json:"quantity_sold"`
	TicketType      string    `json:"ticket_type"` // general or vip
	UnitPrice       float64   `json:"unit_price"`
	Fees            float64   `json:"fees"`
	TotalAmount     float64   `json:"total_amount"`
}
