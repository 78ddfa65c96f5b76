package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType names a marketplace notification consumed by off-core observers.
type EventType string

const (
	EventProjectSubmitted EventType = "ProjectSubmitted"
	EventProjectAccepted  EventType = "ProjectAccepted"
	EventProjectRejected  EventType = "ProjectRejected"
	EventProjectEdited    EventType = "ProjectEdited"
	EventOrderCreated     EventType = "OrderCreated"
	EventOrderFilled      EventType = "OrderFilled"
	EventOrderClosed      EventType = "OrderClosed"
	EventOrderExpired     EventType = "OrderExpired"
	EventOrderNotExpired  EventType = "OrderNotExpired"
	EventFeeUpdated       EventType = "FeeUpdated"
	EventPauseToggled     EventType = "PauseToggled"
)

// Event is the notification envelope published to observers. Notifications are
// emitted after the triggering operation commits and are never part of the
// transactional state change.
type Event struct {
	Type       EventType   `json:"type"`
	OccurredAt time.Time   `json:"occurred_at"`
	Data       interface{} `json:"data"`
}

// NewEvent builds an event stamped with the current time.
func NewEvent(t EventType, data interface{}) Event {
	return Event{Type: t, OccurredAt: time.Now().UTC(), Data: data}
}

// ProjectEventData is the payload for project lifecycle notifications.
type ProjectEventData struct {
	ProjectID     int64         `json:"project_id"`
	Owner         uuid.UUID     `json:"owner"`
	Status        ProjectStatus `json:"status"`
	IssuedCredits int64         `json:"issued_credits"`
}

// OrderEventData is the payload for order lifecycle notifications.
// Money fields are decimal strings.
type OrderEventData struct {
	OrderID       int64      `json:"order_id"`
	Seller        uuid.UUID  `json:"seller"`
	Buyer         *uuid.UUID `json:"buyer,omitempty"`
	ProjectID     int64      `json:"project_id"`
	CreditsAmount int64      `json:"credits_amount"`
	TotalPrice    string     `json:"total_price"`
}

// FeeEventData is the payload for FeeUpdated.
type FeeEventData struct {
	FeeBps int64 `json:"fee_bps"`
}

// PauseEventData is the payload for PauseToggled.
type PauseEventData struct {
	Paused bool `json:"paused"`
}

// NewOrderEventData builds an order payload from an order record.
func NewOrderEventData(o *TradeOrder, buyer *uuid.UUID) OrderEventData {
	return OrderEventData{
		OrderID:       o.ID,
		Seller:        o.Seller,
		Buyer:         buyer,
		ProjectID:     o.ProjectID,
		CreditsAmount: o.CreditsAmount,
		TotalPrice:    o.TotalPrice.String(),
	}
}
