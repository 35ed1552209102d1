package payments

import "encoding/json"

// Event types the webhook handler acts on.
const EventCheckoutCompleted = "checkout.session.completed"

// Event is one out-of-band notification from the payment collaborator.
// Deliveries are unordered and at-least-once; consumers must be idempotent
// per the object's payment reference.
type Event struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object CompletedCheckout `json:"object"`
	} `json:"data"`
}

// CompletedCheckout is the payload of a checkout.session.completed event.
type CompletedCheckout struct {
	ID            string            `json:"id"`             // checkout session id
	PaymentIntent string            `json:"payment_intent"` // external payment reference
	AmountTotal   int64             `json:"amount_total"`
	Currency      string            `json:"currency"`
	Metadata      map[string]string `json:"metadata"`
}

// ParseEvent decodes a verified webhook payload.
func ParseEvent(payload []byte) (Event, error) {
	var ev Event
	if err := json.Unmarshal(payload, &ev); err != nil {
		return Event{}, err
	}
	return ev, nil
}
