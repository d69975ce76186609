package order

import "errors"

var ErrInvalidTransition = errors.New("invalid order status transition")

type Status string

const (
	StatusPlaced    Status = "order_placed"
	StatusConfirmed Status = "order_confirmed"
	StatusInTransit Status = "in_transit"
	StatusDelivered Status = "delivered"
	StatusInvoiced  Status = "invoiced"
	StatusRejected  Status = "rejected"
)

func NewStatus(value string) (Status, error) {
	switch Status(value) {
	case StatusPlaced, StatusConfirmed, StatusInTransit, StatusDelivered, StatusInvoiced, StatusRejected:
		return Status(value), nil
	default:
		return "", ErrInvalidTransition
	}
}

func (s Status) String() string {
	return string(s)
}

// transitions is the full admin-driven state machine. rejected is a
// terminal branch reachable only before shipping starts.
var transitions = map[Status][]Status{
	StatusPlaced:    {StatusConfirmed, StatusRejected},
	StatusConfirmed: {StatusInTransit, StatusRejected},
	StatusInTransit: {StatusDelivered},
	StatusDelivered: {StatusInvoiced},
	StatusInvoiced:  {},
	StatusRejected:  {},
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}
