package statemachine

import (
	"errors"

	"homecook-api/models"
)

// Transition defines a valid state change
type Transition struct {
	From models.OrderStatus `json:"from"`
	To   models.OrderStatus `json:"to"`
}

// validTransitions is the authoritative lifecycle definition: the linear
// fulfilment chain plus cancellation from every non-terminal state.
var validTransitions = []Transition{
	{From: models.StatusPending, To: models.StatusConfirmed},
	{From: models.StatusConfirmed, To: models.StatusPreparing},
	{From: models.StatusPreparing, To: models.StatusReady},
	{From: models.StatusReady, To: models.StatusOutForDelivery},
	{From: models.StatusOutForDelivery, To: models.StatusDelivered},

	{From: models.StatusPending, To: models.StatusCancelled},
	{From: models.StatusConfirmed, To: models.StatusCancelled},
	{From: models.StatusPreparing, To: models.StatusCancelled},
	{From: models.StatusReady, To: models.StatusCancelled},
	{From: models.StatusOutForDelivery, To: models.StatusCancelled},
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[Transition]bool {
	m := make(map[Transition]bool)
	for _, t := range validTransitions {
		m[t] = true
	}
	return m
}()

// IsTerminal reports whether no transition leaves the given state.
func IsTerminal(status models.OrderStatus) bool {
	return len(ValidTransitionsFrom(status)) == 0
}

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	for _, t := range validTransitions {
		if t.From == status {
			nexts = append(nexts, t.To)
		}
	}
	return nexts
}

// CanTransition checks whether an order may move from one state to another.
// Unknown status values fail the lookup and are rejected like any other
// invalid move.
func CanTransition(from, to models.OrderStatus) error {
	if transitionMap[Transition{From: from, To: to}] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " to " + string(to) +
			". Valid transitions from " + string(from) + " are: " + describeValidFrom(from),
	)
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
