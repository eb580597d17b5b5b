package statemachine

import (
	"errors"

	"food-marketplace-api/models"
)

// validTransitions is the authoritative state machine definition.
// COMPLETED and CANCELLED are terminal.
var validTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.StatusPending:    {models.StatusProcessing, models.StatusCancelled},
	models.StatusProcessing: {models.StatusCompleted, models.StatusCancelled},
}

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	return validTransitions[status]
}

// IsTerminal reports whether no transition leaves the given state.
func IsTerminal(status models.OrderStatus) bool {
	return len(validTransitions[status]) == 0
}

// CanTransition checks whether an order may move from one state to another
func CanTransition(from, to models.OrderStatus) error {
	for _, next := range validTransitions[from] {
		if next == to {
			return nil
		}
	}
	return errors.New(
		"invalid transition: " + string(from) + " -> " + string(to) +
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
