package statemachine

import (
	"testing"

	"food-marketplace-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		from models.OrderStatus
		to   models.OrderStatus
		ok   bool
	}{
		{name: "pending to processing", from: models.StatusPending, to: models.StatusProcessing, ok: true},
		{name: "pending to cancelled", from: models.StatusPending, to: models.StatusCancelled, ok: true},
		{name: "processing to completed", from: models.StatusProcessing, to: models.StatusCompleted, ok: true},
		{name: "processing to cancelled", from: models.StatusProcessing, to: models.StatusCancelled, ok: true},
		{name: "pending to completed skips processing", from: models.StatusPending, to: models.StatusCompleted, ok: false},
		{name: "completed is terminal", from: models.StatusCompleted, to: models.StatusCancelled, ok: false},
		{name: "cancelled is terminal", from: models.StatusCancelled, to: models.StatusPending, ok: false},
		{name: "processing back to pending", from: models.StatusProcessing, to: models.StatusPending, ok: false},
		{name: "self transition", from: models.StatusPending, to: models.StatusPending, ok: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := CanTransition(tt.from, tt.to)
			if tt.ok {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()

	assert.False(t, IsTerminal(models.StatusPending))
	assert.False(t, IsTerminal(models.StatusProcessing))
	assert.True(t, IsTerminal(models.StatusCompleted))
	assert.True(t, IsTerminal(models.StatusCancelled))
}

func TestValidTransitionsFrom(t *testing.T) {
	t.Parallel()

	assert.ElementsMatch(t,
		[]models.OrderStatus{models.StatusProcessing, models.StatusCancelled},
		ValidTransitionsFrom(models.StatusPending))
	assert.Empty(t, ValidTransitionsFrom(models.StatusCompleted))
}
