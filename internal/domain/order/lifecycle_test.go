package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/eventos-api/internal/domain"
	"github.com/tu-usuario/eventos-api/internal/domain/order"
)

// Tabla completa de transiciones: las cuatro permitidas y todo lo demás prohibido.
func TestCanTransition_Tabla(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{order.StatusPending, order.StatusPaid, true},
		{order.StatusPending, order.StatusCancelled, true},
		{order.StatusPaid, order.StatusCompleted, true},
		{order.StatusPaid, order.StatusCancelled, true},

		{order.StatusPending, order.StatusCompleted, false}, // no se completa sin pagar
		{order.StatusPaid, order.StatusPending, false},      // sin retrocesos
		{order.StatusCancelled, order.StatusPending, false},
		{order.StatusCancelled, order.StatusPaid, false},
		{order.StatusCompleted, order.StatusCancelled, false}, // terminal
		{order.StatusCompleted, order.StatusPaid, false},
		{order.StatusPending, order.StatusPending, false},
		{"desconocido", order.StatusPaid, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, order.CanTransition(tc.from, tc.to),
			"transición %s → %s", tc.from, tc.to)
	}
}

func TestTransition_Invalida_RetornaErrInvalidTransition(t *testing.T) {
	err := order.Transition(order.StatusCompleted, order.StatusCancelled)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	assert.NoError(t, order.Transition(order.StatusPending, order.StatusPaid))
}

func TestTerminal(t *testing.T) {
	assert.False(t, order.Terminal(order.StatusPending))
	assert.False(t, order.Terminal(order.StatusPaid))
	assert.True(t, order.Terminal(order.StatusCancelled))
	assert.True(t, order.Terminal(order.StatusCompleted))
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{order.StatusPending, order.StatusPaid, order.StatusCancelled, order.StatusCompleted} {
		assert.True(t, order.ValidStatus(s), s)
	}
	assert.False(t, order.ValidStatus("shipped"))
	assert.False(t, order.ValidStatus(""))
}
