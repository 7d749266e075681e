// Package order contiene la máquina de estados del ciclo de vida de una orden:
//
//	pending → paid → completed
//	pending → cancelled
//	paid    → cancelled   (solo mientras el vendor no la marque completada)
//
// Las transiciones son monótonas: completed y cancelled son terminales.
package order

import "github.com/tu-usuario/eventos-api/internal/domain"

// Estados del ciclo de vida.
const (
	StatusPending   = "pending"
	StatusPaid      = "paid"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// transitions: estado origen → estados destino permitidos.
var transitions = map[string][]string{
	StatusPending:   {StatusPaid, StatusCancelled},
	StatusPaid:      {StatusCompleted, StatusCancelled},
	StatusCancelled: {},
	StatusCompleted: {},
}

// CanTransition indica si el paso from → to está permitido por el grafo.
func CanTransition(from, to string) bool {
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// Transition valida el paso from → to y devuelve ErrInvalidTransition si el
// grafo no lo permite. No muta nada: el estado persistido se actualiza con un
// UPDATE condicionado al estado origen para resistir escrituras concurrentes.
func Transition(from, to string) error {
	if !CanTransition(from, to) {
		return domain.ErrInvalidTransition
	}
	return nil
}

// Terminal indica si el estado no admite más transiciones.
func Terminal(status string) bool {
	return len(transitions[status]) == 0
}

// ValidStatus indica si el estado es uno de los del ciclo de vida.
func ValidStatus(s string) bool {
	_, ok := transitions[s]
	return ok
}
