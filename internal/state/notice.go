package state

import (
	"context"
	"errors"
	"fmt"

	"github.com/ukm/parcel/internal/nav"
	"github.com/ukm/parcel/internal/orders"
	"github.com/ukm/parcel/internal/session"
)

// Notice turns a rejected intent into the message shown in the toast.
func Notice(err error) string {
	var (
		validation *session.ValidationError
		notFound   *orders.NotFoundError
		unknown    *nav.UnknownOrderError
		invalid    *orders.InvalidTransitionError
		selection  *nav.InvalidSelectionError
		unreach    *nav.UnreachableError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &validation):
		return "Completa usuario y contraseña."
	case errors.As(err, &notFound), errors.As(err, &unknown):
		return "Pedido no encontrado."
	case errors.As(err, &invalid):
		return fmt.Sprintf("No se puede pasar de %s a %s.", invalid.From.Label(), invalid.To.Label())
	case errors.As(err, &selection):
		return "Selecciona un pedido primero."
	case errors.As(err, &unreach):
		return "Pantalla no disponible desde aquí."
	case errors.Is(err, nav.ErrNotAuthenticated):
		return "Inicia sesión para continuar."
	case errors.Is(err, context.DeadlineExceeded):
		return "El servicio no respondió a tiempo."
	case errors.Is(err, context.Canceled):
		return "Operación cancelada."
	default:
		return "Algo salió mal: " + err.Error()
	}
}
