package notify

import "context"

// Notification es un aviso simple para el dueño de la camada.
type Notification struct {
	Title   string
	Content string
}

// Notifier entrega avisos best-effort: el caller ignora el error si la
// operación principal ya quedó persistida.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}
