package druglabels

import "context"

// Record es lo mínimo que esperamos de una fuente remota de etiquetas de medicamentos.
type Record struct {
	Name        string
	Category    string // propósito / clase
	Dosage      string
	Description string
}

// Source es best-effort y sin autenticación desde la perspectiva de este core.
// Cero resultados no es error.
type Source interface {
	Lookup(ctx context.Context, query string, limit int) ([]Record, error)
}
