package auth

import "context"

// Claims representa la identidad del usuario que consulta. Language es el idioma
// preferido (código corto, p.ej. "es"); vacío = idioma por defecto del servicio.
type Claims struct {
	UserID   string
	Email    string
	Language string
}

// AuthVerifier verifica un token y devuelve claims o error.
// La autenticación vive fuera de este core; aquí solo consumimos el contrato.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
