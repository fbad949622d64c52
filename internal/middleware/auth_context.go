package middleware

import (
	"context"
	"net/http"
	"strings"

	"medtrack-core/internal/platform/logger"
	"medtrack-core/internal/ports/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

const debugUserHeader = "X-Debug-User-ID"

// AuthContext:
// - verifier != nil y viene Bearer token => Verify() y setea claims.
// - verifier == nil => modo dev: X-Debug-User-ID setea claims.
// - Sin claims el request sigue; cada handler decide si exige usuario.
// El idioma preferido sale de Accept-Language si el verifier no lo trae.
func AuthContext(verifier auth.AuthVerifier, log logger.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var (
				claims auth.Claims
				found  bool
			)

			if verifier == nil {
				if uid := strings.TrimSpace(r.Header.Get(debugUserHeader)); uid != "" {
					claims = auth.Claims{UserID: uid}
					found = true
				}
			} else if token := bearerToken(r.Header.Get("Authorization")); token != "" {
				c, err := verifier.Verify(r.Context(), token)
				if err != nil {
					// No cortamos aquí: el handler decide 401.
					log.Debug("token verification failed", map[string]any{"error": err.Error()})
				} else {
					claims = c
					found = true
				}
			}

			if !found {
				next.ServeHTTP(w, r)
				return
			}

			if claims.Language == "" {
				claims.Language = primaryLanguage(r.Header.Get("Accept-Language"))
			}
			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// WithClaims adjunta claims al contexto (también útil en tests).
func WithClaims(ctx context.Context, c auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return auth.Claims{}, false
	}
	c, ok := v.(auth.Claims)
	return c, ok
}

func bearerToken(authHeader string) string {
	parts := strings.SplitN(strings.TrimSpace(authHeader), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// primaryLanguage toma el primer tag de Accept-Language y lo reduce al código base:
// "es-AR,es;q=0.9" => "es".
func primaryLanguage(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	first := strings.TrimSpace(strings.SplitN(header, ",", 2)[0])
	first = strings.SplitN(first, ";", 2)[0]
	base := strings.SplitN(first, "-", 2)[0]
	base = strings.ToLower(strings.TrimSpace(base))
	if base == "*" {
		return ""
	}
	return base
}
