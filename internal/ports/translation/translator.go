package translation

import (
	"context"
	"errors"
	"time"
)

// Translator traduce texto libre a targetLang (código corto, p.ej. "es").
// Ante un error quien llama usa el texto original; nunca se propaga al usuario.
type Translator interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
}

// Func adapta una función a Translator.
type Func func(ctx context.Context, text, targetLang string) (string, error)

func (f Func) Translate(ctx context.Context, text, targetLang string) (string, error) {
	return f(ctx, text, targetLang)
}

// ErrCacheMiss lo devuelve Cache.Get cuando la clave no existe o expiró.
var ErrCacheMiss = errors.New("translation cache miss")

// Cache guarda traducciones ya resueltas. La posee quien compone el traductor.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}
