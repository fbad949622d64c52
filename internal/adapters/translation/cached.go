// Package translation compone traductores: caché explícita + deduplicación
// de llamadas en vuelo.
package translation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"medtrack-core/internal/platform/logger"
	ports "medtrack-core/internal/ports/translation"

	"golang.org/x/sync/singleflight"
)

const DefaultTTL = 24 * time.Hour

// Cached envuelve un Translator. Solo se cachean traducciones exitosas.
type Cached struct {
	next       ports.Translator
	cache      ports.Cache
	ttl        time.Duration
	sourceLang string
	log        logger.Logger

	group singleflight.Group
}

type CachedOptions struct {
	TTL        time.Duration
	SourceLang string // idioma del texto original; traducir a él es un no-op
}

func NewCached(next ports.Translator, cache ports.Cache, log logger.Logger, opts CachedOptions) *Cached {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Cached{
		next:       next,
		cache:      cache,
		ttl:        opts.TTL,
		sourceLang: normalizeLang(opts.SourceLang),
		log:        log.With(map[string]any{"component": "translation_cache"}),
	}
}

func (c *Cached) Translate(ctx context.Context, text, targetLang string) (string, error) {
	lang := normalizeLang(targetLang)
	if strings.TrimSpace(text) == "" || lang == "" || lang == c.sourceLang {
		return text, nil
	}

	key := cacheKey(lang, text)
	if c.cache != nil {
		v, err := c.cache.Get(ctx, key)
		if err == nil {
			return v, nil
		}
		if !errors.Is(err, ports.ErrCacheMiss) {
			c.log.Warn("translation cache read failed", map[string]any{"lang": lang, "error": err.Error()})
		}
	}

	// El ctx del primer llamador gobierna la llamada compartida.
	v, err, _ := c.group.Do(key, func() (any, error) {
		out, err := c.next.Translate(ctx, text, lang)
		if err != nil {
			return "", err
		}
		if c.cache != nil {
			if err := c.cache.Set(ctx, key, out, c.ttl); err != nil {
				c.log.Warn("translation cache write failed", map[string]any{"lang": lang, "error": err.Error()})
			}
		}
		return out, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func cacheKey(lang, text string) string {
	sum := sha256.Sum256([]byte(text))
	return lang + "|" + hex.EncodeToString(sum[:])
}

func normalizeLang(lang string) string {
	return strings.ToLower(strings.TrimSpace(lang))
}

var _ ports.Translator = (*Cached)(nil)
