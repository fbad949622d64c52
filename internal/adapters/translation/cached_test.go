package translation

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"medtrack-core/internal/adapters/storage/memory"
	ports "medtrack-core/internal/ports/translation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingTranslator struct {
	calls atomic.Int32
	err   error
}

func (c *countingTranslator) Translate(ctx context.Context, text, lang string) (string, error) {
	c.calls.Add(1)
	if c.err != nil {
		return "", c.err
	}
	return lang + ":" + text, nil
}

func TestCached_CachesSuccessfulTranslations(t *testing.T) {
	next := &countingTranslator{}
	c := NewCached(next, memory.NewTranslationCache(), nil, CachedOptions{SourceLang: "en"})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		out, err := c.Translate(ctx, "Bleeding risk", "es")
		require.NoError(t, err)
		assert.Equal(t, "es:Bleeding risk", out)
	}
	assert.Equal(t, int32(1), next.calls.Load())

	_, _ = c.Translate(ctx, "Bleeding risk", "hi")
	assert.Equal(t, int32(2), next.calls.Load())
}

func TestCached_ShortCircuits(t *testing.T) {
	next := &countingTranslator{}
	c := NewCached(next, nil, nil, CachedOptions{SourceLang: "en"})
	ctx := context.Background()

	out, err := c.Translate(ctx, "hello", "EN")
	require.NoError(t, err)
	assert.Equal(t, "hello", out)

	out, err = c.Translate(ctx, "  ", "es")
	require.NoError(t, err)
	assert.Equal(t, "  ", out)

	assert.Zero(t, next.calls.Load())
}

func TestCached_FailuresAreNotCached(t *testing.T) {
	next := &countingTranslator{err: errors.New("down")}
	cache := memory.NewTranslationCache()
	c := NewCached(next, cache, nil, CachedOptions{})

	_, err := c.Translate(context.Background(), "hello", "es")
	require.Error(t, err)
	assert.Zero(t, cache.Len())
}

type brokenCache struct{}

func (brokenCache) Get(ctx context.Context, key string) (string, error) {
	return "", errors.New("cache down")
}

func (brokenCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return errors.New("cache down")
}

var _ ports.Cache = brokenCache{}

func TestCached_BrokenCacheStillTranslates(t *testing.T) {
	next := &countingTranslator{}
	c := NewCached(next, brokenCache{}, nil, CachedOptions{})

	out, err := c.Translate(context.Background(), "hello", "es")
	require.NoError(t, err)
	assert.Equal(t, "es:hello", out)
}

type gatedTranslator struct {
	calls   atomic.Int32
	started chan struct{}
	release chan struct{}
}

func (g *gatedTranslator) Translate(ctx context.Context, text, lang string) (string, error) {
	if g.calls.Add(1) == 1 {
		close(g.started)
	}
	<-g.release
	return "hola", nil
}

func TestCached_DeduplicatesInFlight(t *testing.T) {
	next := &gatedTranslator{started: make(chan struct{}), release: make(chan struct{})}
	c := NewCached(next, memory.NewTranslationCache(), nil, CachedOptions{})

	var wg sync.WaitGroup
	results := make([]string, 5)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = c.Translate(context.Background(), "hello", "es")
		}(i)
	}

	<-next.started
	time.Sleep(50 * time.Millisecond)
	close(next.release)
	wg.Wait()

	assert.Equal(t, int32(1), next.calls.Load())
	for _, r := range results {
		assert.Equal(t, "hola", r)
	}
}
