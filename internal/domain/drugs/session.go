package drugs

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Session guarda el "último query" de un cliente: si el usuario re-escribe, la
// búsqueda anterior se cancela y su resultado (si llega) no pisa al nuevo.
type Session struct {
	matcher *Matcher

	mu      sync.Mutex
	latest  string
	cancel  context.CancelFunc
	current Result
}

func NewSession(m *Matcher) *Session {
	return &Session{matcher: m}
}

// Search corre la búsqueda y la aplica solo si sigue siendo la última.
// applied=false significa que otra búsqueda la reemplazó mientras corría.
func (s *Session) Search(ctx context.Context, query, category string, dataset []Candidate) (res Result, applied bool) {
	ctx, token := s.begin(ctx)
	res = s.matcher.Search(ctx, query, category, dataset)
	return res, s.commit(token, res)
}

// Current devuelve el último resultado aplicado.
func (s *Session) Current() Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Session) begin(parent context.Context) (context.Context, string) {
	ctx, cancel := context.WithCancel(parent)
	token := uuid.NewString()

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.latest = token
	s.cancel = cancel
	s.mu.Unlock()

	return ctx, token
}

func (s *Session) commit(token string, res Result) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.latest {
		return false
	}
	s.current = res
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	return true
}
