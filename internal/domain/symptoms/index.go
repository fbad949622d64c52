package symptoms

import (
	"strings"
)

// Index mapea tokens (síntomas, partes del cuerpo, en varios idiomas/romanizaciones)
// a pistas de categoría o nombre de medicamento. Se construye una vez y es inmutable,
// así que se puede leer desde cualquier goroutine.
type Index struct {
	hints map[string][]string
}

// Entry es una fila de la tabla declarativa. Tokens repetidos entre entries se fusionan.
type Entry struct {
	Tokens []string
	Hints  []string
}

// New construye el índice. Tokens y hints se guardan en minúsculas; el orden de las
// hints respeta el orden de declaración (sin duplicados).
func New(entries []Entry) *Index {
	idx := &Index{hints: make(map[string][]string)}
	for _, e := range entries {
		for _, tok := range e.Tokens {
			tok = strings.ToLower(strings.TrimSpace(tok))
			if tok == "" {
				continue
			}
			idx.hints[tok] = appendUnique(idx.hints[tok], e.Hints...)
		}
	}
	return idx
}

// Lookup es exact-token: sin fuzzy en esta capa.
func (i *Index) Lookup(token string) []string {
	if i == nil {
		return nil
	}
	h := i.hints[strings.ToLower(strings.TrimSpace(token))]
	if len(h) == 0 {
		return nil
	}
	out := make([]string, len(h))
	copy(out, h)
	return out
}

// Filters deriva los "symptom filters" de una query: se prueba la query completa y
// después cada token separado por espacios. Resultado único, en minúsculas y en orden
// de aparición.
func (i *Index) Filters(query string) []string {
	if i == nil {
		return nil
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var out []string
	out = appendUnique(out, i.hints[q]...)
	for _, tok := range strings.Fields(q) {
		out = appendUnique(out, i.hints[tok]...)
	}
	return out
}

// Len devuelve la cantidad de tokens indexados.
func (i *Index) Len() int {
	if i == nil {
		return 0
	}
	return len(i.hints)
}

func appendUnique(dst []string, values ...string) []string {
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		dup := false
		for _, have := range dst {
			if have == v {
				dup = true
				break
			}
		}
		if !dup {
			dst = append(dst, v)
		}
	}
	return dst
}
