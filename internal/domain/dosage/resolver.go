package dosage

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"medtrack-core/internal/textmatch"
)

var (
	ErrInvalidName = errors.New("invalid medicine name")
	ErrInvalidAge  = errors.New("invalid age")
)

const (
	MinQueryLength = 2
	MaxAge         = 150

	// Umbral de similitud (%) para aceptar un match por distancia de edición.
	FuzzyThreshold = 65.0

	scoreExact     = 100.0
	scorePrefix    = 90.0
	scoreSubstring = 80.0
)

// NotFoundError es el "no encontrado" de primera clase: no es un error de validación.
type NotFoundError struct {
	Query    string
	Examples []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("medicine %q not found; try for example: %s", e.Query, strings.Join(e.Examples, ", "))
}

type Resolver struct {
	table *Table
}

func NewResolver(table *Table) *Resolver {
	if table == nil {
		table = DefaultTable()
	}
	return &Resolver{table: table}
}

// FindMedicine resuelve un nombre libre contra claves y alias.
// Prioridad: igualdad (100), prefijo (90), substring en cualquier dirección (80),
// similitud por distancia >= 65. Gana el mayor score; en empate, el primero en orden
// de la tabla (clave antes que sus alias).
func (r *Resolver) FindMedicine(query string) (Match, bool) {
	q := normalize(query)
	if utf8.RuneCountInString(q) < MinQueryLength {
		return Match{}, false
	}

	var best Match
	found := false

	for _, f := range r.table.families {
		candidates := make([]string, 0, 1+len(f.Aliases))
		candidates = append(candidates, f.Key)
		candidates = append(candidates, f.Aliases...)

		for _, name := range candidates {
			score, ok := matchScore(q, normalize(name))
			if !ok {
				continue
			}
			if !found || score > best.Score {
				best = Match{Key: f.Key, Matched: name, Score: score}
				found = true
			}
		}
	}

	return best, found
}

// Recommend valida la entrada, resuelve el medicamento y elige la banda de edad.
// Si ninguna banda contiene la edad se usa la última de la familia (la de mayor edad).
func (r *Resolver) Recommend(name, age, gender string) (Recommendation, error) {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) < MinQueryLength {
		return Recommendation{}, ErrInvalidName
	}

	years, err := strconv.Atoi(strings.TrimSpace(age))
	if err != nil || years < 0 || years > MaxAge {
		return Recommendation{}, ErrInvalidAge
	}

	m, ok := r.FindMedicine(name)
	if !ok {
		return Recommendation{}, &NotFoundError{Query: name, Examples: r.examples(3)}
	}

	f, _ := r.table.Get(m.Key)
	rule, fallback := selectRule(f.Rules, years)

	g := Gender(strings.ToLower(strings.TrimSpace(gender)))

	rec := Recommendation{
		Medicine:     f.Key,
		MatchedAs:    m.Matched,
		MatchScore:   m.Score,
		Category:     f.Category,
		Age:          years,
		Gender:       g,
		AgeGroup:     rule.AgeGroup,
		Dosage:       rule.Dosage,
		Frequency:    rule.Frequency,
		MaxDaily:     rule.MaxDaily,
		Notes:        rule.Notes,
		Disclaimer:   Disclaimer,
		FallbackBand: fallback,
	}
	if note, ok := rule.GenderNotes[g]; ok && note != "" {
		rec.GenderNote = note
	}

	return rec, nil
}

// selectRule: primera banda que contiene la edad, en orden de tabla; si no hay, la última.
func selectRule(rules []Rule, age int) (Rule, bool) {
	for _, rule := range rules {
		if rule.Contains(age) {
			return rule, false
		}
	}
	return rules[len(rules)-1], true
}

func matchScore(q, target string) (float64, bool) {
	if target == "" {
		return 0, false
	}
	switch {
	case q == target:
		return scoreExact, true
	case strings.HasPrefix(target, q):
		return scorePrefix, true
	case strings.Contains(target, q) || strings.Contains(q, target):
		return scoreSubstring, true
	}

	sim := textmatch.Similarity(q, target)
	if sim >= FuzzyThreshold {
		return sim, true
	}
	return 0, false
}

func (r *Resolver) examples(n int) []string {
	keys := r.table.Keys()
	if len(keys) > n {
		keys = keys[:n]
	}
	return keys
}

// normalize: minúsculas y solo letras/dígitos.
func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
