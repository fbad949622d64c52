package textmatch

import (
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
)

// Distance devuelve la distancia de Levenshtein entre a y b (insert/delete/substitute).
// Es case-sensitive: quien llama normaliza antes.
func Distance(a, b string) int {
	if a == b {
		return 0
	}
	if a == "" {
		return utf8.RuneCountInString(b)
	}
	if b == "" {
		return utf8.RuneCountInString(a)
	}
	return edlib.LevenshteinDistance(a, b)
}

// Similarity convierte la distancia a un porcentaje 0..100:
// ((maxLen - distance) / maxLen) * 100. Dos strings vacíos son idénticos (100).
func Similarity(a, b string) float64 {
	la := utf8.RuneCountInString(a)
	lb := utf8.RuneCountInString(b)
	maxLen := la
	if lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 100
	}
	d := Distance(a, b)
	return float64(maxLen-d) / float64(maxLen) * 100
}
