package textmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance_Basics(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"aspirin", "aspirin", 0},
		{"asprin", "aspirin", 1},
		{"paracetmol", "paracetamol", 1},
		{"kitten", "sitting", 3},
		{"Aspirin", "aspirin", 1}, // case-sensitive
		{"बुखार", "बुखा", 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Distance(tc.a, tc.b), "distance(%q,%q)", tc.a, tc.b)
	}
}

func TestDistance_SymmetricAndReflexive(t *testing.T) {
	words := []string{"", "a", "ibuprofen", "ibuprofin", "cetirizine", "zyrtec", "dolo 650"}
	for _, a := range words {
		assert.Zero(t, Distance(a, a))
		for _, b := range words {
			assert.Equal(t, Distance(a, b), Distance(b, a), "symmetry %q/%q", a, b)
		}
	}
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 100.0, Similarity("", ""))
	assert.Equal(t, 100.0, Similarity("advil", "advil"))
	assert.InDelta(t, 90.909, Similarity("paracetmol", "paracetamol"), 0.01)
	assert.Equal(t, 0.0, Similarity("", "abc"))
}
