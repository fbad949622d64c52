package dosage

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bandTable(t *testing.T) *Table {
	t.Helper()
	tbl, err := NewTable(Family{
		Key:      "testol",
		Aliases:  []string{"testex"},
		Category: "Test",
		Rules: []Rule{
			{AgeGroup: "child", MinAge: 0, MaxAge: 12, Dosage: "child-dose"},
			{AgeGroup: "adult", MinAge: 12, MaxAge: 65, Dosage: "adult-dose",
				GenderNotes: map[Gender]string{GenderFemale: "female note"}},
			{AgeGroup: "senior", MinAge: 65, MaxAge: 150, Dosage: "senior-dose"},
		},
	})
	require.NoError(t, err)
	return tbl
}

func TestFindMedicine_ShortQueriesReturnNone(t *testing.T) {
	r := NewResolver(nil)
	for _, q := range []string{"", "p", " a ", "-", "x!"} {
		_, ok := r.FindMedicine(q)
		assert.False(t, ok, "query %q", q)
	}
}

func TestFindMedicine_Priorities(t *testing.T) {
	r := NewResolver(nil)

	m, ok := r.FindMedicine("Paracetamol")
	require.True(t, ok)
	assert.Equal(t, "paracetamol", m.Key)
	assert.Equal(t, 100.0, m.Score)

	m, ok = r.FindMedicine("tylenol")
	require.True(t, ok)
	assert.Equal(t, "paracetamol", m.Key)
	assert.Equal(t, "tylenol", m.Matched)
	assert.Equal(t, 100.0, m.Score)

	m, ok = r.FindMedicine("ibupro")
	require.True(t, ok)
	assert.Equal(t, "ibuprofen", m.Key)
	assert.Equal(t, 90.0, m.Score)

	m, ok = r.FindMedicine("Zyrtec-D 10mg")
	require.True(t, ok)
	assert.Equal(t, "cetirizine", m.Key)
	assert.Equal(t, 80.0, m.Score)

	m, ok = r.FindMedicine("paracetmol")
	require.True(t, ok)
	assert.Equal(t, "paracetamol", m.Key)
	assert.InDelta(t, 90.9, m.Score, 0.1)

	_, ok = r.FindMedicine("qwertyuiop")
	assert.False(t, ok)
}

func TestFindMedicine_TieGoesToFirstInTableOrder(t *testing.T) {
	tbl, err := NewTable(
		Family{Key: "alphazine", Rules: []Rule{{MinAge: 0, MaxAge: 150}}},
		Family{Key: "alphazone", Rules: []Rule{{MinAge: 0, MaxAge: 150}}},
	)
	require.NoError(t, err)
	r := NewResolver(tbl)

	// prefijo de ambas: mismo score, gana la declarada primero
	for i := 0; i < 20; i++ {
		m, ok := r.FindMedicine("alphaz")
		require.True(t, ok)
		assert.Equal(t, "alphazine", m.Key)
	}
}

func TestRecommend_SelectsContainingBand(t *testing.T) {
	r := NewResolver(bandTable(t))

	for age := 0; age <= 150; age++ {
		rec, err := r.Recommend("testol", strconv.Itoa(age), "other")
		require.NoError(t, err)

		want := "senior-dose"
		switch {
		case age < 12:
			want = "child-dose"
		case age < 65:
			want = "adult-dose"
		}
		assert.Equal(t, want, rec.Dosage, "age %d", age)
		assert.Equal(t, age >= 150, rec.FallbackBand, "age %d", age)
	}
}

func TestRecommend_FallsBackToLastBand(t *testing.T) {
	tbl, err := NewTable(Family{
		Key: "gapped",
		Rules: []Rule{
			{AgeGroup: "kids", MinAge: 2, MaxAge: 12, Dosage: "kids"},
			{AgeGroup: "adults", MinAge: 12, MaxAge: 60, Dosage: "adults"},
		},
	})
	require.NoError(t, err)
	r := NewResolver(tbl)

	rec, err := r.Recommend("gapped", "70", "")
	require.NoError(t, err)
	assert.Equal(t, "adults", rec.Dosage)
	assert.True(t, rec.FallbackBand)

	// edades por debajo de la primera banda también caen en la última
	rec, err = r.Recommend("gapped", "1", "")
	require.NoError(t, err)
	assert.Equal(t, "adults", rec.Dosage)
}

func TestRecommend_OverlappingBandsFirstWins(t *testing.T) {
	tbl, err := NewTable(Family{
		Key: "overlap",
		Rules: []Rule{
			{MinAge: 0, MaxAge: 20, Dosage: "first"},
			{MinAge: 10, MaxAge: 150, Dosage: "second"},
		},
	})
	require.NoError(t, err)

	rec, err := NewResolver(tbl).Recommend("overlap", "15", "")
	require.NoError(t, err)
	assert.Equal(t, "first", rec.Dosage)
}

func TestRecommend_ParacetamolTypoChildBand(t *testing.T) {
	rec, err := NewResolver(nil).Recommend("paracetmol", "8", "other")
	require.NoError(t, err)

	assert.Equal(t, "paracetamol", rec.Medicine)
	assert.Equal(t, "10-15 mg/kg", rec.Dosage)
	assert.Equal(t, "Children (2-11 years)", rec.AgeGroup)
	assert.Equal(t, Disclaimer, rec.Disclaimer)
	assert.Empty(t, rec.GenderNote)
}

func TestRecommend_GenderNote(t *testing.T) {
	r := NewResolver(bandTable(t))

	rec, err := r.Recommend("testex", "30", "Female")
	require.NoError(t, err)
	assert.Equal(t, "female note", rec.GenderNote)

	rec, err = r.Recommend("testex", "30", "male")
	require.NoError(t, err)
	assert.Empty(t, rec.GenderNote)
}

func TestRecommend_Validation(t *testing.T) {
	r := NewResolver(nil)

	_, err := r.Recommend("p", "30", "")
	assert.ErrorIs(t, err, ErrInvalidName)
	assert.EqualError(t, err, "invalid medicine name")

	for _, age := range []string{"", "abc", "-1", "151", "12.5"} {
		_, err = r.Recommend("paracetamol", age, "")
		assert.ErrorIs(t, err, ErrInvalidAge, "age %q", age)
	}

	_, err = r.Recommend("zzzzzzzz", "30", "")
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "zzzzzzzz", nf.Query)
	assert.Equal(t, []string{"paracetamol", "ibuprofen", "aspirin"}, nf.Examples)
	assert.Contains(t, err.Error(), "paracetamol")
}

func TestNewTable_Validation(t *testing.T) {
	_, err := NewTable(Family{Key: ""})
	assert.Error(t, err)

	_, err = NewTable(Family{Key: "x"})
	assert.Error(t, err)

	rule := []Rule{{MinAge: 0, MaxAge: 1}}
	_, err = NewTable(Family{Key: "dup", Rules: rule}, Family{Key: "DUP", Rules: rule})
	assert.Error(t, err)
}

func TestDefaultTable_BandsAreContiguous(t *testing.T) {
	for _, f := range DefaultTable().Families() {
		for i := 1; i < len(f.Rules); i++ {
			assert.Equal(t, f.Rules[i-1].MaxAge, f.Rules[i].MinAge, "family %s band %d", f.Key, i)
		}
		last := f.Rules[len(f.Rules)-1]
		assert.Equal(t, MaxAge, last.MaxAge, "family %s", f.Key)
	}
}
