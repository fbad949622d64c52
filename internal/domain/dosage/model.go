package dosage

// Gender se usa solo para notas específicas de la regla.
// @Enum male, female, other
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Rule es una banda de edad: MinAge inclusivo, MaxAge exclusivo.
type Rule struct {
	AgeGroup string
	MinAge   int
	MaxAge   int

	Dosage    string
	Frequency string
	MaxDaily  string
	Notes     string

	GenderNotes map[Gender]string // opcional
}

// Contains indica si age cae en [MinAge, MaxAge).
func (r Rule) Contains(age int) bool {
	return age >= r.MinAge && age < r.MaxAge
}

// Family agrupa las reglas de un medicamento (clave canónica + alias).
type Family struct {
	Key      string
	Aliases  []string
	Category string
	Rules    []Rule
}

// Match es el resultado de FindMedicine.
type Match struct {
	Key     string  // clave canónica de la familia
	Matched string  // alias o clave que produjo el match
	Score   float64 // 0..100
}

// Recommendation es lo que se devuelve al usuario. Nunca es una indicación clínica.
type Recommendation struct {
	Medicine   string
	MatchedAs  string
	MatchScore float64
	Category   string

	Age    int
	Gender Gender

	AgeGroup  string
	Dosage    string
	Frequency string
	MaxDaily  string
	Notes     string

	GenderNote string
	Disclaimer string

	// FallbackBand es true cuando ninguna banda contenía la edad y se usó la última.
	FallbackBand bool
}

const Disclaimer = "This information is educational only and is not medical advice. " +
	"Always follow the product label and consult a doctor or pharmacist before taking any medicine."
