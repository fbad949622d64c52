package drugs

// Source indica de dónde viene un candidato.
// @Enum local, remote, user
type Source string

const (
	SourceLocal  Source = "local"
	SourceRemote Source = "remote"
	SourceUser   Source = "user"
)

// Categorías centinela: no filtran por categoría.
const (
	CategoryAll  = "All"
	CategoryMine = "Your Medications" // solo candidatos del usuario
)

// Candidate es un resultado provisional de búsqueda (no se persiste).
type Candidate struct {
	Name        string
	Category    string
	Dosage      string
	Description string
	Source      Source
	Score       int
}

// Result de una búsqueda. Suggestion solo se completa cuando no hubo resultados.
type Result struct {
	Query      string
	Category   string
	Candidates []Candidate
	Suggestion string

	RemoteAttempted bool
	RemoteFailed    bool
}

// Empty indica el estado "sin resultados" (con o sin sugerencia).
func (r Result) Empty() bool {
	return len(r.Candidates) == 0
}
