package drugs

import (
	"context"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"medtrack-core/internal/domain/symptoms"
	"medtrack-core/internal/platform/logger"
	"medtrack-core/internal/platform/metrics"
	"medtrack-core/internal/ports/druglabels"
	"medtrack-core/internal/textmatch"
)

const (
	DefaultMinQueryLength  = 2
	DefaultRemoteMinLength = 3
	DefaultRemoteLimit     = 10
	DefaultRemoteTimeout   = 5 * time.Second

	maxSuggestionDistance = 3
)

// Puntajes aditivos del ranking local.
const (
	scoreExactName        = 100
	scoreNameContains     = 50
	scoreDescContains     = 20
	scoreCategoryContains = 15

	scoreSymptomName     = 60
	scoreSymptomCategory = 50
	scoreSymptomDesc     = 25

	scoreWordName     = 30
	scoreWordDesc     = 15
	scoreWordCategory = 20

	scoreNameWordPrefix = 30

	typoBase      = 8
	typoPerEdit   = 2
	typoMaxEdits  = 2
	minWordLength = 2
)

type Options struct {
	MinQueryLength  int
	RemoteMinLength int
	RemoteLimit     int
	RemoteTimeout   time.Duration
}

func (o Options) withDefaults() Options {
	if o.MinQueryLength <= 0 {
		o.MinQueryLength = DefaultMinQueryLength
	}
	if o.RemoteMinLength <= 0 {
		o.RemoteMinLength = DefaultRemoteMinLength
	}
	if o.RemoteLimit <= 0 {
		o.RemoteLimit = DefaultRemoteLimit
	}
	if o.RemoteTimeout <= 0 {
		o.RemoteTimeout = DefaultRemoteTimeout
	}
	return o
}

// Matcher no guarda estado mutable: se puede compartir entre requests.
type Matcher struct {
	symptoms *symptoms.Index
	remote   druglabels.Source // opcional
	log      logger.Logger
	opts     Options
}

func NewMatcher(idx *symptoms.Index, remote druglabels.Source, log logger.Logger, opts Options) *Matcher {
	if idx == nil {
		idx = symptoms.Default()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Matcher{
		symptoms: idx,
		remote:   remote,
		log:      log.With(map[string]any{"component": "drug_matcher"}),
		opts:     opts.withDefaults(),
	}
}

// Search rankea el dataset local, fusiona la fuente remota (si aplica) y, si no quedó
// nada, calcula una sugerencia ortográfica. Un fallo remoto nunca falla la búsqueda.
func (m *Matcher) Search(ctx context.Context, query, category string, dataset []Candidate) Result {
	raw := strings.TrimSpace(query)
	res := Result{Query: raw, Category: category}

	if utf8.RuneCountInString(raw) < m.opts.MinQueryLength {
		metrics.ObserveSearch("rejected")
		return res
	}
	q := strings.ToLower(raw)

	pool := filterByCategory(dataset, category)
	res.Candidates = m.rankLocal(q, pool)

	if m.remote != nil && isUnrestricted(category) && utf8.RuneCountInString(q) >= m.opts.RemoteMinLength {
		res.RemoteAttempted = true
		remote, err := m.lookupRemote(ctx, raw)
		if err != nil {
			res.RemoteFailed = true
			metrics.ObserveRemoteFailure()
			m.log.Warn("remote drug-label lookup failed, using local results", map[string]any{
				"query": raw,
				"error": err.Error(),
			})
		}
		res.Candidates = fuse(res.Candidates, remote)
	}

	if len(res.Candidates) == 0 {
		res.Suggestion = suggest(q, pool)
		if res.Suggestion != "" {
			metrics.ObserveSearch("suggestion")
		} else {
			metrics.ObserveSearch("empty")
		}
		return res
	}

	metrics.ObserveSearch("results")
	return res
}

func (m *Matcher) rankLocal(q string, pool []Candidate) []Candidate {
	filters := m.symptoms.Filters(q)
	words := queryWords(q)

	out := make([]Candidate, 0, len(pool))
	for _, c := range pool {
		s := score(c, q, words, filters)
		if s == 0 {
			continue
		}
		c.Score = s
		out = append(out, c)
	}

	// estable: en empate se respeta el orden del dataset
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

func (m *Matcher) lookupRemote(ctx context.Context, query string) ([]Candidate, error) {
	ctx, cancel := context.WithTimeout(ctx, m.opts.RemoteTimeout)
	defer cancel()

	recs, err := m.remote.Lookup(ctx, query, m.opts.RemoteLimit)
	if err != nil {
		return nil, err
	}

	out := make([]Candidate, 0, len(recs))
	for _, r := range recs {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			continue
		}
		out = append(out, Candidate{
			Name:        name,
			Category:    strings.TrimSpace(r.Category),
			Dosage:      strings.TrimSpace(r.Dosage),
			Description: strings.TrimSpace(r.Description),
			Source:      SourceRemote,
		})
	}
	return out, nil
}

// score es aditivo. El bonus por typo solo refina candidatos que ya matchearon por
// alguna otra regla: un typo puro no cuenta como match (para eso está la sugerencia).
func score(c Candidate, q string, words, filters []string) int {
	name := strings.ToLower(c.Name)
	desc := strings.ToLower(c.Description)
	cat := strings.ToLower(c.Category)

	s := 0
	if name == q {
		s += scoreExactName
	}
	if strings.Contains(name, q) {
		s += scoreNameContains
	}
	if strings.Contains(desc, q) {
		s += scoreDescContains
	}
	if strings.Contains(cat, q) {
		s += scoreCategoryContains
	}

	for _, f := range filters {
		if strings.Contains(name, f) {
			s += scoreSymptomName
		}
		if strings.Contains(cat, f) {
			s += scoreSymptomCategory
		}
		if strings.Contains(desc, f) {
			s += scoreSymptomDesc
		}
	}

	for _, w := range words {
		if strings.Contains(name, w) {
			s += scoreWordName
		}
		if strings.Contains(desc, w) {
			s += scoreWordDesc
		}
		if strings.Contains(cat, w) {
			s += scoreWordCategory
		}
	}

	for _, nw := range strings.Fields(name) {
		if strings.HasPrefix(nw, q) {
			s += scoreNameWordPrefix
			break
		}
	}

	if s == 0 {
		return 0
	}

	for _, w := range words {
		d := textmatch.Distance(w, name)
		if d > 0 && d <= typoMaxEdits {
			s += max(0, typoBase-typoPerEdit*d)
		}
	}
	return s
}

// fuse agrega los remotos después de los locales; ante nombre repetido
// (case-insensitive) gana el que ya estaba.
func fuse(local, remote []Candidate) []Candidate {
	if len(remote) == 0 {
		return local
	}
	seen := make(map[string]struct{}, len(local)+len(remote))
	for _, c := range local {
		seen[strings.ToLower(c.Name)] = struct{}{}
	}
	for _, c := range remote {
		key := strings.ToLower(c.Name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		local = append(local, c)
	}
	return local
}

// suggest devuelve el nombre más cercano con distancia en [1,3]; en empate, el primero.
func suggest(q string, pool []Candidate) string {
	type scored struct {
		name string
		dist int
	}
	var cands []scored
	for _, c := range pool {
		d := textmatch.Distance(q, strings.ToLower(c.Name))
		if d >= 1 && d <= maxSuggestionDistance {
			cands = append(cands, scored{name: c.Name, dist: d})
		}
	}
	if len(cands) == 0 {
		return ""
	}
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].dist < cands[j].dist
	})
	return cands[0].name
}

func filterByCategory(dataset []Candidate, category string) []Candidate {
	category = strings.TrimSpace(category)
	switch {
	case isUnrestricted(category):
		return dataset
	case category == CategoryMine:
		out := make([]Candidate, 0)
		for _, c := range dataset {
			if c.Source == SourceUser {
				out = append(out, c)
			}
		}
		return out
	default:
		out := make([]Candidate, 0)
		for _, c := range dataset {
			if strings.EqualFold(c.Category, category) {
				out = append(out, c)
			}
		}
		return out
	}
}

func isUnrestricted(category string) bool {
	category = strings.TrimSpace(category)
	return category == "" || category == CategoryAll
}

func queryWords(q string) []string {
	fields := strings.Fields(q)
	out := make([]string, 0, len(fields))
	for _, w := range fields {
		if utf8.RuneCountInString(w) >= minWordLength {
			out = append(out, w)
		}
	}
	return out
}
