// Package openfda consulta el endpoint público de etiquetas de openFDA
// (https://open.fda.gov/apis/drug/label/). Sin api key el límite es bajo,
// por eso el matcher lo usa solo como complemento del dataset local.
package openfda

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"medtrack-core/internal/platform/httpclient"
	"medtrack-core/internal/ports/druglabels"
)

var (
	ErrOpenFDANotConfigured = errors.New("openfda client not configured")
	ErrOpenFDAUpstream      = errors.New("openfda upstream error")
)

const (
	DefaultBaseURL = "https://api.fda.gov"
	labelPath      = "/drug/label.json"
	maxTextRunes   = 240
)

type Config struct {
	BaseURL string
	APIKey  string // opcional
	Timeout time.Duration
}

type Client struct {
	http   *httpclient.Client
	apiKey string
}

func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	hc, err := httpclient.NewWithBaseURL(base, cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenFDANotConfigured, err)
	}
	return &Client{http: hc, apiKey: strings.TrimSpace(cfg.APIKey)}, nil
}

type labelResponse struct {
	Results []labelResult `json:"results"`
}

type labelResult struct {
	OpenFDA struct {
		BrandName     []string `json:"brand_name"`
		GenericName   []string `json:"generic_name"`
		PharmClassEPC []string `json:"pharm_class_epc"`
	} `json:"openfda"`
	Purpose                 []string `json:"purpose"`
	DosageAndAdministration []string `json:"dosage_and_administration"`
	IndicationsAndUsage     []string `json:"indications_and_usage"`
}

// Lookup busca por marca o genérico. 404 de openFDA significa "sin resultados".
func (c *Client) Lookup(ctx context.Context, query string, limit int) ([]druglabels.Record, error) {
	if c == nil || c.http == nil {
		return nil, ErrOpenFDANotConfigured
	}
	term := sanitize(query)
	if term == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = 10
	}

	q := url.Values{}
	q.Set("search", fmt.Sprintf(`openfda.brand_name:"%s" OR openfda.generic_name:"%s"`, term, term))
	q.Set("limit", strconv.Itoa(limit))
	if c.apiKey != "" {
		q.Set("api_key", c.apiKey)
	}

	var out labelResponse
	err := c.http.DoJSON(ctx, http.MethodGet, labelPath, q, nil, nil, &out)
	if err != nil {
		if httpclient.StatusCode(err) == http.StatusNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrOpenFDAUpstream, err)
	}

	recs := make([]druglabels.Record, 0, len(out.Results))
	for _, r := range out.Results {
		name := first(r.OpenFDA.BrandName)
		if name == "" {
			name = first(r.OpenFDA.GenericName)
		}
		if name == "" {
			continue
		}

		category := first(r.Purpose)
		if category == "" {
			category = first(r.OpenFDA.PharmClassEPC)
		}

		recs = append(recs, druglabels.Record{
			Name:        name,
			Category:    truncate(category),
			Dosage:      truncate(first(r.DosageAndAdministration)),
			Description: truncate(first(r.IndicationsAndUsage)),
		})
	}
	return recs, nil
}

// sanitize saca comillas y colapsa espacios: el término va dentro de "..." en la query.
func sanitize(s string) string {
	s = strings.NewReplacer(`"`, " ", `\`, " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

func first(vs []string) string {
	for _, v := range vs {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func truncate(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= maxTextRunes {
		return s
	}
	r := []rune(s)
	return string(r[:maxTextRunes]) + "…"
}

var _ druglabels.Source = (*Client)(nil)
