package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	mem "medtrack-core/internal/adapters/storage/memory"
	"medtrack-core/internal/domain/medications"
	"medtrack-core/internal/ports/translation"
	"medtrack-core/internal/router"
)

func seedMedications(t *testing.T) medications.Repository {
	t.Helper()

	repo := mem.NewMedicationRepo()
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	for _, m := range []medications.Medication{
		{
			ID: "med-warfarin", OwnerUserID: "user-1", Name: "Warfarin", Dosage: "5 mg",
			Schedule: []int{1260, 480}, Active: true,
			Inventory: medications.Inventory{Enabled: true, CurrentQuantity: 3, LowStockThreshold: 10},
			Interactions: []medications.Interaction{
				{WithMedicationName: "Aspirin", Description: "Increased bleeding risk", Severity: medications.SeverityMajor},
			},
			CreatedAt: now,
		},
		{
			ID: "med-thyroxine", OwnerUserID: "user-1", Name: "Thyroxine", Dosage: "50 mcg",
			Schedule: []int{420}, Active: true,
			CreatedAt: now.Add(time.Minute),
		},
	} {
		if err := repo.Save(context.Background(), m); err != nil {
			t.Fatalf("seed %s: %v", m.ID, err)
		}
	}
	return repo
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	tr := translation.Func(func(ctx context.Context, text, lang string) (string, error) {
		return "[" + lang + "] " + text, nil
	})
	ts := httptest.NewServer(router.NewRouter(router.Options{
		AuthVerifier: nil, // modo dev
		Medications:  seedMedications(t),
		Translator:   tr,
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_Health(t *testing.T) {
	ts := newServer(t)

	st, body := doReq(t, ts.URL, "GET", "/health", "", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected 200 ok, got %d %q", st, body)
	}
}

func TestHTTP_DrugSearch(t *testing.T) {
	ts := newServer(t)

	// 1) Typo: sin resultados, con sugerencia
	{
		var out searchResponse
		st := getJSON(t, ts.URL, "/drugs/search?q=asprin", "", &out)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		if len(out.Results) != 0 || out.Suggestion != "Aspirin" {
			t.Fatalf("expected empty results + suggestion Aspirin, got %+v", out)
		}
	}

	// 2) Síntoma: trae analgésicos
	{
		var out searchResponse
		getJSON(t, ts.URL, "/drugs/search?q=headache", "", &out)
		if !hasResult(out, "Paracetamol") {
			t.Fatalf("expected Paracetamol for headache, got %+v", out.Results)
		}
		for i := 1; i < len(out.Results); i++ {
			if out.Results[i].Score > out.Results[i-1].Score {
				t.Fatalf("results not sorted by score: %+v", out.Results)
			}
		}
	}

	// 3) Mis medicaciones: solo con usuario
	{
		var out searchResponse
		getJSON(t, ts.URL, "/drugs/search?q=thyro&category=Your+Medications", "user-1", &out)
		if len(out.Results) != 1 || out.Results[0].Name != "Thyroxine" || out.Results[0].Source != "user" {
			t.Fatalf("expected Thyroxine from user meds, got %+v", out.Results)
		}

		var anon searchResponse
		getJSON(t, ts.URL, "/drugs/search?q=thyro&category=Your+Medications", "", &anon)
		if len(anon.Results) != 0 {
			t.Fatalf("anonymous search must not see user meds: %+v", anon.Results)
		}
	}

	// 4) Query corta: vacío
	{
		var out searchResponse
		getJSON(t, ts.URL, "/drugs/search?q=a", "", &out)
		if len(out.Results) != 0 || out.Suggestion != "" {
			t.Fatalf("expected empty for 1-char query, got %+v", out)
		}
	}
}

func TestHTTP_Dosage(t *testing.T) {
	ts := newServer(t)

	{
		var out map[string]any
		st := getJSON(t, ts.URL, "/dosage?name=paracetamol&age=8", "", &out)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		if out["age_group"] != "Children (2-11 years)" || out["disclaimer"] == "" {
			t.Fatalf("unexpected recommendation: %+v", out)
		}
	}

	{
		st, _ := doReq(t, ts.URL, "GET", "/dosage?name=paracetamol&age=abc", "", nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for invalid age, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/dosage?name=p&age=30", "", nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for short name, got %d", st)
		}
	}

	{
		var out struct {
			Examples []string `json:"examples"`
		}
		st := getJSON(t, ts.URL, "/dosage?name=qqqqqqqq&age=30", "", &out)
		if st != http.StatusNotFound || len(out.Examples) == 0 {
			t.Fatalf("expected 404 with examples, got %d %+v", st, out)
		}
	}
}

func TestHTTP_MyMedications(t *testing.T) {
	ts := newServer(t)

	st, _ := doReq(t, ts.URL, "GET", "/me/medications", "", nil)
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 without user, got %d", st)
	}

	var out []medications.Payload
	st = getJSON(t, ts.URL, "/me/medications", "user-1", &out)
	if st != http.StatusOK || len(out) != 2 {
		t.Fatalf("expected 2 meds, got %d %+v", st, out)
	}
	if got := out[0].Schedule; len(got) != 2 || got[0] != 480 || got[1] != 1260 {
		t.Fatalf("schedule must be sorted, got %v", got)
	}
}

func TestHTTP_EndToEnd_AlertFeedAndDismissal(t *testing.T) {
	ts := newServer(t)
	const user = "user-1"

	// 1) Feed inicial: interacción + stock bajo
	var feed feedResponse
	getJSON(t, ts.URL, "/me/alerts", user, &feed)
	if ids := alertIDs(feed); strings.Join(ids, ",") != "interaction:med-warfarin:Aspirin,low-stock:med-warfarin" {
		t.Fatalf("unexpected alerts: %v", ids)
	}
	if feed.AllClear {
		t.Fatalf("all_clear must be false with alerts")
	}

	// 2) Descartar stock bajo (dos veces: idempotente)
	for i := 0; i < 2; i++ {
		st, body := doReq(t, ts.URL, "POST", "/me/alerts/low-stock:med-warfarin/dismiss", user, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 dismiss, got %d body=%s", st, body)
		}
	}

	// 3) Cambiar idioma no "re-descarta": sigue solo la interacción, traducida
	feed = feedResponse{}
	getJSON(t, ts.URL, "/me/alerts?lang=es", user, &feed)
	if ids := alertIDs(feed); len(ids) != 1 || ids[0] != "interaction:med-warfarin:Aspirin" {
		t.Fatalf("dismissal must survive language change, got %v", ids)
	}
	if feed.Alerts[0].Title != "Interacción de medicamentos" || !strings.Contains(feed.Alerts[0].Message, "[es] Increased bleeding risk") {
		t.Fatalf("expected localized alert, got %+v", feed.Alerts[0])
	}

	// 4) Descartar la interacción => all clear
	st, _ := doReq(t, ts.URL, "POST", "/me/alerts/interaction:med-warfarin:Aspirin/dismiss", user, nil)
	if st != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", st)
	}
	feed = feedResponse{}
	getJSON(t, ts.URL, "/me/alerts", user, &feed)
	if !feed.AllClear || len(feed.Alerts) != 0 || feed.AllClearText == "" {
		t.Fatalf("expected all clear, got %+v", feed)
	}

	// 5) Otro usuario no ve nada ajeno
	feed = feedResponse{}
	getJSON(t, ts.URL, "/me/alerts", "user-2", &feed)
	if !feed.AllClear {
		t.Fatalf("user-2 has no meds, expected all clear: %+v", feed)
	}

	st, _ = doReq(t, ts.URL, "GET", "/me/alerts", "", nil)
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 without user, got %d", st)
	}
}

func TestHTTP_DismissEscapedAlertID(t *testing.T) {
	repo := mem.NewMedicationRepo()
	err := repo.Save(context.Background(), medications.Medication{
		ID: "med-mtx", OwnerUserID: "user-3", Name: "Methotrexate", Active: true,
		Interactions: []medications.Interaction{
			{WithMedicationName: "Amoxicillin/Clavulanate", Description: "Reduced clearance"},
		},
		CreatedAt: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	ts := httptest.NewServer(router.NewRouter(router.Options{Medications: repo}))
	t.Cleanup(ts.Close)

	var feed feedResponse
	getJSON(t, ts.URL, "/me/alerts", "user-3", &feed)
	if ids := alertIDs(feed); len(ids) != 1 || ids[0] != "interaction:med-mtx:Amoxicillin/Clavulanate" {
		t.Fatalf("unexpected alerts: %v", ids)
	}

	st, body := doReq(t, ts.URL, "POST", "/me/alerts/interaction:med-mtx:Amoxicillin%2FClavulanate/dismiss", "user-3", nil)
	if st != http.StatusNoContent {
		t.Fatalf("expected 204 dismiss, got %d body=%s", st, body)
	}

	feed = feedResponse{}
	getJSON(t, ts.URL, "/me/alerts", "user-3", &feed)
	if !feed.AllClear {
		t.Fatalf("escaped id must match the computed one, got %v", alertIDs(feed))
	}
}

func TestHTTP_Metrics(t *testing.T) {
	ts := newServer(t)

	doReq(t, ts.URL, "GET", "/drugs/search?q=ibuprofen", "", nil)

	st, body := doReq(t, ts.URL, "GET", "/metrics", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 metrics, got %d", st)
	}
	if !bytes.Contains(body, []byte("medtrack_drug_searches_total")) {
		t.Fatalf("metrics missing search counter")
	}
}

// -------------------------
// Helpers
// -------------------------

type searchResponse struct {
	Results []struct {
		Name   string `json:"name"`
		Source string `json:"source"`
		Score  int    `json:"match_score"`
	} `json:"results"`
	Suggestion string `json:"suggestion"`
}

type feedResponse struct {
	Alerts []struct {
		ID      string `json:"id"`
		Kind    string `json:"kind"`
		Title   string `json:"title"`
		Message string `json:"message"`
	} `json:"alerts"`
	AllClear     bool   `json:"all_clear"`
	AllClearText string `json:"all_clear_text"`
}

func hasResult(out searchResponse, name string) bool {
	for _, r := range out.Results {
		if r.Name == name {
			return true
		}
	}
	return false
}

func alertIDs(f feedResponse) []string {
	out := make([]string, 0, len(f.Alerts))
	for _, a := range f.Alerts {
		out = append(out, a.ID)
	}
	return out
}

func getJSON(t *testing.T, baseURL, path, debugUserID string, out any) int {
	t.Helper()

	st, body := doReq(t, baseURL, "GET", path, debugUserID, nil)
	if st == http.StatusOK || st == http.StatusNotFound {
		if err := json.Unmarshal(body, out); err != nil {
			t.Fatalf("unmarshal %s: %v body=%s", path, err, body)
		}
	}
	return st
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
