package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDosageCmd(t *testing.T) {
	out, err := run(t, "dosage", "--name", "paracetamol", "--age", "8")
	require.NoError(t, err)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, "Children (2-11 years)", rec["AgeGroup"])

	_, err = run(t, "dosage", "--name", "paracetamol", "--age=-1")
	assert.Error(t, err)

	_, err = run(t, "dosage", "--name", "qqqqqqqq", "--age", "30")
	assert.ErrorContains(t, err, "not found")
}

func TestSearchCmd(t *testing.T) {
	out, err := run(t, "search", "asprin")
	require.NoError(t, err)

	var res struct {
		Candidates []any
		Suggestion string
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Empty(t, res.Candidates)
	assert.Equal(t, "Aspirin", res.Suggestion)
}

func TestSearchCmd_RefinedQueries(t *testing.T) {
	out, err := run(t, "search", "asp", "--then", "asprin", "--then", "ibuprofen")
	require.NoError(t, err)

	var res struct {
		Query      string
		Candidates []struct{ Name string }
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "ibuprofen", res.Query)
	require.NotEmpty(t, res.Candidates)
	assert.Equal(t, "Ibuprofen", res.Candidates[0].Name)
}

func TestAlertsCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meds.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"id":"m1","name":"Warfarin","dosage":"5 mg","schedule":[480],"active":true,
		 "inventory":{"enabled":true,"current_quantity":3,"low_stock_threshold":10},
		 "interactions":[{"with_medication_name":"Aspirin","description":"Bleeding risk","severity":"major"}]}
	]`), 0o600))

	out, err := run(t, "alerts", "--file", path, "--dismiss", "interaction:m1:Aspirin")
	require.NoError(t, err)

	var feed struct {
		Alerts []struct {
			ID string
		}
		AllClear bool
	}
	require.NoError(t, json.Unmarshal([]byte(out), &feed))
	require.Len(t, feed.Alerts, 1)
	assert.Equal(t, "low-stock:m1", feed.Alerts[0].ID)
	assert.False(t, feed.AllClear)

	_, err = run(t, "alerts")
	assert.Error(t, err, "--file is required")
}
