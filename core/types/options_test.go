package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptions(t *testing.T) {
	doc, err := ParseOptions([]byte(`{
		"collect_metrics": true,
		"build_truth_tables": false,
		"emit_advanced": true,
		"formats": ["dimacs", "csv"]
	}`))
	require.NoError(t, err)
	assert.True(t, doc.CollectMetrics)
	assert.False(t, doc.BuildTruthTables)
	assert.True(t, doc.EmitAdvanced)
	assert.Equal(t, []string{"dimacs", "csv"}, doc.Formats)
}

func TestParseOptionsDefaults(t *testing.T) {
	doc, err := ParseOptions([]byte(`{}`))
	require.NoError(t, err)
	assert.False(t, doc.CollectMetrics)
	assert.Empty(t, doc.Formats)
}

func TestParseOptionsRejects(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"not json", `{`},
		{"unknown key", `{"colect_metrics": true}`},
		{"wrong type", `{"collect_metrics": "yes"}`},
		{"unknown format", `{"formats": ["pdf"]}`},
		{"duplicate formats", `{"formats": ["csv", "csv"]}`},
		{"top level array", `[]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseOptions([]byte(tc.raw))
			assert.Error(t, err)
		})
	}
}
