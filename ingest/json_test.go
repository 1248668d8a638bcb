package ingest_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clueroute/crs/ingest"
)

func TestJSONParser_RoundTripsIntoNetwork(t *testing.T) {
	doc := `{
		"nodes": [
			{"id": 1, "lat": 0, "lon": 0, "keywords": ["Bank"]},
			{"id": 2, "lat": 0, "lon": 1}
		],
		"edges": [
			{"from": 1, "to": 2, "weight": 75}
		]
	}`

	p, err := ingest.NewJSONParser(strings.NewReader(doc))
	require.NoError(t, err)

	n, err := ingest.Load(p)
	require.NoError(t, err)
	require.Equal(t, 2, n.NodeCount())
	require.Equal(t, 1, n.EdgeCount())
	require.True(t, n.HasKeyword(1, "bank"))
}

func TestJSONParser_RejectsMalformedDocument(t *testing.T) {
	_, err := ingest.NewJSONParser(strings.NewReader("{not json"))
	require.Error(t, err)
}
