package main

import (
	"bytes"
	"os"
	"path/filepath"
	"pcpro/internal/shared/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const featuresOnly = `{
  "openapi": "3.0.2",
  "info": {"title": "pcapi", "version": "2"},
  "paths": {
    "/features": {"get": {"operationId": "list_features", "responses": {"200": {"description": "OK"}}}}
  }
}`

func TestDumpToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "openapi.json")
	var stdout bytes.Buffer

	require.NoError(t, dump(config.Load(), []string{"-o", out}, &stdout))
	assert.Contains(t, stdout.String(), out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"/offers/{offer_id}"`)
}

func TestDiffReportsMissingOperations(t *testing.T) {
	schema := filepath.Join(t.TempDir(), "backend.json")
	require.NoError(t, os.WriteFile(schema, []byte(featuresOnly), 0o600))
	var stdout bytes.Buffer

	clean, err := diff([]string{"-group", "pro", schema}, &stdout)
	require.NoError(t, err)
	assert.False(t, clean)
	assert.Contains(t, stdout.String(), "1 operations matched")
	assert.Contains(t, stdout.String(), "unknown to backend: GET /offers/{offer_id} (getOffer)")
}

func TestDiffArguments(t *testing.T) {
	var stdout bytes.Buffer

	_, err := diff(nil, &stdout)
	assert.Error(t, err)

	_, err = diff([]string{"-group", "backoffice", "x.json"}, &stdout)
	assert.EqualError(t, err, `unknown group "backoffice"`)
}
