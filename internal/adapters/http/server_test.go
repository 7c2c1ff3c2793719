package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sxmhttp "github.com/aretw0/sxm/internal/adapters/http"
	"github.com/aretw0/sxm/internal/logging"
	"github.com/aretw0/sxm/pkg/models"
	"github.com/aretw0/sxm/pkg/registry"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	reg := registry.New()
	var keypad models.DigicodeMachine = models.NewDigicode()
	var door models.DoorMachine = models.NewDoor()
	reg.Add(registry.Bind("digicode", keypad, models.DistinguishDigicode, models.ParseDigicodeInput))
	reg.Add(registry.Bind("door", door, models.DistinguishDoor, models.ParseDoorInput))
	return sxmhttp.NewHandler(reg, logging.NewNop())
}

func get(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestListModels(t *testing.T) {
	rec := get(t, newTestHandler(t), "/models")
	require.Equal(t, http.StatusOK, rec.Code)

	var summaries []struct {
		Name   string `json:"name"`
		States int    `json:"states"`
		Inputs int    `json:"inputs"`
		Phis   int    `json:"phis"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summaries))
	require.Len(t, summaries, 2)

	assert.Equal(t, "digicode", summaries[0].Name)
	assert.Equal(t, 3, summaries[0].States)
	assert.Equal(t, 12, summaries[0].Inputs)
	assert.Equal(t, 5, summaries[0].Phis)
	assert.Equal(t, "door", summaries[1].Name)
}

func TestGraph(t *testing.T) {
	handler := newTestHandler(t)

	t.Run("dot is the default", func(t *testing.T) {
		rec := get(t, handler, "/models/digicode/graph")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "digraph digicode")
		assert.Contains(t, rec.Body.String(), `"Accepting" -> "CodeEntered" [label="Finish"]`)
	})

	t.Run("mermaid", func(t *testing.T) {
		rec := get(t, handler, "/models/door/graph?format=mermaid")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "graph TD")
	})

	t.Run("unknown format", func(t *testing.T) {
		rec := get(t, handler, "/models/door/graph?format=svg")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown model", func(t *testing.T) {
		rec := get(t, handler, "/models/vault/graph")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestTests(t *testing.T) {
	handler := newTestHandler(t)

	t.Run("logic suite", func(t *testing.T) {
		rec := get(t, handler, "/models/digicode/tests/logic")
		require.Equal(t, http.StatusOK, rec.Code)

		var suite registry.Suite
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &suite))
		assert.Equal(t, "digicode", suite.Model)
		assert.Equal(t, registry.KindLogic, suite.Kind)
		assert.Len(t, suite.Cases, 23)
		assert.Empty(t, suite.Uncovered)
	})

	t.Run("coverage with shallow depth reports uncovered", func(t *testing.T) {
		rec := get(t, handler, "/models/digicode/tests/coverage?depth=2")
		require.Equal(t, http.StatusOK, rec.Code)

		var suite registry.Suite
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &suite))
		assert.Len(t, suite.Uncovered, 2)
	})

	t.Run("unknown kind", func(t *testing.T) {
		rec := get(t, handler, "/models/digicode/tests/fuzz")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid depth", func(t *testing.T) {
		rec := get(t, handler, "/models/digicode/tests/coverage?depth=zero")
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = get(t, handler, "/models/digicode/tests/coverage?depth=0")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown model", func(t *testing.T) {
		rec := get(t, handler, "/models/vault/tests/logic")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestMetrics(t *testing.T) {
	handler := newTestHandler(t)

	rec := get(t, handler, "/models/digicode/tests/logic")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = get(t, handler, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `sxm_generated_tests_total{kind="logic",model="digicode"} 23`)
	assert.Contains(t, string(body), "sxm_request_duration_seconds")
}
