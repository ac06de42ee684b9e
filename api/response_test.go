package api

import (
  "math"
  "net/http"
  "net/http/httptest"
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"
)

func TestResponseSuccess(t *testing.T) {
  w := httptest.NewRecorder()
  h := &ResponseHandler{Writer: w}
  h.Success([]string{"navi", "faze"})

  require.Equal(t, http.StatusOK, w.Code)
  assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
  assert.Equal(t, `["navi","faze"]`, w.Body.String())
}

func TestResponseError(t *testing.T) {
  w := httptest.NewRecorder()
  h := &ResponseHandler{Writer: w}
  h.Error(http.StatusInternalServerError, "Erro ao buscar transferências.")

  require.Equal(t, http.StatusInternalServerError, w.Code)
  assert.Equal(t, `{"error":"Erro ao buscar transferências."}`, w.Body.String())
}

func TestResponseUnencodable(t *testing.T) {
  w := httptest.NewRecorder()
  h := &ResponseHandler{Writer: w}
  h.Success(math.NaN())

  require.Equal(t, http.StatusInternalServerError, w.Code)
  assert.Equal(t, `{"error":"Internal Server Error"}`, w.Body.String())
}

func TestResponseKeepsHTMLCharacters(t *testing.T) {
  w := httptest.NewRecorder()
  h := &ResponseHandler{Writer: w}
  h.Success([]map[string]string{{"team": "B&B <academy>"}})

  require.Equal(t, http.StatusOK, w.Code)
  assert.Equal(t, `[{"team":"B&B <academy>"}]`, w.Body.String())
}
