package v1

import (
  "net/http"
  "net/http/httptest"
  "testing"

  "github.com/go-resty/resty/v2"
  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"

  "scraper.local/hltv-scraper/common"
)

func newApiContext(t *testing.T, handler http.HandlerFunc) *common.ApiContext {
  t.Helper()
  upstream := httptest.NewServer(handler)
  t.Cleanup(upstream.Close)
  return &common.ApiContext{
    Client: resty.New().SetBaseURL(upstream.URL),
  }
}

func TestRouterRanking(t *testing.T) {
  apiContext := newApiContext(t, func(w http.ResponseWriter, r *http.Request) {
    assert.Equal(t, "/ranking/teams", r.URL.Path)
    w.Write([]byte(`<div class="ranked-team">
      <span class="position">#1</span>
      <div class="teamLine"><span class="name">FaZe</span><span class="points">(985 points)</span></div>
      <div class="change">+1</div>
    </div>`))
  })

  w := serve(NewRouter(apiContext), "/ranking")
  require.Equal(t, http.StatusOK, w.Code)
  assert.Equal(t, `[{"position":1,"team":"FaZe","points":985,"change":"+1","players":[]}]`, w.Body.String())
}

func TestRouterUpstreamDown(t *testing.T) {
  apiContext := newApiContext(t, func(w http.ResponseWriter, r *http.Request) {
    w.WriteHeader(http.StatusForbidden)
  })
  router := NewRouter(apiContext)

  w := serve(router, "/results")
  require.Equal(t, http.StatusInternalServerError, w.Code)
  assert.Equal(t, `{"error":"Erro ao buscar resultados."}`, w.Body.String())

  w = serve(router, "/transfers")
  require.Equal(t, http.StatusInternalServerError, w.Code)
  assert.Equal(t, `{"error":"Erro ao buscar transferências."}`, w.Body.String())
}

func TestRouterNotFound(t *testing.T) {
  apiContext := newApiContext(t, func(w http.ResponseWriter, r *http.Request) {
    t.Errorf("unexpected upstream request %s", r.URL.Path)
  })

  w := serve(NewRouter(apiContext), "/players")
  require.Equal(t, http.StatusNotFound, w.Code)
  assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
  assert.Equal(t, `{"error":"Not Found"}`, w.Body.String())
}

func TestRouterHead(t *testing.T) {
  apiContext := newApiContext(t, func(w http.ResponseWriter, r *http.Request) {
    w.Write([]byte(`<div class="ranked-team"><span class="position">#1</span></div>`))
  })
  router := NewRouter(apiContext)

  w := httptest.NewRecorder()
  router.ServeHTTP(w, httptest.NewRequest(http.MethodHead, "/ranking", nil))
  require.Equal(t, http.StatusOK, w.Code)
  assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

  w = httptest.NewRecorder()
  router.ServeHTTP(w, httptest.NewRequest(http.MethodHead, "/players", nil))
  assert.Equal(t, http.StatusNotFound, w.Code)

  w = httptest.NewRecorder()
  router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/ranking", nil))
  assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
