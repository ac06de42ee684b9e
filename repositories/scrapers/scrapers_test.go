package scrapers

import (
  "net/http"
  "net/http/httptest"
  "testing"

  "github.com/go-resty/resty/v2"
)

type fixture struct {
  path  string
  body  string
  query map[string]string
}

func newTestClient(t *testing.T, status int, fixtures ...fixture) *resty.Client {
  t.Helper()
  server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    for _, f := range fixtures {
      if f.path != r.URL.Path {
        continue
      }
      for key, val := range f.query {
        if r.URL.Query().Get(key) != val {
          t.Errorf("query %s = %q, want %q", key, r.URL.Query().Get(key), val)
        }
      }
      w.Header().Set("Content-Type", "text/html; charset=utf-8")
      w.WriteHeader(status)
      w.Write([]byte(f.body))
      return
    }
    http.NotFound(w, r)
  }))
  t.Cleanup(server.Close)
  return resty.New().SetBaseURL(server.URL)
}
