package v1

import (
  "net/http"

  "github.com/go-chi/chi/v5"
  "github.com/go-chi/chi/v5/middleware"

  "scraper.local/hltv-scraper/api"
  "scraper.local/hltv-scraper/common"
)

func NewRouter(apiContext *common.ApiContext) http.Handler {
  r := chi.NewRouter()
  r.Use(middleware.GetHead)
  r.NotFound(func(w http.ResponseWriter, r *http.Request) {
    (&api.ResponseHandler{Writer: w}).Error(http.StatusNotFound, http.StatusText(http.StatusNotFound))
  })
  r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
    (&api.ResponseHandler{Writer: w}).Error(http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
  })
  r.Mount("/matches", NewMatchesRouter(apiContext))
  r.Mount("/results", NewResultsRouter(apiContext))
  r.Mount("/ranking", NewRankingRouter(apiContext))
  r.Mount("/transfers", NewTransfersRouter(apiContext))
  return r
}
