package v1

import (
  "net/http"

  "github.com/go-chi/chi/v5"

  "scraper.local/hltv-scraper/api"
  "scraper.local/hltv-scraper/common"
  "scraper.local/hltv-scraper/repositories/scrapers"
)

type ResultsHandler struct {
  ApiContext *common.ApiContext
  Repository ResultsRepository
}

func NewResultsRouter(apiContext *common.ApiContext) http.Handler {
  h := ResultsHandler{
    ApiContext: apiContext,
  }
  h.Repository = &scrapers.ResultsRepository{
    Client: h.ApiContext.Client,
  }
  return h.Router()
}

func (h *ResultsHandler) Router() http.Handler {
  r := chi.NewRouter()
  r.Get("/", h.Listings)
  return r
}

func (h *ResultsHandler) Listings(
  w http.ResponseWriter,
  r *http.Request,
) {
  response := &api.ResponseHandler{
    Writer: w,
  }

  results, err := h.Repository.Process(r.Context())
  if err != nil {
    common.Logger.Error().Err(err).Str("route", "/results").Msg("results can not be scraped")
    response.Error(http.StatusInternalServerError, "Erro ao buscar resultados.")
    return
  }

  response.Success(results)
}
