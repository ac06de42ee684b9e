package v1

import (
  "net/http"

  "github.com/go-chi/chi/v5"

  "scraper.local/hltv-scraper/api"
  "scraper.local/hltv-scraper/common"
  "scraper.local/hltv-scraper/repositories/scrapers"
)

type TransfersHandler struct {
  ApiContext *common.ApiContext
  Repository TransfersRepository
}

func NewTransfersRouter(apiContext *common.ApiContext) http.Handler {
  h := TransfersHandler{
    ApiContext: apiContext,
  }
  h.Repository = &scrapers.TransfersRepository{
    Client: h.ApiContext.Client,
  }
  return h.Router()
}

func (h *TransfersHandler) Router() http.Handler {
  r := chi.NewRouter()
  r.Get("/", h.Listings)
  return r
}

// Listings passes ranking through unvalidated, an absent filter is not an error.
func (h *TransfersHandler) Listings(
  w http.ResponseWriter,
  r *http.Request,
) {
  response := &api.ResponseHandler{
    Writer: w,
  }

  ranking := r.URL.Query().Get("ranking")
  transfers, err := h.Repository.Process(r.Context(), ranking)
  if err != nil {
    common.Logger.Error().Err(err).Str("route", "/transfers").Str("ranking", ranking).Msg("transfers can not be scraped")
    response.Error(http.StatusInternalServerError, "Erro ao buscar transferências.")
    return
  }

  response.Success(transfers)
}
