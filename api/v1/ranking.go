package v1

import (
  "net/http"

  "github.com/go-chi/chi/v5"

  "scraper.local/hltv-scraper/api"
  "scraper.local/hltv-scraper/common"
  "scraper.local/hltv-scraper/repositories/scrapers"
)

type RankingHandler struct {
  ApiContext *common.ApiContext
  Repository RankingRepository
}

func NewRankingRouter(apiContext *common.ApiContext) http.Handler {
  h := RankingHandler{
    ApiContext: apiContext,
  }
  h.Repository = &scrapers.RankingRepository{
    Client: h.ApiContext.Client,
  }
  return h.Router()
}

func (h *RankingHandler) Router() http.Handler {
  r := chi.NewRouter()
  r.Get("/", h.Listings)
  return r
}

func (h *RankingHandler) Listings(
  w http.ResponseWriter,
  r *http.Request,
) {
  response := &api.ResponseHandler{
    Writer: w,
  }

  teams, err := h.Repository.Process(r.Context())
  if err != nil {
    common.Logger.Error().Err(err).Str("route", "/ranking").Msg("ranking can not be scraped")
    response.Error(http.StatusInternalServerError, "Erro ao buscar ranking.")
    return
  }

  response.Success(teams)
}
