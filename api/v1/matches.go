package v1

import (
  "net/http"

  "github.com/go-chi/chi/v5"

  "scraper.local/hltv-scraper/api"
  "scraper.local/hltv-scraper/common"
  "scraper.local/hltv-scraper/repositories/scrapers"
)

type MatchesHandler struct {
  ApiContext *common.ApiContext
  Repository MatchesRepository
}

func NewMatchesRouter(apiContext *common.ApiContext) http.Handler {
  h := MatchesHandler{
    ApiContext: apiContext,
  }
  h.Repository = &scrapers.MatchesRepository{
    Client: h.ApiContext.Client,
  }
  return h.Router()
}

func (h *MatchesHandler) Router() http.Handler {
  r := chi.NewRouter()
  r.Get("/", h.Listings)
  r.Get("/date", h.Date)
  return r
}

func (h *MatchesHandler) Listings(
  w http.ResponseWriter,
  r *http.Request,
) {
  response := &api.ResponseHandler{
    Writer: w,
  }

  matches, err := h.Repository.Process(r.Context(), "")
  if err != nil {
    common.Logger.Error().Err(err).Str("route", "/matches").Msg("matches can not be scraped")
    response.Error(http.StatusInternalServerError, "Erro ao buscar partidas.")
    return
  }

  response.Success(matches)
}

func (h *MatchesHandler) Date(
  w http.ResponseWriter,
  r *http.Request,
) {
  response := &api.ResponseHandler{
    Writer: w,
  }

  date := r.URL.Query().Get("date")
  if date == "" {
    response.Error(http.StatusBadRequest, `Parâmetro "date" é obrigatório no formato YYYY-MM-DD.`)
    return
  }

  matches, err := h.Repository.Process(r.Context(), date)
  if err != nil {
    common.Logger.Error().Err(err).Str("route", "/matches/date").Str("date", date).Msg("matches can not be scraped")
    response.Error(http.StatusInternalServerError, "Erro ao buscar partidas da data.")
    return
  }

  response.Success(matches)
}
