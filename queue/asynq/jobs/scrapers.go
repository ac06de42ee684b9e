package jobs

import (
  "encoding/json"

  "github.com/hibiken/asynq"

  "scraper.local/hltv-scraper/common"
  "scraper.local/hltv-scraper/config"
)

type ProcessPayload struct {
  Date    string `json:"date,omitempty"`
  Ranking string `json:"ranking,omitempty"`
}

// Params holds the non-empty payload fields, stored alongside the resulting snapshot.
func (p *ProcessPayload) Params() map[string]interface{} {
  return common.JSONMap(p)
}

type Scrapers struct{}

func (h *Scrapers) Matches(date string) (*asynq.Task, error) {
  return h.task(config.ASYNQ_JOBS_SCRAPERS_MATCHES, ProcessPayload{Date: date})
}

func (h *Scrapers) Results() (*asynq.Task, error) {
  return h.task(config.ASYNQ_JOBS_SCRAPERS_RESULTS, ProcessPayload{})
}

func (h *Scrapers) Ranking() (*asynq.Task, error) {
  return h.task(config.ASYNQ_JOBS_SCRAPERS_RANKING, ProcessPayload{})
}

func (h *Scrapers) Transfers(ranking string) (*asynq.Task, error) {
  return h.task(config.ASYNQ_JOBS_SCRAPERS_TRANSFERS, ProcessPayload{Ranking: ranking})
}

func (h *Scrapers) task(typename string, payload ProcessPayload) (*asynq.Task, error) {
  buf, err := json.Marshal(payload)
  if err != nil {
    return nil, err
  }
  return asynq.NewTask(typename, buf), nil
}
