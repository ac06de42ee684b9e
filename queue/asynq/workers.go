package asynq

import (
  "scraper.local/hltv-scraper/common"
  "scraper.local/hltv-scraper/queue/asynq/workers"
)

type Workers struct {
  AnsqContext *common.AnsqServerContext
}

func NewWorkers(ansqContext *common.AnsqServerContext) *Workers {
  return &Workers{
    AnsqContext: ansqContext,
  }
}

func (h *Workers) Register() error {
  return workers.NewScrapers(h.AnsqContext).Register()
}
