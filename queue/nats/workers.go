package nats

import (
  "scraper.local/hltv-scraper/common"
  "scraper.local/hltv-scraper/queue/nats/workers"
)

type Workers struct {
  NatsContext *common.NatsContext
}

func NewWorkers(natsContext *common.NatsContext) *Workers {
  return &Workers{
    NatsContext: natsContext,
  }
}

func (h *Workers) Subscribe() error {
  return workers.NewSnapshots(h.NatsContext).Subscribe()
}
