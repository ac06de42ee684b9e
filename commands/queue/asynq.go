package queue

import (
  "context"

  "github.com/go-redis/redis/v8"
  "github.com/go-resty/resty/v2"
  "github.com/hibiken/asynq"
  "github.com/urfave/cli/v2"
  "gorm.io/gorm"

  "scraper.local/hltv-scraper/common"
  workers "scraper.local/hltv-scraper/queue/asynq"
)

type AsynqHandler struct {
  Db     *gorm.DB
  Rdb    *redis.Client
  Client *resty.Client
  Ctx    context.Context
}

func NewAsynqCommand() *cli.Command {
  var h AsynqHandler
  return &cli.Command{
    Name:  "asynq",
    Usage: "run the scraper workers",
    Before: func(c *cli.Context) error {
      h = AsynqHandler{
        Db:     common.NewDB(),
        Rdb:    common.NewRedis(),
        Client: common.NewScraperClient(),
        Ctx:    context.Background(),
      }
      return nil
    },
    Action: func(c *cli.Context) error {
      if err := h.run(); err != nil {
        return cli.Exit(err.Error(), 1)
      }
      return nil
    },
  }
}

func (h *AsynqHandler) run() error {
  common.Logger.Info().Msg("asynq queue running...")

  mux := asynq.NewServeMux()
  worker := common.NewAsynqServer()

  nc := common.NewNats()
  defer nc.Close()

  ansqContext := &common.AnsqServerContext{
    Db:     h.Db,
    Rdb:    h.Rdb,
    Ctx:    h.Ctx,
    Mux:    mux,
    Nats:   nc,
    Client: h.Client,
  }

  workers.NewWorkers(ansqContext).Register()

  if err := worker.Run(mux); err != nil {
    return err
  }

  return nil
}
