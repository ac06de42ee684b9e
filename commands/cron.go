package commands

import (
  "context"
  "os"
  "os/signal"
  "syscall"

  "github.com/hibiken/asynq"
  "github.com/robfig/cron/v3"
  "github.com/urfave/cli/v2"

  "scraper.local/hltv-scraper/common"
  "scraper.local/hltv-scraper/tasks"
)

type CronHandler struct {
  Asynq *asynq.Client
  Ctx   context.Context
}

func NewCronCommand() *cli.Command {
  var h CronHandler
  return &cli.Command{
    Name:  "cron",
    Usage: "enqueue scraper jobs on a schedule",
    Before: func(c *cli.Context) error {
      h = CronHandler{
        Asynq: common.NewAsynqClient(),
        Ctx:   context.Background(),
      }
      return nil
    },
    After: func(c *cli.Context) error {
      return h.Asynq.Close()
    },
    Action: func(c *cli.Context) error {
      if err := h.run(); err != nil {
        return cli.Exit(err.Error(), 1)
      }
      return nil
    },
  }
}

func (h *CronHandler) run() error {
  common.Logger.Info().Msg("cron running...")

  ansqContext := &common.AnsqClientContext{
    Ctx:  h.Ctx,
    Conn: h.Asynq,
  }

  scrapers := tasks.NewScrapersTask(ansqContext)
  rankings := common.GetEnvArray("SCRAPER_TRANSFERS_RANKINGS")

  c := cron.New()
  c.AddFunc("@every 5m", func() {
    scrapers.Matches("")
  })
  c.AddFunc("@every 15m", func() {
    scrapers.Results()
  })
  c.AddFunc("@every 30m", func() {
    scrapers.Transfers(rankings)
  })
  c.AddFunc("@hourly", func() {
    scrapers.Ranking()
  })
  c.Start()

  quit := make(chan os.Signal, 1)
  signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
  <-quit

  <-c.Stop().Done()
  return nil
}
