package commands

import (
  "context"
  "errors"
  "fmt"
  "net/http"
  "os"
  "os/signal"
  "syscall"
  "time"

  "github.com/go-resty/resty/v2"
  "github.com/urfave/cli/v2"

  "scraper.local/hltv-scraper/api/v1"
  "scraper.local/hltv-scraper/common"
  "scraper.local/hltv-scraper/config"
)

type ApiHandler struct {
  Client *resty.Client
  Ctx    context.Context
}

func NewApiCommand() *cli.Command {
  var h ApiHandler
  return &cli.Command{
    Name:  "api",
    Usage: "serve matches, results, ranking and transfers as json",
    Before: func(c *cli.Context) error {
      h = ApiHandler{
        Client: common.NewScraperClient(),
        Ctx:    context.Background(),
      }
      return nil
    },
    Action: func(c *cli.Context) error {
      if err := h.Run(); err != nil {
        return cli.Exit(err.Error(), 1)
      }
      return nil
    },
  }
}

func (h *ApiHandler) Run() error {
  port := common.GetEnvInt("SCRAPER_API_PORT")
  if port == 0 {
    port = config.SCRAPER_API_PORT
  }

  apiContext := &common.ApiContext{
    Client: h.Client,
  }

  server := &http.Server{
    Addr:              fmt.Sprintf(":%d", port),
    Handler:           v1.NewRouter(apiContext),
    ReadHeaderTimeout: 10 * time.Second,
  }

  errs := make(chan error, 1)
  go func() {
    common.Logger.Info().Msgf("API rodando em http://localhost:%d", port)
    if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
      errs <- err
    }
  }()

  quit := make(chan os.Signal, 1)
  signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

  select {
  case err := <-errs:
    return err
  case <-quit:
  }

  common.Logger.Info().Msg("api shutting down...")
  ctx, cancel := context.WithTimeout(h.Ctx, 5*time.Second)
  defer cancel()
  return server.Shutdown(ctx)
}
