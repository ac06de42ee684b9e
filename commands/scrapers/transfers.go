package scrapers

import (
  "github.com/urfave/cli/v2"

  "scraper.local/hltv-scraper/common"
  scrapersRepositories "scraper.local/hltv-scraper/repositories/scrapers"
)

type TransfersHandler struct {
  Repository *scrapersRepositories.TransfersRepository
}

func NewTransfersCommand() *cli.Command {
  var h TransfersHandler
  return &cli.Command{
    Name:      "transfers",
    Usage:     "scrape the latest transfers",
    ArgsUsage: "[ranking]",
    Before: func(c *cli.Context) error {
      h = TransfersHandler{
        Repository: &scrapersRepositories.TransfersRepository{
          Client: common.NewScraperClient(),
        },
      }
      return nil
    },
    Action: func(c *cli.Context) error {
      transfers, err := h.Repository.Process(c.Context, c.Args().Get(0))
      if err != nil {
        return cli.Exit(err.Error(), 1)
      }
      return output(c.App.Writer, transfers)
    },
  }
}
