package scrapers

import (
  "github.com/urfave/cli/v2"

  "scraper.local/hltv-scraper/common"
  scrapersRepositories "scraper.local/hltv-scraper/repositories/scrapers"
)

type ResultsHandler struct {
  Repository *scrapersRepositories.ResultsRepository
}

func NewResultsCommand() *cli.Command {
  var h ResultsHandler
  return &cli.Command{
    Name:  "results",
    Usage: "scrape completed match results",
    Before: func(c *cli.Context) error {
      h = ResultsHandler{
        Repository: &scrapersRepositories.ResultsRepository{
          Client: common.NewScraperClient(),
        },
      }
      return nil
    },
    Action: func(c *cli.Context) error {
      results, err := h.Repository.Process(c.Context)
      if err != nil {
        return cli.Exit(err.Error(), 1)
      }
      return output(c.App.Writer, results)
    },
  }
}
