package scrapers

import (
  "github.com/urfave/cli/v2"

  "scraper.local/hltv-scraper/common"
  scrapersRepositories "scraper.local/hltv-scraper/repositories/scrapers"
)

type RankingHandler struct {
  Repository *scrapersRepositories.RankingRepository
}

func NewRankingCommand() *cli.Command {
  var h RankingHandler
  return &cli.Command{
    Name:  "ranking",
    Usage: "scrape the team ranking",
    Before: func(c *cli.Context) error {
      h = RankingHandler{
        Repository: &scrapersRepositories.RankingRepository{
          Client: common.NewScraperClient(),
        },
      }
      return nil
    },
    Action: func(c *cli.Context) error {
      teams, err := h.Repository.Process(c.Context)
      if err != nil {
        return cli.Exit(err.Error(), 1)
      }
      return output(c.App.Writer, teams)
    },
  }
}
