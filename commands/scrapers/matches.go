package scrapers

import (
  "github.com/urfave/cli/v2"

  "scraper.local/hltv-scraper/common"
  scrapersRepositories "scraper.local/hltv-scraper/repositories/scrapers"
)

type MatchesHandler struct {
  Repository *scrapersRepositories.MatchesRepository
}

func NewMatchesCommand() *cli.Command {
  var h MatchesHandler
  return &cli.Command{
    Name:      "matches",
    Usage:     "scrape live and upcoming matches",
    ArgsUsage: "[YYYY-MM-DD]",
    Before: func(c *cli.Context) error {
      h = MatchesHandler{
        Repository: &scrapersRepositories.MatchesRepository{
          Client: common.NewScraperClient(),
        },
      }
      return nil
    },
    Action: func(c *cli.Context) error {
      matches, err := h.Repository.Process(c.Context, c.Args().Get(0))
      if err != nil {
        return cli.Exit(err.Error(), 1)
      }
      return output(c.App.Writer, matches)
    },
  }
}
