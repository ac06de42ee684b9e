package commands

import (
  "scraper.local/hltv-scraper/commands/scrapers"
  "github.com/urfave/cli/v2"
)

func NewScrapersCommand() *cli.Command {
  return &cli.Command{
    Name:  "scrapers",
    Usage: "run a scraper once and print its json",
    Subcommands: []*cli.Command{
      scrapers.NewMatchesCommand(),
      scrapers.NewResultsCommand(),
      scrapers.NewRankingCommand(),
      scrapers.NewTransfersCommand(),
    },
  }
}
