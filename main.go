package main

import (
  "os"
  "path"
  "path/filepath"

  "github.com/joho/godotenv"
  "github.com/urfave/cli/v2"

  "scraper.local/hltv-scraper/commands"
  "scraper.local/hltv-scraper/common"
)

func main() {
  if err := godotenv.Load(path.Join(filepath.Dir(os.Args[0]), ".env")); err != nil {
    dir, _ := os.Getwd()
    if err = godotenv.Load(path.Join(dir, ".env")); err != nil {
      common.Logger.Debug().Msg("no .env file found, using process environment")
    }
  }

  app := &cli.App{
    Name:  "hltv scraper commands",
    Usage: "",
    Action: func(c *cli.Context) error {
      return cli.ShowAppHelp(c)
    },
    Commands: []*cli.Command{
      commands.NewApiCommand(),
      commands.NewScrapersCommand(),
      commands.NewDbCommand(),
      commands.NewSnapshotsCommand(),
      commands.NewCronCommand(),
      commands.NewQueueCommand(),
    },
    Version: "0.0.0",
  }

  if err := app.Run(os.Args); err != nil {
    common.Logger.Fatal().Err(err).Msg("command failed")
  }
}
