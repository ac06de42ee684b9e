package commands

import (
  "bytes"
  "encoding/json"
  "errors"
  "fmt"
  "strings"
  "time"

  "github.com/go-redis/redis/v8"
  "github.com/urfave/cli/v2"
  "gorm.io/gorm"

  "scraper.local/hltv-scraper/common"
  "scraper.local/hltv-scraper/config"
  "scraper.local/hltv-scraper/models"
  "scraper.local/hltv-scraper/repositories"
)

type SnapshotsHandler struct {
  Db         *gorm.DB
  Rdb        *redis.Client
  Repository *repositories.SnapshotsRepository
}

func NewSnapshotsCommand() *cli.Command {
  var h SnapshotsHandler
  return &cli.Command{
    Name:  "snapshots",
    Usage: "inspect stored scraper snapshots",
    Before: func(c *cli.Context) error {
      h = SnapshotsHandler{
        Db:  common.NewDB(),
        Rdb: common.NewRedis(),
      }
      h.Repository = &repositories.SnapshotsRepository{
        Db: h.Db,
      }
      return nil
    },
    Subcommands: []*cli.Command{
      {
        Name:      "latest",
        Usage:     "print the latest snapshot data",
        ArgsUsage: "<kind> [key=value ...]",
        Action: func(c *cli.Context) error {
          kind := c.Args().Get(0)
          if kind == "" {
            return cli.Exit("snapshot kind can not be empty", 1)
          }
          params := map[string]interface{}{}
          for _, arg := range c.Args().Tail() {
            parts := strings.SplitN(arg, "=", 2)
            if len(parts) != 2 {
              return cli.Exit(fmt.Sprintf("param %q not valid", arg), 1)
            }
            params[parts[0]] = parts[1]
          }
          if err := h.Latest(c, kind, params); err != nil {
            return cli.Exit(err.Error(), 1)
          }
          return nil
        },
      },
      {
        Name:      "listings",
        Usage:     "list stored snapshots",
        ArgsUsage: "[kind]",
        Flags: []cli.Flag{
          &cli.IntFlag{
            Name:  "limit",
            Value: 20,
          },
        },
        Action: func(c *cli.Context) error {
          h.Listings(c, c.Args().Get(0), c.Int("limit"))
          return nil
        },
      },
    },
  }
}

func (h *SnapshotsHandler) Latest(c *cli.Context, kind string, params map[string]interface{}) (err error) {
  var snapshot *models.Snapshot
  id, _ := h.Rdb.HGet(
    c.Context,
    config.REDIS_KEY_SNAPSHOTS_LATEST,
    repositories.SnapshotField(kind, params),
  ).Result()
  if id != "" {
    if snapshot, err = h.Repository.Find(id); err != nil {
      snapshot = nil
    }
  }
  if snapshot == nil {
    snapshot, err = h.Repository.Latest(kind, params)
  }
  if errors.Is(err, gorm.ErrRecordNotFound) {
    return errors.New("snapshot not exists")
  }
  if err != nil {
    return
  }

  var out bytes.Buffer
  if err = json.Indent(&out, snapshot.Data, "", "  "); err != nil {
    return
  }
  out.WriteByte('\n')
  _, err = c.App.Writer.Write(out.Bytes())
  return
}

func (h *SnapshotsHandler) Listings(c *cli.Context, kind string, limit int) {
  for _, snapshot := range h.Repository.Ranking(kind, limit) {
    params, _ := json.Marshal(snapshot.Params)
    fmt.Fprintf(
      c.App.Writer,
      "%s\t%s\t%s\t%s\t%s\n",
      snapshot.ID,
      snapshot.Kind,
      params,
      snapshot.Hash[:8],
      time.UnixMicro(snapshot.Timestamp).Format(time.RFC3339),
    )
  }
}
