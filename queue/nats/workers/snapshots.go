package workers

import (
  "encoding/json"
  "fmt"
  "time"

  "github.com/nats-io/nats.go"
  "github.com/tidwall/gjson"

  "scraper.local/hltv-scraper/common"
  "scraper.local/hltv-scraper/config"
  "scraper.local/hltv-scraper/repositories"
)

type Snapshots struct {
  NatsContext *common.NatsContext
  Repository  *repositories.SnapshotsRepository
}

func NewSnapshots(natsContext *common.NatsContext) *Snapshots {
  h := &Snapshots{
    NatsContext: natsContext,
  }
  h.Repository = &repositories.SnapshotsRepository{
    Db: h.NatsContext.Db,
  }
  return h
}

func (h *Snapshots) Subscribe() error {
  _, err := h.NatsContext.Conn.Subscribe(config.NATS_SNAPSHOTS_CREATE, h.Latest)
  return err
}

func (h *Snapshots) Latest(m *nats.Msg) {
  var payload *repositories.SnapshotsCreatePayload
  if err := json.Unmarshal(m.Data, &payload); err != nil || payload == nil {
    common.Logger.Warn().Err(err).Msg("snapshot event can not be decoded")
    return
  }

  field := repositories.SnapshotField(payload.Kind, payload.Params)
  mutex := common.NewMutex(
    h.NatsContext.Rdb,
    h.NatsContext.Ctx,
    fmt.Sprintf(config.LOCKS_SNAPSHOTS_LATEST, field),
  )
  if !mutex.Lock(3 * time.Second) {
    return
  }
  defer mutex.Unlock()

  snapshot, err := h.Repository.Find(payload.ID)
  if err != nil {
    common.Logger.Warn().Err(err).Str("snapshot_id", payload.ID).Msg("snapshot not exists")
    return
  }

  current, _ := h.NatsContext.Rdb.HGet(h.NatsContext.Ctx, config.REDIS_KEY_SNAPSHOTS_LATEST, field).Result()
  if current != "" && current != snapshot.ID {
    if latest, err := h.Repository.Find(current); err == nil && latest.Timestamp > snapshot.Timestamp {
      return
    }
  }

  err = h.NatsContext.Rdb.HSet(
    h.NatsContext.Ctx,
    config.REDIS_KEY_SNAPSHOTS_LATEST,
    field,
    snapshot.ID,
  ).Err()
  if err != nil {
    common.Logger.Error().Err(err).Str("snapshot_id", snapshot.ID).Msg("latest snapshot can not be saved")
    return
  }

  common.Logger.Info().
    Str("kind", snapshot.Kind).
    Str("snapshot_id", snapshot.ID).
    Int64("items", gjson.GetBytes(snapshot.Data, "#").Int()).
    Msg("latest snapshot updated")
}
