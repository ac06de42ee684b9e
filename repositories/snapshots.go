package repositories

import (
  "crypto/sha1"
  "encoding/hex"
  "encoding/json"
  "errors"
  "fmt"
  "sort"
  "time"

  "github.com/nats-io/nats.go"
  "github.com/rs/xid"
  "gorm.io/datatypes"
  "gorm.io/gorm"

  "scraper.local/hltv-scraper/common"
  "scraper.local/hltv-scraper/config"
  "scraper.local/hltv-scraper/models"
)

type SnapshotsRepository struct {
  Db   *gorm.DB
  Nats *nats.Conn
}

type SnapshotsCreatePayload struct {
  ID     string                 `json:"id"`
  Kind   string                 `json:"kind"`
  Params map[string]interface{} `json:"params"`
}

func SnapshotHash(kind string, params map[string]interface{}, data []byte) string {
  buf, _ := json.Marshal(params)
  h := sha1.New()
  h.Write([]byte(kind))
  h.Write(buf)
  h.Write(data)
  return hex.EncodeToString(h.Sum(nil))
}

func (r *SnapshotsRepository) Find(id string) (snapshot *models.Snapshot, err error) {
  err = r.Db.First(&snapshot, "id=?", id).Error
  return
}

func (r *SnapshotsRepository) Latest(kind string, params map[string]interface{}) (snapshot *models.Snapshot, err error) {
  query := r.Db.Where("kind", kind)
  if len(params) == 0 {
    query = query.Where("params = '{}'::jsonb")
  }
  for key, val := range params {
    query = query.Where(datatypes.JSONQuery("params").Equals(val, key))
  }
  err = query.Order("timestamp desc").Take(&snapshot).Error
  return
}

func (r *SnapshotsRepository) Ranking(kind string, limit int) []*models.Snapshot {
  var snapshots []*models.Snapshot
  query := r.Db.Select([]string{
    "id",
    "kind",
    "params",
    "hash",
    "timestamp",
    "created_at",
  })
  if kind != "" {
    query.Where("kind", kind)
  }
  query.Order("timestamp desc").Limit(limit).Find(&snapshots)
  return snapshots
}

// Apply stores data as a new snapshot unless it matches the latest one for kind and params.
func (r *SnapshotsRepository) Apply(kind string, params map[string]interface{}, data interface{}) (snapshot *models.Snapshot, created bool, err error) {
  if params == nil {
    params = map[string]interface{}{}
  }
  buf, err := common.JSON(data)
  if err != nil {
    return
  }
  hash := SnapshotHash(kind, params, buf)

  latest, err := r.Latest(kind, params)
  if err == nil && latest.Hash == hash {
    return latest, false, nil
  }
  if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
    return
  }

  snapshot = &models.Snapshot{
    ID:        xid.New().String(),
    Kind:      kind,
    Params:    params,
    Data:      buf,
    Hash:      hash,
    Timestamp: time.Now().UnixMicro(),
  }
  if err = r.Db.Create(snapshot).Error; err != nil {
    return
  }
  created = true

  if r.Nats != nil {
    payload, _ := json.Marshal(&SnapshotsCreatePayload{
      ID:     snapshot.ID,
      Kind:   snapshot.Kind,
      Params: params,
    })
    if err := r.Nats.Publish(config.NATS_SNAPSHOTS_CREATE, payload); err != nil {
      common.Logger.Warn().Err(err).Str("snapshot_id", snapshot.ID).Msg("snapshot event can not be published")
    }
  }

  return snapshot, true, nil
}

// SnapshotField names a kind and its params inside the latest snapshots hash, e.g. "transfers:ranking=top30".
func SnapshotField(kind string, params map[string]interface{}) string {
  keys := make([]string, 0, len(params))
  for key := range params {
    keys = append(keys, key)
  }
  sort.Strings(keys)
  field := kind
  for _, key := range keys {
    field += fmt.Sprintf(":%s=%v", key, params[key])
  }
  return field
}
