package workers

import (
  "context"
  "encoding/json"
  "fmt"
  "time"

  "github.com/hibiken/asynq"

  "scraper.local/hltv-scraper/common"
  "scraper.local/hltv-scraper/config"
  "scraper.local/hltv-scraper/queue/asynq/jobs"
  "scraper.local/hltv-scraper/repositories"
  "scraper.local/hltv-scraper/repositories/scrapers"
)

type Scrapers struct {
  AnsqContext         *common.AnsqServerContext
  Repository          *repositories.SnapshotsRepository
  MatchesRepository   *scrapers.MatchesRepository
  ResultsRepository   *scrapers.ResultsRepository
  RankingRepository   *scrapers.RankingRepository
  TransfersRepository *scrapers.TransfersRepository
}

func NewScrapers(ansqContext *common.AnsqServerContext) *Scrapers {
  h := &Scrapers{
    AnsqContext: ansqContext,
  }
  h.Repository = &repositories.SnapshotsRepository{
    Db:   h.AnsqContext.Db,
    Nats: h.AnsqContext.Nats,
  }
  h.MatchesRepository = &scrapers.MatchesRepository{
    Client: h.AnsqContext.Client,
  }
  h.ResultsRepository = &scrapers.ResultsRepository{
    Client: h.AnsqContext.Client,
  }
  h.RankingRepository = &scrapers.RankingRepository{
    Client: h.AnsqContext.Client,
  }
  h.TransfersRepository = &scrapers.TransfersRepository{
    Client: h.AnsqContext.Client,
  }
  return h
}

func (h *Scrapers) Matches(ctx context.Context, t *asynq.Task) error {
  payload, err := decodePayload(t)
  if err != nil {
    return err
  }

  mutex := common.NewMutex(
    h.AnsqContext.Rdb,
    h.AnsqContext.Ctx,
    fmt.Sprintf(config.LOCKS_SCRAPERS_MATCHES, payload.Date),
  )
  if !mutex.Lock(5 * time.Minute) {
    return nil
  }
  defer mutex.Unlock()

  matches, err := h.MatchesRepository.Process(ctx, payload.Date)
  if err != nil {
    return err
  }
  return h.apply(config.SNAPSHOT_KIND_MATCHES, payload.Params(), matches)
}

func (h *Scrapers) Results(ctx context.Context, t *asynq.Task) error {
  mutex := common.NewMutex(
    h.AnsqContext.Rdb,
    h.AnsqContext.Ctx,
    config.LOCKS_SCRAPERS_RESULTS,
  )
  if !mutex.Lock(5 * time.Minute) {
    return nil
  }
  defer mutex.Unlock()

  results, err := h.ResultsRepository.Process(ctx)
  if err != nil {
    return err
  }
  return h.apply(config.SNAPSHOT_KIND_RESULTS, nil, results)
}

func (h *Scrapers) Ranking(ctx context.Context, t *asynq.Task) error {
  mutex := common.NewMutex(
    h.AnsqContext.Rdb,
    h.AnsqContext.Ctx,
    config.LOCKS_SCRAPERS_RANKING,
  )
  if !mutex.Lock(5 * time.Minute) {
    return nil
  }
  defer mutex.Unlock()

  teams, err := h.RankingRepository.Process(ctx)
  if err != nil {
    return err
  }
  return h.apply(config.SNAPSHOT_KIND_RANKING, nil, teams)
}

func (h *Scrapers) Transfers(ctx context.Context, t *asynq.Task) error {
  payload, err := decodePayload(t)
  if err != nil {
    return err
  }

  mutex := common.NewMutex(
    h.AnsqContext.Rdb,
    h.AnsqContext.Ctx,
    fmt.Sprintf(config.LOCKS_SCRAPERS_TRANSFERS, payload.Ranking),
  )
  if !mutex.Lock(5 * time.Minute) {
    return nil
  }
  defer mutex.Unlock()

  transfers, err := h.TransfersRepository.Process(ctx, payload.Ranking)
  if err != nil {
    return err
  }
  return h.apply(config.SNAPSHOT_KIND_TRANSFERS, payload.Params(), transfers)
}

func decodePayload(t *asynq.Task) (payload jobs.ProcessPayload, err error) {
  if err = json.Unmarshal(t.Payload(), &payload); err != nil {
    err = fmt.Errorf("%s payload: %v: %w", t.Type(), err, asynq.SkipRetry)
  }
  return
}

func (h *Scrapers) apply(kind string, params map[string]interface{}, data interface{}) error {
  snapshot, created, err := h.Repository.Apply(kind, params, data)
  if err != nil {
    return err
  }
  if created {
    common.Logger.Info().Str("kind", kind).Str("snapshot_id", snapshot.ID).Msg("snapshot created")
  } else {
    common.Logger.Debug().Str("kind", kind).Str("snapshot_id", snapshot.ID).Msg("snapshot unchanged")
  }
  return nil
}

func (h *Scrapers) Register() error {
  h.AnsqContext.Mux.HandleFunc(config.ASYNQ_JOBS_SCRAPERS_MATCHES, h.Matches)
  h.AnsqContext.Mux.HandleFunc(config.ASYNQ_JOBS_SCRAPERS_RESULTS, h.Results)
  h.AnsqContext.Mux.HandleFunc(config.ASYNQ_JOBS_SCRAPERS_RANKING, h.Ranking)
  h.AnsqContext.Mux.HandleFunc(config.ASYNQ_JOBS_SCRAPERS_TRANSFERS, h.Transfers)
  return nil
}
