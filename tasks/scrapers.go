package tasks

import (
  "strings"
  "time"

  "github.com/hibiken/asynq"

  "scraper.local/hltv-scraper/common"
  "scraper.local/hltv-scraper/config"
  "scraper.local/hltv-scraper/queue/asynq/jobs"
)

type ScrapersTask struct {
  AnsqContext *common.AnsqClientContext
  Job         *jobs.Scrapers
}

func NewScrapersTask(ansqContext *common.AnsqClientContext) *ScrapersTask {
  return &ScrapersTask{
    AnsqContext: ansqContext,
    Job:         &jobs.Scrapers{},
  }
}

func (t *ScrapersTask) Matches(date string) error {
  common.Logger.Info().Str("date", date).Msg("tasks scrapers matches")
  return t.enqueue(t.Job.Matches(date))
}

func (t *ScrapersTask) Results() error {
  common.Logger.Info().Msg("tasks scrapers results")
  return t.enqueue(t.Job.Results())
}

func (t *ScrapersTask) Ranking() error {
  common.Logger.Info().Msg("tasks scrapers ranking")
  return t.enqueue(t.Job.Ranking())
}

// TransfersRankings maps configured filters to job rankings, "all" being the unfiltered page.
func TransfersRankings(rankings []string) []string {
  if len(rankings) == 0 {
    return []string{""}
  }
  filters := make([]string, 0, len(rankings))
  for _, ranking := range rankings {
    if strings.EqualFold(ranking, config.SCRAPER_TRANSFERS_ALL) {
      ranking = ""
    }
    filters = append(filters, ranking)
  }
  return filters
}

// Transfers enqueues one job per ranking filter.
func (t *ScrapersTask) Transfers(rankings []string) (err error) {
  for _, ranking := range TransfersRankings(rankings) {
    common.Logger.Info().Str("ranking", ranking).Msg("tasks scrapers transfers")
    if e := t.enqueue(t.Job.Transfers(ranking)); e != nil {
      err = e
    }
  }
  return
}

func (t *ScrapersTask) enqueue(job *asynq.Task, err error) error {
  if err != nil {
    return err
  }
  _, err = t.AnsqContext.Conn.EnqueueContext(
    t.AnsqContext.Ctx,
    job,
    asynq.Queue(config.ASYNQ_QUEUE_SCRAPERS),
    asynq.MaxRetry(0),
    asynq.Timeout(5*time.Minute),
  )
  if err != nil {
    common.Logger.Error().Err(err).Str("job", job.Type()).Msg("job can not be enqueued")
  }
  return err
}
