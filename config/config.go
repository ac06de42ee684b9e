package config

const (
  SCRAPER_BASE_URL = "https://www.hltv.org"
  SCRAPER_AGENT    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"
  SCRAPER_API_PORT = 3000

  SCRAPER_TRANSFERS_ALL = "all"
)

const (
  SNAPSHOT_KIND_MATCHES   = "matches"
  SNAPSHOT_KIND_RESULTS   = "results"
  SNAPSHOT_KIND_RANKING   = "ranking"
  SNAPSHOT_KIND_TRANSFERS = "transfers"
)

const (
  REDIS_KEY_SNAPSHOTS_LATEST = "hltv:snapshots:latest"
)

const (
  LOCKS_SCRAPERS_MATCHES   = "hltv:locks:scrapers:matches:%v"
  LOCKS_SCRAPERS_RESULTS   = "hltv:locks:scrapers:results"
  LOCKS_SCRAPERS_RANKING   = "hltv:locks:scrapers:ranking"
  LOCKS_SCRAPERS_TRANSFERS = "hltv:locks:scrapers:transfers:%v"
  LOCKS_SNAPSHOTS_LATEST   = "hltv:locks:snapshots:latest:%v"
)

const (
  ASYNQ_QUEUE_SCRAPERS = "scrapers"
)

const (
  ASYNQ_JOBS_SCRAPERS_MATCHES   = "scrapers:matches"
  ASYNQ_JOBS_SCRAPERS_RESULTS   = "scrapers:results"
  ASYNQ_JOBS_SCRAPERS_RANKING   = "scrapers:ranking"
  ASYNQ_JOBS_SCRAPERS_TRANSFERS = "scrapers:transfers"
)

const (
  NATS_SNAPSHOTS_CREATE = "snapshots.create"
)
