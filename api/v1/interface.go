package v1

import (
  "context"

  "scraper.local/hltv-scraper/repositories/scrapers"
)

type MatchesRepository interface {
  Process(ctx context.Context, date string) ([]*scrapers.MatchInfo, error)
}

type ResultsRepository interface {
  Process(ctx context.Context) ([]*scrapers.ResultInfo, error)
}

type RankingRepository interface {
  Process(ctx context.Context) ([]*scrapers.RankingInfo, error)
}

type TransfersRepository interface {
  Process(ctx context.Context, ranking string) ([]*scrapers.TransferInfo, error)
}
