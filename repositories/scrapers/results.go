package scrapers

import (
  "context"
  "errors"

  "github.com/PuerkitoBio/goquery"
  "github.com/go-resty/resty/v2"
)

type ResultsRepository struct {
  Client *resty.Client
}

func (r *ResultsRepository) Process(ctx context.Context) (results []*ResultInfo, err error) {
  doc, err := fetchDocument(ctx, r.Client, "/results", nil)
  if err != nil {
    return
  }

  container := doc.Find(".results-all")
  if container.Length() == 0 {
    err = errors.New("results container can not be found")
    return
  }

  results = []*ResultInfo{}
  container.Find(".result-con").Each(func(i int, s *goquery.Selection) {
    results = append(results, r.ExtractResultInfo(s))
  })

  return
}

func (r *ResultsRepository) ExtractResultInfo(s *goquery.Selection) *ResultInfo {
  href := s.Find("a").First().AttrOr("href", "")
  scores := s.Find(".result-score span")
  result := &ResultInfo{
    ID:     matchID(href),
    Team1:  text(s.Find(".team1 .team")),
    Team2:  text(s.Find(".team2 .team")),
    Score1: number(scores.Eq(0).Text()),
    Score2: number(scores.Eq(1).Text()),
    Winner: text(s.Find(".team.team-won")),
    Event:  text(s.Find(".event-name")),
    Map:    text(s.Find(".map-text")),
    Time:   unix(s, "data-zonedgrouping-entry-unix"),
  }
  if href != "" {
    result.Url = r.Client.BaseURL + href
  }
  return result
}
