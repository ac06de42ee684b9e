package scrapers

import (
  "context"
  "errors"

  "github.com/PuerkitoBio/goquery"
  "github.com/go-resty/resty/v2"
)

type RankingRepository struct {
  Client *resty.Client
}

func (r *RankingRepository) Process(ctx context.Context) (teams []*RankingInfo, err error) {
  doc, err := fetchDocument(ctx, r.Client, "/ranking/teams", nil)
  if err != nil {
    return
  }

  rows := doc.Find(".ranked-team")
  if rows.Length() == 0 {
    err = errors.New("ranking teams can not be found")
    return
  }

  teams = make([]*RankingInfo, 0, rows.Length())
  rows.Each(func(i int, s *goquery.Selection) {
    teams = append(teams, r.ExtractRankingInfo(s))
  })

  return
}

func (r *RankingRepository) ExtractRankingInfo(s *goquery.Selection) *RankingInfo {
  team := &RankingInfo{
    Position: number(s.Find(".position").Text()),
    Team:     text(s.Find(".teamLine .name")),
    Points:   number(s.Find(".teamLine .points").Text()),
    Change:   text(s.Find(".change")),
    Players:  []string{},
  }
  s.Find(".player-holder .nick").Each(func(i int, p *goquery.Selection) {
    if nick := text(p); nick != "" {
      team.Players = append(team.Players, nick)
    }
  })
  return team
}
