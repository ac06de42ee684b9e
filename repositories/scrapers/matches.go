package scrapers

import (
  "context"
  "errors"
  "strconv"

  "github.com/PuerkitoBio/goquery"
  "github.com/go-resty/resty/v2"
)

type MatchesRepository struct {
  Client *resty.Client
}

// Process lists live and upcoming matches; date (YYYY-MM-DD) narrows the listing to that day.
func (r *MatchesRepository) Process(ctx context.Context, date string) (matches []*MatchInfo, err error) {
  doc, err := fetchDocument(ctx, r.Client, "/matches", map[string]string{
    "selectedDate": date,
  })
  if err != nil {
    return
  }

  if doc.Find(".liveMatchesContainer, .upcomingMatchesWrapper").Length() == 0 {
    err = errors.New("matches container can not be found")
    return
  }

  matches = []*MatchInfo{}
  doc.Find(".liveMatch, .upcomingMatch").Each(func(i int, s *goquery.Selection) {
    matches = append(matches, r.ExtractMatchInfo(s))
  })

  return
}

func (r *MatchesRepository) ExtractMatchInfo(s *goquery.Selection) *MatchInfo {
  href := s.Find("a.match").AttrOr("href", "")
  match := &MatchInfo{
    ID:     matchID(href),
    Team1:  text(s.Find(".matchTeam.team1 .matchTeamName")),
    Team2:  text(s.Find(".matchTeam.team2 .matchTeamName")),
    Event:  text(s.Find(".matchEvent .matchEventName")),
    Format: text(s.Find(".matchMeta")),
    Live:   s.HasClass("liveMatch"),
    Time:   unix(s.Find(".matchTime"), "data-unix"),
  }
  if href != "" {
    match.Url = r.Client.BaseURL + href
  }
  if match.Event == "" {
    match.Event = text(s.Find(".matchInfoEmpty"))
  }
  if match.Time == 0 {
    match.Time = unix(s, "data-zonedgrouping-entry-unix")
  }
  if stars, err := strconv.Atoi(s.AttrOr("data-stars", "")); err == nil {
    match.Stars = stars
  } else {
    match.Stars = s.Find(".matchRating .fa-star").Not(".faded").Length()
  }
  return match
}
