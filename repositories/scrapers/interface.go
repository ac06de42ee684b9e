package scrapers

type MatchInfo struct {
  ID     int64  `json:"id"`
  Url    string `json:"url"`
  Team1  string `json:"team1"`
  Team2  string `json:"team2"`
  Event  string `json:"event"`
  Format string `json:"format"`
  Stars  int    `json:"stars"`
  Live   bool   `json:"live"`
  Time   int64  `json:"time"`
}

type ResultInfo struct {
  ID     int64  `json:"id"`
  Url    string `json:"url"`
  Team1  string `json:"team1"`
  Team2  string `json:"team2"`
  Score1 int    `json:"score1"`
  Score2 int    `json:"score2"`
  Winner string `json:"winner"`
  Event  string `json:"event"`
  Map    string `json:"map"`
  Time   int64  `json:"time"`
}

type RankingInfo struct {
  Position int      `json:"position"`
  Team     string   `json:"team"`
  Points   int      `json:"points"`
  Change   string   `json:"change"`
  Players  []string `json:"players"`
}

type TransferInfo struct {
  Player      string `json:"player"`
  Description string `json:"description"`
  From        string `json:"from"`
  To          string `json:"to"`
  Time        int64  `json:"time"`
}
