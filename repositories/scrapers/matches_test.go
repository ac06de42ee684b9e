package scrapers

import (
  "context"
  "net/http"
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"
)

const matchesPage = `<html><body>
<div class="liveMatchesContainer">
  <div class="liveMatch-container">
    <div class="liveMatch">
      <a href="/matches/2371389/natus-vincere-vs-faze-iem-dallas-2024" class="match a-reset">
        <div class="matchInfo">
          <div class="matchTime matchLive">LIVE</div>
          <div class="matchRating"><i class="fa fa-star"></i><i class="fa fa-star"></i><i class="fa fa-star faded"></i></div>
          <div class="matchMeta">bo3</div>
        </div>
        <div class="matchTeams">
          <div class="matchTeam team1"><div class="matchTeamName text-ellipsis">Natus Vincere</div></div>
          <div class="matchTeam team2"><div class="matchTeamName text-ellipsis">FaZe</div></div>
        </div>
        <div class="matchEvent"><div class="matchEventName">IEM Dallas 2024</div></div>
      </a>
    </div>
  </div>
</div>
<div class="upcomingMatchesWrapper">
  <div class="upcomingMatch" data-zonedgrouping-entry-unix="1714586400000" data-stars="1">
    <a href="/matches/2371390/vitality-vs-mouz-iem-dallas-2024" class="match a-reset">
      <div class="matchInfo">
        <div class="matchTime" data-unix="1714586400000">18:00</div>
        <div class="matchMeta">bo1</div>
      </div>
      <div class="matchTeam team1"><div class="matchTeamName">Vitality</div></div>
      <div class="matchTeam team2"><div class="matchTeamName">MOUZ</div></div>
      <div class="matchEvent"><div class="matchEventName">IEM Dallas 2024</div></div>
    </a>
  </div>
  <div class="upcomingMatch" data-zonedgrouping-entry-unix="1714600800000" data-stars="0">
    <a href="/matches/2371391/tbd-vs-tbd-iem-dallas-2024" class="match a-reset">
      <div class="matchInfo"><div class="matchMeta">bo3</div></div>
      <div class="matchInfoEmpty"><span>IEM Dallas 2024 Grand Final</span></div>
    </a>
  </div>
</div>
</body></html>`

func TestMatchesProcess(t *testing.T) {
  client := newTestClient(t, http.StatusOK, fixture{path: "/matches", body: matchesPage})
  r := &MatchesRepository{Client: client}

  matches, err := r.Process(context.Background(), "")
  require.NoError(t, err)
  require.Len(t, matches, 3)

  live := matches[0]
  assert.Equal(t, int64(2371389), live.ID)
  assert.Equal(t, client.BaseURL+"/matches/2371389/natus-vincere-vs-faze-iem-dallas-2024", live.Url)
  assert.Equal(t, "Natus Vincere", live.Team1)
  assert.Equal(t, "FaZe", live.Team2)
  assert.Equal(t, "IEM Dallas 2024", live.Event)
  assert.Equal(t, "bo3", live.Format)
  assert.Equal(t, 2, live.Stars)
  assert.True(t, live.Live)

  upcoming := matches[1]
  assert.Equal(t, int64(2371390), upcoming.ID)
  assert.Equal(t, "Vitality", upcoming.Team1)
  assert.Equal(t, "MOUZ", upcoming.Team2)
  assert.Equal(t, int64(1714586400000), upcoming.Time)
  assert.Equal(t, 1, upcoming.Stars)
  assert.False(t, upcoming.Live)

  tbd := matches[2]
  assert.Equal(t, "", tbd.Team1)
  assert.Equal(t, "IEM Dallas 2024 Grand Final", tbd.Event)
  assert.Equal(t, int64(1714600800000), tbd.Time)
}

func TestMatchesProcessDate(t *testing.T) {
  client := newTestClient(t, http.StatusOK, fixture{
    path:  "/matches",
    body:  matchesPage,
    query: map[string]string{"selectedDate": "2024-05-01"},
  })
  r := &MatchesRepository{Client: client}

  matches, err := r.Process(context.Background(), "2024-05-01")
  require.NoError(t, err)
  assert.Len(t, matches, 3)
}

func TestMatchesProcessWithoutDateOmitsQuery(t *testing.T) {
  client := newTestClient(t, http.StatusOK, fixture{
    path:  "/matches",
    body:  matchesPage,
    query: map[string]string{"selectedDate": ""},
  })
  r := &MatchesRepository{Client: client}

  _, err := r.Process(context.Background(), "")
  require.NoError(t, err)
}

func TestMatchesProcessUpstreamError(t *testing.T) {
  client := newTestClient(t, http.StatusServiceUnavailable, fixture{path: "/matches", body: "down"})
  r := &MatchesRepository{Client: client}

  _, err := r.Process(context.Background(), "")
  require.Error(t, err)
  assert.Contains(t, err.Error(), "code[503]")
}

func TestMatchesProcessMissingContainer(t *testing.T) {
  client := newTestClient(t, http.StatusOK, fixture{path: "/matches", body: "<html><body>blocked</body></html>"})
  r := &MatchesRepository{Client: client}

  _, err := r.Process(context.Background(), "")
  require.EqualError(t, err, "matches container can not be found")
}
