package scrapers

import (
  "context"
  "net/http"
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"
)

const resultsPage = `<html><body>
<div class="big-results">
  <div class="result-con"><a href="/matches/1/featured" class="a-reset"></a></div>
</div>
<div class="results-all">
  <div class="results-sublist">
    <div class="result-con" data-zonedgrouping-entry-unix="1714579200000">
      <a href="/matches/2371380/natus-vincere-vs-faze-iem-dallas-2024" class="a-reset">
        <div class="result"><table><tr>
          <td class="team-cell"><div class="line-align team1"><div class="team team-won">Natus Vincere</div></div></td>
          <td class="result-score"><span class="score-won">2</span> - <span class="score-lost">1</span></td>
          <td class="team-cell"><div class="line-align team2"><div class="team">FaZe</div></div></td>
          <td class="event"><span class="event-name">IEM Dallas 2024</span></td>
          <td class="star-cell"><div class="map-text">bo3</div></td>
        </tr></table></div>
      </a>
    </div>
    <div class="result-con" data-zonedgrouping-entry-unix="1714575600000">
      <a href="/matches/2371381/vitality-vs-mouz-iem-dallas-2024" class="a-reset">
        <div class="result"><table><tr>
          <td class="team-cell"><div class="line-align team1"><div class="team">Vitality</div></div></td>
          <td class="result-score"><span class="score-lost">11</span> - <span class="score-won">13</span></td>
          <td class="team-cell"><div class="line-align team2"><div class="team team-won">MOUZ</div></div></td>
          <td class="event"><span class="event-name">IEM Dallas 2024</span></td>
          <td class="star-cell"><div class="map-text">nuke</div></td>
        </tr></table></div>
      </a>
    </div>
  </div>
</div>
</body></html>`

func TestResultsProcess(t *testing.T) {
  client := newTestClient(t, http.StatusOK, fixture{path: "/results", body: resultsPage})
  r := &ResultsRepository{Client: client}

  results, err := r.Process(context.Background())
  require.NoError(t, err)
  require.Len(t, results, 2)

  assert.Equal(t, &ResultInfo{
    ID:     2371380,
    Url:    client.BaseURL + "/matches/2371380/natus-vincere-vs-faze-iem-dallas-2024",
    Team1:  "Natus Vincere",
    Team2:  "FaZe",
    Score1: 2,
    Score2: 1,
    Winner: "Natus Vincere",
    Event:  "IEM Dallas 2024",
    Map:    "bo3",
    Time:   1714579200000,
  }, results[0])

  assert.Equal(t, 11, results[1].Score1)
  assert.Equal(t, 13, results[1].Score2)
  assert.Equal(t, "MOUZ", results[1].Winner)
  assert.Equal(t, "nuke", results[1].Map)
}

func TestResultsProcessMissingContainer(t *testing.T) {
  client := newTestClient(t, http.StatusOK, fixture{path: "/results", body: "<html></html>"})
  r := &ResultsRepository{Client: client}

  _, err := r.Process(context.Background())
  require.EqualError(t, err, "results container can not be found")
}
