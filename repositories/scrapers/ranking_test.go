package scrapers

import (
  "context"
  "net/http"
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"
)

const rankingPage = `<html><body>
<div class="ranking">
  <div class="ranked-team standard-box">
    <div class="ranking-header">
      <span class="position">#1</span>
      <div class="relative">
        <div class="teamLine sectionTeamPlayers"><span class="name">FaZe</span><span class="points">(985 points)</span></div>
      </div>
      <div class="change positive">+1</div>
    </div>
    <div class="lineup-con"><table class="lineup"><tr>
      <td class="player-holder"><a class="pointer"><div class="nick"><img class="flag" alt="Estonia"> ropz</div></a></td>
      <td class="player-holder"><a class="pointer"><div class="nick">broky</div></a></td>
      <td class="player-holder"><a class="pointer"><div class="nick"></div></a></td>
    </tr></table></div>
  </div>
  <div class="ranked-team standard-box">
    <div class="ranking-header">
      <span class="position">#2</span>
      <div class="relative">
        <div class="teamLine sectionTeamPlayers"><span class="name">Natus Vincere</span><span class="points">(920 points)</span></div>
      </div>
      <div class="change neutral">-</div>
    </div>
  </div>
</div>
</body></html>`

func TestRankingProcess(t *testing.T) {
  client := newTestClient(t, http.StatusOK, fixture{path: "/ranking/teams", body: rankingPage})
  r := &RankingRepository{Client: client}

  teams, err := r.Process(context.Background())
  require.NoError(t, err)
  require.Len(t, teams, 2)

  assert.Equal(t, &RankingInfo{
    Position: 1,
    Team:     "FaZe",
    Points:   985,
    Change:   "+1",
    Players:  []string{"ropz", "broky"},
  }, teams[0])

  assert.Equal(t, 2, teams[1].Position)
  assert.Equal(t, 920, teams[1].Points)
  assert.Equal(t, "-", teams[1].Change)
  assert.Empty(t, teams[1].Players)
}

func TestRankingProcessEmpty(t *testing.T) {
  client := newTestClient(t, http.StatusOK, fixture{path: "/ranking/teams", body: `<div class="ranking"></div>`})
  r := &RankingRepository{Client: client}

  _, err := r.Process(context.Background())
  require.EqualError(t, err, "ranking teams can not be found")
}
