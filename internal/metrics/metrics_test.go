package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, rec *Recorder) string {
	t.Helper()

	srv := httptest.NewServer(rec.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestRecorderCountsLeagueActivity(t *testing.T) {
	rec := NewRecorder()
	rec.RecordGamesSimulated("manager", 4)
	rec.RecordGamesSimulated("manager", 4)
	rec.RecordWeekAdvanced("manager")
	rec.RecordSeasonAdvanced("high_school_gm")
	rec.RecordRecruitingPoints(30)

	body := scrape(t, rec)

	assert.Contains(t, body, `fridaynight_games_simulated_total{variant="manager"} 8`)
	assert.Contains(t, body, `fridaynight_weeks_advanced_total{variant="manager"} 1`)
	assert.Contains(t, body, `fridaynight_seasons_advanced_total{variant="high_school_gm"} 1`)
	assert.Contains(t, body, `fridaynight_recruiting_points_spent_total 30`)
}

func TestRecorderSplitsNarrativeOutcomes(t *testing.T) {
	rec := NewRecorder()
	rec.RecordNarrative("game", true)
	rec.RecordNarrative("game", false)
	rec.RecordNarrative("game", false)

	body := scrape(t, rec)

	assert.Contains(t, body, `fridaynight_narrative_requests_total{kind="game",outcome="generated"} 1`)
	assert.Contains(t, body, `fridaynight_narrative_requests_total{kind="game",outcome="fallback"} 2`)
}

func TestRecorderIgnoresNonPositiveCounts(t *testing.T) {
	rec := NewRecorder()
	rec.RecordGamesSimulated("manager", 0)
	rec.RecordRecruitingPoints(-5)

	body := scrape(t, rec)

	assert.NotContains(t, body, "fridaynight_games_simulated_total{")
	assert.Contains(t, body, `fridaynight_recruiting_points_spent_total 0`)
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	assert.NotPanics(t, func() {
		rec.RecordGamesSimulated("manager", 1)
		rec.RecordWeekAdvanced("manager")
		rec.RecordSeasonAdvanced("manager")
		rec.RecordNarrative("game", true)
		rec.RecordRecruitingPoints(10)
	})

	w := httptest.NewRecorder()
	rec.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
