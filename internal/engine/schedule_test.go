package engine

import (
	"github.com/KirkDiggler/fridaynight/internal/models"
	"go.uber.org/mock/gomock"
)

func (s *EngineTestSuite) TestBuildSchedule_EvenTeams() {
	teams := s.manager.GenerateWorld()

	games := s.manager.BuildSchedule(teams, 8)

	s.Len(games, 8*4)
	s.assertScheduleShape(teams, games, 8)

	// each team plays exactly once a week
	for week := 1; week <= 8; week++ {
		seen := make(map[string]int)
		for _, g := range games {
			if g.Week == week {
				seen[g.HomeTeamID]++
				seen[g.AwayTeamID]++
			}
		}
		s.Len(seen, len(teams))
		for id, n := range seen {
			s.Equal(1, n, "team %s in week %d", id, week)
		}
	}
}

func (s *EngineTestSuite) TestBuildSchedule_OddTeamsDropOne() {
	teams := s.gm.GenerateWorld()

	games := s.gm.BuildSchedule(teams, 10)

	s.Len(games, 10*7)
	s.assertScheduleShape(teams, games, 10)
}

func (s *EngineTestSuite) TestBuildSchedule_NothingToPair() {
	teams := s.manager.GenerateWorld()

	s.Empty(s.manager.BuildSchedule(teams[:1], 8))
	s.Empty(s.manager.BuildSchedule(nil, 8))
	s.Empty(s.manager.BuildSchedule(teams, 0))
}

func (s *EngineTestSuite) TestBuildSchedule_UsesRollerShuffle() {
	teams := []models.Team{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}

	// reverse the order every week
	s.mockRoller.EXPECT().Shuffle(4, gomock.Any()).Do(func(n int, swap func(i, j int)) {
		for i := 0; i < n/2; i++ {
			swap(i, n-1-i)
		}
	}).Times(2)

	games := s.mocked.BuildSchedule(teams, 2)

	s.Require().Len(games, 4)
	s.Equal("d", games[0].HomeTeamID)
	s.Equal("c", games[0].AwayTeamID)
	s.Equal("b", games[1].HomeTeamID)
	s.Equal("a", games[1].AwayTeamID)
	s.Equal(2, games[3].Week)
	s.Equal("a", teams[0].ID, "input order is untouched")
}

func (s *EngineTestSuite) assertScheduleShape(teams []models.Team, games []models.Game, weeks int) {
	ids := make(map[string]bool)
	for _, t := range teams {
		ids[t.ID] = true
	}

	gameIDs := make(map[string]bool)
	for _, g := range games {
		s.NotEqual(g.HomeTeamID, g.AwayTeamID)
		s.True(ids[g.HomeTeamID])
		s.True(ids[g.AwayTeamID])
		s.GreaterOrEqual(g.Week, 1)
		s.LessOrEqual(g.Week, weeks)
		s.False(g.Played)
		s.Zero(g.HomeScore)
		s.Zero(g.AwayScore)
		s.Empty(g.Log)
		s.False(gameIDs[g.ID], "duplicate game id")
		gameIDs[g.ID] = true
	}
	s.LessOrEqual(len(games), weeks*(len(teams)/2))
}
