package engine

import (
	"github.com/KirkDiggler/fridaynight/internal/dice"
	"github.com/KirkDiggler/fridaynight/internal/models"
)

func (s *EngineTestSuite) TestSimulateGame_DifferentialFormula() {
	home := teamWithUnits("home", 80, 80)
	away := teamWithUnits("away", 60, 60)
	game := models.Game{ID: "g1", Week: 1, HomeTeamID: "home", AwayTeamID: "away"}

	s.mockRoller.EXPECT().Float64().Return(0.5).Times(2)
	s.mockRoller.EXPECT().Intn(len(weatherLines)).Return(0)

	result, err := s.mocked.SimulateGame(game, home, away)

	s.Require().NoError(err)
	// home: (83-60)/2 + 21 + 0.5 = 33; away: (60-83)/2 + 21 + 0.5 = 10
	s.Equal(33, result.HomeScore)
	s.Equal(10, result.AwayScore)
	s.True(result.Played)
	s.Equal("home", result.WinnerID())
	s.Equal([]string{
		"Kickoff at School home Stadium! School away receives at their own 20.",
		"Weather is clear. A great night for high school football.",
		"Scouts are here watching Player home-qb and Player home-ol (School home).",
		"Player away-qb is looking explosive for School away.",
		"The crowd erupts as the Mascot home seal the victory!",
		"Final Score: School home 33, School away 10",
	}, result.Log)

	s.False(game.Played, "input game is not modified")
}

func (s *EngineTestSuite) TestSimulateGame_PowerFormula() {
	v := VariantManager()
	v.ScoreFormula = ScoreFormulaPower
	e, err := New(&Config{Variant: v, Roller: s.mockRoller, UUIDGenerator: &sequentialIDs{}})
	s.Require().NoError(err)

	home := teamWithUnits("home", 60, 60)
	away := teamWithUnits("away", 90, 90)
	game := models.Game{ID: "g1", Week: 3, HomeTeamID: "home", AwayTeamID: "away"}

	s.mockRoller.EXPECT().Float64().Return(0.5).Times(2)
	s.mockRoller.EXPECT().Intn(len(weatherLines)).Return(1)

	result, err := e.SimulateGame(game, home, away)

	s.Require().NoError(err)
	// home: 63/3 + 10.5 = 31.5; away: 90/3 + 10.5 = 40.5
	s.Equal(31, result.HomeScore)
	s.Equal(40, result.AwayScore)
	s.Contains(result.Log, "Silence falls over the home crowd as the Mascot away take the win.")
}

func (s *EngineTestSuite) TestSimulateGame_ScoreNeverNegative() {
	home := teamWithUnits("home", 40, 40)
	away := teamWithUnits("away", 99, 99)
	game := models.Game{ID: "g1", HomeTeamID: "home", AwayTeamID: "away"}

	s.mockRoller.EXPECT().Float64().Return(0.0).Times(2)
	s.mockRoller.EXPECT().Intn(len(weatherLines)).Return(0)

	result, err := s.mocked.SimulateGame(game, home, away)

	s.Require().NoError(err)
	// home: (43-99)/2 + 21 - 10 = -17, floored at zero
	s.Equal(0, result.HomeScore)
	s.GreaterOrEqual(result.AwayScore, 0)
}

func (s *EngineTestSuite) TestSimulateGame_Tie() {
	home := teamWithUnits("home", 70, 70)
	away := teamWithUnits("away", 70, 70)
	// cancel out the home field bonus with the draws
	s.mockRoller.EXPECT().Float64().Return(0.0)
	s.mockRoller.EXPECT().Float64().Return(3.0 / 21)
	s.mockRoller.EXPECT().Intn(len(weatherLines)).Return(0)

	result, err := s.mocked.SimulateGame(models.Game{ID: "g", HomeTeamID: "home", AwayTeamID: "away"}, home, away)

	s.Require().NoError(err)
	s.Equal(result.HomeScore, result.AwayScore)
	s.True(result.IsTie())
	s.Empty(result.WinnerID())
	s.Contains(result.Log, "An incredible battle ends in a draw.")
}

func (s *EngineTestSuite) TestSimulateGame_EmptyRosters() {
	home := models.Team{ID: "home", Name: "Ghost"}
	away := models.Team{ID: "away", Name: "Phantom"}

	result, err := s.manager.SimulateGame(models.Game{ID: "g", HomeTeamID: "home", AwayTeamID: "away"}, home, away)

	s.Require().NoError(err)
	s.True(result.Played)
	s.GreaterOrEqual(result.HomeScore, 0)
	s.Contains(result.Log, "Scouts are here to see what Ghost can do.")
	s.Contains(result.Log, "Phantom come out looking for an upset.")
}

func (s *EngineTestSuite) TestSimulateGame_Errors() {
	home := teamWithUnits("home", 70, 70)
	away := teamWithUnits("away", 70, 70)

	_, err := s.mocked.SimulateGame(models.Game{ID: "g", HomeTeamID: "home", AwayTeamID: "away", Played: true}, home, away)
	s.ErrorIs(err, ErrGameAlreadyPlayed)

	_, err = s.mocked.SimulateGame(models.Game{ID: "g", HomeTeamID: "away", AwayTeamID: "home"}, home, away)
	s.ErrorIs(err, ErrTeamMismatch)

	_, err = s.mocked.SimulateGame(models.Game{ID: "g", HomeTeamID: "home", AwayTeamID: "home"}, home, home)
	s.ErrorIs(err, ErrTeamMismatch)
}

func (s *EngineTestSuite) TestSimulateGame_DoesNotReorderRoster() {
	home := teamWithUnits("home", 60, 90)
	away := teamWithUnits("away", 70, 70)
	before := append([]models.Player(nil), home.Roster...)

	_, err := s.manager.SimulateGame(models.Game{ID: "g", HomeTeamID: "home", AwayTeamID: "away"}, home, away)

	s.Require().NoError(err)
	s.Equal(before, home.Roster)
}

func (s *EngineTestSuite) TestSimulateGame_StrongerHomeTeamScoresMoreOnAverage() {
	for _, v := range []*Variant{VariantManager(), VariantHighSchoolGM()} {
		e, err := New(&Config{Variant: v, Roller: dice.New(&dice.Config{Seed: 99}), UUIDGenerator: &sequentialIDs{}})
		s.Require().NoError(err)

		home := teamWithUnits("home", 80, 80)
		away := teamWithUnits("away", 60, 60)
		// the balanced variant defends with DB instead of LB
		home.Roster = append(home.Roster, player("home-db", models.PositionDB, 80))
		away.Roster = append(away.Roster, player("away-db", models.PositionDB, 60))

		homeTotal, awayTotal := 0, 0
		const trials = 500
		for i := 0; i < trials; i++ {
			result, err := e.SimulateGame(models.Game{ID: "g", HomeTeamID: "home", AwayTeamID: "away"}, home, away)
			s.Require().NoError(err)
			s.GreaterOrEqual(result.HomeScore, 0)
			s.GreaterOrEqual(result.AwayScore, 0)
			homeTotal += result.HomeScore
			awayTotal += result.AwayScore
		}
		s.Greater(homeTotal, awayTotal, v.Name)
	}
}
