package engine

import (
	"github.com/KirkDiggler/fridaynight/internal/models"
)

func (s *EngineTestSuite) TestUnitRating_EmptyRosterUsesDefault() {
	s.Equal(DefaultUnitRating, s.manager.UnitRating(nil, models.UnitOffense))
	s.Equal(DefaultUnitRating, s.manager.UnitRating([]models.Player{}, models.UnitDefense))
}

func (s *EngineTestSuite) TestUnitRating_NoMatchingPositions() {
	kickers := []models.Player{
		player("k1", models.PositionK, 90),
		player("k2", models.PositionK, 85),
	}
	s.Equal(DefaultUnitRating, s.manager.UnitRating(kickers, models.UnitOffense))
	s.Equal(DefaultUnitRating, s.manager.UnitRating(kickers, models.UnitDefense))
}

func (s *EngineTestSuite) TestUnitRating_FloorAverage() {
	roster := []models.Player{
		player("qb", models.PositionQB, 81),
		player("rb", models.PositionRB, 80),
		player("lb", models.PositionLB, 70),
		player("k", models.PositionK, 99),
	}
	s.Equal(80, s.manager.UnitRating(roster, models.UnitOffense))
	s.Equal(70, s.manager.UnitRating(roster, models.UnitDefense))
}

func (s *EngineTestSuite) TestUnitRating_PositionGroupsFollowVariant() {
	roster := []models.Player{
		player("cb", models.PositionCB, 90),
		player("db", models.PositionDB, 60),
	}
	// CB defends in the manager variant, DB in the balanced one
	s.Equal(90, s.manager.UnitRating(roster, models.UnitDefense))
	s.Equal(60, s.gm.UnitRating(roster, models.UnitDefense))
}

func (s *EngineTestSuite) TestUnitRating_AlwaysWithinBounds() {
	for i := 0; i < 50; i++ {
		team := s.manager.GenerateTeam(School{Name: "Valley", Mascot: "Vikings"}, false)
		for _, unit := range []models.Unit{models.UnitOffense, models.UnitDefense} {
			r := s.manager.UnitRating(team.Roster, unit)
			s.GreaterOrEqual(r, 40)
			s.LessOrEqual(r, 99)
		}
	}

	weak := []models.Player{player("qb", models.PositionQB, 12)}
	s.Equal(40, s.manager.UnitRating(weak, models.UnitOffense))
}

func (s *EngineTestSuite) TestRecomputeRatings() {
	team := teamWithUnits("a", 75, 65)
	team.OffenseRating, team.DefenseRating = 0, 0

	s.manager.RecomputeRatings(&team)

	s.Equal(75, team.OffenseRating)
	s.Equal(65, team.DefenseRating)
}

func (s *EngineTestSuite) TestTeamPower() {
	team := teamWithUnits("a", 80, 70)

	s.InDelta(75.0, s.manager.TeamPower(team, false), 0.0001)
	s.InDelta(78.0, s.manager.TeamPower(team, true), 0.0001)

	s.InDelta(40.0, s.manager.TeamPower(models.Team{ID: "empty"}, false), 0.0001)
}
