package engine

import (
	"github.com/KirkDiggler/fridaynight/internal/models"
)

func (s *EngineTestSuite) TestProgress_GrowthFormula() {
	grower := player("grower", models.PositionQB, 50)
	grower.Potential = 70
	grower.WorkEthic = 100

	decliner := player("decliner", models.PositionDL, 80)
	decliner.Potential = 50
	decliner.WorkEthic = 100

	team := models.Team{ID: "t", Roster: []models.Player{grower, decliner}}

	s.mockRoller.EXPECT().Float64().Return(0.25).Times(2)

	out := s.mocked.Progress([]models.Team{team})

	s.Require().Len(out, 1)
	// 20 * 1.0 * 0.15 + 0.5 = 3.5
	s.Equal(53, out[0].Roster[0].Overall)
	// -30 * 1.0 * 0.15 + 0.5 = -4, held to -1
	s.Equal(79, out[0].Roster[1].Overall)
	s.Equal(53, out[0].OffenseRating)
	s.Equal(79, out[0].DefenseRating)

	s.Equal(50, team.Roster[0].Overall, "input team is not modified")
}

func (s *EngineTestSuite) TestProgress_CapsAt99() {
	star := player("star", models.PositionQB, 98)
	star.Potential = 99
	star.WorkEthic = 99

	s.mockRoller.EXPECT().Float64().Return(0.99)

	out := s.mocked.Progress([]models.Team{{ID: "t", Roster: []models.Player{star}}})

	s.Equal(99, out[0].Roster[0].Overall)
}

func (s *EngineTestSuite) TestProgress_StaysWithinOneBelow() {
	teams := s.manager.GenerateWorld()

	out := s.manager.Progress(teams)

	for i := range teams {
		for j, before := range teams[i].Roster {
			after := out[i].Roster[j]
			s.GreaterOrEqual(after.Overall, before.Overall-1)
			s.LessOrEqual(after.Overall, 99)
			s.Equal(before.ID, after.ID)
		}
	}
}

func (s *EngineTestSuite) TestProgress_FlatRosterBarelyMoves() {
	roster := make([]models.Player, 35)
	for i := range roster {
		p := player("p", models.PositionOL, 50)
		p.Potential = 50
		p.WorkEthic = 50
		roster[i] = p
	}

	out := s.manager.Progress([]models.Team{{ID: "t", Roster: roster}})

	for _, p := range out[0].Roster {
		s.GreaterOrEqual(p.Overall, 49)
		s.LessOrEqual(p.Overall, 52)
	}
}

func (s *EngineTestSuite) TestGraduate_AgesRemovesAndBackfills() {
	teams := s.manager.GenerateWorld()
	teams[0].Wins, teams[0].Losses, teams[0].Ties = 6, 1, 1

	out := s.manager.Graduate(teams)

	s.Require().Len(out, len(teams))
	for i, team := range out {
		s.Len(team.Roster, 35)
		s.Zero(team.Wins)
		s.Zero(team.Losses)
		s.Zero(team.Ties)

		before := make(map[string]models.Player)
		for _, p := range teams[i].Roster {
			before[p.ID] = p
		}

		for _, p := range team.Roster {
			s.LessOrEqual(p.Grade, models.GradeSenior)
			if old, ok := before[p.ID]; ok {
				s.Equal(old.Grade+1, p.Grade)
				s.Less(old.Grade, models.GradeSenior, "seniors graduate")
			} else {
				s.Equal(models.GradeFreshman, p.Grade)
			}
		}
		s.Equal(s.manager.UnitRating(team.Roster, models.UnitOffense), team.OffenseRating)
		s.Equal(s.manager.UnitRating(team.Roster, models.UnitDefense), team.DefenseRating)
	}
}

func (s *EngineTestSuite) TestGraduate_RefillsTemplatePositions() {
	team := s.gm.GenerateTeam(School{Name: "Unity"}, false)
	for i := range team.Roster {
		if team.Roster[i].Position == models.PositionQB || team.Roster[i].Position == models.PositionK {
			team.Roster[i].Grade = models.GradeSenior
		} else {
			team.Roster[i].Grade = models.GradeFreshman
		}
	}

	out := s.gm.Graduate([]models.Team{team})

	counts := make(map[models.Position]int)
	for _, p := range out[0].Roster {
		counts[p.Position]++
	}
	s.Len(out[0].Roster, 38)
	s.Equal(2, counts[models.PositionQB])
	s.Equal(1, counts[models.PositionK])
}

func (s *EngineTestSuite) TestGraduateWithSignees() {
	team := s.manager.GenerateTeam(School{Name: "Westside", Mascot: "Wolverines"}, true)
	seniors := 0
	for _, p := range team.Roster {
		if p.Grade == models.GradeSenior {
			seniors++
		}
	}
	s.Require().Greater(seniors, 1)

	signees := []models.Player{
		{ID: "low", Grade: models.GradeFreshman, Position: models.PositionK, Overall: 50, Potential: 60},
		{ID: "high", Grade: models.GradeFreshman, Position: models.PositionQB, Overall: 50, Potential: 90},
	}

	out := s.manager.GraduateWithSignees([]models.Team{team}, map[string][]models.Player{team.ID: signees})

	ids := make(map[string]bool)
	for _, p := range out[0].Roster {
		ids[p.ID] = true
	}
	s.True(ids["low"])
	s.True(ids["high"])
	s.Len(out[0].Roster, 35)
}

func (s *EngineTestSuite) TestGraduateWithSignees_NoRoomKeepsBestPotential() {
	roster := make([]models.Player, 35)
	for i := range roster {
		roster[i] = player("p", models.PositionOL, 60)
		roster[i].Grade = models.GradeFreshman
	}
	roster[0].Grade = models.GradeSenior
	team := models.Team{ID: "t", Roster: roster}

	signees := []models.Player{
		{ID: "low", Grade: models.GradeFreshman, Potential: 61},
		{ID: "high", Grade: models.GradeFreshman, Potential: 95},
	}

	out := s.manager.GraduateWithSignees([]models.Team{team}, map[string][]models.Player{"t": signees})

	s.Len(out[0].Roster, 35)
	s.Equal("high", out[0].Roster[34].ID)
}
