package engine

import (
	"github.com/KirkDiggler/fridaynight/internal/models"
	"go.uber.org/mock/gomock"
)

func (s *EngineTestSuite) TestGeneratePlayer_RatingsInRange() {
	for _, e := range []*Engine{s.manager, s.gm} {
		for i := 0; i < 2000; i++ {
			grade := models.GradeFreshman + i%4
			p := e.GeneratePlayer(grade, 1+i%99)

			s.GreaterOrEqual(p.Overall, 0)
			s.LessOrEqual(p.Overall, 99)
			s.GreaterOrEqual(p.Potential, p.Overall, "potential never sits below overall")
			s.LessOrEqual(p.Potential, 99)
			s.Equal(grade, p.Grade)
			s.Contains(e.variant.Positions, p.Position)
			s.GreaterOrEqual(p.Academics, 1.5)
			s.LessOrEqual(p.Academics, 4.0)
			s.Zero(p.Stats)
		}
	}
}

func (s *EngineTestSuite) TestGeneratePlayer_GradeStarBase() {
	// QB, name picks and traits all come from the mock
	s.mockRoller.EXPECT().Between(0, 9).Return(4)
	s.mockRoller.EXPECT().Between(5, 30).Return(10)
	s.mockRoller.EXPECT().Intn(gomock.Any()).Return(0).AnyTimes()
	s.mockRoller.EXPECT().Between(gomock.Any(), gomock.Any()).Return(50).AnyTimes()
	s.mockRoller.EXPECT().Float64().Return(0.0).AnyTimes()

	p := s.mocked.GeneratePlayer(models.GradeJunior, 3)

	// 40 + (11-9)*5 + 3*5 = 65, plus noise of 4
	s.Equal(69, p.Overall)
	s.Equal(79, p.Potential)
	s.Equal(models.PositionQB, p.Position)
	s.Equal("James Smith", p.Name())
	s.Equal(1.5, p.Academics)
	s.Equal(80, p.Morale)
}

func (s *EngineTestSuite) TestGeneratePlayer_PotentialCappedAt99() {
	s.mockRoller.EXPECT().Between(0, 9).Return(9)
	s.mockRoller.EXPECT().Between(5, 30).Return(30)
	s.mockRoller.EXPECT().Intn(gomock.Any()).Return(0).AnyTimes()
	s.mockRoller.EXPECT().Between(gomock.Any(), gomock.Any()).Return(50).AnyTimes()
	s.mockRoller.EXPECT().Float64().Return(0.5).AnyTimes()

	p := s.mocked.GeneratePlayer(models.GradeSenior, 5)

	// 40 + 3*5 + 5*5 + 9 = 89, and 89 + 30 is capped
	s.Equal(89, p.Overall)
	s.Equal(99, p.Potential)
}

func (s *EngineTestSuite) TestGenerateTeam_FreeFormRoster() {
	team := s.manager.GenerateTeam(School{Name: "Westside", Mascot: "Wolverines"}, true)

	s.Len(team.Roster, 35)
	s.True(team.IsUser)
	s.Equal("Westside Wolverines", team.DisplayName())
	s.Equal(50, team.Prestige)
	s.NotEmpty(team.ID)
	s.Equal(s.manager.UnitRating(team.Roster, models.UnitOffense), team.OffenseRating)
	s.Equal(s.manager.UnitRating(team.Roster, models.UnitDefense), team.DefenseRating)
	for _, p := range team.Roster {
		s.GreaterOrEqual(p.Grade, models.GradeFreshman)
		s.LessOrEqual(p.Grade, models.GradeSenior)
	}
}

func (s *EngineTestSuite) TestGenerateTeam_TemplateRoster() {
	user := s.gm.GenerateTeam(School{Name: "Central High"}, true)
	cpu := s.gm.GenerateTeam(School{Name: "Oak Ridge"}, false)

	s.Equal(30, user.Prestige)
	s.GreaterOrEqual(cpu.Prestige, 20)
	s.LessOrEqual(cpu.Prestige, 80)
	s.Contains(s.gm.variant.Mascots, user.Mascot)

	for _, team := range []models.Team{user, cpu} {
		s.Len(team.Roster, 38)

		counts := make(map[models.Position]int)
		for _, p := range team.Roster {
			counts[p.Position]++
			s.GreaterOrEqual(p.Overall, 40, "the balanced variant floors ratings at 40")
		}
		for _, pc := range s.gm.variant.RosterTemplate {
			s.GreaterOrEqual(counts[pc.Position], pc.Count, string(pc.Position))
		}
	}
}

func (s *EngineTestSuite) TestGenerateWorld() {
	teams := s.gm.GenerateWorld()

	s.Len(teams, 15)
	users := 0
	for _, t := range teams {
		if t.IsUser {
			users++
		}
	}
	s.Equal(1, users)
	s.True(teams[0].IsUser)
	s.Equal("Central High", teams[0].Name)
}

func (s *EngineTestSuite) TestGenerateProspects() {
	prospects := s.manager.GenerateProspects(50)

	s.Len(prospects, 50)
	for _, p := range prospects {
		s.GreaterOrEqual(p.Stars, 1)
		s.LessOrEqual(p.Stars, 5)
		s.GreaterOrEqual(p.Potential, 60)
		s.LessOrEqual(p.Potential, 94)
		s.GreaterOrEqual(p.Interest, 10)
		s.Less(p.Interest, 50)
		s.False(p.IsCommitted())
	}

	s.Empty(s.manager.GenerateProspects(0))
	s.Empty(s.manager.GenerateProspects(-1))
}

func (s *EngineTestSuite) TestSignProspect() {
	prospect := models.Prospect{
		ID:        "recruit-1",
		FirstName: "Malik",
		LastName:  "Carter",
		Position:  models.PositionWR,
		Stars:     5,
		Potential: 94,
		Interest:  100,
	}

	p := s.manager.SignProspect(prospect, 50)

	s.Equal("recruit-1", p.ID)
	s.Equal("Malik Carter", p.Name())
	s.Equal(models.PositionWR, p.Position)
	s.Equal(models.GradeFreshman, p.Grade)
	s.GreaterOrEqual(p.Potential, p.Overall)
	s.GreaterOrEqual(p.Potential, 94)
}
