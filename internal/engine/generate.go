package engine

import (
	"math"

	"github.com/KirkDiggler/fridaynight/internal/models"
)

const (
	defaultMorale     = 80
	defaultDiscipline = 80
	defaultBudget     = 10000
)

// GeneratePlayer creates a player in the given grade. starOrBase is a star
// level under RatingModelGradeStar and a base rating under RatingModelPrestige.
func (e *Engine) GeneratePlayer(grade int, starOrBase int) models.Player {
	v := e.variant

	overall := clamp(e.baseRating(grade, starOrBase)+e.roller.Between(v.RatingNoiseMin, v.RatingNoiseMax), v.RatingFloor, maxRating)
	potential := clamp(overall+e.roller.Between(v.PotentialMinGain, v.PotentialMaxGain), overall, maxRating)

	return models.Player{
		ID:         e.ids.NewUUID(),
		FirstName:  pick(e.roller, v.FirstNames),
		LastName:   pick(e.roller, v.LastNames),
		Position:   pick(e.roller, v.Positions),
		Grade:      grade,
		Overall:    overall,
		Potential:  potential,
		WorkEthic:  e.roller.Intn(100),
		Academics:  e.gpa(),
		Behavior:   e.roller.Between(70, 99),
		Discipline: defaultDiscipline,
		Morale:     defaultMorale,
		Speed:      e.roller.Between(40, 99),
		Strength:   e.roller.Between(40, 99),
		IQ:         e.roller.Between(40, 99),
	}
}

func (e *Engine) baseRating(grade, starOrBase int) int {
	if e.variant.RatingModel == RatingModelPrestige {
		return starOrBase
	}
	return 40 + (grade-models.GradeFreshman)*5 + starOrBase*5
}

// gpa draws a grade point average between 1.50 and 4.00
func (e *Engine) gpa() float64 {
	return math.Round((1.5+e.roller.Float64()*2.5)*100) / 100
}

// rosterSeed is the GeneratePlayer argument for a player joining a team at world creation
func (e *Engine) rosterSeed(prestige int) int {
	if e.variant.RatingModel == RatingModelPrestige {
		return prestige
	}
	return e.roller.Between(1, 4)
}

// freshmanSeed is the GeneratePlayer argument for a freshman backfilling a roster
func (e *Engine) freshmanSeed(prestige int) int {
	if e.variant.RatingModel == RatingModelPrestige {
		return prestige
	}
	return e.roller.Between(1, 3)
}

// GenerateTeam builds a school's program with a full roster
func (e *Engine) GenerateTeam(school School, isUser bool) models.Team {
	v := e.variant

	prestige := e.roller.Between(v.PrestigeMin, v.PrestigeMax)
	if isUser && v.UserPrestige > 0 {
		prestige = v.UserPrestige
	}

	mascot := school.Mascot
	if mascot == "" {
		mascot = pick(e.roller, v.Mascots)
	}

	roster := make([]models.Player, 0, v.RosterSize)
	for _, pc := range v.RosterTemplate {
		for i := 0; i < pc.Count; i++ {
			p := e.GeneratePlayer(e.roller.Between(models.GradeFreshman, models.GradeSenior), e.rosterSeed(prestige))
			p.Position = pc.Position
			roster = append(roster, p)
		}
	}
	for len(roster) < v.RosterSize {
		roster = append(roster, e.GeneratePlayer(e.roller.Between(models.GradeFreshman, models.GradeSenior), e.rosterSeed(prestige)))
	}

	team := models.Team{
		ID:            e.ids.NewUUID(),
		Name:          school.Name,
		Mascot:        mascot,
		Prestige:      prestige,
		Facilities:    e.roller.Between(10, 50),
		Budget:        defaultBudget,
		IsUser:        isUser,
		OffenseScheme: pick(e.roller, models.OffenseSchemes),
		DefenseScheme: pick(e.roller, models.DefenseSchemes),
		Roster:        roster,
	}
	e.RecomputeRatings(&team)
	return team
}

// GenerateWorld creates one team per school. The first school belongs to the user.
func (e *Engine) GenerateWorld() []models.Team {
	teams := make([]models.Team, 0, len(e.variant.Schools))
	for i, school := range e.variant.Schools {
		teams = append(teams, e.GenerateTeam(school, i == 0))
	}
	return teams
}

// GenerateProspects draws n recruits. Names are not guaranteed unique.
func (e *Engine) GenerateProspects(n int) []models.Prospect {
	prospects := make([]models.Prospect, 0, max(n, 0))
	for i := 0; i < n; i++ {
		prospects = append(prospects, models.Prospect{
			ID:        e.ids.NewUUID(),
			FirstName: pick(e.roller, e.variant.FirstNames),
			LastName:  pick(e.roller, e.variant.LastNames),
			Position:  pick(e.roller, e.variant.Positions),
			Stars:     e.roller.Between(1, 5),
			Potential: e.roller.Between(60, 94),
			Interest:  e.roller.Between(10, 49),
		})
	}
	return prospects
}

// SignProspect turns a committed prospect into an incoming freshman
func (e *Engine) SignProspect(prospect models.Prospect, prestige int) models.Player {
	seed := prospect.Stars
	if e.variant.RatingModel == RatingModelPrestige {
		seed = prestige + prospect.Stars*2
	}

	p := e.GeneratePlayer(models.GradeFreshman, seed)
	p.ID = prospect.ID
	p.FirstName = prospect.FirstName
	p.LastName = prospect.LastName
	p.Position = prospect.Position
	p.Potential = clamp(prospect.Potential, p.Overall, maxRating)
	return p
}
