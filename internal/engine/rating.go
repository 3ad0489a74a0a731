package engine

import (
	"slices"

	"github.com/KirkDiggler/fridaynight/internal/models"
)

// UnitRating is the floor average overall of the players in a unit,
// or DefaultUnitRating when nobody on the roster plays there.
func (e *Engine) UnitRating(roster []models.Player, unit models.Unit) int {
	positions := e.variant.UnitPositions(unit)

	sum, count := 0, 0
	for _, p := range roster {
		if slices.Contains(positions, p.Position) {
			sum += p.Overall
			count++
		}
	}
	if count == 0 {
		return DefaultUnitRating
	}
	return clamp(sum/count, DefaultUnitRating, maxRating)
}

// RecomputeRatings refreshes a team's unit ratings from its roster.
// Call it after every roster change.
func (e *Engine) RecomputeRatings(team *models.Team) {
	team.OffenseRating = e.UnitRating(team.Roster, models.UnitOffense)
	team.DefenseRating = e.UnitRating(team.Roster, models.UnitDefense)
}

// TeamPower averages the unit ratings of a roster, plus the home field bonus
func (e *Engine) TeamPower(team models.Team, home bool) float64 {
	power := float64(e.UnitRating(team.Roster, models.UnitOffense)+e.UnitRating(team.Roster, models.UnitDefense)) / 2
	if home {
		power += e.variant.HomeFieldBonus
	}
	return power
}
